package job

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"hospital-backend/internal/delivery/dto"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuditPurger struct {
	mock.Mock
}

func (m *MockAuditPurger) ClearOldLogs(ctx context.Context, days int) (*dto.ClearOldLogsResponse, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ClearOldLogsResponse), args.Error(1)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAuditPurgeJob_RunOnce_UsesRetention(t *testing.T) {
	purger := new(MockAuditPurger)
	purger.On("ClearOldLogs", mock.Anything, 30).Return(&dto.ClearOldLogsResponse{Days: 30, Deleted: 12}, nil)

	j := NewAuditPurgeJob(purger, testLogger(), 30, time.UTC)
	result, err := j.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), result.Deleted)
	purger.AssertExpectations(t)
}

func TestAuditPurgeJob_Run_SwallowsErrors(t *testing.T) {
	purger := new(MockAuditPurger)
	purger.On("ClearOldLogs", mock.Anything, 90).Return(nil, errors.New("db down"))

	j := NewAuditPurgeJob(purger, testLogger(), 90, time.UTC)

	assert.NotPanics(t, j.run)
	purger.AssertExpectations(t)
}

func TestAuditPurgeJob_Start(t *testing.T) {
	t.Run("empty schedule disables the job", func(t *testing.T) {
		j := NewAuditPurgeJob(new(MockAuditPurger), testLogger(), 90, time.UTC)
		require.NoError(t, j.Start(""))
		assert.Empty(t, j.cron.Entries())
	})

	t.Run("invalid schedule", func(t *testing.T) {
		j := NewAuditPurgeJob(new(MockAuditPurger), testLogger(), 90, time.UTC)
		assert.Error(t, j.Start("every now and then"))
	})

	t.Run("valid schedule registers one entry", func(t *testing.T) {
		j := NewAuditPurgeJob(new(MockAuditPurger), testLogger(), 90, time.UTC)
		require.NoError(t, j.Start("0 3 * * *"))
		defer j.Stop()
		assert.Len(t, j.cron.Entries(), 1)
	})
}
