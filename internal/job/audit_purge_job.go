package job

import (
	"context"
	"fmt"
	"time"

	"hospital-backend/internal/delivery/dto"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const purgeTimeout = 5 * time.Minute

// AuditPurger is the part of the audit log usecase the purge job needs.
type AuditPurger interface {
	ClearOldLogs(ctx context.Context, days int) (*dto.ClearOldLogsResponse, error)
}

// AuditPurgeJob deletes audit entries past the retention window on a cron schedule.
type AuditPurgeJob struct {
	purger        AuditPurger
	log           *logrus.Logger
	retentionDays int
	cron          *cron.Cron
}

func NewAuditPurgeJob(purger AuditPurger, log *logrus.Logger, retentionDays int, loc *time.Location) *AuditPurgeJob {
	return &AuditPurgeJob{
		purger:        purger,
		log:           log,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithLocation(loc)),
	}
}

// Start registers the purge under schedule and starts the scheduler.
// An empty schedule disables the job.
func (j *AuditPurgeJob) Start(schedule string) error {
	if schedule == "" {
		j.log.Info("Audit log purge disabled")
		return nil
	}

	if _, err := j.cron.AddFunc(schedule, j.run); err != nil {
		return fmt.Errorf("invalid audit purge schedule %q: %w", schedule, err)
	}

	j.cron.Start()
	j.log.Infof("Audit log purge scheduled (%s, keep %d days)", schedule, j.retentionDays)
	return nil
}

// Stop waits for a running purge to finish.
func (j *AuditPurgeJob) Stop() {
	<-j.cron.Stop().Done()
}

func (j *AuditPurgeJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	if _, err := j.RunOnce(ctx); err != nil {
		j.log.Errorf("Scheduled audit log purge failed: %v", err)
	}
}

// RunOnce purges immediately, outside the schedule.
func (j *AuditPurgeJob) RunOnce(ctx context.Context) (*dto.ClearOldLogsResponse, error) {
	return j.purger.ClearOldLogs(ctx, j.retentionDays)
}
