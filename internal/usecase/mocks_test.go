package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, sqlMock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var testNow = time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)

// MockAppointmentRepository

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) error {
	args := m.Called(db, id, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Appointment), args.Get(1).(int64), args.Error(2)
}

func (m *MockAppointmentRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error) {
	args := m.Called(db, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Appointment, error) {
	args := m.Called(db, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindActiveInSlot(db *gorm.DB, doctorID int64, date time.Time, timeOfDay string, excludeID int64) (*entity.Appointment, error) {
	args := m.Called(db, doctorID, date, timeOfDay, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Statistics(db *gorm.DB, doctorID *int64, today time.Time) (*entity.AppointmentStats, error) {
	args := m.Called(db, doctorID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AppointmentStats), args.Error(1)
}

// MockQueueRepository

type MockQueueRepository struct {
	mock.Mock
}

func (m *MockQueueRepository) Create(db *gorm.DB, entry *entity.QueueEntry) error {
	args := m.Called(db, entry)
	return args.Error(0)
}

func (m *MockQueueRepository) Update(db *gorm.DB, entry *entity.QueueEntry) error {
	args := m.Called(db, entry)
	return args.Error(0)
}

func (m *MockQueueRepository) UpdateStatus(db *gorm.DB, id int64, status entity.QueueStatus) (int64, error) {
	args := m.Called(db, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueueRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueueRepository) FindByID(db *gorm.DB, id int64) (*entity.QueueEntry, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) FindAll(db *gorm.DB, filter *entity.QueueFilter) ([]entity.QueueEntry, int64, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.QueueEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockQueueRepository) FindByDate(db *gorm.DB, date time.Time, statuses ...entity.QueueStatus) ([]entity.QueueEntry, error) {
	args := m.Called(db, date, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) MaxQueueNumber(db *gorm.DB, date time.Time) (int, error) {
	args := m.Called(db, date)
	return args.Int(0), args.Error(1)
}

func (m *MockQueueRepository) LockNextWaiting(db *gorm.DB, date time.Time, doctorID *int64) (*entity.QueueEntry, error) {
	args := m.Called(db, date, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) Statistics(db *gorm.DB, date time.Time) (*entity.QueueStats, error) {
	args := m.Called(db, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QueueStats), args.Error(1)
}

// MockAuditLogRepository

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(db, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindAll(db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.AuditLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditLogRepository) Statistics(db *gorm.DB, todayStart time.Time) (*entity.AuditLogStats, error) {
	args := m.Called(db, todayStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuditLogStats), args.Error(1)
}

func (m *MockAuditLogRepository) FindActors(db *gorm.DB) ([]entity.AuditActor, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AuditActor), args.Error(1)
}

func (m *MockAuditLogRepository) DeleteOlderThan(db *gorm.DB, cutoff time.Time) (int64, error) {
	args := m.Called(db, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByIdentifier(db *gorm.DB, identifier string) (*entity.User, error) {
	args := m.Called(db, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id int64) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UsernameExists(db *gorm.DB, username string) (bool, error) {
	args := m.Called(db, username)
	return args.Bool(0), args.Error(1)
}

// MockProfileRepository

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(db *gorm.DB, profile *entity.UserProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(db *gorm.DB, userID int64) (*entity.UserProfile, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

// MockRoleRepository

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindDoctorByUserID(db *gorm.DB, userID int64) (*entity.Doctor, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

func (m *MockRoleRepository) FindDoctorByID(db *gorm.DB, doctorID int64) (*entity.Doctor, error) {
	args := m.Called(db, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

func (m *MockRoleRepository) FindSecretaryByUserID(db *gorm.DB, userID int64) (*entity.Secretary, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Secretary), args.Error(1)
}

func (m *MockRoleRepository) FindReceptionistByUserID(db *gorm.DB, userID int64) (*entity.Receptionist, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Receptionist), args.Error(1)
}

// MockPatientRepository

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByUserID(db *gorm.DB, userID int64) (*entity.Patient, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAll(db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Patient), args.Get(1).(int64), args.Error(2)
}

func (m *MockPatientRepository) CodeExists(db *gorm.DB, code string) (bool, error) {
	args := m.Called(db, code)
	return args.Bool(0), args.Error(1)
}

// MockNotificationRepository

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindUnreadByUserID(db *gorm.DB, userID int64) ([]entity.Notification, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Notification), args.Error(1)
}

// Service mocks

type MockReferenceResolver struct {
	mock.Mock
}

func (m *MockReferenceResolver) ResolveDoctorID(db *gorm.DB, ref int64) (int64, bool, error) {
	args := m.Called(db, ref)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockReferenceResolver) ResolvePatientID(db *gorm.DB, ref int64) (int64, bool, error) {
	args := m.Called(db, ref)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry service.AuditEntry) {
	m.Called(ctx, entry)
}

type MockQueueNumberer struct {
	mock.Mock
}

func (m *MockQueueNumberer) NextQueueNumber(ctx context.Context, date time.Time, floor int) (int, error) {
	args := m.Called(ctx, date, floor)
	return args.Int(0), args.Error(1)
}

type MockMailDispatcher struct {
	mock.Mock
}

func (m *MockMailDispatcher) SendPatientWelcome(ctx context.Context, data service.PatientWelcome) bool {
	args := m.Called(ctx, data)
	return args.Bool(0)
}

// auditAction matches an audit entry by action
func auditAction(action string) interface{} {
	return mock.MatchedBy(func(entry service.AuditEntry) bool {
		return entry.Action == action
	})
}
