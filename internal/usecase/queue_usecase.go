package usecase

import (
	"context"
	"errors"
	"fmt"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/clock"
	"hospital-backend/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrQueueEntryNotFound  = errors.New("queue entry not found")
	ErrInvalidQueueStatus  = errors.New("invalid queue status")
	ErrNoWaitingEntries    = errors.New("no waiting queue entries found")
	ErrQueueNumberConflict = errors.New("could not allocate a queue number, please retry")
)

const (
	queueNumberConstraint = "uniq_queue_date_number"
	queueNumberAttempts   = 3
)

type QueueUsecase interface {
	GetAll(ctx context.Context, req *dto.QueueListRequest) ([]dto.QueueEntryResponse, *response.Meta, error)
	GetByID(ctx context.Context, id int64) (*dto.QueueEntryResponse, error)
	GetActive(ctx context.Context) ([]dto.QueueEntryResponse, error)
	GetByDate(ctx context.Context, queueDate string) ([]dto.QueueEntryResponse, error)
	Create(ctx context.Context, req *dto.CreateQueueRequest) (*dto.QueueTicketResponse, error)
	Update(ctx context.Context, req *dto.UpdateQueueRequest) error
	UpdateStatus(ctx context.Context, req *dto.UpdateQueueStatusRequest) error
	Delete(ctx context.Context, id int64) error
	CallNext(ctx context.Context, req *dto.CallNextQueueRequest) (*dto.QueueTicketResponse, error)
	GetStatistics(ctx context.Context) (*entity.QueueStats, error)
}

type queueUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	queueRepo repository.QueueRepository
	numberer  service.QueueNumberer
	resolver  service.ReferenceResolver
	audit     service.AuditService
	clock     clock.Clock
}

func NewQueueUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	queueRepo repository.QueueRepository,
	numberer service.QueueNumberer,
	resolver service.ReferenceResolver,
	audit service.AuditService,
	clk clock.Clock,
) QueueUsecase {
	return &queueUsecase{
		db:        db,
		log:       log,
		queueRepo: queueRepo,
		numberer:  numberer,
		resolver:  resolver,
		audit:     audit,
		clock:     clk,
	}
}

func (u *queueUsecase) GetAll(ctx context.Context, req *dto.QueueListRequest) ([]dto.QueueEntryResponse, *response.Meta, error) {
	page, limit := normalizePage(req.Page, req.Limit)

	queueDate := u.clock.Today()
	if req.DateFilter != "" {
		date, err := parseDate(req.DateFilter, u.clock.Now().Location())
		if err != nil {
			return nil, nil, err
		}
		queueDate = date
	}

	db := u.db.WithContext(ctx)
	doctorID, err := u.softResolveDoctor(db, req.DoctorID)
	if err != nil {
		return nil, nil, err
	}

	filter := &entity.QueueFilter{
		Search:    req.Search,
		Status:    req.Status,
		DoctorID:  doctorID,
		QueueDate: queueDate,
		Page:      page,
		Limit:     limit,
	}

	entries, total, err := u.queueRepo.FindAll(db, filter)
	if err != nil {
		u.log.Warnf("Failed to find queue entries: %+v", err)
		return nil, nil, err
	}

	return converter.QueueEntriesToResponses(entries), response.NewMeta(page, limit, total), nil
}

func (u *queueUsecase) GetByID(ctx context.Context, id int64) (*dto.QueueEntryResponse, error) {
	entry, err := u.queueRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find queue entry by ID: %+v", err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrQueueEntryNotFound
	}

	return converter.QueueEntryToResponse(entry), nil
}

// GetActive lists today's entries still waiting or being served
func (u *queueUsecase) GetActive(ctx context.Context) ([]dto.QueueEntryResponse, error) {
	entries, err := u.queueRepo.FindByDate(u.db.WithContext(ctx), u.clock.Today(), entity.QueueStatusWaiting, entity.QueueStatusCalled)
	if err != nil {
		u.log.Warnf("Failed to find active queue entries: %+v", err)
		return nil, err
	}

	return converter.QueueEntriesToResponses(entries), nil
}

func (u *queueUsecase) GetByDate(ctx context.Context, queueDate string) ([]dto.QueueEntryResponse, error) {
	date, err := parseDate(queueDate, u.clock.Now().Location())
	if err != nil {
		return nil, err
	}

	entries, err := u.queueRepo.FindByDate(u.db.WithContext(ctx), date)
	if err != nil {
		u.log.Warnf("Failed to find queue entries by date: %+v", err)
		return nil, err
	}

	return converter.QueueEntriesToResponses(entries), nil
}

func (u *queueUsecase) Create(ctx context.Context, req *dto.CreateQueueRequest) (*dto.QueueTicketResponse, error) {
	db := u.db.WithContext(ctx)

	queueDate := u.clock.Today()
	if req.QueueDate != "" {
		date, err := parseDate(req.QueueDate, u.clock.Now().Location())
		if err != nil {
			return nil, err
		}
		queueDate = date
	}

	patientID, err := u.resolvePatient(db, req.PatientID)
	if err != nil {
		return nil, err
	}
	doctorID, err := u.resolveDoctor(db, req.DoctorID)
	if err != nil {
		return nil, err
	}

	entry := &entity.QueueEntry{
		PatientID:     patientID,
		DoctorID:      doctorID,
		AppointmentID: req.AppointmentID,
		QueueDate:     queueDate,
		Status:        entity.QueueStatusWaiting,
		Notes:         req.Notes,
	}

	// The unique index settles races; a collision re-reads the max and retries
	inserted := false
	for attempt := 1; attempt <= queueNumberAttempts; attempt++ {
		if err := u.insertWithNextNumber(ctx, db, entry); err != nil {
			if isDuplicateKeyError(err, queueNumberConstraint) {
				u.log.Warnf("Queue number %d for %s already taken, attempt %d", entry.QueueNumber, queueDate.Format("2006-01-02"), attempt)
				continue
			}
			if isForeignKeyError(err, "appointment_id") {
				return nil, ErrAppointmentNotFound
			}
			return nil, err
		}
		inserted = true
		break
	}
	if !inserted {
		return nil, ErrQueueNumberConflict
	}

	u.log.Infof("Queue entry %d issued number %d for %s", entry.ID, entry.QueueNumber, queueDate.Format("2006-01-02"))
	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionCreateQueue,
		fmt.Sprintf("Created queue entry #%d for patient ID: %d", entry.QueueNumber, patientID),
	))

	return &dto.QueueTicketResponse{
		QueueID:     entry.ID,
		QueueNumber: entry.QueueNumber,
	}, nil
}

func (u *queueUsecase) insertWithNextNumber(ctx context.Context, db *gorm.DB, entry *entity.QueueEntry) error {
	tx := db.Begin()
	defer tx.Rollback()

	floor, err := u.queueRepo.MaxQueueNumber(tx, entry.QueueDate)
	if err != nil {
		u.log.Warnf("Failed to read max queue number: %+v", err)
		return err
	}

	number, err := u.numberer.NextQueueNumber(ctx, entry.QueueDate, floor)
	if err != nil {
		u.log.Warnf("Failed to allocate queue number: %+v", err)
		return err
	}
	entry.ID = 0
	entry.QueueNumber = number

	if err := u.queueRepo.Create(tx, entry); err != nil {
		if !isDuplicateKeyError(err, queueNumberConstraint) {
			u.log.Warnf("Failed to create queue entry: %+v", err)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *queueUsecase) Update(ctx context.Context, req *dto.UpdateQueueRequest) error {
	db := u.db.WithContext(ctx)

	entry, err := u.queueRepo.FindByID(db, req.QueueID)
	if err != nil {
		u.log.Warnf("Failed to find queue entry by ID: %+v", err)
		return err
	}
	if entry == nil {
		return ErrQueueEntryNotFound
	}
	entry.Patient = nil
	entry.Doctor = nil

	if req.Status != nil {
		status := entity.QueueStatus(*req.Status)
		if !status.IsValid() {
			return ErrInvalidQueueStatus
		}
		entry.Status = status
	}
	if req.PatientID != nil {
		if entry.PatientID, err = u.resolvePatient(db, *req.PatientID); err != nil {
			return err
		}
	}
	if req.DoctorID != nil {
		if entry.DoctorID, err = u.resolveDoctor(db, *req.DoctorID); err != nil {
			return err
		}
	}
	if req.AppointmentID != nil {
		entry.AppointmentID = req.AppointmentID
	}
	if req.Notes != nil {
		entry.Notes = req.Notes
	}

	if err := u.queueRepo.Update(db, entry); err != nil {
		if isForeignKeyError(err, "appointment_id") {
			return ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to update queue entry: %+v", err)
		return err
	}

	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionUpdateQueue,
		fmt.Sprintf("Updated queue entry #%d", entry.ID),
	))

	return nil
}

// UpdateStatus allows any transition between the four queue statuses
func (u *queueUsecase) UpdateStatus(ctx context.Context, req *dto.UpdateQueueStatusRequest) error {
	db := u.db.WithContext(ctx)

	status := entity.QueueStatus(req.Status)
	if !status.IsValid() {
		return ErrInvalidQueueStatus
	}

	entry, err := u.queueRepo.FindByID(db, req.QueueID)
	if err != nil {
		u.log.Warnf("Failed to find queue entry by ID: %+v", err)
		return err
	}
	if entry == nil {
		return ErrQueueEntryNotFound
	}

	if _, err := u.queueRepo.UpdateStatus(db, entry.ID, status); err != nil {
		u.log.Warnf("Failed to update queue status: %+v", err)
		return err
	}

	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionUpdateQueueStatus,
		fmt.Sprintf("Updated queue #%d status to %s", entry.QueueNumber, status),
	))

	return nil
}

func (u *queueUsecase) Delete(ctx context.Context, id int64) error {
	db := u.db.WithContext(ctx)

	entry, err := u.queueRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find queue entry by ID: %+v", err)
		return err
	}
	if entry == nil {
		return ErrQueueEntryNotFound
	}

	rows, err := u.queueRepo.Delete(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete queue entry: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrQueueEntryNotFound
	}

	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionDeleteQueue,
		fmt.Sprintf("Deleted queue entry #%d", entry.QueueNumber),
	))

	return nil
}

// CallNext claims the lowest waiting number for today and marks it called.
// Concurrent callers never receive the same entry.
func (u *queueUsecase) CallNext(ctx context.Context, req *dto.CallNextQueueRequest) (*dto.QueueTicketResponse, error) {
	db := u.db.WithContext(ctx)
	today := u.clock.Today()

	doctorID, err := u.softResolveDoctor(db, req.DoctorID)
	if err != nil {
		return nil, err
	}

	tx := db.Begin()
	defer tx.Rollback()

	entry, err := u.queueRepo.LockNextWaiting(tx, today, doctorID)
	if err != nil {
		u.log.Warnf("Failed to lock next waiting entry: %+v", err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrNoWaitingEntries
	}

	if _, err := u.queueRepo.UpdateStatus(tx, entry.ID, entity.QueueStatusCalled); err != nil {
		u.log.Warnf("Failed to mark queue entry called: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Called queue number %d", entry.QueueNumber)
	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionCallNextQueue,
		fmt.Sprintf("Called queue #%d", entry.QueueNumber),
	))

	return &dto.QueueTicketResponse{
		QueueID:     entry.ID,
		QueueNumber: entry.QueueNumber,
	}, nil
}

func (u *queueUsecase) GetStatistics(ctx context.Context) (*entity.QueueStats, error) {
	stats, err := u.queueRepo.Statistics(u.db.WithContext(ctx), u.clock.Today())
	if err != nil {
		u.log.Warnf("Failed to get queue statistics: %+v", err)
		return nil, err
	}

	return stats, nil
}

func (u *queueUsecase) resolvePatient(db *gorm.DB, ref int64) (int64, error) {
	patientID, ok, err := u.resolver.ResolvePatientID(db, ref)
	if err != nil {
		u.log.Warnf("Failed to resolve patient %d: %+v", ref, err)
		return 0, err
	}
	if !ok {
		return 0, ErrPatientProfileIncomplete
	}
	return patientID, nil
}

func (u *queueUsecase) resolveDoctor(db *gorm.DB, ref int64) (int64, error) {
	doctorID, ok, err := u.resolver.ResolveDoctorID(db, ref)
	if err != nil {
		u.log.Warnf("Failed to resolve doctor %d: %+v", ref, err)
		return 0, err
	}
	if !ok {
		return 0, ErrDoctorNotFound
	}
	return doctorID, nil
}

// softResolveDoctor maps a doctor filter the way resolveDoctor does, but an
// unknown reference is kept as is so the filter simply matches nothing.
func (u *queueUsecase) softResolveDoctor(db *gorm.DB, ref *int64) (*int64, error) {
	if ref == nil {
		return nil, nil
	}

	doctorID, ok, err := u.resolver.ResolveDoctorID(db, *ref)
	if err != nil {
		u.log.Warnf("Failed to resolve doctor %d: %+v", *ref, err)
		return nil, err
	}
	if !ok {
		doctorID = *ref
	}
	return &doctorID, nil
}
