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
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrDoctorNotFound           = errors.New("doctor not found")
	ErrPatientProfileIncomplete = errors.New("patient profile not found, please complete your patient registration first")
	ErrSlotTaken                = errors.New("this time slot is already booked for the selected doctor")
	ErrInvalidStatus            = errors.New("invalid status value")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
)

const activeSlotConstraint = "uniq_appointments_active_slot"

type AppointmentUsecase interface {
	GetAll(ctx context.Context, req *dto.AppointmentListRequest) ([]dto.AppointmentResponse, *response.Meta, error)
	GetByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	GetByPatient(ctx context.Context, patientRef int64) ([]dto.AppointmentResponse, error)
	GetByDoctor(ctx context.Context, doctorRef int64) ([]dto.AppointmentResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentCreatedResponse, error)
	Update(ctx context.Context, req *dto.UpdateAppointmentRequest) error
	UpdateStatus(ctx context.Context, req *dto.UpdateAppointmentStatusRequest) error
	Delete(ctx context.Context, id int64) error
	GetStatistics(ctx context.Context, req *dto.AppointmentStatisticsRequest) (*entity.AppointmentStats, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	resolver        service.ReferenceResolver
	audit           service.AuditService
	clock           clock.Clock
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	resolver service.ReferenceResolver,
	audit service.AuditService,
	clk clock.Clock,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		resolver:        resolver,
		audit:           audit,
		clock:           clk,
	}
}

func (u *appointmentUsecase) GetAll(ctx context.Context, req *dto.AppointmentListRequest) ([]dto.AppointmentResponse, *response.Meta, error) {
	db := u.db.WithContext(ctx)
	page, limit := normalizePage(req.Page, req.Limit)

	filter := &entity.AppointmentFilter{
		Search: req.Search,
		Status: req.Status,
		Page:   page,
		Limit:  limit,
	}

	// Unresolvable references filter on the raw value and simply match nothing
	if req.PatientID != nil {
		patientID, err := u.softResolvePatient(db, *req.PatientID)
		if err != nil {
			return nil, nil, err
		}
		filter.PatientID = &patientID
	}
	if req.DoctorID != nil {
		doctorID, err := u.softResolveDoctor(db, *req.DoctorID)
		if err != nil {
			return nil, nil, err
		}
		filter.DoctorID = &doctorID
	}
	if req.DateFilter != "" {
		date, err := parseDate(req.DateFilter, u.clock.Now().Location())
		if err != nil {
			return nil, nil, err
		}
		filter.DateFilter = &date
	}

	appointments, total, err := u.appointmentRepo.FindAll(db, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, nil, err
	}

	return converter.AppointmentsToResponses(appointments), response.NewMeta(page, limit, total), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByPatient(ctx context.Context, patientRef int64) ([]dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	patientID, err := u.softResolvePatient(db, patientRef)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments by patient: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetByDoctor(ctx context.Context, doctorRef int64) ([]dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	doctorID, err := u.softResolveDoctor(db, doctorRef)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments by doctor: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentCreatedResponse, error) {
	db := u.db.WithContext(ctx)

	date, err := parseDate(req.AppointmentDate, u.clock.Now().Location())
	if err != nil {
		return nil, err
	}
	timeOfDay, err := parseClock(req.AppointmentTime)
	if err != nil {
		return nil, err
	}

	status := entity.AppointmentStatusPending
	if req.Status != "" {
		status = entity.AppointmentStatus(req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
	}

	patientID, err := u.resolvePatient(db, req.PatientID)
	if err != nil {
		return nil, err
	}
	doctorID, err := u.resolveDoctor(db, req.DoctorID)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
		Reason:          req.Reason,
		Status:          status,
		Notes:           req.Notes,
	}

	tx := db.Begin()
	defer tx.Rollback()

	if status != entity.AppointmentStatusCancelled {
		if err := u.ensureSlotFree(tx, appointment); err != nil {
			return nil, err
		}
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, activeSlotConstraint) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment %d created for doctor %d at %s %s", appointment.ID, doctorID, req.AppointmentDate, timeOfDay)
	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionCreateAppointment,
		fmt.Sprintf("Created appointment #%d for patient ID: %d", appointment.ID, patientID),
	))

	return &dto.AppointmentCreatedResponse{AppointmentID: appointment.ID}, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, req *dto.UpdateAppointmentRequest) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	appointment.Patient = nil
	appointment.Doctor = nil

	if req.PatientID != nil {
		if appointment.PatientID, err = u.resolvePatient(db, *req.PatientID); err != nil {
			return err
		}
	}
	if req.DoctorID != nil {
		if appointment.DoctorID, err = u.resolveDoctor(db, *req.DoctorID); err != nil {
			return err
		}
	}
	if req.AppointmentDate != nil {
		if appointment.AppointmentDate, err = parseDate(*req.AppointmentDate, u.clock.Now().Location()); err != nil {
			return err
		}
	}
	if req.AppointmentTime != nil {
		if appointment.AppointmentTime, err = parseClock(*req.AppointmentTime); err != nil {
			return err
		}
	}
	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}
	if req.Status != nil {
		next := entity.AppointmentStatus(*req.Status)
		if !next.IsValid() {
			return ErrInvalidStatus
		}
		if !appointment.Status.CanTransitionTo(next) {
			return ErrInvalidStatusTransition
		}
		appointment.Status = next
	}

	tx := db.Begin()
	defer tx.Rollback()

	if appointment.Status != entity.AppointmentStatusCancelled {
		if err := u.ensureSlotFree(tx, appointment); err != nil {
			return err
		}
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, activeSlotConstraint) {
			return ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionUpdateAppointment,
		fmt.Sprintf("Updated appointment #%d", appointment.ID),
	))

	return nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, req *dto.UpdateAppointmentStatusRequest) error {
	db := u.db.WithContext(ctx)

	next := entity.AppointmentStatus(req.Status)
	if !next.IsValid() {
		return ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByID(db, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if !appointment.Status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}

	if err := u.appointmentRepo.UpdateStatus(db, appointment.ID, next); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return err
	}

	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionUpdateAppointmentStatus,
		fmt.Sprintf("Updated appointment #%d status to %s", appointment.ID, next),
	))

	return nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int64) error {
	rows, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionDeleteAppointment,
		fmt.Sprintf("Deleted appointment #%d", id),
	))

	return nil
}

func (u *appointmentUsecase) GetStatistics(ctx context.Context, req *dto.AppointmentStatisticsRequest) (*entity.AppointmentStats, error) {
	db := u.db.WithContext(ctx)

	var doctorID *int64
	if req.DoctorID != nil {
		resolved, err := u.softResolveDoctor(db, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		doctorID = &resolved
	}

	stats, err := u.appointmentRepo.Statistics(db, doctorID, u.clock.Today())
	if err != nil {
		u.log.Warnf("Failed to get appointment statistics: %+v", err)
		return nil, err
	}

	return stats, nil
}

// ensureSlotFree must run inside the write transaction. excludeID is the
// appointment's own id on update and 0 on create.
func (u *appointmentUsecase) ensureSlotFree(tx *gorm.DB, appointment *entity.Appointment) error {
	existing, err := u.appointmentRepo.FindActiveInSlot(tx, appointment.DoctorID, appointment.AppointmentDate, appointment.AppointmentTime, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to check appointment slot: %+v", err)
		return err
	}
	if existing != nil {
		return ErrSlotTaken
	}
	return nil
}

func (u *appointmentUsecase) resolvePatient(db *gorm.DB, ref int64) (int64, error) {
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

func (u *appointmentUsecase) resolveDoctor(db *gorm.DB, ref int64) (int64, error) {
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

func (u *appointmentUsecase) softResolvePatient(db *gorm.DB, ref int64) (int64, error) {
	patientID, ok, err := u.resolver.ResolvePatientID(db, ref)
	if err != nil {
		u.log.Warnf("Failed to resolve patient %d: %+v", ref, err)
		return 0, err
	}
	if !ok {
		return ref, nil
	}
	return patientID, nil
}

func (u *appointmentUsecase) softResolveDoctor(db *gorm.DB, ref int64) (int64, error) {
	doctorID, ok, err := u.resolver.ResolveDoctorID(db, ref)
	if err != nil {
		u.log.Warnf("Failed to resolve doctor %d: %+v", ref, err)
		return 0, err
	}
	if !ok {
		return ref, nil
	}
	return doctorID, nil
}
