package repository

import (
	"time"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Doctor").Create(appointment).Error
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Doctor", "CreatedAt").Save(appointment).Error
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).
		Where("appointment_id = ?", id).
		Update("status", status).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("appointment_id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	return findOne(
		db.Preload("Patient").Preload("Doctor.User.Profile").Where("appointment_id = ?", id),
		&appointment,
	)
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	query := db.Model(&entity.Appointment{}).
		Joins("LEFT JOIN patients ON patients.patient_id = appointments.patient_id").
		Joins("LEFT JOIN doctors ON doctors.doctor_id = appointments.doctor_id").
		Joins("LEFT JOIN user_profiles doctor_profiles ON doctor_profiles.user_id = doctors.user_id")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"patients.first_name ILIKE ? OR patients.last_name ILIKE ? OR doctor_profiles.first_name ILIKE ? OR doctor_profiles.last_name ILIKE ? OR appointments.reason ILIKE ?",
			like, like, like, like, like,
		)
	}
	if filter.Status != "" {
		query = query.Where("appointments.status = ?", filter.Status)
	}
	if filter.PatientID != nil {
		query = query.Where("appointments.patient_id = ?", *filter.PatientID)
	}
	if filter.DoctorID != nil {
		query = query.Where("appointments.doctor_id = ?", *filter.DoctorID)
	}
	if filter.DateFilter != nil {
		query = query.Where("appointments.appointment_date = ?", filter.DateFilter.Format(dateLayout))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appointments []entity.Appointment
	err := query.
		Select("appointments.*").
		Preload("Patient").Preload("Doctor.User.Profile").
		Order("appointments.appointment_date DESC, appointments.appointment_time DESC").
		Scopes(paginate(filter.Page, filter.Limit)).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User.Profile").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindActiveInSlot(db *gorm.DB, doctorID int64, date time.Time, timeOfDay string, excludeID int64) (*entity.Appointment, error) {
	query := db.Where(
		"doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> ?",
		doctorID, date.Format(dateLayout), timeOfDay, entity.AppointmentStatusCancelled,
	)
	if excludeID != 0 {
		query = query.Where("appointment_id <> ?", excludeID)
	}

	var appointment entity.Appointment
	return findOne(query, &appointment)
}

func (r *appointmentRepository) Statistics(db *gorm.DB, doctorID *int64, today time.Time) (*entity.AppointmentStats, error) {
	query := db.Model(&entity.Appointment{}).Select(
		`COUNT(*) AS total,
		COUNT(CASE WHEN appointment_date = ? THEN 1 END) AS today,
		COUNT(CASE WHEN status = ? THEN 1 END) AS pending,
		COUNT(CASE WHEN status = ? THEN 1 END) AS confirmed,
		COUNT(CASE WHEN status = ? THEN 1 END) AS completed,
		COUNT(CASE WHEN status = ? THEN 1 END) AS cancelled`,
		today.Format(dateLayout),
		entity.AppointmentStatusPending,
		entity.AppointmentStatusConfirmed,
		entity.AppointmentStatusCompleted,
		entity.AppointmentStatusCancelled,
	)
	if doctorID != nil {
		query = query.Where("doctor_id = ?", *doctorID)
	}

	var stats entity.AppointmentStats
	if err := query.Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
