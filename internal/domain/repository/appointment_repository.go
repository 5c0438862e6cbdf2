package repository

import (
	"time"

	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	Update(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) error
	Delete(db *gorm.DB, id int64) (int64, error)
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Appointment, error)
	// FindActiveInSlot returns the non-cancelled appointment holding the slot,
	// ignoring excludeID (0 excludes nothing).
	FindActiveInSlot(db *gorm.DB, doctorID int64, date time.Time, timeOfDay string, excludeID int64) (*entity.Appointment, error)
	Statistics(db *gorm.DB, doctorID *int64, today time.Time) (*entity.AppointmentStats, error)
}
