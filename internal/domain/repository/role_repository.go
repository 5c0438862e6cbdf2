package repository

import (
	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// RoleRepository reads the per-role extension rows joined 1:1 to users.
type RoleRepository interface {
	FindDoctorByUserID(db *gorm.DB, userID int64) (*entity.Doctor, error)
	FindDoctorByID(db *gorm.DB, doctorID int64) (*entity.Doctor, error)
	FindSecretaryByUserID(db *gorm.DB, userID int64) (*entity.Secretary, error)
	FindReceptionistByUserID(db *gorm.DB, userID int64) (*entity.Receptionist, error)
}
