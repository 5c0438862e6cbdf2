package repository

import (
	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id int64) (int64, error)
	FindByID(db *gorm.DB, id int64) (*entity.Patient, error)
	FindByUserID(db *gorm.DB, userID int64) (*entity.Patient, error)
	FindAll(db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, error)
	CodeExists(db *gorm.DB, code string) (bool, error)
}
