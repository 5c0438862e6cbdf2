package repository

import (
	"errors"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type roleRepository struct{}

func NewRoleRepository() domainRepo.RoleRepository {
	return &roleRepository{}
}

func (r *roleRepository) FindDoctorByUserID(db *gorm.DB, userID int64) (*entity.Doctor, error) {
	var doctor entity.Doctor
	return findOne(db.Where("user_id = ?", userID), &doctor)
}

func (r *roleRepository) FindDoctorByID(db *gorm.DB, doctorID int64) (*entity.Doctor, error) {
	var doctor entity.Doctor
	return findOne(db.Where("doctor_id = ?", doctorID), &doctor)
}

func (r *roleRepository) FindSecretaryByUserID(db *gorm.DB, userID int64) (*entity.Secretary, error) {
	var secretary entity.Secretary
	return findOne(db.Where("user_id = ?", userID), &secretary)
}

func (r *roleRepository) FindReceptionistByUserID(db *gorm.DB, userID int64) (*entity.Receptionist, error) {
	var receptionist entity.Receptionist
	return findOne(db.Where("user_id = ?", userID), &receptionist)
}

// findOne runs First and maps gorm.ErrRecordNotFound to (nil, nil).
func findOne[T any](query *gorm.DB, dest *T) (*T, error) {
	if err := query.First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dest, nil
}
