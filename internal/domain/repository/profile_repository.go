package repository

import (
	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(db *gorm.DB, profile *entity.UserProfile) error
	FindByUserID(db *gorm.DB, userID int64) (*entity.UserProfile, error)
}
