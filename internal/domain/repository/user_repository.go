package repository

import (
	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByIdentifier(db *gorm.DB, identifier string) (*entity.User, error)
	FindByID(db *gorm.DB, id int64) (*entity.User, error)
	UsernameExists(db *gorm.DB, username string) (bool, error)
}
