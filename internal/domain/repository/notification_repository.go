package repository

import (
	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	FindUnreadByUserID(db *gorm.DB, userID int64) ([]entity.Notification, error)
}
