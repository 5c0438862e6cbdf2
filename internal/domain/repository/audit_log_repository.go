package repository

import (
	"time"

	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error)
	Statistics(db *gorm.DB, todayStart time.Time) (*entity.AuditLogStats, error)
	FindActors(db *gorm.DB) ([]entity.AuditActor, error)
	DeleteOlderThan(db *gorm.DB, cutoff time.Time) (int64, error)
}
