package repository

import (
	"time"

	"hospital-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type QueueRepository interface {
	Create(db *gorm.DB, entry *entity.QueueEntry) error
	Update(db *gorm.DB, entry *entity.QueueEntry) error
	UpdateStatus(db *gorm.DB, id int64, status entity.QueueStatus) (int64, error)
	Delete(db *gorm.DB, id int64) (int64, error)
	FindByID(db *gorm.DB, id int64) (*entity.QueueEntry, error)
	FindAll(db *gorm.DB, filter *entity.QueueFilter) ([]entity.QueueEntry, int64, error)
	FindByDate(db *gorm.DB, date time.Time, statuses ...entity.QueueStatus) ([]entity.QueueEntry, error)
	MaxQueueNumber(db *gorm.DB, date time.Time) (int, error)
	// LockNextWaiting locks the lowest-numbered waiting entry for date.
	// Must run inside a transaction.
	LockNextWaiting(db *gorm.DB, date time.Time, doctorID *int64) (*entity.QueueEntry, error)
	Statistics(db *gorm.DB, date time.Time) (*entity.QueueStats, error)
}
