package repository

import (
	"time"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Omit("User").Create(log).Error
}

func (r *auditLogRepository) FindAll(db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	query := db.Model(&entity.AuditLog{})

	if filter.UserID != nil {
		query = query.Where("system_logs.user_id = ?", *filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("system_logs.action ILIKE ?", "%"+filter.Action+"%")
	}
	if filter.FromDate != nil {
		query = query.Where("system_logs.created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("system_logs.created_at < ?", filter.ToDate.AddDate(0, 0, 1))
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("system_logs.description ILIKE ? OR system_logs.action ILIKE ?", like, like)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var logs []entity.AuditLog
	if err := query.Preload("User.Profile").Order("system_logs.created_at DESC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *auditLogRepository) Statistics(db *gorm.DB, todayStart time.Time) (*entity.AuditLogStats, error) {
	var stats entity.AuditLogStats
	err := db.Model(&entity.AuditLog{}).Select(
		`COUNT(*) AS total,
		COUNT(CASE WHEN created_at >= ? THEN 1 END) AS today,
		COUNT(DISTINCT CASE WHEN created_at >= ? THEN user_id END) AS active_users,
		COUNT(CASE WHEN action ILIKE '%failed%' OR action ILIKE '%error%' OR description ILIKE '%failed%' OR description ILIKE '%error%' THEN 1 END) AS failed`,
		todayStart, todayStart,
	).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *auditLogRepository) FindActors(db *gorm.DB) ([]entity.AuditActor, error) {
	var actors []entity.AuditActor
	err := db.Table("system_logs").
		Distinct("users.user_id", "users.username", "user_profiles.first_name", "user_profiles.last_name").
		Joins("JOIN users ON users.user_id = system_logs.user_id").
		Joins("LEFT JOIN user_profiles ON user_profiles.user_id = users.user_id").
		Order("users.username ASC").
		Scan(&actors).Error
	if err != nil {
		return nil, err
	}
	return actors, nil
}

func (r *auditLogRepository) DeleteOlderThan(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Where("created_at < ?", cutoff).Delete(&entity.AuditLog{})
	return result.RowsAffected, result.Error
}
