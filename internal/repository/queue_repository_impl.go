package repository

import (
	"time"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type queueRepository struct{}

func NewQueueRepository() domainRepo.QueueRepository {
	return &queueRepository{}
}

func (r *queueRepository) Create(db *gorm.DB, entry *entity.QueueEntry) error {
	return db.Omit("Patient", "Doctor").Create(entry).Error
}

func (r *queueRepository) Update(db *gorm.DB, entry *entity.QueueEntry) error {
	return db.Omit("Patient", "Doctor", "CreatedAt").Save(entry).Error
}

func (r *queueRepository) UpdateStatus(db *gorm.DB, id int64, status entity.QueueStatus) (int64, error) {
	result := db.Model(&entity.QueueEntry{}).
		Where("queue_id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *queueRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("queue_id = ?", id).Delete(&entity.QueueEntry{})
	return result.RowsAffected, result.Error
}

func (r *queueRepository) FindByID(db *gorm.DB, id int64) (*entity.QueueEntry, error) {
	var entry entity.QueueEntry
	return findOne(
		db.Preload("Patient").Preload("Doctor.User.Profile").Where("queue_id = ?", id),
		&entry,
	)
}

func (r *queueRepository) FindAll(db *gorm.DB, filter *entity.QueueFilter) ([]entity.QueueEntry, int64, error) {
	query := db.Model(&entity.QueueEntry{}).
		Joins("LEFT JOIN patients ON patients.patient_id = queue.patient_id").
		Where("queue.queue_date = ?", filter.QueueDate.Format(dateLayout))

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("patients.first_name ILIKE ? OR patients.last_name ILIKE ? OR patients.patient_code ILIKE ?", like, like, like)
	}
	if filter.Status != "" {
		query = query.Where("queue.status = ?", filter.Status)
	}
	if filter.DoctorID != nil {
		query = query.Where("queue.doctor_id = ?", *filter.DoctorID)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []entity.QueueEntry
	err := query.
		Select("queue.*").
		Preload("Patient").Preload("Doctor.User.Profile").
		Order("queue.queue_number ASC").
		Scopes(paginate(filter.Page, filter.Limit)).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *queueRepository) FindByDate(db *gorm.DB, date time.Time, statuses ...entity.QueueStatus) ([]entity.QueueEntry, error) {
	query := db.Preload("Patient").Preload("Doctor.User.Profile").
		Where("queue_date = ?", date.Format(dateLayout))
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var entries []entity.QueueEntry
	if err := query.Order("queue_number ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *queueRepository) MaxQueueNumber(db *gorm.DB, date time.Time) (int, error) {
	var maxNumber int
	err := db.Model(&entity.QueueEntry{}).
		Select("COALESCE(MAX(queue_number), 0)").
		Where("queue_date = ?", date.Format(dateLayout)).
		Scan(&maxNumber).Error
	return maxNumber, err
}

// LockNextWaiting uses SKIP LOCKED so concurrent callers each claim a
// different ticket instead of blocking on the same row.
func (r *queueRepository) LockNextWaiting(db *gorm.DB, date time.Time, doctorID *int64) (*entity.QueueEntry, error) {
	query := db.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("queue_date = ? AND status = ?", date.Format(dateLayout), entity.QueueStatusWaiting)
	if doctorID != nil {
		query = query.Where("doctor_id = ?", *doctorID)
	}

	var entry entity.QueueEntry
	return findOne(query.Order("queue_number ASC"), &entry)
}

func (r *queueRepository) Statistics(db *gorm.DB, date time.Time) (*entity.QueueStats, error) {
	var stats entity.QueueStats
	err := db.Model(&entity.QueueEntry{}).Select(
		`COUNT(*) AS total_today,
		COUNT(CASE WHEN status = ? THEN 1 END) AS waiting,
		COUNT(CASE WHEN status = ? THEN 1 END) AS called,
		COUNT(CASE WHEN status = ? THEN 1 END) AS done,
		COUNT(CASE WHEN status = ? THEN 1 END) AS skipped`,
		entity.QueueStatusWaiting,
		entity.QueueStatusCalled,
		entity.QueueStatusDone,
		entity.QueueStatusSkipped,
	).
		Where("queue_date = ?", date.Format(dateLayout)).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
