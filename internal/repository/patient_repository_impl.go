package repository

import (
	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit("CreatedAt").Save(patient).Error
}

func (r *patientRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("patient_id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	return findOne(db.Where("patient_id = ?", id), &patient)
}

func (r *patientRepository) FindByUserID(db *gorm.DB, userID int64) (*entity.Patient, error) {
	var patient entity.Patient
	return findOne(db.Where("user_id = ?", userID), &patient)
}

func (r *patientRepository) FindAll(db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, error) {
	query := db.Model(&entity.Patient{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR patient_code ILIKE ? OR email ILIKE ?", like, like, like, like)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []entity.Patient
	err := query.
		Order("last_name ASC, first_name ASC").
		Scopes(paginate(filter.Page, filter.Limit)).
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *patientRepository) CodeExists(db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.Model(&entity.Patient{}).Where("patient_code = ?", code).Count(&count).Error
	return count > 0, err
}

// paginate applies LIMIT/OFFSET for a 1-based page.
func paginate(page, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Limit(limit).Offset((page - 1) * limit)
	}
}
