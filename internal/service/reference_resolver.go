package service

import (
	"hospital-backend/internal/domain/repository"

	"gorm.io/gorm"
)

// ReferenceResolver maps a client-supplied doctor or patient reference, which
// may be either a users.user_id or the role table's own primary key, onto the
// role table id. The user id interpretation wins when both would match.
type ReferenceResolver interface {
	// ResolveDoctorID returns ok=false when ref matches no doctor either way.
	ResolveDoctorID(db *gorm.DB, ref int64) (id int64, ok bool, err error)
	// ResolvePatientID returns ok=false when ref matches no patient either way.
	ResolvePatientID(db *gorm.DB, ref int64) (id int64, ok bool, err error)
}

type referenceResolver struct {
	roleRepo    repository.RoleRepository
	patientRepo repository.PatientRepository
}

func NewReferenceResolver(roleRepo repository.RoleRepository, patientRepo repository.PatientRepository) ReferenceResolver {
	return &referenceResolver{
		roleRepo:    roleRepo,
		patientRepo: patientRepo,
	}
}

func (r *referenceResolver) ResolveDoctorID(db *gorm.DB, ref int64) (int64, bool, error) {
	doctor, err := r.roleRepo.FindDoctorByUserID(db, ref)
	if err != nil {
		return 0, false, err
	}
	if doctor != nil {
		return doctor.ID, true, nil
	}

	doctor, err = r.roleRepo.FindDoctorByID(db, ref)
	if err != nil {
		return 0, false, err
	}
	if doctor == nil {
		return 0, false, nil
	}
	return doctor.ID, true, nil
}

func (r *referenceResolver) ResolvePatientID(db *gorm.DB, ref int64) (int64, bool, error) {
	patient, err := r.patientRepo.FindByUserID(db, ref)
	if err != nil {
		return 0, false, err
	}
	if patient != nil {
		return patient.ID, true, nil
	}

	patient, err = r.patientRepo.FindByID(db, ref)
	if err != nil {
		return 0, false, err
	}
	if patient == nil {
		return 0, false, nil
	}
	return patient.ID, true, nil
}
