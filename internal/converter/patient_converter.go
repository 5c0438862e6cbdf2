package converter

import (
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		PatientID:             patient.ID,
		UserID:                patient.UserID,
		PatientCode:           patient.PatientCode,
		FirstName:             patient.FirstName,
		LastName:              patient.LastName,
		MiddleName:            patient.MiddleName,
		DateOfBirth:           patient.DateOfBirth.Format(dateLayout),
		Gender:                patient.Gender,
		PhoneNumber:           patient.PhoneNumber,
		Email:                 patient.Email,
		Address:               patient.Address,
		BloodType:             patient.BloodType,
		EmergencyContactName:  patient.EmergencyContactName,
		EmergencyContactPhone: patient.EmergencyContactPhone,
		IsActive:              patient.IsActive,
		CreatedAt:             patient.CreatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
