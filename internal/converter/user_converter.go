package converter

import (
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// ProfileToResponse converts a UserProfile entity to ProfileResponse DTO.
// A nil profile yields the zero value, which encodes as {}.
func ProfileToResponse(profile *entity.UserProfile) dto.ProfileResponse {
	if profile == nil {
		return dto.ProfileResponse{}
	}

	response := dto.ProfileResponse{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Gender:    profile.Gender,
		Address:   profile.Address,
		Phone:     profile.Phone,
	}
	if profile.BirthDate != nil {
		response.BirthDate = profile.BirthDate.Format(dateLayout)
	}
	return response
}

// UserToSessionResponse converts a User entity and its role extension to
// SessionUserResponse DTO
func UserToSessionResponse(user *entity.User, extra interface{}) dto.SessionUserResponse {
	if extra == nil {
		extra = dto.EmptyObject{}
	}

	return dto.SessionUserResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role.String(),
		Status:   string(user.Status),
		Profile:  ProfileToResponse(user.Profile),
		Extra:    extra,
	}
}

func DoctorToExtraResponse(doctor *entity.Doctor) *dto.DoctorExtraResponse {
	return &dto.DoctorExtraResponse{
		DoctorID:       doctor.ID,
		Specialization: doctor.Specialization,
		LicenseNo:      doctor.LicenseNo,
		DepartmentID:   doctor.DepartmentID,
	}
}

func SecretaryToExtraResponse(secretary *entity.Secretary) *dto.SecretaryExtraResponse {
	return &dto.SecretaryExtraResponse{
		SecretaryID:      secretary.ID,
		AssignedDoctorID: secretary.AssignedDoctorID,
	}
}

func ReceptionistToExtraResponse(receptionist *entity.Receptionist) *dto.ReceptionistExtraResponse {
	return &dto.ReceptionistExtraResponse{
		ReceptionistID: receptionist.ID,
	}
}

func PatientToExtraResponse(patient *entity.Patient) *dto.PatientExtraResponse {
	return &dto.PatientExtraResponse{
		PatientID:        patient.ID,
		PatientCode:      patient.PatientCode,
		BloodType:        patient.BloodType,
		EmergencyContact: patient.EmergencyContactName,
	}
}

// NotificationsToResponses converts a slice of Notification entities to slice of NotificationResponse DTOs
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = dto.NotificationResponse{
			NotificationID: n.ID,
			Title:          n.Title,
			Message:        n.Message,
			Type:           n.Type,
			IsRead:         n.IsRead,
			CreatedAt:      n.CreatedAt,
		}
	}
	return responses
}
