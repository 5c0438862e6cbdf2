package converter

import (
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
)

// QueueEntryToResponse converts a QueueEntry entity to QueueEntryResponse DTO
func QueueEntryToResponse(entry *entity.QueueEntry) *dto.QueueEntryResponse {
	if entry == nil {
		return nil
	}

	response := &dto.QueueEntryResponse{
		QueueID:       entry.ID,
		QueueNumber:   entry.QueueNumber,
		PatientID:     entry.PatientID,
		DoctorID:      entry.DoctorID,
		AppointmentID: entry.AppointmentID,
		QueueDate:     entry.QueueDate.Format(dateLayout),
		Status:        string(entry.Status),
		Notes:         entry.Notes,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}

	if entry.Patient != nil {
		response.PatientName = entry.Patient.FullName()
		response.PatientCode = entry.Patient.PatientCode
	}
	if entry.Doctor != nil {
		response.DoctorName = doctorName(entry.Doctor)
	}

	return response
}

// QueueEntriesToResponses converts a slice of QueueEntry entities to slice of QueueEntryResponse DTOs
func QueueEntriesToResponses(entries []entity.QueueEntry) []dto.QueueEntryResponse {
	responses := make([]dto.QueueEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *QueueEntryToResponse(&entries[i])
	}
	return responses
}
