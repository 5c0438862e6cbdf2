package converter

import (
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	response := &dto.AuditLogResponse{
		LogID:       log.ID,
		UserID:      log.UserID,
		Action:      log.Action,
		Description: log.Description,
		IPAddress:   log.IPAddress,
		CreatedAt:   log.CreatedAt,
	}

	if log.User != nil {
		response.Username = log.User.Username
		response.FullName = log.User.Profile.FullName()
	}

	return response
}

// AuditLogsToResponses converts a slice of AuditLog entities to slice of AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}

// AuditActorsToResponses converts a slice of AuditActor to slice of AuditActorResponse DTOs
func AuditActorsToResponses(actors []entity.AuditActor) []dto.AuditActorResponse {
	responses := make([]dto.AuditActorResponse, len(actors))
	for i, actor := range actors {
		profile := entity.UserProfile{FirstName: actor.FirstName, LastName: actor.LastName}
		responses[i] = dto.AuditActorResponse{
			UserID:   actor.UserID,
			Username: actor.Username,
			FullName: profile.FullName(),
		}
	}
	return responses
}
