package handler

import (
	"errors"
	"net/http"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	validator       *validator.CustomValidator
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, validator *validator.CustomValidator) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		validator:       validator,
	}
}

// Handle dispatches /audit-logs on the "operation" value
func (h *AuditLogHandler) Handle(w http.ResponseWriter, r *http.Request) {
	operation, payload, err := readOperation(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	switch operation {
	case "getAll":
		h.getAll(w, r, payload)
	case "getStatistics":
		h.getStatistics(w, r)
	case "getUsers":
		h.getUsers(w, r)
	case "clearOldLogs":
		h.clearOldLogs(w, r, payload)
	case "export":
		h.export(w, r, payload)
	default:
		response.BadRequest(w, "Invalid Operation")
	}
}

func (h *AuditLogHandler) bind(w http.ResponseWriter, payload []byte, req interface{}) bool {
	if err := decodePayload(payload, req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func (h *AuditLogHandler) getAll(w http.ResponseWriter, r *http.Request, payload []byte) {
	var req dto.AuditLogListRequest
	if !h.bind(w, payload, &req) {
		return
	}

	logs, err := h.auditLogUsecase.GetAll(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}

func (h *AuditLogHandler) getStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.auditLogUsecase.GetStatistics(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to get statistics")
		return
	}

	response.Success(w, http.StatusOK, "Statistics retrieved successfully", stats)
}

func (h *AuditLogHandler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.auditLogUsecase.GetUsers(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *AuditLogHandler) clearOldLogs(w http.ResponseWriter, r *http.Request, payload []byte) {
	var req dto.ClearOldLogsRequest
	if !h.bind(w, payload, &req) {
		return
	}

	result, err := h.auditLogUsecase.ClearOldLogs(r.Context(), req.Days)
	if err != nil {
		h.writeError(w, err, "Failed to clear old logs")
		return
	}

	response.Success(w, http.StatusOK, "Old logs cleared successfully", result)
}

func (h *AuditLogHandler) export(w http.ResponseWriter, r *http.Request, payload []byte) {
	var req dto.ExportAuditLogsRequest
	if !h.bind(w, payload, &req) {
		return
	}

	result, err := h.auditLogUsecase.Export(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to export audit logs")
		return
	}

	if result.Format == usecase.ExportFormatXLSX {
		response.File(w, result.ContentType, result.Filename, result.Content)
		return
	}

	response.Success(w, http.StatusOK, "Audit logs exported successfully", result)
}

func (h *AuditLogHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateFormat), errors.Is(err, usecase.ErrInvalidExportFormat):
		response.BadRequest(w, capitalize(err.Error()))
	default:
		response.InternalServerError(w, fallback)
	}
}
