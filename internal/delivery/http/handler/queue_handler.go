package handler

import (
	"errors"
	"net/http"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"
)

type QueueHandler struct {
	queueUsecase usecase.QueueUsecase
	validator    *validator.CustomValidator
}

func NewQueueHandler(queueUsecase usecase.QueueUsecase, validator *validator.CustomValidator) *QueueHandler {
	return &QueueHandler{
		queueUsecase: queueUsecase,
		validator:    validator,
	}
}

// Handle dispatches POST /queue on the body's "action" field
// @Summary Walk-in queue operations
// @Tags Queue
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /queue [post]
func (h *QueueHandler) Handle(w http.ResponseWriter, r *http.Request) {
	action, body, err := readAction(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	switch action {
	case "getAll":
		h.getAll(w, r, body)
	case "getById":
		h.getByID(w, r, body)
	case "getActive":
		h.getActive(w, r)
	case "getByDate":
		h.getByDate(w, r, body)
	case "create":
		h.create(w, r, body)
	case "update":
		h.update(w, r, body)
	case "delete":
		h.delete(w, r, body)
	case "updateStatus":
		h.updateStatus(w, r, body)
	case "callNext":
		h.callNext(w, r, body)
	case "getStatistics":
		h.getStatistics(w, r)
	default:
		response.BadRequest(w, "Invalid action")
	}
}

func (h *QueueHandler) bind(w http.ResponseWriter, body []byte, req interface{}) bool {
	if err := decodePayload(body, req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func (h *QueueHandler) getAll(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.QueueListRequest
	if !h.bind(w, body, &req) {
		return
	}

	entries, meta, err := h.queueUsecase.GetAll(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to get queue entries")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Queue entries retrieved successfully", entries, meta)
}

func (h *QueueHandler) getByID(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.QueueIDRequest
	if !h.bind(w, body, &req) {
		return
	}

	entry, err := h.queueUsecase.GetByID(r.Context(), req.QueueID)
	if err != nil {
		h.writeError(w, err, "Failed to get queue entry")
		return
	}

	response.Success(w, http.StatusOK, "Queue entry retrieved successfully", entry)
}

func (h *QueueHandler) getActive(w http.ResponseWriter, r *http.Request) {
	entries, err := h.queueUsecase.GetActive(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to get active queue entries")
		return
	}

	response.Success(w, http.StatusOK, "Active queue entries retrieved successfully", entries)
}

func (h *QueueHandler) getByDate(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.QueueByDateRequest
	if !h.bind(w, body, &req) {
		return
	}

	entries, err := h.queueUsecase.GetByDate(r.Context(), req.QueueDate)
	if err != nil {
		h.writeError(w, err, "Failed to get queue entries")
		return
	}

	response.Success(w, http.StatusOK, "Queue entries retrieved successfully", entries)
}

func (h *QueueHandler) create(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.CreateQueueRequest
	if !h.bind(w, body, &req) {
		return
	}

	ticket, err := h.queueUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create queue entry")
		return
	}

	response.Success(w, http.StatusCreated, "Queue entry created successfully", ticket)
}

func (h *QueueHandler) update(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.UpdateQueueRequest
	if !h.bind(w, body, &req) {
		return
	}

	if err := h.queueUsecase.Update(r.Context(), &req); err != nil {
		h.writeError(w, err, "Failed to update queue entry")
		return
	}

	response.Success(w, http.StatusOK, "Queue entry updated successfully", nil)
}

func (h *QueueHandler) delete(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.QueueIDRequest
	if !h.bind(w, body, &req) {
		return
	}

	if err := h.queueUsecase.Delete(r.Context(), req.QueueID); err != nil {
		h.writeError(w, err, "Failed to delete queue entry")
		return
	}

	response.Success(w, http.StatusOK, "Queue entry deleted successfully", nil)
}

func (h *QueueHandler) updateStatus(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.UpdateQueueStatusRequest
	if !h.bind(w, body, &req) {
		return
	}

	if err := h.queueUsecase.UpdateStatus(r.Context(), &req); err != nil {
		h.writeError(w, err, "Failed to update queue status")
		return
	}

	response.Success(w, http.StatusOK, "Queue status updated successfully", nil)
}

func (h *QueueHandler) callNext(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.CallNextQueueRequest
	if !h.bind(w, body, &req) {
		return
	}

	ticket, err := h.queueUsecase.CallNext(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to call next queue")
		return
	}

	response.Success(w, http.StatusOK, "Next queue called successfully", ticket)
}

func (h *QueueHandler) getStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.queueUsecase.GetStatistics(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to get statistics")
		return
	}

	response.Success(w, http.StatusOK, "Statistics retrieved successfully", stats)
}

func (h *QueueHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidQueueStatus),
		errors.Is(err, usecase.ErrInvalidDateFormat):
		response.BadRequest(w, capitalize(err.Error()))
	case errors.Is(err, usecase.ErrQueueEntryNotFound),
		errors.Is(err, usecase.ErrNoWaitingEntries),
		errors.Is(err, usecase.ErrAppointmentNotFound),
		errors.Is(err, usecase.ErrDoctorNotFound),
		errors.Is(err, usecase.ErrPatientProfileIncomplete):
		response.NotFound(w, capitalize(err.Error()))
	case errors.Is(err, usecase.ErrQueueNumberConflict):
		response.Conflict(w, capitalize(err.Error()))
	default:
		response.InternalServerError(w, fallback)
	}
}
