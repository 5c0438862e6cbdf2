package handler

import (
	"errors"
	"net/http"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Handle dispatches POST /appointments on the body's "action" field
// @Summary Appointment operations
// @Tags Appointments
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Handle(w http.ResponseWriter, r *http.Request) {
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
	case "getByPatient":
		h.getByPatient(w, r, body)
	case "getByDoctor":
		h.getByDoctor(w, r, body)
	case "create":
		h.create(w, r, body)
	case "update":
		h.update(w, r, body)
	case "delete":
		h.delete(w, r, body)
	case "updateStatus":
		h.updateStatus(w, r, body)
	case "getStatistics":
		h.getStatistics(w, r, body)
	default:
		response.BadRequest(w, "Invalid action")
	}
}

// bind decodes and validates body into req, writing the error response on failure
func (h *AppointmentHandler) bind(w http.ResponseWriter, body []byte, req interface{}) bool {
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

func (h *AppointmentHandler) getAll(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.AppointmentListRequest
	if !h.bind(w, body, &req) {
		return
	}

	appointments, meta, err := h.appointmentUsecase.GetAll(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to get appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments, meta)
}

func (h *AppointmentHandler) getByID(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.AppointmentIDRequest
	if !h.bind(w, body, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), req.AppointmentID)
	if err != nil {
		h.writeError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) getByPatient(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.AppointmentsByPatientRequest
	if !h.bind(w, body, &req) {
		return
	}

	appointments, err := h.appointmentUsecase.GetByPatient(r.Context(), req.PatientID)
	if err != nil {
		h.writeError(w, err, "Failed to get patient appointments")
		return
	}

	response.Success(w, http.StatusOK, "Patient appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) getByDoctor(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.AppointmentsByDoctorRequest
	if !h.bind(w, body, &req) {
		return
	}

	appointments, err := h.appointmentUsecase.GetByDoctor(r.Context(), req.DoctorID)
	if err != nil {
		h.writeError(w, err, "Failed to get doctor appointments")
		return
	}

	response.Success(w, http.StatusOK, "Doctor appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) create(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.CreateAppointmentRequest
	if !h.bind(w, body, &req) {
		return
	}

	created, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", created)
}

func (h *AppointmentHandler) update(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.UpdateAppointmentRequest
	if !h.bind(w, body, &req) {
		return
	}

	if err := h.appointmentUsecase.Update(r.Context(), &req); err != nil {
		h.writeError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", nil)
}

func (h *AppointmentHandler) delete(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.AppointmentIDRequest
	if !h.bind(w, body, &req) {
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), req.AppointmentID); err != nil {
		h.writeError(w, err, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

func (h *AppointmentHandler) updateStatus(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.UpdateAppointmentStatusRequest
	if !h.bind(w, body, &req) {
		return
	}

	if err := h.appointmentUsecase.UpdateStatus(r.Context(), &req); err != nil {
		h.writeError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", nil)
}

func (h *AppointmentHandler) getStatistics(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.AppointmentStatisticsRequest
	if !h.bind(w, body, &req) {
		return
	}

	stats, err := h.appointmentUsecase.GetStatistics(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to get statistics")
		return
	}

	response.Success(w, http.StatusOK, "Statistics retrieved successfully", stats)
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidStatusTransition),
		errors.Is(err, usecase.ErrInvalidDateFormat),
		errors.Is(err, usecase.ErrInvalidTimeFormat):
		response.BadRequest(w, capitalize(err.Error()))
	case errors.Is(err, usecase.ErrAppointmentNotFound),
		errors.Is(err, usecase.ErrDoctorNotFound),
		errors.Is(err, usecase.ErrPatientProfileIncomplete):
		response.NotFound(w, capitalize(err.Error()))
	case errors.Is(err, usecase.ErrSlotTaken):
		response.Conflict(w, capitalize(err.Error()))
	default:
		response.InternalServerError(w, fallback)
	}
}
