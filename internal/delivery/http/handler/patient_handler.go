package handler

import (
	"errors"
	"net/http"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// Handle dispatches POST /patients on the body's "action" field
func (h *PatientHandler) Handle(w http.ResponseWriter, r *http.Request) {
	action, body, err := readAction(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	switch action {
	case "register":
		h.register(w, r, body)
	case "getAll":
		h.getAll(w, r, body)
	case "getById":
		h.getByID(w, r, body)
	case "update":
		h.update(w, r, body)
	case "delete":
		h.delete(w, r, body)
	default:
		response.BadRequest(w, "Invalid action")
	}
}

func (h *PatientHandler) bind(w http.ResponseWriter, body []byte, req interface{}) bool {
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

func (h *PatientHandler) register(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.RegisterPatientRequest
	if !h.bind(w, body, &req) {
		return
	}

	registered, err := h.patientUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailRequired), errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, capitalize(err.Error()))
		case errors.Is(err, usecase.ErrEmailAlreadyExists), errors.Is(err, usecase.ErrUsernameTaken):
			response.Conflict(w, capitalize(err.Error()))
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", registered)
}

func (h *PatientHandler) getAll(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.PatientListRequest
	if !h.bind(w, body, &req) {
		return
	}

	result, err := h.patientUsecase.GetAll(r.Context(), usecase.PageQuery{
		Page:   req.Page,
		Limit:  req.Limit,
		Search: req.Search,
	})
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", result.Items, result.Meta)
}

func (h *PatientHandler) getByID(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.PatientIDRequest
	if !h.bind(w, body, &req) {
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), req.PatientID)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) update(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.UpdatePatientRequest
	if !h.bind(w, body, &req) {
		return
	}

	if err := h.patientUsecase.Update(r.Context(), req.PatientID, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, capitalize(err.Error()))
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", nil)
}

func (h *PatientHandler) delete(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.PatientIDRequest
	if !h.bind(w, body, &req) {
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), req.PatientID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrPatientInUse):
			response.Conflict(w, capitalize(err.Error()))
		default:
			response.InternalServerError(w, "Failed to delete patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}
