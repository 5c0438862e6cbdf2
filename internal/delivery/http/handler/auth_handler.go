package handler

import (
	"errors"
	"net/http"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Handle dispatches /auth on the "operation" value
// @Summary Authentication operations
// @Tags Auth
// @Accept json
// @Produce json
// @Param operation query string true "login | signup | refresh | logout"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth [post]
func (h *AuthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	operation, payload, err := readOperation(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	switch operation {
	case "login":
		h.login(w, r, payload)
	case "signup":
		h.signup(w, r)
	case "refresh":
		h.refresh(w, r, payload)
	case "logout":
		h.logout(w, r, payload)
	default:
		response.BadRequest(w, "Invalid Operation")
	}
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, payload []byte) {
	var req dto.LoginRequest
	if err := decodePayload(payload, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Username or Password required!", h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid Credentials")
		case errors.Is(err, usecase.ErrAccountInactive):
			response.Unauthorized(w, "Account is not active")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", session)
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	if err := h.authUsecase.Signup(r.Context()); err != nil {
		response.NotImplemented(w, "Signup not implemented")
		return
	}

	response.Success(w, http.StatusCreated, "Signup successful", nil)
}

func (h *AuthHandler) refresh(w http.ResponseWriter, r *http.Request, payload []byte) {
	var req dto.RefreshTokenRequest
	if err := decodePayload(payload, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken), errors.Is(err, usecase.ErrTokenRevoked):
			response.Unauthorized(w, "Invalid or expired refresh token")
		case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrAccountInactive):
			response.Unauthorized(w, "Account is not active")
		default:
			response.InternalServerError(w, "Failed to refresh token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request, payload []byte) {
	var req dto.LogoutRequest
	if err := decodePayload(payload, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrInvalidToken) {
			response.Unauthorized(w, "Authorization header is required")
			return
		}
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}
