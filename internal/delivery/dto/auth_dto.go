package dto

import "time"

// Request DTOs

// LoginRequest accepts either the username or the email in Username.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type ProfileResponse struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Gender    string `json:"gender,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type DoctorExtraResponse struct {
	DoctorID       int64  `json:"doctor_id"`
	Specialization string `json:"specialization"`
	LicenseNo      string `json:"license_no"`
	DepartmentID   *int64 `json:"department_id"`
}

type SecretaryExtraResponse struct {
	SecretaryID      int64  `json:"secretary_id"`
	AssignedDoctorID *int64 `json:"assigned_doctor_id"`
}

type ReceptionistExtraResponse struct {
	ReceptionistID int64 `json:"receptionist_id"`
}

type PatientExtraResponse struct {
	PatientID        int64  `json:"patient_id"`
	PatientCode      string `json:"patient_code"`
	BloodType        string `json:"blood_type"`
	EmergencyContact string `json:"emergency_contact"`
}

// SessionUserResponse is the authenticated user with its profile and the
// role-specific extension in Extra ({} when the role has none).
type SessionUserResponse struct {
	UserID   int64           `json:"user_id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Role     string          `json:"role"`
	Status   string          `json:"status"`
	Profile  ProfileResponse `json:"profile"`
	Extra    interface{}     `json:"extra"`
}

type NotificationResponse struct {
	NotificationID int64     `json:"notification_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

type SessionResponse struct {
	User          SessionUserResponse    `json:"user"`
	Notifications []NotificationResponse `json:"notifications"`
	Tokens        *TokenResponse         `json:"tokens"`
}
