package dto

import "time"

// Request DTOs

type AppointmentListRequest struct {
	Page       int    `json:"page" validate:"omitempty,gte=1"`
	Limit      int    `json:"limit" validate:"omitempty,gte=1,lte=100"`
	Search     string `json:"search" validate:"omitempty,max=100"`
	Status     string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PatientID  *int64 `json:"patient_id" validate:"omitempty,gt=0"`
	DoctorID   *int64 `json:"doctor_id" validate:"omitempty,gt=0"`
	DateFilter string `json:"date_filter" validate:"omitempty,date"`
}

type AppointmentIDRequest struct {
	AppointmentID int64 `json:"appointment_id" validate:"required,gt=0"`
}

type AppointmentsByPatientRequest struct {
	PatientID int64 `json:"patient_id" validate:"required,gt=0"`
}

type AppointmentsByDoctorRequest struct {
	DoctorID int64 `json:"doctor_id" validate:"required,gt=0"`
}

// CreateAppointmentRequest references patient and doctor by either their
// user id or their own table id.
type CreateAppointmentRequest struct {
	PatientID       int64   `json:"patient_id" validate:"required,gt=0"`
	DoctorID        int64   `json:"doctor_id" validate:"required,gt=0"`
	AppointmentDate string  `json:"appointment_date" validate:"required,date"`
	AppointmentTime string  `json:"appointment_time" validate:"required,clock"`
	Reason          string  `json:"reason" validate:"required"`
	Status          string  `json:"status" validate:"omitempty"`
	Notes           *string `json:"notes"`
}

// UpdateAppointmentRequest is a partial update; nil fields are left unchanged.
type UpdateAppointmentRequest struct {
	AppointmentID   int64   `json:"appointment_id" validate:"required,gt=0"`
	PatientID       *int64  `json:"patient_id" validate:"omitempty,gt=0"`
	DoctorID        *int64  `json:"doctor_id" validate:"omitempty,gt=0"`
	AppointmentDate *string `json:"appointment_date" validate:"omitempty,date"`
	AppointmentTime *string `json:"appointment_time" validate:"omitempty,clock"`
	Reason          *string `json:"reason" validate:"omitempty,min=1"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	AppointmentID int64  `json:"appointment_id" validate:"required,gt=0"`
	Status        string `json:"status" validate:"required"`
}

type AppointmentStatisticsRequest struct {
	DoctorID *int64 `json:"doctor_id" validate:"omitempty,gt=0"`
}

// Response DTOs

type AppointmentResponse struct {
	AppointmentID   int64     `json:"appointment_id"`
	PatientID       int64     `json:"patient_id"`
	DoctorID        int64     `json:"doctor_id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	PatientName     string    `json:"patient_name,omitempty"`
	PatientCode     string    `json:"patient_code,omitempty"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	Specialization  string    `json:"specialization,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentCreatedResponse struct {
	AppointmentID int64 `json:"appointment_id"`
}
