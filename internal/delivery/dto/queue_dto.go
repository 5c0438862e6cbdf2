package dto

import "time"

// Request DTOs

type QueueListRequest struct {
	Page       int    `json:"page" validate:"omitempty,gte=1"`
	Limit      int    `json:"limit" validate:"omitempty,gte=1,lte=100"`
	Search     string `json:"search" validate:"omitempty,max=100"`
	Status     string `json:"status" validate:"omitempty,oneof=waiting called done skipped"`
	DoctorID   *int64 `json:"doctor_id" validate:"omitempty,gt=0"`
	DateFilter string `json:"date_filter" validate:"omitempty,date"`
}

type QueueIDRequest struct {
	QueueID int64 `json:"queue_id" validate:"required,gt=0"`
}

type QueueByDateRequest struct {
	QueueDate string `json:"queue_date" validate:"required,date"`
}

type CreateQueueRequest struct {
	PatientID     int64   `json:"patient_id" validate:"required,gt=0"`
	DoctorID      int64   `json:"doctor_id" validate:"required,gt=0"`
	AppointmentID *int64  `json:"appointment_id" validate:"omitempty,gt=0"`
	QueueDate     string  `json:"queue_date" validate:"omitempty,date"`
	Notes         *string `json:"notes"`
}

// UpdateQueueRequest is a partial update; nil fields are left unchanged.
type UpdateQueueRequest struct {
	QueueID       int64   `json:"queue_id" validate:"required,gt=0"`
	PatientID     *int64  `json:"patient_id" validate:"omitempty,gt=0"`
	DoctorID      *int64  `json:"doctor_id" validate:"omitempty,gt=0"`
	AppointmentID *int64  `json:"appointment_id" validate:"omitempty,gt=0"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
}

type UpdateQueueStatusRequest struct {
	QueueID int64  `json:"queue_id" validate:"required,gt=0"`
	Status  string `json:"status" validate:"required"`
}

type CallNextQueueRequest struct {
	DoctorID *int64 `json:"doctor_id" validate:"omitempty,gt=0"`
}

// Response DTOs

type QueueEntryResponse struct {
	QueueID       int64     `json:"queue_id"`
	QueueNumber   int       `json:"queue_number"`
	PatientID     int64     `json:"patient_id"`
	DoctorID      int64     `json:"doctor_id"`
	AppointmentID *int64    `json:"appointment_id"`
	QueueDate     string    `json:"queue_date"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes"`
	PatientName   string    `json:"patient_name,omitempty"`
	PatientCode   string    `json:"patient_code,omitempty"`
	DoctorName    string    `json:"doctor_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type QueueTicketResponse struct {
	QueueID     int64 `json:"queue_id"`
	QueueNumber int   `json:"queue_number"`
}
