package dto

import "time"

// Request DTOs

type RegisterPatientRequest struct {
	FirstName             string `json:"first_name" validate:"required,max=100"`
	LastName              string `json:"last_name" validate:"required,max=100"`
	MiddleName            string `json:"middle_name" validate:"omitempty,max=100"`
	DateOfBirth           string `json:"date_of_birth" validate:"required,date"`
	Gender                string `json:"gender" validate:"omitempty,max=20"`
	PhoneNumber           string `json:"phone_number" validate:"omitempty,max=30"`
	Email                 string `json:"email" validate:"omitempty,email"`
	Address               string `json:"address"`
	BloodType             string `json:"blood_type" validate:"omitempty,max=5"`
	EmergencyContactName  string `json:"emergency_contact_name" validate:"omitempty,max=150"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"omitempty,max=30"`
	CreateAccount         bool   `json:"create_account"`
}

// UpdatePatientRequest is a partial update; nil fields are left unchanged.
type UpdatePatientRequest struct {
	PatientID             int64   `json:"patient_id" validate:"required,gt=0"`
	FirstName             *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName              *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	MiddleName            *string `json:"middle_name" validate:"omitempty,max=100"`
	DateOfBirth           *string `json:"date_of_birth" validate:"omitempty,date"`
	Gender                *string `json:"gender" validate:"omitempty,max=20"`
	PhoneNumber           *string `json:"phone_number" validate:"omitempty,max=30"`
	Email                 *string `json:"email" validate:"omitempty,email"`
	Address               *string `json:"address"`
	BloodType             *string `json:"blood_type" validate:"omitempty,max=5"`
	EmergencyContactName  *string `json:"emergency_contact_name" validate:"omitempty,max=150"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" validate:"omitempty,max=30"`
	IsActive              *bool   `json:"is_active"`
}

type PatientListRequest struct {
	Page   int    `json:"page" validate:"omitempty,gte=1"`
	Limit  int    `json:"limit" validate:"omitempty,gte=1,lte=100"`
	Search string `json:"search" validate:"omitempty,max=100"`
}

type PatientIDRequest struct {
	PatientID int64 `json:"patient_id" validate:"required,gt=0"`
}

// Response DTOs

type PatientResponse struct {
	PatientID             int64     `json:"patient_id"`
	UserID                *int64    `json:"user_id"`
	PatientCode           string    `json:"patient_code"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	MiddleName            string    `json:"middle_name,omitempty"`
	DateOfBirth           string    `json:"date_of_birth"`
	Gender                string    `json:"gender"`
	PhoneNumber           string    `json:"phone_number,omitempty"`
	Email                 string    `json:"email,omitempty"`
	Address               string    `json:"address,omitempty"`
	BloodType             string    `json:"blood_type,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	IsActive              bool      `json:"is_active"`
	CreatedAt             time.Time `json:"created_at"`
}

type PatientRegisteredResponse struct {
	PatientID   int64   `json:"patient_id"`
	PatientCode string  `json:"patient_code"`
	Username    *string `json:"username"`
	EmailSent   bool    `json:"email_sent"`
}
