package entity

import "time"

// Patient is both the clinical patient record and the role extension for
// RolePatient. Walk-in patients have no UserID.
type Patient struct {
	ID                    int64     `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patient_id"`
	UserID                *int64    `gorm:"uniqueIndex" json:"user_id,omitempty"`
	PatientCode           string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"patient_code"`
	FirstName             string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName              string    `gorm:"type:varchar(100);not null" json:"last_name"`
	MiddleName            string    `gorm:"type:varchar(100)" json:"middle_name,omitempty"`
	DateOfBirth           time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender                string    `gorm:"type:varchar(20)" json:"gender"`
	PhoneNumber           string    `gorm:"type:varchar(30)" json:"phone_number,omitempty"`
	Email                 string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address               string    `gorm:"type:text" json:"address,omitempty"`
	BloodType             string    `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	EmergencyContactName  string    `gorm:"type:varchar(150)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `gorm:"type:varchar(30)" json:"emergency_contact_phone,omitempty"`
	IsActive              bool      `gorm:"default:true" json:"is_active"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

type PatientFilter struct {
	Search string
	Page   int
	Limit  int
}
