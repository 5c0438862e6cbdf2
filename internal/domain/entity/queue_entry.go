package entity

import "time"

type QueueStatus string

const (
	QueueStatusWaiting QueueStatus = "waiting"
	QueueStatusCalled  QueueStatus = "called"
	QueueStatusDone    QueueStatus = "done"
	QueueStatusSkipped QueueStatus = "skipped"
)

func (s QueueStatus) IsValid() bool {
	switch s {
	case QueueStatusWaiting, QueueStatusCalled, QueueStatusDone, QueueStatusSkipped:
		return true
	}
	return false
}

// QueueEntry is a walk-in ticket. QueueNumber is unique per QueueDate.
type QueueEntry struct {
	ID            int64       `gorm:"column:queue_id;primaryKey;autoIncrement" json:"queue_id"`
	QueueNumber   int         `gorm:"not null" json:"queue_number"`
	PatientID     int64       `gorm:"not null;index" json:"patient_id"`
	DoctorID      int64       `gorm:"not null;index" json:"doctor_id"`
	AppointmentID *int64      `json:"appointment_id,omitempty"`
	QueueDate     time.Time   `gorm:"type:date;not null" json:"queue_date"`
	Status        QueueStatus `gorm:"type:varchar(20);not null;default:waiting;index" json:"status"`
	Notes         *string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (QueueEntry) TableName() string {
	return "queue"
}

type QueueFilter struct {
	Search    string
	Status    string
	DoctorID  *int64
	QueueDate time.Time
	Page      int
	Limit     int
}

type QueueStats struct {
	TotalToday int64 `json:"total_today"`
	Waiting    int64 `json:"waiting"`
	Called     int64 `json:"called"`
	Done       int64 `json:"done"`
	Skipped    int64 `json:"skipped"`
}
