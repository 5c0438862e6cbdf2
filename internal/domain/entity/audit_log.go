package entity

import "time"

// AuditLog is an append-only row in system_logs
type AuditLog struct {
	ID          int64     `gorm:"column:log_id;primaryKey;autoIncrement" json:"log_id"`
	UserID      *int64    `gorm:"index" json:"user_id,omitempty"`
	Action      string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Description string    `gorm:"type:text" json:"description"`
	IPAddress   string    `gorm:"type:varchar(64)" json:"ip_address"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "system_logs"
}

// Audit action tags
const (
	AuditActionCreateAppointment       = "create_appointment"
	AuditActionUpdateAppointment       = "update_appointment"
	AuditActionDeleteAppointment       = "delete_appointment"
	AuditActionUpdateAppointmentStatus = "update_appointment_status"
	AuditActionCreateQueue             = "create_queue"
	AuditActionUpdateQueue             = "update_queue"
	AuditActionDeleteQueue             = "delete_queue"
	AuditActionUpdateQueueStatus       = "update_queue_status"
	AuditActionCallNextQueue           = "call_next_queue"
	AuditActionRegisterPatient         = "register_patient"
	AuditActionUpdatePatient           = "update_patient"
	AuditActionDeletePatient           = "delete_patient"
	AuditActionMaintenance             = "maintenance"
	AuditActionExport                  = "export"
)

type AuditLogFilter struct {
	UserID   *int64
	Action   string
	FromDate *time.Time
	ToDate   *time.Time
	Search   string
	Limit    int
	Offset   int
}

type AuditLogStats struct {
	Total       int64 `json:"total"`
	Today       int64 `json:"today"`
	ActiveUsers int64 `json:"active_users"`
	Failed      int64 `json:"failed"`
}

// AuditActor is a distinct user that appears in system_logs
type AuditActor struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
