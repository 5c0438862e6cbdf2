package dto

import "time"

// Request DTOs

type AuditLogListRequest struct {
	UserID   *int64 `json:"user_id" validate:"omitempty,gt=0"`
	Action   string `json:"action" validate:"omitempty,max=100"`
	FromDate string `json:"from_date" validate:"omitempty,date"`
	ToDate   string `json:"to_date" validate:"omitempty,date"`
	Search   string `json:"search" validate:"omitempty,max=100"`
	Limit    int    `json:"limit" validate:"omitempty,gte=1,lte=1000"`
	Offset   int    `json:"offset" validate:"omitempty,gte=0"`
}

type ClearOldLogsRequest struct {
	Days int `json:"days" validate:"omitempty,gte=1"`
}

type ExportAuditLogsRequest struct {
	AuditLogListRequest
	Format string `json:"format" validate:"omitempty,oneof=json xlsx"`
}

// Response DTOs

type AuditLogResponse struct {
	LogID       int64     `json:"log_id"`
	UserID      *int64    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	FullName    string    `json:"full_name,omitempty"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	IPAddress   string    `json:"ip_address"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int64              `json:"total"`
}

type AuditActorResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

type ClearOldLogsResponse struct {
	Days    int   `json:"days"`
	Deleted int64 `json:"deleted"`
}

// AuditLogExport is either a JSON row set or a rendered spreadsheet.
type AuditLogExport struct {
	Format      string             `json:"format"`
	Logs        []AuditLogResponse `json:"logs,omitempty"`
	Filename    string             `json:"-"`
	ContentType string             `json:"-"`
	Content     []byte             `json:"-"`
}
