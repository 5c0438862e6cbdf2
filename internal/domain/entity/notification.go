package entity

import "time"

type Notification struct {
	ID        int64     `gorm:"column:notification_id;primaryKey;autoIncrement" json:"notification_id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Type      string    `gorm:"type:varchar(50)" json:"type"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
