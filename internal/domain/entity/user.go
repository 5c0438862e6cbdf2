package entity

import "time"

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User represents the centralized authentication table
type User struct {
	ID           int64      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username     string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	Role         Role       `gorm:"type:varchar(20);not null;index" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:active" json:"status"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Profile *UserProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsActive treats an empty status as active, matching rows created before
// the status column existed.
func (u *User) IsActive() bool {
	return u.Status == "" || u.Status == UserStatusActive
}

// UserProfile is the 1:1 personal data extension of a User
type UserProfile struct {
	UserID    int64      `gorm:"primaryKey" json:"user_id"`
	FirstName string     `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string     `gorm:"type:varchar(100)" json:"last_name"`
	Gender    string     `gorm:"type:varchar(20)" json:"gender,omitempty"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Phone     string     `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address   string     `gorm:"type:text" json:"address,omitempty"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

func (p *UserProfile) FullName() string {
	if p == nil {
		return ""
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
