package entity

// Role is the account type stored on users.role
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleSecretary    Role = "secretary"
	RoleReceptionist Role = "receptionist"
	RolePatient      Role = "patient"
)

var AllRoles = []Role{RoleAdmin, RoleDoctor, RoleSecretary, RoleReceptionist, RolePatient}

func (r Role) IsValid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Doctor is the role extension for RoleDoctor
type Doctor struct {
	ID             int64  `gorm:"column:doctor_id;primaryKey;autoIncrement" json:"doctor_id"`
	UserID         int64  `gorm:"uniqueIndex;not null" json:"user_id"`
	Specialization string `gorm:"type:varchar(150)" json:"specialization"`
	LicenseNo      string `gorm:"type:varchar(100)" json:"license_no"`
	DepartmentID   *int64 `json:"department_id,omitempty"`
	ContactNumber  string `gorm:"type:varchar(30)" json:"contact_number,omitempty"`
	Schedule       string `gorm:"type:text" json:"schedule,omitempty"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Secretary is the role extension for RoleSecretary
type Secretary struct {
	ID               int64  `gorm:"column:secretary_id;primaryKey;autoIncrement" json:"secretary_id"`
	UserID           int64  `gorm:"uniqueIndex;not null" json:"user_id"`
	AssignedDoctorID *int64 `json:"assigned_doctor_id,omitempty"`
}

func (Secretary) TableName() string {
	return "secretaries"
}

// Receptionist is the role extension for RoleReceptionist
type Receptionist struct {
	ID     int64 `gorm:"column:receptionist_id;primaryKey;autoIncrement" json:"receptionist_id"`
	UserID int64 `gorm:"uniqueIndex;not null" json:"user_id"`
}

func (Receptionist) TableName() string {
	return "receptionists"
}
