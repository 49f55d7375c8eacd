package models

// User represents a platform account: admin, organizer or participant
type User struct {
	BaseModel
	Email        string   `json:"email" gorm:"not null;uniqueIndex;size:100" validate:"required,email"`
	PasswordHash string   `json:"-" gorm:"not null;size:100"`
	Role         UserRole `json:"role" gorm:"not null;size:20;index" validate:"required,oneof=admin organizer student external"`

	// Participant fields
	FirstName     string `json:"first_name,omitempty" gorm:"size:50"`
	LastName      string `json:"last_name,omitempty" gorm:"size:50"`
	CollegeName   string `json:"college_name,omitempty" gorm:"size:100"`
	ContactNumber string `json:"contact_number,omitempty" gorm:"size:20"`

	// Organizer fields
	OrganizationName string `json:"organization_name,omitempty" gorm:"size:100"`
	Category         string `json:"category,omitempty" gorm:"size:50"`
	Description      string `json:"description,omitempty" gorm:"size:500"`
	IsActive         bool   `json:"is_active" gorm:"default:true"`
	IsArchived       bool   `json:"is_archived" gorm:"default:false;index"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the display name of a participant
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
