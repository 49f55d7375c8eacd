package models

import (
	"github.com/google/uuid"
)

// Registration is one person's ticket for an event. At most one confirmed
// registration exists per (event, user) pair; this is enforced by a partial
// unique index created in database.Initialize. Confirmed registrations are
// exactly what an event's CurrentRegistrations counter counts.
type Registration struct {
	BaseModel
	EventID uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index:idx_registrations_event_user"`
	Event   *Event    `json:"event,omitempty" gorm:"foreignKey:EventID"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_registrations_event_user;index"`
	User    *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`

	TicketID  string             `json:"ticket_id" gorm:"not null;uniqueIndex;size:32"`
	EventType EventType          `json:"event_type" gorm:"not null;size:20"`
	Status    RegistrationStatus `json:"status" gorm:"not null;size:20;default:'confirmed';index"`

	// Set when the ticket was issued through team completion.
	TeamID   *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	TeamName string     `json:"team_name,omitempty" gorm:"size:100"`

	// Merchandise only.
	Quantity int `json:"quantity" gorm:"default:1"`
}

// TableName returns the table name for Registration
func (Registration) TableName() string {
	return "registrations"
}

// IsConfirmed reports whether the ticket currently holds a slot
func (r *Registration) IsConfirmed() bool {
	return r.Status == RegistrationStatusConfirmed
}
