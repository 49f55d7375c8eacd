package models

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a registrable event published by an organizer.
//
// CurrentRegistrations and StockQuantity are the capacity ledger counters:
// they are only ever mutated through single conditional UPDATE statements
// (see repository/capacity.go), never by read-modify-write in Go code.
type Event struct {
	BaseModel
	Name        string      `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string      `json:"description" gorm:"size:2000" validate:"max=2000"`
	Type        EventType   `json:"type" gorm:"not null;size:20" validate:"required,oneof=normal merchandise"`
	Status      EventStatus `json:"status" gorm:"not null;size:20;default:'draft';index"`
	Eligibility Eligibility `json:"eligibility" gorm:"not null;size:20;default:'all'" validate:"omitempty,oneof=all students external"`

	RegistrationDeadline time.Time `json:"registration_deadline" gorm:"not null"`
	StartDate            time.Time `json:"start_date" gorm:"not null"`
	EndDate              time.Time `json:"end_date" gorm:"not null"`

	RegistrationLimit    int     `json:"registration_limit" gorm:"not null" validate:"required,min=1"`
	CurrentRegistrations int     `json:"current_registrations" gorm:"not null;default:0"`
	RegistrationFee      float64 `json:"registration_fee" gorm:"default:0" validate:"min=0"`

	OrganizerID uuid.UUID `json:"organizer_id" gorm:"type:uuid;not null;index"`
	Organizer   *User     `json:"organizer,omitempty" gorm:"foreignKey:OrganizerID"`

	// Team registration settings
	TeamBased   bool `json:"team_based" gorm:"default:false"`
	MinTeamSize int  `json:"min_team_size" gorm:"default:2"`
	MaxTeamSize int  `json:"max_team_size" gorm:"default:4"`

	// Merchandise settings
	StockQuantity int `json:"stock_quantity" gorm:"not null;default:0"`
	PurchaseLimit int `json:"purchase_limit" gorm:"default:1"`

	Tags        []string   `json:"tags,omitempty" gorm:"serializer:json"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}

// RegistrationOpen reports whether the event currently accepts registrations
func (e *Event) RegistrationOpen(now time.Time) bool {
	return e.Status.AcceptsRegistrations() && !now.After(e.RegistrationDeadline)
}
