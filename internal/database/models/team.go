package models

import (
	"github.com/google/uuid"
)

// Team is a fixed-size roster formed for a team-based event. It reaches
// "complete" exactly once, when membership hits MaxSize and capacity for the
// whole roster has been reserved; "cancelled" is terminal.
type Team struct {
	BaseModel
	EventID  uuid.UUID  `json:"event_id" gorm:"type:uuid;not null;index"`
	Event    *Event     `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Name     string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	LeaderID uuid.UUID  `json:"leader_id" gorm:"type:uuid;not null"`
	Leader   *User      `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`
	MaxSize  int        `json:"max_size" gorm:"not null"`
	Status   TeamStatus `json:"status" gorm:"not null;size:20;default:'forming';index"`

	// InviteCode is the short token teammates use to join a forming team.
	InviteCode string `json:"invite_code" gorm:"not null;uniqueIndex;size:16"`

	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// HasMember reports whether the user currently has a membership row
func (t *Team) HasMember(userID uuid.UUID) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// MemberIDs returns the member user ids in join order
func (t *Team) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.UserID
	}
	return ids
}
