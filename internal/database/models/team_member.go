package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember is one seat on a team's roster. The leader always holds a row.
// Rows are ordered by JoinedAt; the leader's row is created with the team.
type TeamMember struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index:idx_team_members_team_user,unique"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_team_members_team_user,unique;index"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	JoinedAt time.Time `json:"joined_at" gorm:"not null"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// BeforeCreate sets the UUID and join time if not already set
func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	return nil
}
