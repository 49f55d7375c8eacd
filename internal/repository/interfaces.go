package repository

import (
	"event-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	ListOrganizers(includeArchived, archivedOnly bool) ([]models.User, error)
	Update(user *models.User) error
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	GetWithOrganizer(id uuid.UUID) (*models.Event, error)
	ListOpen() ([]models.Event, error)
	ListByOrganizer(organizerID uuid.UUID) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
	TryReserve(eventID uuid.UUID, n int) (bool, error)
	Release(eventID uuid.UUID, n int) error
	TryReserveStock(eventID uuid.UUID, qty int) (bool, error)
	ReleaseStock(eventID uuid.UUID, qty int) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateWithLeader(team *models.Team) error
	Join(inviteCode string, userID uuid.UUID) (*JoinResult, error)
	Leave(teamID, userID uuid.UUID) (*LeaveResult, error)
	GetByInviteCode(code string) (*models.Team, error)
	GetByID(id uuid.UUID) (*models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetActiveByEventAndUser(eventID, userID uuid.UUID) (*models.Team, error)
	ListByEvent(eventID uuid.UUID) ([]models.Team, error)
	MemberCount(teamID uuid.UUID) (int64, error)
}

// RegistrationRepositoryInterface defines the interface for registration repository operations
type RegistrationRepositoryInterface interface {
	CreateConfirmed(reg *models.Registration) error
	CancelSolo(regID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Registration, error)
	GetByTicketID(ticketID string) (*models.Registration, error)
	GetConfirmedByEventAndUser(eventID, userID uuid.UUID) (*models.Registration, error)
	ListByUser(userID uuid.UUID) ([]models.Registration, error)
	ListConfirmedByTeam(teamID uuid.UUID) ([]models.Registration, error)
	CountConfirmedByEvent(eventID uuid.UUID) (int64, error)
}
