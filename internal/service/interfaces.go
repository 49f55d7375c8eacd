package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for the team formation service
type TeamServiceInterface interface {
	CreateTeam(userID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	JoinTeam(userID uuid.UUID, req *JoinTeamRequest) (*JoinTeamResponse, error)
	LeaveTeam(userID, teamID uuid.UUID) (*LeaveTeamResponse, error)
	GetMyTeam(userID, eventID uuid.UUID) (*MyTeamResponse, error)
	GetTeam(teamID uuid.UUID) (*TeamResponse, error)
	ListTeams(eventID uuid.UUID) (*TeamListResponse, error)
}

// RegistrationServiceInterface defines the interface for the registration service
type RegistrationServiceInterface interface {
	Register(userID uuid.UUID, req *RegisterRequest) (*TicketResponse, error)
	Cancel(userID uuid.UUID, ticketID string) (*CancelResponse, error)
	MyRegistrations(userID uuid.UUID) (*MyRegistrationsResponse, error)
	GetTicket(userID uuid.UUID, ticketID string) (*TicketResponse, error)
}

// EventServiceInterface defines the interface for the event service
type EventServiceInterface interface {
	CreateEvent(organizerID uuid.UUID, req *CreateEventRequest) (*EventResponse, error)
	PublishEvent(organizerID, eventID uuid.UUID) (*EventResponse, error)
	UpdateEvent(organizerID, eventID uuid.UUID, req *UpdateEventRequest) (*EventResponse, error)
	DeleteEvent(organizerID, eventID uuid.UUID) error
	GetEvent(eventID uuid.UUID) (*EventResponse, error)
	ListOpenEvents() (*EventListResponse, error)
	ListMyEvents(organizerID uuid.UUID) (*EventListResponse, error)
}

// AdminServiceInterface defines the interface for the admin service
type AdminServiceInterface interface {
	CreateOrganizer(req *CreateOrganizerRequest) (*CreatedOrganizerResponse, error)
	ListOrganizers(includeArchived, archivedOnly bool) (*OrganizerListResponse, error)
	SetOrganizerActive(organizerID uuid.UUID, active bool) (*OrganizerResponse, error)
	ArchiveOrganizer(organizerID uuid.UUID) (*OrganizerResponse, error)
}
