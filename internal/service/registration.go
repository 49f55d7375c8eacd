package service

import (
	"errors"
	"fmt"
	"time"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/logger"
	"event-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationService handles solo event registration and ticket lifecycle.
// Team-issued tickets are cancelled through the team flow so the roster and
// the capacity ledger unwind together.
type RegistrationService struct {
	regs      repository.RegistrationRepositoryInterface
	events    repository.EventRepositoryInterface
	users     repository.UserRepositoryInterface
	teams     repository.TeamRepositoryInterface
	notifier  TicketNotifier
	validator *validator.Validate
	log       *logger.Logger
}

// Ensure RegistrationService implements RegistrationServiceInterface
var _ RegistrationServiceInterface = (*RegistrationService)(nil)

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	regs repository.RegistrationRepositoryInterface,
	events repository.EventRepositoryInterface,
	users repository.UserRepositoryInterface,
	teams repository.TeamRepositoryInterface,
	notifier TicketNotifier,
	validator *validator.Validate,
	log *logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		regs:      regs,
		events:    events,
		users:     users,
		teams:     teams,
		notifier:  notifier,
		validator: validator,
		log:       log,
	}
}

// RegisterRequest represents a solo registration request
type RegisterRequest struct {
	EventID  uuid.UUID `json:"event_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"omitempty,min=1"`
}

// TicketResponse represents an issued ticket in API responses
type TicketResponse struct {
	TicketID  string                    `json:"ticket_id"`
	EventID   uuid.UUID                 `json:"event_id"`
	EventName string                    `json:"event_name,omitempty"`
	UserID    uuid.UUID                 `json:"user_id"`
	Status    models.RegistrationStatus `json:"status"`
	TeamID    *uuid.UUID                `json:"team_id,omitempty"`
	TeamName  string                    `json:"team_name,omitempty"`
	Quantity  int                       `json:"quantity,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
}

// MyRegistrationsResponse groups a user's tickets by where they stand
type MyRegistrationsResponse struct {
	Upcoming  []TicketResponse `json:"upcoming"`
	Completed []TicketResponse `json:"completed"`
	Cancelled []TicketResponse `json:"cancelled"`
}

// CancelResponse reports what a cancellation did. For team tickets the
// team branch fields mirror the leave outcome.
type CancelResponse struct {
	Cancelled              bool `json:"cancelled"`
	TeamDisbanded          bool `json:"team_disbanded,omitempty"`
	TeamDemoted            bool `json:"team_demoted,omitempty"`
	CancelledRegistrations int  `json:"cancelled_registrations"`
}

// Register creates a confirmed solo registration for the caller, reserving
// one capacity slot (and merchandise stock) atomically.
func (s *RegistrationService) Register(userID uuid.UUID, req *RegisterRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.Role.IsParticipant() {
		return nil, apperrors.ErrNotParticipant
	}

	event, err := s.events.GetByID(req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event.TeamBased {
		return nil, apperrors.NewStateError("this event takes team registrations only")
	}
	if !event.Status.AcceptsRegistrations() {
		return nil, apperrors.ErrRegistrationsClosed
	}
	if time.Now().After(event.RegistrationDeadline) {
		return nil, apperrors.ErrDeadlinePassed
	}
	if !event.Eligibility.Allows(user.Role) {
		return nil, apperrors.ErrNotEligible
	}

	quantity := 1
	if event.Type == models.EventTypeMerchandise {
		if req.Quantity > 0 {
			quantity = req.Quantity
		}
		if quantity > event.PurchaseLimit {
			return nil, apperrors.ErrPurchaseLimit
		}
	}

	reg := &models.Registration{
		EventID:   event.ID,
		UserID:    userID,
		EventType: event.Type,
		Quantity:  quantity,
	}
	if err := s.regs.CreateConfirmed(reg); err != nil {
		return nil, err
	}

	go func() {
		err := s.notifier.SendTicketEmail(user.Email, TicketEmail{
			RecipientName: user.FullName(),
			EventName:     event.Name,
			TicketID:      reg.TicketID,
		})
		if err != nil {
			s.log.WithError(err).WithField("ticket_id", reg.TicketID).Error("failed to send ticket email")
		}
	}()

	resp := toTicketResponse(reg, event)
	return &resp, nil
}

// Cancel cancels the caller's ticket. Team tickets go through the team leave
// flow so rosters and capacity unwind consistently; cancelling an
// already-cancelled ticket is a no-op.
func (s *RegistrationService) Cancel(userID uuid.UUID, ticketID string) (*CancelResponse, error) {
	reg, err := s.regs.GetByTicketID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	if reg.UserID != userID {
		return nil, apperrors.NewPermissionError("you can only cancel your own ticket")
	}
	if reg.Status == models.RegistrationStatusCancelled {
		return &CancelResponse{Cancelled: false}, nil
	}
	if reg.Status == models.RegistrationStatusCompleted {
		return nil, apperrors.NewStateError("this ticket has already been used")
	}

	if reg.TeamID != nil {
		team, err := s.teams.GetByID(*reg.TeamID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get team: %w", err)
		}
		if err == nil && team.Status != models.TeamStatusCancelled {
			outcome, err := s.teams.Leave(team.ID, userID)
			if err != nil {
				return nil, err
			}
			return &CancelResponse{
				Cancelled:              outcome.CancelledRegistrations > 0,
				TeamDisbanded:          outcome.Disbanded,
				TeamDemoted:            outcome.Demoted,
				CancelledRegistrations: outcome.CancelledRegistrations,
			}, nil
		}
	}

	if err := s.regs.CancelSolo(reg.ID); err != nil {
		return nil, err
	}
	return &CancelResponse{Cancelled: true, CancelledRegistrations: 1}, nil
}

// MyRegistrations lists the caller's tickets grouped into upcoming,
// completed and cancelled.
func (s *RegistrationService) MyRegistrations(userID uuid.UUID) (*MyRegistrationsResponse, error) {
	regs, err := s.regs.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	resp := &MyRegistrationsResponse{
		Upcoming:  []TicketResponse{},
		Completed: []TicketResponse{},
		Cancelled: []TicketResponse{},
	}
	now := time.Now()
	for i := range regs {
		reg := &regs[i]
		ticket := toTicketResponse(reg, reg.Event)
		switch {
		case reg.Status == models.RegistrationStatusCancelled:
			resp.Cancelled = append(resp.Cancelled, ticket)
		case reg.Status == models.RegistrationStatusCompleted,
			reg.Event != nil && now.After(reg.Event.EndDate):
			resp.Completed = append(resp.Completed, ticket)
		default:
			resp.Upcoming = append(resp.Upcoming, ticket)
		}
	}
	return resp, nil
}

// GetTicket looks up one of the caller's tickets by ticket id
func (s *RegistrationService) GetTicket(userID uuid.UUID, ticketID string) (*TicketResponse, error) {
	reg, err := s.regs.GetByTicketID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	if reg.UserID != userID {
		return nil, apperrors.NewPermissionError("you can only view your own ticket")
	}
	resp := toTicketResponse(reg, reg.Event)
	return &resp, nil
}

// toTicketResponse converts a registration model to an API ticket response
func toTicketResponse(reg *models.Registration, event *models.Event) TicketResponse {
	resp := TicketResponse{
		TicketID:  reg.TicketID,
		EventID:   reg.EventID,
		UserID:    reg.UserID,
		Status:    reg.Status,
		TeamID:    reg.TeamID,
		TeamName:  reg.TeamName,
		CreatedAt: reg.CreatedAt,
	}
	if event != nil {
		resp.EventName = event.Name
	}
	if reg.EventType == models.EventTypeMerchandise {
		resp.Quantity = reg.Quantity
	}
	return resp
}
