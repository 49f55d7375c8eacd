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

// EventService handles organizer-facing event management and the public
// event listings.
type EventService struct {
	events    repository.EventRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// Ensure EventService implements EventServiceInterface
var _ EventServiceInterface = (*EventService)(nil)

// NewEventService creates a new event service
func NewEventService(events repository.EventRepositoryInterface, validator *validator.Validate, log *logger.Logger) *EventService {
	return &EventService{events: events, validator: validator, log: log}
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Name                 string             `json:"name" validate:"required,min=1,max=200"`
	Description          string             `json:"description" validate:"max=2000"`
	Type                 models.EventType   `json:"type" validate:"required,oneof=normal merchandise"`
	Eligibility          models.Eligibility `json:"eligibility" validate:"omitempty,oneof=all students external"`
	RegistrationDeadline time.Time          `json:"registration_deadline" validate:"required"`
	StartDate            time.Time          `json:"start_date" validate:"required"`
	EndDate              time.Time          `json:"end_date" validate:"required"`
	RegistrationLimit    int                `json:"registration_limit" validate:"required,min=1"`
	RegistrationFee      float64            `json:"registration_fee" validate:"min=0"`
	TeamBased            bool               `json:"team_based"`
	MinTeamSize          int                `json:"min_team_size" validate:"omitempty,min=1"`
	MaxTeamSize          int                `json:"max_team_size" validate:"omitempty,min=1"`
	StockQuantity        int                `json:"stock_quantity" validate:"min=0"`
	PurchaseLimit        int                `json:"purchase_limit" validate:"omitempty,min=1"`
	Tags                 []string           `json:"tags"`
	Publish              bool               `json:"publish"`
}

// UpdateEventRequest represents the request to update an event. Nil fields
// are left unchanged.
type UpdateEventRequest struct {
	Name                 *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Description          *string    `json:"description" validate:"omitempty,max=2000"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	RegistrationLimit    *int       `json:"registration_limit" validate:"omitempty,min=1"`
	Tags                 []string   `json:"tags"`
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID                   uuid.UUID          `json:"id"`
	Name                 string             `json:"name"`
	Description          string             `json:"description"`
	Type                 models.EventType   `json:"type"`
	Status               models.EventStatus `json:"status"`
	Eligibility          models.Eligibility `json:"eligibility"`
	RegistrationDeadline time.Time          `json:"registration_deadline"`
	StartDate            time.Time          `json:"start_date"`
	EndDate              time.Time          `json:"end_date"`
	RegistrationLimit    int                `json:"registration_limit"`
	SpotsRemaining       int                `json:"spots_remaining"`
	RegistrationFee      float64            `json:"registration_fee"`
	OrganizerID          uuid.UUID          `json:"organizer_id"`
	OrganizerName        string             `json:"organizer_name,omitempty"`
	TeamBased            bool               `json:"team_based"`
	MinTeamSize          int                `json:"min_team_size,omitempty"`
	MaxTeamSize          int                `json:"max_team_size,omitempty"`
	StockQuantity        int                `json:"stock_quantity,omitempty"`
	PurchaseLimit        int                `json:"purchase_limit,omitempty"`
	Tags                 []string           `json:"tags,omitempty"`
	PublishedAt          *time.Time         `json:"published_at,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
}

// EventListResponse represents a list of events
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}

// CreateEvent creates an event owned by the organizer, as a draft or
// published immediately.
func (s *EventService) CreateEvent(organizerID uuid.UUID, req *CreateEventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.RegistrationDeadline.Before(req.StartDate) {
		return nil, apperrors.NewValidationError("registration_deadline", "must be before the start date")
	}
	if !req.StartDate.Before(req.EndDate) {
		return nil, apperrors.NewValidationError("start_date", "must be before the end date")
	}
	if req.TeamBased {
		if req.Type == models.EventTypeMerchandise {
			return nil, apperrors.NewValidationError("team_based", "merchandise events cannot be team based")
		}
		if req.MinTeamSize < 1 || req.MaxTeamSize < req.MinTeamSize {
			return nil, apperrors.NewValidationError("max_team_size", "team size bounds must satisfy 1 <= min <= max")
		}
	}
	if req.Type == models.EventTypeMerchandise && req.StockQuantity < 1 {
		return nil, apperrors.NewValidationError("stock_quantity", "merchandise events need stock")
	}

	eligibility := req.Eligibility
	if eligibility == "" {
		eligibility = models.EligibilityAll
	}
	purchaseLimit := req.PurchaseLimit
	if purchaseLimit == 0 {
		purchaseLimit = 1
	}

	event := &models.Event{
		Name:                 req.Name,
		Description:          req.Description,
		Type:                 req.Type,
		Status:               models.EventStatusDraft,
		Eligibility:          eligibility,
		RegistrationDeadline: req.RegistrationDeadline,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		RegistrationLimit:    req.RegistrationLimit,
		RegistrationFee:      req.RegistrationFee,
		OrganizerID:          organizerID,
		TeamBased:            req.TeamBased,
		MinTeamSize:          req.MinTeamSize,
		MaxTeamSize:          req.MaxTeamSize,
		StockQuantity:        req.StockQuantity,
		PurchaseLimit:        purchaseLimit,
		Tags:                 req.Tags,
	}
	if req.Publish {
		now := time.Now()
		event.Status = models.EventStatusPublished
		event.PublishedAt = &now
	}

	if err := s.events.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// PublishEvent moves a draft event to published
func (s *EventService) PublishEvent(organizerID, eventID uuid.UUID) (*EventResponse, error) {
	event, err := s.ownedEvent(organizerID, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != models.EventStatusDraft {
		return nil, apperrors.ErrEventNotEditable
	}
	now := time.Now()
	event.Status = models.EventStatusPublished
	event.PublishedAt = &now
	if err := s.events.Update(event); err != nil {
		return nil, fmt.Errorf("failed to publish event: %w", err)
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// UpdateEvent edits an event. Drafts are freely editable; published events
// only allow the description to change, the deadline to extend and the limit
// to increase; other statuses are immutable.
func (s *EventService) UpdateEvent(organizerID, eventID uuid.UUID, req *UpdateEventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	event, err := s.ownedEvent(organizerID, eventID)
	if err != nil {
		return nil, err
	}

	switch event.Status {
	case models.EventStatusDraft:
		if req.Name != nil {
			event.Name = *req.Name
		}
		if req.Description != nil {
			event.Description = *req.Description
		}
		if req.RegistrationDeadline != nil {
			event.RegistrationDeadline = *req.RegistrationDeadline
		}
		if req.StartDate != nil {
			event.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			event.EndDate = *req.EndDate
		}
		if req.RegistrationLimit != nil {
			event.RegistrationLimit = *req.RegistrationLimit
		}
		if req.Tags != nil {
			event.Tags = req.Tags
		}
		if !event.RegistrationDeadline.Before(event.StartDate) || !event.StartDate.Before(event.EndDate) {
			return nil, apperrors.NewValidationError("registration_deadline", "dates must satisfy deadline < start < end")
		}

	case models.EventStatusPublished:
		if req.Name != nil || req.StartDate != nil || req.EndDate != nil || req.Tags != nil {
			return nil, apperrors.ErrEventNotEditable
		}
		if req.Description != nil {
			event.Description = *req.Description
		}
		if req.RegistrationDeadline != nil {
			if req.RegistrationDeadline.Before(event.RegistrationDeadline) {
				return nil, apperrors.NewValidationError("registration_deadline", "deadline can only be extended")
			}
			if !req.RegistrationDeadline.Before(event.StartDate) {
				return nil, apperrors.NewValidationError("registration_deadline", "must stay before the start date")
			}
			event.RegistrationDeadline = *req.RegistrationDeadline
		}
		if req.RegistrationLimit != nil {
			if *req.RegistrationLimit < event.RegistrationLimit {
				return nil, apperrors.NewValidationError("registration_limit", "limit can only be increased")
			}
			event.RegistrationLimit = *req.RegistrationLimit
		}

	default:
		return nil, apperrors.ErrEventNotEditable
	}

	if err := s.events.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// DeleteEvent removes an event, cancelling its confirmed registrations
func (s *EventService) DeleteEvent(organizerID, eventID uuid.UUID) error {
	if _, err := s.ownedEvent(organizerID, eventID); err != nil {
		return err
	}
	if err := s.events.Delete(eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	s.log.WithField("event_id", eventID).Info("event deleted")
	return nil
}

// GetEvent returns a single registrable event. Drafts are hidden.
func (s *EventService) GetEvent(eventID uuid.UUID) (*EventResponse, error) {
	event, err := s.events.GetWithOrganizer(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event.Status == models.EventStatusDraft {
		return nil, apperrors.ErrEventNotFound
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// ListOpenEvents returns all events currently accepting registrations
func (s *EventService) ListOpenEvents() (*EventListResponse, error) {
	events, err := s.events.ListOpen()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return toEventListResponse(events), nil
}

// ListMyEvents returns every event owned by the organizer, drafts included
func (s *EventService) ListMyEvents(organizerID uuid.UUID) (*EventListResponse, error) {
	events, err := s.events.ListByOrganizer(organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return toEventListResponse(events), nil
}

// ownedEvent loads an event and checks the caller owns it
func (s *EventService) ownedEvent(organizerID, eventID uuid.UUID) (*models.Event, error) {
	event, err := s.events.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event.OrganizerID != organizerID {
		return nil, apperrors.ErrNotEventOwner
	}
	return event, nil
}

// toEventResponse converts an event model to an API response
func toEventResponse(event *models.Event) EventResponse {
	resp := EventResponse{
		ID:                   event.ID,
		Name:                 event.Name,
		Description:          event.Description,
		Type:                 event.Type,
		Status:               event.Status,
		Eligibility:          event.Eligibility,
		RegistrationDeadline: event.RegistrationDeadline,
		StartDate:            event.StartDate,
		EndDate:              event.EndDate,
		RegistrationLimit:    event.RegistrationLimit,
		SpotsRemaining:       event.RegistrationLimit - event.CurrentRegistrations,
		RegistrationFee:      event.RegistrationFee,
		OrganizerID:          event.OrganizerID,
		TeamBased:            event.TeamBased,
		Tags:                 event.Tags,
		PublishedAt:          event.PublishedAt,
		CreatedAt:            event.CreatedAt,
	}
	if event.Organizer != nil {
		resp.OrganizerName = event.Organizer.OrganizationName
	}
	if event.TeamBased {
		resp.MinTeamSize = event.MinTeamSize
		resp.MaxTeamSize = event.MaxTeamSize
	}
	if event.Type == models.EventTypeMerchandise {
		resp.StockQuantity = event.StockQuantity
		resp.PurchaseLimit = event.PurchaseLimit
	}
	return resp
}

func toEventListResponse(events []models.Event) *EventListResponse {
	resp := &EventListResponse{Events: make([]EventResponse, len(events)), Total: len(events)}
	for i := range events {
		resp.Events[i] = toEventResponse(&events[i])
	}
	return resp
}
