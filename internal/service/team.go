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

// TeamService implements the team formation flow: create a forming team,
// grow it through invite-code joins, and promote it to complete with
// tickets allocated atomically against event capacity.
type TeamService struct {
	teams     repository.TeamRepositoryInterface
	events    repository.EventRepositoryInterface
	users     repository.UserRepositoryInterface
	regs      repository.RegistrationRepositoryInterface
	notifier  TicketNotifier
	validator *validator.Validate
	log       *logger.Logger
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(
	teams repository.TeamRepositoryInterface,
	events repository.EventRepositoryInterface,
	users repository.UserRepositoryInterface,
	regs repository.RegistrationRepositoryInterface,
	notifier TicketNotifier,
	validator *validator.Validate,
	log *logger.Logger,
) *TeamService {
	return &TeamService{
		teams:     teams,
		events:    events,
		users:     users,
		regs:      regs,
		notifier:  notifier,
		validator: validator,
		log:       log,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	EventID uuid.UUID `json:"event_id" validate:"required"`
	Name    string    `json:"name" validate:"required,min=1,max=100"`
	Size    int       `json:"size" validate:"required,min=1"`
}

// JoinTeamRequest represents the request to join a team by invite code
type JoinTeamRequest struct {
	InviteCode string `json:"invite_code" validate:"required,len=8"`
}

// TeamMemberResponse represents one roster seat in API responses
type TeamMemberResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	IsLeader bool      `json:"is_leader"`
	JoinedAt time.Time `json:"joined_at"`
}

// TeamResponse represents a team in API responses. InviteCode is only
// populated on member-facing responses.
type TeamResponse struct {
	ID          uuid.UUID            `json:"id"`
	EventID     uuid.UUID            `json:"event_id"`
	Name        string               `json:"name"`
	LeaderID    uuid.UUID            `json:"leader_id"`
	MaxSize     int                  `json:"max_size"`
	MemberCount int                  `json:"member_count"`
	Status      models.TeamStatus    `json:"status"`
	InviteCode  string               `json:"invite_code,omitempty"`
	Members     []TeamMemberResponse `json:"members,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// JoinTeamResponse reports the outcome of a join: still forming, or complete
// with the tickets issued at completion.
type JoinTeamResponse struct {
	Team         TeamResponse     `json:"team"`
	TeamComplete bool             `json:"team_complete"`
	Tickets      []TicketResponse `json:"tickets,omitempty"`
}

// LeaveTeamResponse reports which unwind branch a leave took
type LeaveTeamResponse struct {
	Disbanded              bool `json:"disbanded"`
	Demoted                bool `json:"demoted"`
	CancelledRegistrations int  `json:"cancelled_registrations"`
}

// MyTeamResponse is the caller's team for an event plus their issued tickets
type MyTeamResponse struct {
	Team    TeamResponse     `json:"team"`
	Tickets []TicketResponse `json:"tickets,omitempty"`
}

// TeamListResponse represents the teams of an event
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
	Total int            `json:"total"`
}

// CreateTeam creates a forming team led by the caller. The caller must be a
// participant eligible for the event, free of any team or confirmed
// registration for it, and the requested size must fall within the event's
// team size bounds.
func (s *TeamService) CreateTeam(userID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, event, err := s.participantAndEvent(userID, req.EventID)
	if err != nil {
		return nil, err
	}
	if !event.TeamBased {
		return nil, apperrors.ErrEventNotTeamBased
	}
	if err := s.checkRegistrationWindow(event, user); err != nil {
		return nil, err
	}
	if req.Size < event.MinTeamSize || req.Size > event.MaxTeamSize {
		return nil, apperrors.NewValidationError("size",
			fmt.Sprintf("team size must be between %d and %d", event.MinTeamSize, event.MaxTeamSize))
	}

	if _, err := s.teams.GetActiveByEventAndUser(event.ID, userID); err == nil {
		return nil, apperrors.ErrAlreadyInTeam
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team membership: %w", err)
	}
	if _, err := s.regs.GetConfirmedByEventAndUser(event.ID, userID); err == nil {
		return nil, apperrors.ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check registration: %w", err)
	}

	team := &models.Team{
		EventID:  event.ID,
		Name:     req.Name,
		LeaderID: userID,
		MaxSize:  req.Size,
	}
	if err := s.teams.CreateWithLeader(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	created, err := s.teams.GetWithMembers(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created team: %w", err)
	}
	resp := s.toTeamResponse(created, true)
	return &resp, nil
}

// JoinTeam adds the caller to the forming team behind the invite code. When
// the join fills the roster, the whole team is registered atomically: either
// every member gets a confirmed ticket, or the join is rejected and the team
// keeps forming without the caller.
func (s *TeamService) JoinTeam(userID uuid.UUID, req *JoinTeamRequest) (*JoinTeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teams.GetByInviteCode(req.InviteCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInviteCodeInvalid
		}
		return nil, fmt.Errorf("failed to look up invite code: %w", err)
	}
	switch team.Status {
	case models.TeamStatusCancelled:
		return nil, apperrors.ErrTeamCancelled
	case models.TeamStatusComplete:
		return nil, apperrors.ErrTeamFull
	}

	user, event, err := s.participantAndEvent(userID, team.EventID)
	if err != nil {
		return nil, err
	}
	if err := s.checkRegistrationWindow(event, user); err != nil {
		return nil, err
	}

	outcome, err := s.teams.Join(req.InviteCode, userID)
	if err != nil {
		return nil, err
	}

	joined, err := s.teams.GetWithMembers(outcome.Team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load joined team: %w", err)
	}

	resp := &JoinTeamResponse{
		Team:         s.toTeamResponse(joined, true),
		TeamComplete: outcome.Completed,
	}
	if outcome.Completed {
		for _, reg := range outcome.NewRegistrations {
			resp.Tickets = append(resp.Tickets, toTicketResponse(&reg, event))
		}
		go s.sendTicketEmails(event, joined, outcome.NewRegistrations)
	}
	return resp, nil
}

// LeaveTeam removes the caller from a team. A leaving leader disbands the
// team and cancels every ticket it held; a leaving member frees their seat
// and, on a complete team, their ticket only.
func (s *TeamService) LeaveTeam(userID, teamID uuid.UUID) (*LeaveTeamResponse, error) {
	outcome, err := s.teams.Leave(teamID, userID)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(map[string]interface{}{
		"team_id":   teamID,
		"user_id":   userID,
		"disbanded": outcome.Disbanded,
		"cancelled": outcome.CancelledRegistrations,
	}).Info("user left team")
	return &LeaveTeamResponse{
		Disbanded:              outcome.Disbanded,
		Demoted:                outcome.Demoted,
		CancelledRegistrations: outcome.CancelledRegistrations,
	}, nil
}

// GetMyTeam returns the caller's non-cancelled team for an event, with
// their team's confirmed tickets once complete.
func (s *TeamService) GetMyTeam(userID, eventID uuid.UUID) (*MyTeamResponse, error) {
	team, err := s.teams.GetActiveByEventAndUser(eventID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	resp := &MyTeamResponse{Team: s.toTeamResponse(team, true)}
	if team.Status == models.TeamStatusComplete {
		regs, err := s.regs.ListConfirmedByTeam(team.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load team tickets: %w", err)
		}
		event, err := s.events.GetByID(team.EventID)
		if err != nil {
			return nil, fmt.Errorf("failed to load event: %w", err)
		}
		for _, reg := range regs {
			resp.Tickets = append(resp.Tickets, toTicketResponse(&reg, event))
		}
	}
	return resp, nil
}

// GetTeam returns a team by id without the invite code
func (s *TeamService) GetTeam(teamID uuid.UUID) (*TeamResponse, error) {
	team, err := s.teams.GetWithMembers(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	resp := s.toTeamResponse(team, false)
	return &resp, nil
}

// ListTeams returns all teams for an event, invite codes withheld
func (s *TeamService) ListTeams(eventID uuid.UUID) (*TeamListResponse, error) {
	if _, err := s.events.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	teams, err := s.teams.ListByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	resp := &TeamListResponse{Teams: make([]TeamResponse, len(teams)), Total: len(teams)}
	for i := range teams {
		resp.Teams[i] = s.toTeamResponse(&teams[i], false)
	}
	return resp, nil
}

// participantAndEvent resolves the acting participant and the target event
func (s *TeamService) participantAndEvent(userID, eventID uuid.UUID) (*models.User, *models.Event, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.Role.IsParticipant() {
		return nil, nil, apperrors.ErrNotParticipant
	}
	event, err := s.events.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrEventNotFound
		}
		return nil, nil, fmt.Errorf("failed to get event: %w", err)
	}
	return user, event, nil
}

// checkRegistrationWindow enforces event status, deadline and eligibility
func (s *TeamService) checkRegistrationWindow(event *models.Event, user *models.User) error {
	if !event.Status.AcceptsRegistrations() {
		return apperrors.ErrRegistrationsClosed
	}
	if time.Now().After(event.RegistrationDeadline) {
		return apperrors.ErrDeadlinePassed
	}
	if !event.Eligibility.Allows(user.Role) {
		return apperrors.ErrNotEligible
	}
	return nil
}

// sendTicketEmails notifies every freshly ticketed member. Runs detached from
// the request; failures are logged and never affect the committed state.
func (s *TeamService) sendTicketEmails(event *models.Event, team *models.Team, regs []models.Registration) {
	ids := make([]uuid.UUID, len(regs))
	for i, reg := range regs {
		ids[i] = reg.UserID
	}
	users, err := s.users.GetByIDs(ids)
	if err != nil {
		s.log.WithError(err).WithField("team_id", team.ID).Error("failed to load members for ticket emails")
		return
	}
	byID := make(map[uuid.UUID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, reg := range regs {
		u, ok := byID[reg.UserID]
		if !ok {
			continue
		}
		err := s.notifier.SendTicketEmail(u.Email, TicketEmail{
			RecipientName: u.FullName(),
			EventName:     event.Name,
			TicketID:      reg.TicketID,
			TeamName:      team.Name,
		})
		if err != nil {
			s.log.WithError(err).WithFields(map[string]interface{}{
				"ticket_id": reg.TicketID,
				"to":        u.Email,
			}).Error("failed to send ticket email")
		}
	}
}

// toTeamResponse converts a team model to an API response
func (s *TeamService) toTeamResponse(team *models.Team, includeCode bool) TeamResponse {
	resp := TeamResponse{
		ID:          team.ID,
		EventID:     team.EventID,
		Name:        team.Name,
		LeaderID:    team.LeaderID,
		MaxSize:     team.MaxSize,
		MemberCount: len(team.Members),
		Status:      team.Status,
		CreatedAt:   team.CreatedAt,
	}
	if includeCode {
		resp.InviteCode = team.InviteCode
	}
	for _, m := range team.Members {
		member := TeamMemberResponse{
			UserID:   m.UserID,
			IsLeader: m.UserID == team.LeaderID,
			JoinedAt: m.JoinedAt,
		}
		if m.User != nil {
			member.Name = m.User.FullName()
			member.Email = m.User.Email
		}
		resp.Members = append(resp.Members, member)
	}
	return resp
}
