package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"event-portal-backend/internal/auth"
	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/logger"
	"event-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminService provisions and manages organizer accounts
type AdminService struct {
	users     repository.UserRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// Ensure AdminService implements AdminServiceInterface
var _ AdminServiceInterface = (*AdminService)(nil)

// NewAdminService creates a new admin service
func NewAdminService(users repository.UserRepositoryInterface, validator *validator.Validate, log *logger.Logger) *AdminService {
	return &AdminService{users: users, validator: validator, log: log}
}

// CreateOrganizerRequest represents the request to provision an organizer.
// Email and password are optional; missing ones are generated.
type CreateOrganizerRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=1,max=100"`
	Category         string `json:"category" validate:"max=50"`
	Description      string `json:"description" validate:"max=500"`
	Email            string `json:"email" validate:"omitempty,email"`
	Password         string `json:"password" validate:"omitempty,min=8"`
}

// OrganizerResponse represents an organizer account in API responses
type OrganizerResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	OrganizationName string    `json:"organization_name"`
	Category         string    `json:"category,omitempty"`
	Description      string    `json:"description,omitempty"`
	IsActive         bool      `json:"is_active"`
	IsArchived       bool      `json:"is_archived"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreatedOrganizerResponse carries the generated credentials. They are
// returned exactly once, at creation time.
type CreatedOrganizerResponse struct {
	Organizer OrganizerResponse `json:"organizer"`
	Email     string            `json:"email"`
	Password  string            `json:"password"`
}

// OrganizerListResponse represents a list of organizer accounts
type OrganizerListResponse struct {
	Organizers []OrganizerResponse `json:"organizers"`
	Total      int                 `json:"total"`
}

// CreateOrganizer provisions an organizer account, generating credentials
// when the request omits them.
func (s *AdminService) CreateOrganizer(req *CreateOrganizerRequest) (*CreatedOrganizerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := req.Email
	if email == "" {
		email = generatedEmail(req.OrganizationName)
	}
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	password := req.Password
	if password == "" {
		password = generatedPassword()
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	organizer := &models.User{
		Email:            email,
		PasswordHash:     hash,
		Role:             models.UserRoleOrganizer,
		OrganizationName: req.OrganizationName,
		Category:         req.Category,
		Description:      req.Description,
		IsActive:         true,
	}
	if err := s.users.Create(organizer); err != nil {
		return nil, fmt.Errorf("failed to create organizer: %w", err)
	}
	s.log.WithFields(map[string]interface{}{
		"organizer_id": organizer.ID,
		"organization": organizer.OrganizationName,
	}).Info("organizer account created")

	return &CreatedOrganizerResponse{
		Organizer: toOrganizerResponse(organizer),
		Email:     email,
		Password:  password,
	}, nil
}

// ListOrganizers lists organizer accounts with archive filters
func (s *AdminService) ListOrganizers(includeArchived, archivedOnly bool) (*OrganizerListResponse, error) {
	organizers, err := s.users.ListOrganizers(includeArchived, archivedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizers: %w", err)
	}
	resp := &OrganizerListResponse{
		Organizers: make([]OrganizerResponse, len(organizers)),
		Total:      len(organizers),
	}
	for i := range organizers {
		resp.Organizers[i] = toOrganizerResponse(&organizers[i])
	}
	return resp, nil
}

// SetOrganizerActive enables or disables an organizer's login
func (s *AdminService) SetOrganizerActive(organizerID uuid.UUID, active bool) (*OrganizerResponse, error) {
	organizer, err := s.organizer(organizerID)
	if err != nil {
		return nil, err
	}
	if organizer.IsArchived {
		return nil, apperrors.ErrAccountArchived
	}
	organizer.IsActive = active
	if err := s.users.Update(organizer); err != nil {
		return nil, fmt.Errorf("failed to update organizer: %w", err)
	}
	resp := toOrganizerResponse(organizer)
	return &resp, nil
}

// ArchiveOrganizer archives an organizer account. Archived accounts cannot
// log in and are hidden from the default listing.
func (s *AdminService) ArchiveOrganizer(organizerID uuid.UUID) (*OrganizerResponse, error) {
	organizer, err := s.organizer(organizerID)
	if err != nil {
		return nil, err
	}
	organizer.IsArchived = true
	organizer.IsActive = false
	if err := s.users.Update(organizer); err != nil {
		return nil, fmt.Errorf("failed to archive organizer: %w", err)
	}
	resp := toOrganizerResponse(organizer)
	return &resp, nil
}

func (s *AdminService) organizer(id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizerNotFound
		}
		return nil, fmt.Errorf("failed to get organizer: %w", err)
	}
	if user.Role != models.UserRoleOrganizer {
		return nil, apperrors.ErrOrganizerNotFound
	}
	return user, nil
}

// generatedEmail derives a login address from the organization name
func generatedEmail(organization string) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(organization), " ", "."))
	var clean strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			clean.WriteRune(r)
		}
	}
	suffix := make([]byte, 2)
	rand.Read(suffix)
	return fmt.Sprintf("%s.%s@events.local", clean.String(), hex.EncodeToString(suffix))
}

// generatedPassword returns a random 16-hex-char password
func generatedPassword() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// toOrganizerResponse converts a user model to an organizer response
func toOrganizerResponse(user *models.User) OrganizerResponse {
	return OrganizerResponse{
		ID:               user.ID,
		Email:            user.Email,
		OrganizationName: user.OrganizationName,
		Category:         user.Category,
		Description:      user.Description,
		IsActive:         user.IsActive,
		IsArchived:       user.IsArchived,
		CreatedAt:        user.CreatedAt,
	}
}
