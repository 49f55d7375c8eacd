package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"event-portal-backend/internal/config"
	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/logger"
	"event-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// studentEmailDomain is the institution domain that marks a student account
const studentEmailDomain = "@students.edu"

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID       uuid.UUID       `json:"user_id"`
	Email        string          `json:"email"`
	Role         models.UserRole `json:"role"`
	Organization string          `json:"organization,omitempty"`
	jwt.RegisteredClaims
}

// AuthService issues and validates tokens and handles participant signup
// and login.
type AuthService struct {
	users     repository.UserRepositoryInterface
	secret    []byte
	expiry    time.Duration
	validator *validator.Validate
	log       *logger.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(users repository.UserRepositoryInterface, cfg *config.Config, validator *validator.Validate, log *logger.Logger) *AuthService {
	return &AuthService{
		users:     users,
		secret:    []byte(cfg.JWTSecret),
		expiry:    time.Duration(cfg.JWTExpiryHrs) * time.Hour,
		validator: validator,
		log:       log,
	}
}

// RegisterRequest represents a participant signup request
type RegisterRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	FirstName     string `json:"first_name" validate:"required,max=50"`
	LastName      string `json:"last_name" validate:"max=50"`
	CollegeName   string `json:"college_name" validate:"max=100"`
	ContactNumber string `json:"contact_number" validate:"max=20"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse represents the authenticated user in API responses
type UserResponse struct {
	ID               uuid.UUID       `json:"id"`
	Email            string          `json:"email"`
	Role             models.UserRole `json:"role"`
	FirstName        string          `json:"first_name,omitempty"`
	LastName         string          `json:"last_name,omitempty"`
	CollegeName      string          `json:"college_name,omitempty"`
	OrganizationName string          `json:"organization_name,omitempty"`
}

// TokenResponse carries the issued token and the user it belongs to
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

// Register creates a participant account. The role is derived from the email
// domain: institution addresses become students, everyone else external.
// Admin and organizer accounts are provisioned, never self-registered.
func (s *AuthService) Register(req *RegisterRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := models.UserRoleExternal
	if strings.HasSuffix(email, studentEmailDomain) {
		role = models.UserRoleStudent
	}

	user := &models.User{
		Email:         email,
		PasswordHash:  hash,
		Role:          role,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		CollegeName:   req.CollegeName,
		ContactNumber: req.ContactNumber,
		IsActive:      true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.log.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("participant registered")

	return s.tokenResponse(user)
}

// Login authenticates a user by email and password. Disabled or archived
// organizer accounts are rejected.
func (s *AuthService) Login(req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.IsArchived {
		return nil, apperrors.ErrAccountArchived
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.tokenResponse(user)
}

// GetUser returns the profile of an authenticated user
func (s *AuthService) GetUser(userID uuid.UUID) (*UserResponse, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// IssueJWT creates a signed token for the user
func (s *AuthService) IssueJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		Organization: user.OrganizationName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "event-portal-backend",
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT parses and validates a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) tokenResponse(user *models.User) (*TokenResponse, error) {
	token, err := s.IssueJWT(user)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.expiry.Seconds()),
		User:        toUserResponse(user),
	}, nil
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		Role:             user.Role,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		CollegeName:      user.CollegeName,
		OrganizationName: user.OrganizationName,
	}
}
