package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a bad input shape or value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a clash with existing state: duplicate membership
// or registration, a full team, exhausted capacity or stock
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return t.Message == "" || e.Message == t.Message
}

// StateError represents an operation that is invalid for the entity's
// current status, such as joining a non-forming team
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for StateError
func (e *StateError) Is(target error) bool {
	t, ok := target.(*StateError)
	if !ok {
		return false
	}
	return t.Message == "" || e.Message == t.Message
}

// PermissionError represents a caller acting outside their role
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for PermissionError
func (e *PermissionError) Is(target error) bool {
	t, ok := target.(*PermissionError)
	if !ok {
		return false
	}
	return t.Message == "" || e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrEventNotFound        = &NotFoundError{Entity: "event"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrRegistrationNotFound = &NotFoundError{Entity: "registration"}
	ErrOrganizerNotFound    = &NotFoundError{Entity: "organizer"}
	ErrInviteCodeInvalid    = &NotFoundError{Entity: "invite code"}
)

// Conflict Errors
var (
	ErrEmailTaken        = &ConflictError{Message: "email already registered"}
	ErrAlreadyInTeam     = &ConflictError{Message: "you are already in a team for this event"}
	ErrAlreadyRegistered = &ConflictError{Message: "you are already registered for this event"}
	ErrTeamFull          = &ConflictError{Message: "team is already full"}
	ErrCapacityExceeded  = &ConflictError{Message: "event registration limit would be exceeded"}
	ErrRegistrationFull  = &ConflictError{Message: "registration limit reached"}
	ErrInsufficientStock = &ConflictError{Message: "insufficient stock"}
	ErrPurchaseLimit     = &ConflictError{Message: "purchase limit per participant exceeded"}
)

// State Errors
var (
	ErrRegistrationsClosed = &StateError{Message: "registrations are closed for this event"}
	ErrDeadlinePassed      = &StateError{Message: "registration deadline has passed"}
	ErrTeamCancelled       = &StateError{Message: "this team has been cancelled"}
	ErrEventNotTeamBased   = &StateError{Message: "this event does not support team registration"}
	ErrEventNotEditable    = &StateError{Message: "cannot edit event in current status"}
)

// Permission Errors
var (
	ErrNotParticipant  = &PermissionError{Message: "only participants can perform this action"}
	ErrNotOrganizer    = &PermissionError{Message: "only organizers can perform this action"}
	ErrNotAdmin        = &PermissionError{Message: "only admins can perform this action"}
	ErrNotTeamMember   = &PermissionError{Message: "you are not in this team"}
	ErrNotEligible     = &PermissionError{Message: "you are not eligible for this event"}
	ErrNotEventOwner   = &PermissionError{Message: "you can only manage your own events"}
	ErrAccountDisabled = &PermissionError{Message: "this account has been disabled"}
	ErrAccountArchived = &PermissionError{Message: "this account has been archived"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsState checks if an error is a StateError
func IsState(err error) bool {
	var stateErr *StateError
	return errors.As(err, &stateErr)
}

// IsPermission checks if an error is a PermissionError
func IsPermission(err error) bool {
	var permErr *PermissionError
	return errors.As(err, &permErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewStateError creates a new StateError
func NewStateError(message string) error {
	return &StateError{Message: message}
}

// NewPermissionError creates a new PermissionError
func NewPermissionError(message string) error {
	return &PermissionError{Message: message}
}
