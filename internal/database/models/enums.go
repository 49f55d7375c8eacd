package models

// UserRole defines the account roles on the platform
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleOrganizer UserRole = "organizer"
	UserRoleStudent   UserRole = "student"
	UserRoleExternal  UserRole = "external"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleOrganizer, UserRoleStudent, UserRoleExternal:
		return true
	}
	return false
}

// IsParticipant reports whether the role may register for events
func (r UserRole) IsParticipant() bool {
	return r == UserRoleStudent || r == UserRoleExternal
}

// EventType distinguishes normal events from merchandise sales
type EventType string

const (
	EventTypeNormal      EventType = "normal"
	EventTypeMerchandise EventType = "merchandise"
)

// IsValid checks if the EventType is valid
func (t EventType) IsValid() bool {
	return t == EventTypeNormal || t == EventTypeMerchandise
}

// EventStatus is the lifecycle state of an event
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusClosed    EventStatus = "closed"
)

// IsValid checks if the EventStatus is valid
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusOngoing, EventStatusCompleted, EventStatusClosed:
		return true
	}
	return false
}

// AcceptsRegistrations reports whether registrations and team actions are open
func (s EventStatus) AcceptsRegistrations() bool {
	return s == EventStatusPublished || s == EventStatusOngoing
}

// Eligibility restricts who may register for an event
type Eligibility string

const (
	EligibilityAll      Eligibility = "all"
	EligibilityStudents Eligibility = "students"
	EligibilityExternal Eligibility = "external"
)

// IsValid checks if the Eligibility is valid
func (e Eligibility) IsValid() bool {
	switch e {
	case EligibilityAll, EligibilityStudents, EligibilityExternal:
		return true
	}
	return false
}

// Allows reports whether a role passes this eligibility filter
func (e Eligibility) Allows(role UserRole) bool {
	switch e {
	case EligibilityStudents:
		return role == UserRoleStudent
	case EligibilityExternal:
		return role == UserRoleExternal
	default:
		return role.IsParticipant()
	}
}

// TeamStatus is the lifecycle state of a team
type TeamStatus string

const (
	TeamStatusForming   TeamStatus = "forming"
	TeamStatusComplete  TeamStatus = "complete"
	TeamStatusCancelled TeamStatus = "cancelled"
)

// IsValid checks if the TeamStatus is valid
func (s TeamStatus) IsValid() bool {
	switch s {
	case TeamStatusForming, TeamStatusComplete, TeamStatusCancelled:
		return true
	}
	return false
}

// RegistrationStatus is the lifecycle state of a registration
type RegistrationStatus string

const (
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
	RegistrationStatusCompleted RegistrationStatus = "completed"
)

// IsValid checks if the RegistrationStatus is valid
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationStatusConfirmed, RegistrationStatusCancelled, RegistrationStatusCompleted:
		return true
	}
	return false
}
