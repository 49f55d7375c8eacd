package testutils

import (
	"fmt"
	"time"

	"event-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Factories create persisted fixtures with sensible defaults. Override what
// the test cares about through the mutate callback.

var factorySeq int

func nextSeq() int {
	factorySeq++
	return factorySeq
}

// CreateParticipant persists a student participant
func CreateParticipant(db *gorm.DB, mutate ...func(*models.User)) *models.User {
	n := nextSeq()
	user := &models.User{
		Email:        fmt.Sprintf("participant%d@students.edu", n),
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMye.IjdQXvbvJ2Qx0iV8mOQxbCeeZl0q2u",
		Role:         models.UserRoleStudent,
		FirstName:    fmt.Sprintf("Student%d", n),
		LastName:     "Test",
		IsActive:     true,
	}
	for _, fn := range mutate {
		fn(user)
	}
	if err := db.Create(user).Error; err != nil {
		panic(fmt.Sprintf("factory: create participant: %v", err))
	}
	return user
}

// CreateOrganizer persists an organizer account
func CreateOrganizer(db *gorm.DB, mutate ...func(*models.User)) *models.User {
	n := nextSeq()
	user := &models.User{
		Email:            fmt.Sprintf("organizer%d@events.local", n),
		PasswordHash:     "$2a$10$N9qo8uLOickgx2ZMRZoMye.IjdQXvbvJ2Qx0iV8mOQxbCeeZl0q2u",
		Role:             models.UserRoleOrganizer,
		OrganizationName: fmt.Sprintf("Org %d", n),
		IsActive:         true,
	}
	for _, fn := range mutate {
		fn(user)
	}
	if err := db.Create(user).Error; err != nil {
		panic(fmt.Sprintf("factory: create organizer: %v", err))
	}
	return user
}

// CreateAdmin persists an admin account
func CreateAdmin(db *gorm.DB, mutate ...func(*models.User)) *models.User {
	n := nextSeq()
	user := &models.User{
		Email:        fmt.Sprintf("admin%d@events.local", n),
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMye.IjdQXvbvJ2Qx0iV8mOQxbCeeZl0q2u",
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	for _, fn := range mutate {
		fn(user)
	}
	if err := db.Create(user).Error; err != nil {
		panic(fmt.Sprintf("factory: create admin: %v", err))
	}
	return user
}

// CreateEvent persists a published normal event with room for 100
func CreateEvent(db *gorm.DB, organizerID uuid.UUID, mutate ...func(*models.Event)) *models.Event {
	n := nextSeq()
	now := time.Now()
	published := now.Add(-time.Hour)
	event := &models.Event{
		Name:                 fmt.Sprintf("Event %d", n),
		Type:                 models.EventTypeNormal,
		Status:               models.EventStatusPublished,
		Eligibility:          models.EligibilityAll,
		RegistrationDeadline: now.Add(24 * time.Hour),
		StartDate:            now.Add(48 * time.Hour),
		EndDate:              now.Add(72 * time.Hour),
		RegistrationLimit:    100,
		OrganizerID:          organizerID,
		PublishedAt:          &published,
	}
	for _, fn := range mutate {
		fn(event)
	}
	if err := db.Create(event).Error; err != nil {
		panic(fmt.Sprintf("factory: create event: %v", err))
	}
	return event
}

// CreateTeamEvent persists a published team-based event
func CreateTeamEvent(db *gorm.DB, organizerID uuid.UUID, maxTeamSize int, mutate ...func(*models.Event)) *models.Event {
	return CreateEvent(db, organizerID, append([]func(*models.Event){func(e *models.Event) {
		e.TeamBased = true
		e.MinTeamSize = 2
		e.MaxTeamSize = maxTeamSize
	}}, mutate...)...)
}

// CreateMerchEvent persists a published merchandise event
func CreateMerchEvent(db *gorm.DB, organizerID uuid.UUID, stock, purchaseLimit int, mutate ...func(*models.Event)) *models.Event {
	return CreateEvent(db, organizerID, append([]func(*models.Event){func(e *models.Event) {
		e.Type = models.EventTypeMerchandise
		e.StockQuantity = stock
		e.PurchaseLimit = purchaseLimit
	}}, mutate...)...)
}
