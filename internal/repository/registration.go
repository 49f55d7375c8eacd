package repository

import (
	"errors"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationRepository handles database operations for registrations.
// Solo registration and cancellation are transactional so the capacity
// counters and the registration row always move together.
type RegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// CreateConfirmed inserts a confirmed solo registration after reserving one
// capacity slot (and, for merchandise, the requested stock). Any failed
// reservation aborts the transaction with the matching conflict error.
func (r *RegistrationRepository) CreateConfirmed(reg *models.Registration) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var confirmed int64
		err := tx.Model(&models.Registration{}).
			Where("event_id = ? AND user_id = ? AND status = ?",
				reg.EventID, reg.UserID, models.RegistrationStatusConfirmed).
			Count(&confirmed).Error
		if err != nil {
			return err
		}
		if confirmed > 0 {
			return apperrors.ErrAlreadyRegistered
		}

		ok, err := reserveCapacity(tx, reg.EventID, 1)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrRegistrationFull
		}

		if reg.EventType == models.EventTypeMerchandise && reg.Quantity > 0 {
			ok, err := reserveStock(tx, reg.EventID, reg.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return apperrors.ErrInsufficientStock
			}
		}

		ticketID, err := uniqueTicketID(tx)
		if err != nil {
			return err
		}
		reg.TicketID = ticketID
		reg.Status = models.RegistrationStatusConfirmed
		return tx.Create(reg).Error
	})
}

// CancelSolo transitions a confirmed non-team registration to cancelled and
// releases what it held. Already-cancelled registrations are left untouched.
func (r *RegistrationRepository) CancelSolo(regID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var reg models.Registration
		if err := tx.First(&reg, "id = ?", regID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRegistrationNotFound
			}
			return err
		}

		// The conditional update makes cancellation idempotent under
		// concurrent retries: only the caller that flips the row releases.
		res := tx.Model(&models.Registration{}).
			Where("id = ? AND status = ?", regID, models.RegistrationStatusConfirmed).
			Update("status", models.RegistrationStatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		if err := releaseCapacity(tx, reg.EventID, 1); err != nil {
			return err
		}
		if reg.EventType == models.EventTypeMerchandise && reg.Quantity > 0 {
			return releaseStock(tx, reg.EventID, reg.Quantity)
		}
		return nil
	})
}

// GetByID retrieves a registration by ID
func (r *RegistrationRepository) GetByID(id uuid.UUID) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.Preload("Event").First(&reg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetByTicketID retrieves a registration by its ticket id
func (r *RegistrationRepository) GetByTicketID(ticketID string) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.Preload("Event").Preload("User").
		First(&reg, "ticket_id = ?", ticketID).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetConfirmedByEventAndUser retrieves the user's confirmed registration for
// an event, or gorm.ErrRecordNotFound when they hold none.
func (r *RegistrationRepository) GetConfirmedByEventAndUser(eventID, userID uuid.UUID) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.
		Where("event_id = ? AND user_id = ? AND status = ?",
			eventID, userID, models.RegistrationStatusConfirmed).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// ListByUser retrieves all of a user's registrations, newest first
func (r *RegistrationRepository) ListByUser(userID uuid.UUID) ([]models.Registration, error) {
	var regs []models.Registration
	err := r.db.
		Where("user_id = ?", userID).
		Preload("Event").
		Order("created_at DESC").
		Find(&regs).Error
	return regs, err
}

// ListConfirmedByTeam retrieves the confirmed registrations issued for a team
func (r *RegistrationRepository) ListConfirmedByTeam(teamID uuid.UUID) ([]models.Registration, error) {
	var regs []models.Registration
	err := r.db.
		Where("team_id = ? AND status = ?", teamID, models.RegistrationStatusConfirmed).
		Preload("User").
		Find(&regs).Error
	return regs, err
}

// CountConfirmedByEvent returns the number of confirmed registrations for an
// event, used by tests and reconciliation checks against the event counter.
func (r *RegistrationRepository) CountConfirmedByEvent(eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).
		Where("event_id = ? AND status = ?", eventID, models.RegistrationStatusConfirmed).
		Count(&count).Error
	return count, err
}
