package repository

import (
	"event-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for events, including the
// capacity ledger guarding each event's registration limit and stock.
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetWithOrganizer retrieves an event with its organizer preloaded
func (r *EventRepository) GetWithOrganizer(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("Organizer").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListOpen retrieves all events visible to participants
func (r *EventRepository) ListOpen() ([]models.Event, error) {
	var events []models.Event
	err := r.db.
		Where("status IN ?", []models.EventStatus{models.EventStatusPublished, models.EventStatusOngoing}).
		Order("start_date ASC").
		Find(&events).Error
	return events, err
}

// ListByOrganizer retrieves all events owned by an organizer
func (r *EventRepository) ListByOrganizer(organizerID uuid.UUID) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("organizer_id = ?", organizerID).Order("created_at DESC").Find(&events).Error
	return events, err
}

// Update updates an event. The ledger counters are excluded: they only move
// through the conditional UPDATEs in capacity.go, and writing back the values
// read earlier would revert reservations committed in between.
func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Omit("current_registrations", "stock_quantity").Save(event).Error
}

// Delete removes an event after cancelling every confirmed registration for it.
func (r *EventRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Registration{}).
			Where("event_id = ? AND status = ?", id, models.RegistrationStatusConfirmed).
			Update("status", models.RegistrationStatusCancelled).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, "id = ?", id).Error
	})
}

// TryReserve atomically claims n slots of the event's registration capacity.
// Returns false when the reservation would exceed the limit.
func (r *EventRepository) TryReserve(eventID uuid.UUID, n int) (bool, error) {
	return reserveCapacity(r.db, eventID, n)
}

// Release returns n slots to the event's registration capacity, floored at 0.
func (r *EventRepository) Release(eventID uuid.UUID, n int) error {
	return releaseCapacity(r.db, eventID, n)
}

// TryReserveStock atomically claims qty units of merchandise stock.
func (r *EventRepository) TryReserveStock(eventID uuid.UUID, qty int) (bool, error) {
	return reserveStock(r.db, eventID, qty)
}

// ReleaseStock returns qty units of merchandise stock.
func (r *EventRepository) ReleaseStock(eventID uuid.UUID, qty int) error {
	return releaseStock(r.db, eventID, qty)
}
