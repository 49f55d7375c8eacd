package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Capacity ledger primitives.
//
// Every mutation of an event's registration counter (and merchandise stock)
// goes through one of these single conditional UPDATE statements. The check
// and the increment happen in the same statement, so Postgres row-level
// atomicity serializes competing reservations; there is no read-then-write
// window in application code. The helpers take a *gorm.DB so they work both
// on a repository's own connection and inside a surrounding transaction.

// reserveCapacity atomically increments current_registrations by n if the
// result stays within registration_limit. Returns false when the event is
// missing or the reservation would exceed the limit.
func reserveCapacity(db *gorm.DB, eventID uuid.UUID, n int) (bool, error) {
	res := db.Exec(
		`UPDATE events
		 SET current_registrations = current_registrations + ?, updated_at = NOW()
		 WHERE id = ? AND current_registrations + ? <= registration_limit`,
		n, eventID, n,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// releaseCapacity atomically decrements current_registrations by n, floored at 0.
func releaseCapacity(db *gorm.DB, eventID uuid.UUID, n int) error {
	return db.Exec(
		`UPDATE events
		 SET current_registrations = GREATEST(current_registrations - ?, 0), updated_at = NOW()
		 WHERE id = ?`,
		n, eventID,
	).Error
}

// reserveStock atomically decrements stock_quantity by qty if enough remains.
func reserveStock(db *gorm.DB, eventID uuid.UUID, qty int) (bool, error) {
	res := db.Exec(
		`UPDATE events
		 SET stock_quantity = stock_quantity - ?, updated_at = NOW()
		 WHERE id = ? AND stock_quantity >= ?`,
		qty, eventID, qty,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// releaseStock atomically returns qty units to stock_quantity.
func releaseStock(db *gorm.DB, eventID uuid.UUID, qty int) error {
	return db.Exec(
		`UPDATE events
		 SET stock_quantity = stock_quantity + ?, updated_at = NOW()
		 WHERE id = ?`,
		qty, eventID,
	).Error
}
