package repository

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// newInviteCode generates an 8-character uppercase hex invite code.
func newInviteCode() string {
	b := make([]byte, 4)
	rand.Read(b)
	return strings.ToUpper(hex.EncodeToString(b))
}

// newTicketID generates a ticket identifier like "TKT-3F09A1B277C4".
func newTicketID() string {
	b := make([]byte, 6)
	rand.Read(b)
	return "TKT-" + strings.ToUpper(hex.EncodeToString(b))
}

// isUniqueViolation reports whether err is a Postgres unique violation on the
// named constraint. Generated codes are retried on this.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
