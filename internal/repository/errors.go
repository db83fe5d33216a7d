package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint hits.
const uniqueViolation = "23505"

// constraintFields maps unique index names to the wire name of the
// offending field, so conflict messages can name what collided.
var constraintFields = map[string]string{
	"idx_admins_username":      "username",
	"idx_wardens_warden_id":    "wardenId",
	"idx_wardens_email":        "email",
	"idx_guards_guard_id":      "guardId",
	"idx_students_roll_number": "rollNumber",
}

// ConflictError reports a unique-key collision surfaced by the store.
// Every uniqueness-constrained write path funnels through DuplicateKey so
// the "<field> already exists" message is produced in exactly one place.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// DuplicateKey translates a store error into a *ConflictError when it is a
// unique-constraint violation; any other error passes through unchanged.
func DuplicateKey(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		field, ok := constraintFields[pgErr.ConstraintName]
		if !ok {
			field = "field"
		}
		return &ConflictError{Field: field}
	}
	return err
}

// AsConflict unwraps a *ConflictError if err carries one.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
