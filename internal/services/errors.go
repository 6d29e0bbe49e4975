package services

import (
	"errors"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Sentinel errors returned by the service layer. Handlers map them to HTTP
// status codes with errors.Is.
var (
	// ErrNotFound covers both a missing meal and a meal owned by another
	// user; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a unique-constraint violation (username or email
	// already taken).
	ErrConflict = errors.New("already exists")

	// ErrValidation signals a malformed or out-of-range request payload.
	ErrValidation = errors.New("validation failed")

	// ErrNoSession signals a missing or unresolvable session token.
	ErrNoSession = errors.New("no session")
)

// translateErr maps store-level errors onto the service taxonomy. Unique
// and primary-key constraint violations become ErrConflict; everything else
// passes through unchanged.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ErrConflict
		}
	}
	return err
}
