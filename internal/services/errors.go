package services

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Sentinel errors returned by the service layer. Handlers map them to HTTP
// status codes; anything else is treated as an internal error.
var (
	// ErrUsernameTaken is returned when signing up with an existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so that callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrContentNotFound is returned when no content row matches both the
	// content id and the owner.
	ErrContentNotFound = errors.New("content not found")
	// ErrShareLinkNotFound is returned for unknown or revoked share hashes.
	ErrShareLinkNotFound = errors.New("share link not found")
	// ErrUserNotFound is returned when a referenced user record is missing.
	ErrUserNotFound = errors.New("user not found")
)

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqlErr *sqlite.Error
	if errors.As(err, &sqlErr) {
		code := sqlErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
