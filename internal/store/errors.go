package store

import "errors"

var (
	// ErrUnavailable wraps any underlying storage failure. Callers surface
	// it as a generic failure message, never silently.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrUserNotFound and ErrCredentialMismatch are distinct internally but
	// must collapse to one generic message at the API boundary.
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialMismatch = errors.New("credential mismatch")

	// ErrDuplicateUser signals a signup against an existing email.
	ErrDuplicateUser = errors.New("user already exists")
)
