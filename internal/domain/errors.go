package domain

import "errors"

// Sentinel errors shared by the store, services and HTTP layer.
var (
	// ErrNotFound is the store's "absent" signal for unknown ids.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the principal does not own the target resource.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput is returned when a request is well-formed JSON but semantically invalid.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthenticated is returned when no valid session is present.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrDuplicateUsername   = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrNotOrganizer        = errors.New("only organizers can perform this action")
	ErrOrganizationMissing = errors.New("organizer has no organization")
	ErrAlreadyRegistered   = errors.New("already registered for this event")
	ErrAlreadySaved        = errors.New("organization already saved")
)
