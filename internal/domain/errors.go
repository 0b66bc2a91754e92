package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique constraint would be violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnauthorized indicates a missing or invalid bearer token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden indicates a valid token acting on another user's data.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput indicates a malformed request payload.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateOrder indicates an order identifier collision.
	ErrDuplicateOrder = errors.New("duplicate order")
	// ErrInvalidReference indicates an unknown user or product reference.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrStoreUnavailable indicates the database could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)
