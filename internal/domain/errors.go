package domain

import "errors"

// Sentinel errors shared across the service and handler layers. Callers
// classify failures with errors.Is rather than matching message text.
var (
	ErrNotFound               = errors.New("not found")
	ErrAuthenticationRequired = errors.New("authentication error")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidToken           = errors.New("invalid token")
	ErrInvalidInput           = errors.New("invalid input")
)
