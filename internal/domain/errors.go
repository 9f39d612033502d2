package domain

import "errors"

var (
	ErrNameRequired      = errors.New("name is required")
	ErrMissingContact    = errors.New("please provide at least an email or phone number")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidPhone      = errors.New("invalid phone format")
	ErrGuestNameRequired = errors.New("all guest names are required")
)

var (
	ErrServiceUnavailable  = errors.New("service temporarily unavailable")
	ErrStoreNotConfigured  = errors.New("database not configured")
	ErrSheetsNotConfigured = errors.New("google sheets credentials not configured")
	ErrBadPrivateKey       = errors.New("service account private key malformed")
)

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrNoIDs           = errors.New("no ids provided")
	ErrInvalidRecordID = errors.New("invalid row id")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrSessionExpired  = errors.New("session expired")
)

var (
	ErrValidation = errors.New("validation error")
)
