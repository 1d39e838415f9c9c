package services

import "errors"

// Sentinel errors shared by all services; controllers map them to status
// codes with errors.Is instead of comparing message strings.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)
