package entities

import "errors"

var (
	ErrInvalidEmail       = errors.New("email domain not allowed")
	ErrInvalidPhone       = errors.New("phone must be exactly 10 digits")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrVerificationFailed = errors.New("verification failed")
	ErrTooManyAttempts    = errors.New("too many attempts")
)
