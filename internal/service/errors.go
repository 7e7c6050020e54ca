package service

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAmbiguousCredentials = errors.New("ambiguous credentials")
	ErrRegistrationFailed   = errors.New("registration failed")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrValidation           = errors.New("validation failed")
	ErrDestinationNotFound  = errors.New("destination not found")
	ErrReviewValidation     = errors.New("review validation failed")
)
