package utils

import "errors"

var (
	ErrInvalidParameters = errors.New("missing or invalid parameters")
	ErrMethodNotAllowed  = errors.New("method not allowed")
	ErrGenerationFailed  = errors.New("meal plan generation failed")
	ErrHallNotFound      = errors.New("dining hall not found")
	ErrDatabaseError     = errors.New("database error")
)
