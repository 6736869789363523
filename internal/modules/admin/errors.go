package admin

import "errors"

var (
	ErrClassNotFound      = errors.New("class not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrTrainerNotFound    = errors.New("trainer not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrHasBookings        = errors.New("existing bookings prevent deletion")
	ErrValidation         = errors.New("validation failed")
)
