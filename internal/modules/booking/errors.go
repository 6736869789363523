package booking

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionFull      = errors.New("session is full")
	ErrScheduleConflict = errors.New("member already has a conflicting booking")
)
