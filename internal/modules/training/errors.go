package training

import "errors"

var (
	ErrTrainerNotFound = errors.New("trainer does not exist")
	ErrSessionNotFound = errors.New("training session not found")
	ErrMemberConflict  = errors.New("member has a conflicting class booking")
	ErrTrainerConflict = errors.New("trainer already has a conflicting session")
	ErrInvalidStatus   = errors.New("unknown session status")
	ErrValidation      = errors.New("invalid time range")
)
