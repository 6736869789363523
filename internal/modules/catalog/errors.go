package catalog

import "errors"

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrTrainerNotFound = errors.New("trainer not found")
)
