package errors

import "errors"

var (
	ErrNotFound = errors.New("room not found")

	ErrDuplicateNumber = errors.New("room number already in use")
)
