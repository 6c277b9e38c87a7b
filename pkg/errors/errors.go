package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeNotFound             = "NOT_FOUND"
	CodeRoomNotFound         = "ROOM_NOT_FOUND"
	CodeReservationNotFound  = "RESERVATION_NOT_FOUND"
	CodeDuplicateRoomNumber  = "DUPLICATE_ROOM_NUMBER"
	CodeBookingConflict      = "BOOKING_CONFLICT"
	CodeValidation           = "VALIDATION_ERROR"
	CodePersistenceWrite     = "PERSISTENCE_WRITE_FAILURE"
	CodeInvalidInput         = "INVALID_INPUT"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeInternal             = "INTERNAL_ERROR"
)

// AppError is the typed failure every domain operation returns. The
// presentation layer renders it; nothing in the domain panics or throws.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func RoomNotFound(id string) *AppError {
	return &AppError{
		Code:       CodeRoomNotFound,
		Message:    "room not found",
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"id": id},
	}
}

// RoomNumberNotFound is the by-number variant used when a reservation
// references a room that does not exist.
func RoomNumberNotFound(number int) *AppError {
	return &AppError{
		Code:       CodeRoomNotFound,
		Message:    fmt.Sprintf("room %d not found", number),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"number": number},
	}
}

func ReservationNotFound(id string) *AppError {
	return &AppError{
		Code:       CodeReservationNotFound,
		Message:    "reservation not found",
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"id": id},
	}
}

func DuplicateRoomNumber(number int) *AppError {
	return &AppError{
		Code:       CodeDuplicateRoomNumber,
		Message:    fmt.Sprintf("room number %d is already in use", number),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"number": number},
	}
}

// BookingConflict carries the conflicting reservation so the presentation
// layer can show which booking blocks the requested date range.
func BookingConflict(conflicting any) *AppError {
	return &AppError{
		Code:       CodeBookingConflict,
		Message:    "the room is already booked for an overlapping date range",
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"conflicting_reservation": conflicting},
	}
}

// Validation carries one message per failing field; all fields are checked so
// a caller can render every error at once.
func Validation(fields map[string]any) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    "validation failed",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    fields,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func PersistenceWrite(err error) *AppError {
	return &AppError{
		Code:       CodePersistenceWrite,
		Message:    "changes were applied but could not be written to durable storage",
		HTTPStatus: http.StatusOK,
		Err:        err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}
