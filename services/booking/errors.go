// File: services/booking/errors.go
package booking

import (
	"errors"
	"fmt"
)

const (
	CodeDuplicateBooking = "DUPLICATE_BOOKING"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeDataUnavailable  = "DATA_UNAVAILABLE"
)

// BookingError carries a stable code so callers can tell a user-facing
// rejection from a store fault.
type BookingError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

// NewDuplicateBookingError names the conflicting date in the message; the
// frontend shows it verbatim.
func NewDuplicateBookingError(date string) error {
	return &BookingError{
		Code:    CodeDuplicateBooking,
		Message: fmt.Sprintf("You already have a booking on %s", date),
	}
}

func NewInvalidReferenceError(msg string) error {
	return &BookingError{Code: CodeInvalidReference, Message: msg}
}

func NewDataUnavailableError(msg string, err error) error {
	return &BookingError{Code: CodeDataUnavailable, Message: msg, Err: err}
}

// AsBookingError unwraps err into a *BookingError when possible.
func AsBookingError(err error) (*BookingError, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
