// File: services/availability/errors.go
package availability

import "fmt"

// AvailabilityError carries a stable code alongside the message.
type AvailabilityError struct {
	Code    string
	Message string
	Err     error
}

const CodeDataUnavailable = "DATA_UNAVAILABLE"

func (e *AvailabilityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AvailabilityError) Unwrap() error {
	return e.Err
}

// NewDataUnavailableError wraps a store failure. Availability never returns
// partial results: a failed fetch surfaces as this error instead.
func NewDataUnavailableError(msg string, err error) error {
	return &AvailabilityError{
		Code:    CodeDataUnavailable,
		Message: msg,
		Err:     err,
	}
}
