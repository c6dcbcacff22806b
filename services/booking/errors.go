package booking

import "fmt"

const (
	CodeValidation         = "validationError"
	CodeSlotTaken          = "slotTaken"
	CodeBackendUnavailable = "backendUnavailable"
	CodePaymentFailed      = "paymentFailed"
)

type BookingError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) error {
	return &BookingError{
		Code:    CodeValidation,
		Message: msg,
	}
}

func NewSlotTakenError(msg string) error {
	return &BookingError{
		Code:    CodeSlotTaken,
		Message: msg,
	}
}

func NewBackendError(msg string, err error) error {
	return &BookingError{
		Code:    CodeBackendUnavailable,
		Message: msg,
		Err:     err,
	}
}

func NewPaymentError(msg string, err error) error {
	return &BookingError{
		Code:    CodePaymentFailed,
		Message: msg,
		Err:     err,
	}
}
