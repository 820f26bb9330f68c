package bookings

import (
	"errors"
	"fmt"
)

// Notification stages, in send order
const (
	StageCustomer = "customer"
	StageAdmin    = "admin"
)

// NotesPlaceholder replaces empty notes in the admin email
const NotesPlaceholder = "No additional notes."

// ErrMissingDetails is returned when a required booking field is absent.
var ErrMissingDetails = errors.New("missing required booking details")

// MissingFieldsError names the absent fields. It matches ErrMissingDetails.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMissingDetails, e.Fields)
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingDetails
}

// DeliveryError reports which notification the mail transport failed on.
// Err is the transport's own error.
type DeliveryError struct {
	Stage     string
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("send %s email to %s: %v", e.Stage, e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
