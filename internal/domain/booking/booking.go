package booking

import (
	"time"

	"github.com/fsw-barber/booking-api/internal/httperr"
)

// ===============================
// Booking record status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusConfirmed
}

// CanCancel decides whether a stored booking may still be cancelled.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(CodeInvalidState)
	}
	return nil
}

// Cancel flips a booking into the cancelled state.
func Cancel(status Status, cancelledAt *time.Time, now time.Time) (Status, *time.Time, error) {
	if err := CanCancel(status); err != nil {
		return status, cancelledAt, err
	}
	return StatusCancelled, &now, nil
}

// ===============================
// Submission input / output
// ===============================

// Selection is everything a customer picked before hitting confirm.
// Date and Hour stay optional on purpose: the submitter is the one
// place that decides what an incomplete selection means.
type Selection struct {
	BarbershopID uint
	ServiceID    uint
	UserID       uint

	Date *time.Time
	Hour *string // "HH:mm", produced by GenerateDayTimeList

	Authenticated bool
}

// Complete reports whether both halves of the chosen instant exist. A
// slot label on its own is not a schedulable moment.
func (s Selection) Complete() bool {
	return s.Date != nil && s.Hour != nil
}

// Confirmation is what the customer sees after a successful booking.
type Confirmation struct {
	Reference  string    `json:"reference"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
	PaymentURL string    `json:"payment_url,omitempty"`
}
