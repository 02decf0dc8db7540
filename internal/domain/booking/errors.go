package booking

import (
	"fmt"
	"time"

	"hall-booking/internal/pkg/errs"
)

// ErrValidation marks every input error raised by this package.
var ErrValidation = errs.New("booking validation failed")

var (
	ErrInvalidTimeSlot      = validation("start time must be before end time")
	ErrInvalidTimeOfDay     = validation("time of day must be HH:MM")
	ErrNonexistentLocalTime = validation("time does not exist on that date (daylight saving change)")
	ErrInvalidDate          = validation("date must be YYYY-MM-DD")
	ErrMissingHall          = validation("hall is required")
	ErrMissingUserName      = validation("user name is required")
	ErrMissingUserPhone     = validation("user phone is required")
	ErrMissingPurpose       = validation("purpose is required")
	ErrUserNameTooLong      = validation("user name is too long (max 50 characters)")
	ErrUserPhoneTooLong     = validation("user phone is too long (max 20 characters)")
	ErrPurposeTooLong       = validation("purpose is too long (max 200 characters)")
	ErrInvalidMode          = validation("recurrence mode must be weekly or monthly")
	ErrInvalidWeeklyCount   = validation("weekly count must be positive")
	ErrInvalidOrdinals      = validation("week ordinals must be a non-empty subset of 1..5")
	ErrEmptyRecurrence      = validation("recurrence produced no dates")
)

var ErrBookingConflict = errs.New("booking conflict")

func validation(msg string) error {
	return errs.Mark(errs.New(msg), ErrValidation)
}

// ConflictError names the first date whose candidate interval overlapped.
type ConflictError struct {
	Date time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking conflict on %s", e.Date.Format(DateLayout))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrBookingConflict
}

var ErrBookingWindowClosed = errs.New("booking window closed")

// WindowClosedError carries the gate's refusal for a single booking.
type WindowClosedError struct {
	Reason  string
	OpensAt *time.Time
}

func (e *WindowClosedError) Error() string {
	return e.Reason
}

func (e *WindowClosedError) Is(target error) bool {
	return target == ErrBookingWindowClosed
}

// Err returns nil when d allows the booking.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &WindowClosedError{Reason: d.Reason, OpensAt: d.OpensAt}
}
