package commands

import (
	"time"

	"hall-booking/internal/domain/booking"
)

// BookingPolicy bundles the organization rules the commands enforce.
type BookingPolicy struct {
	Location           *time.Location
	Window             booking.WindowPolicy
	MaxWeeklyCount     int
	RecurringUserName  string
	RecurringUserPhone string
}
