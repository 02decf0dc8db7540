package shared

import (
	"context"
	"time"

	"hall-booking/internal/domain/booking"
)

// Write-side snapshot, independent of the query-side views
type HallSnapshot struct {
	ID   int64
	Name string
}

const (
	EventBookingCreated = "booking.created"
	EventBookingDeleted = "booking.deleted"
)

type BookingEvent struct {
	Type      string
	BookingID int64
	HallID    int64
	UserName  string
	Purpose   string
	Start     time.Time
	End       time.Time
}

func NewBookingEvent(eventType string, b booking.Booking) BookingEvent {
	return BookingEvent{
		Type:      eventType,
		BookingID: b.ID,
		HallID:    b.HallID,
		UserName:  b.UserName,
		Purpose:   b.Purpose,
		Start:     b.Slot.Start,
		End:       b.Slot.End,
	}
}

// EventPublisher announces committed booking changes.
type EventPublisher interface {
	Publish(ctx context.Context, events []BookingEvent) error
}

// ScheduleInvalidator drops cached day schedules touched by a write.
type ScheduleInvalidator interface {
	Invalidate(ctx context.Context, dates []time.Time)
}
