//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hall-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestFindRecurringGroup(t *testing.T) {
	mk := func(id, hallID int64, name, purpose string, day, hour, minute int) booking.Booking {
		start := at(day, hour, minute)
		return booking.Booking{
			ID:        id,
			HallID:    hallID,
			UserName:  name,
			UserPhone: "010",
			Purpose:   purpose,
			Slot:      booking.TimeSlot{Start: start, End: start.Add(time.Hour)},
		}
	}

	a := mk(1, 1, "Choir", "Practice", 4, 10, 0)
	b := mk(2, 1, "Choir", "Practice", 11, 10, 0)
	c := mk(3, 1, "Choir", "Practice", 18, 11, 0)
	otherHall := mk(4, 2, "Choir", "Practice", 18, 10, 0)
	otherPurpose := mk(5, 1, "Choir", "Concert", 25, 10, 0)
	otherName := mk(6, 1, "Youth", "Practice", 25, 10, 0)
	sameMinuteOff := mk(7, 1, "Choir", "Practice", 25, 10, 30)

	t.Run("groups by hall name purpose and start time", func(t *testing.T) {
		candidates := []booking.Booking{c, b, otherHall, otherPurpose, otherName, sameMinuteOff, a}

		assert.Equal(t, []int64{1, 2}, booking.FindRecurringGroup(a, candidates))
	})

	t.Run("reference is included even when not a candidate", func(t *testing.T) {
		assert.Equal(t, []int64{1, 2}, booking.FindRecurringGroup(a, []booking.Booking{b}))
		assert.Equal(t, []int64{3}, booking.FindRecurringGroup(c, nil))
	})
}
