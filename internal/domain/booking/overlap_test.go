//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hall-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, seoul)
}

func slot(day, startHour, endHour int) booking.TimeSlot {
	return booking.TimeSlot{Start: at(day, startHour, 0), End: at(day, endHour, 0)}
}

func TestOverlaps(t *testing.T) {
	existing := []booking.TimeSlot{slot(4, 10, 12), slot(4, 14, 16)}

	testCases := []struct {
		name      string
		candidate booking.TimeSlot
		existing  []booking.TimeSlot
		expected  bool
	}{
		{name: "empty existing set never overlaps", candidate: slot(4, 10, 12), existing: nil, expected: false},
		{name: "identical interval", candidate: slot(4, 10, 12), existing: existing, expected: true},
		{name: "ends when existing starts", candidate: slot(4, 8, 10), existing: existing, expected: false},
		{name: "starts when existing ends", candidate: slot(4, 12, 14), existing: existing, expected: false},
		{name: "partial overlap at start", candidate: slot(4, 9, 11), existing: existing, expected: true},
		{name: "partial overlap at end", candidate: slot(4, 15, 17), existing: existing, expected: true},
		{name: "contained in existing", candidate: booking.TimeSlot{Start: at(4, 10, 30), End: at(4, 11, 30)}, existing: existing, expected: true},
		{name: "contains existing", candidate: slot(4, 13, 17), existing: existing, expected: true},
		{name: "same hours on another day", candidate: slot(5, 10, 12), existing: existing, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, booking.Overlaps(tc.candidate, tc.existing))
		})
	}
}

func TestOverlaps_ComparesInstants(t *testing.T) {
	// 10:00 KST equals 01:00 UTC, so the slots are the same instant range.
	candidate := booking.TimeSlot{
		Start: time.Date(2024, time.March, 4, 1, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 4, 2, 0, 0, 0, time.UTC),
	}
	assert.True(t, booking.Overlaps(candidate, []booking.TimeSlot{slot(4, 10, 11)}))
}

func TestFirstOverlap(t *testing.T) {
	existing := []booking.TimeSlot{slot(4, 8, 9), slot(4, 10, 12), slot(4, 11, 13)}

	found, ok := booking.FirstOverlap(slot(4, 11, 12), existing)

	assert.True(t, ok)
	assert.Equal(t, existing[1], found)
}
