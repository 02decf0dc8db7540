//go:build unit

package booking_test

import (
	"errors"
	"testing"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmitBatch(t *testing.T) {
	weekly4 := baseSpec(func(s *booking.RecurrenceSpec) { s.WeeklyCount = 4 })

	t.Run("all dates free", func(t *testing.T) {
		existing := []booking.TimeSlot{
			// touches the 11th candidate at 12:00
			{Start: at(11, 12, 0), End: at(11, 13, 0)},
			// other day, same hours
			{Start: at(5, 10, 0), End: at(5, 12, 0)},
		}

		accepted, err := booking.AdmitBatch(weekly4, existing)

		require.NoError(t, err)
		require.Len(t, accepted, 4)
		for i, b := range accepted {
			assert.Zero(t, b.ID)
			assert.Equal(t, int64(1), b.HallID)
			assert.Equal(t, "Choir", b.UserName)
			assert.Equal(t, "Practice", b.Purpose)
			assert.True(t, at(4+7*i, 10, 0).Equal(b.Slot.Start))
			assert.True(t, at(4+7*i, 12, 0).Equal(b.Slot.End))
		}
	})

	t.Run("third date conflicts so nothing is admitted", func(t *testing.T) {
		existing := []booking.TimeSlot{{Start: at(18, 11, 0), End: at(18, 13, 0)}}

		accepted, err := booking.AdmitBatch(weekly4, existing)

		require.Error(t, err)
		assert.Nil(t, accepted)
		var conflict *booking.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.True(t, date(2024, time.March, 18).Equal(conflict.Date))
		assert.ErrorIs(t, err, booking.ErrBookingConflict)
		assert.Contains(t, err.Error(), "2024-03-18")
	})

	t.Run("reports the earliest conflicting date", func(t *testing.T) {
		existing := []booking.TimeSlot{
			{Start: at(25, 9, 0), End: at(25, 11, 0)},
			{Start: at(11, 11, 30), End: at(11, 12, 30)},
		}

		_, err := booking.AdmitBatch(weekly4, existing)

		var conflict *booking.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.True(t, date(2024, time.March, 11).Equal(conflict.Date))
	})

	t.Run("invalid spec is a validation error", func(t *testing.T) {
		spec := baseSpec(func(s *booking.RecurrenceSpec) { s.WeeklyCount = 0 })

		accepted, err := booking.AdmitBatch(spec, nil)

		assert.Nil(t, accepted)
		assert.True(t, errs.Is(err, booking.ErrValidation))
	})

	t.Run("monthly series", func(t *testing.T) {
		spec := baseSpec(func(s *booking.RecurrenceSpec) {
			s.Mode = booking.ModeMonthly
			s.WeekOrdinals = []int{2}
		})

		accepted, err := booking.AdmitBatch(spec, nil)

		require.NoError(t, err)
		require.Len(t, accepted, booking.MonthlyHorizonMonths)
		for i := 1; i < len(accepted); i++ {
			assert.False(t, accepted[i].Slot.Overlaps(accepted[i-1].Slot))
			assert.True(t, accepted[i-1].Slot.Start.Before(accepted[i].Slot.Start))
		}
	})
}

func TestAdmitSingle(t *testing.T) {
	candidate, err := booking.NewBooking(1, "Choir", "010", "Practice", slot(4, 10, 12))
	require.NoError(t, err)

	t.Run("free slot", func(t *testing.T) {
		assert.NoError(t, booking.AdmitSingle(candidate, []booking.TimeSlot{slot(4, 12, 13)}))
	})

	t.Run("overlap names the date", func(t *testing.T) {
		err := booking.AdmitSingle(candidate, []booking.TimeSlot{slot(4, 11, 13)})

		var conflict *booking.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.True(t, date(2024, time.March, 4).Equal(conflict.Date))
	})

	t.Run("invalid candidate", func(t *testing.T) {
		bad := candidate
		bad.Slot = booking.TimeSlot{Start: at(4, 12, 0), End: at(4, 12, 0)}

		assert.True(t, errs.Is(booking.AdmitSingle(bad, nil), booking.ErrInvalidTimeSlot))
	})
}
