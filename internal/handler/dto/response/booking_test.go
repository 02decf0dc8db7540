//go:build unit

package response_test

import (
	"testing"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/handler/dto/response"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBookingView(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	view := &queries.BookingView{
		ID:        7,
		HallID:    2,
		HallName:  "Education Hall",
		UserName:  "Choir",
		UserPhone: "010-1234-5678",
		Purpose:   "Practice",
		StartTime: time.Date(2024, time.March, 4, 10, 0, 0, 0, loc),
		EndTime:   time.Date(2024, time.March, 4, 11, 30, 0, 0, loc),
		CreatedAt: time.Date(2024, time.March, 1, 9, 15, 0, 0, loc),
	}

	actual, err := response.FromBookingView(view)

	require.NoError(t, err)
	expected := &response.BookingResponse{
		ID:        7,
		HallID:    2,
		HallName:  "Education Hall",
		UserName:  "Choir",
		UserPhone: "010-1234-5678",
		Purpose:   "Practice",
		StartTime: "2024-03-04T10:00:00",
		EndTime:   "2024-03-04T11:30:00",
		CreatedAt: "2024-03-01T09:15:00",
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestFromDaySchedule_KeepsEmptyHalls(t *testing.T) {
	s := &queries.DaySchedule{
		Date: "2024-03-04",
		Halls: []queries.HallSchedule{
			{HallID: 1, HallName: "Main Hall", Bookings: []*queries.BookingView{}},
		},
	}

	actual, err := response.FromDaySchedule(s)

	require.NoError(t, err)
	require.Len(t, actual.Halls, 1)
	assert.NotNil(t, actual.Halls[0].Bookings)
	assert.Empty(t, actual.Halls[0].Bookings)
}

func TestFromDecision(t *testing.T) {
	opens := time.Date(2024, time.March, 31, 18, 0, 0, 0, time.UTC)

	closed := response.FromDecision("2024-04-02", booking.Decision{Reason: "not yet", OpensAt: &opens})
	require.NotNil(t, closed.OpensAt)
	assert.Equal(t, "2024-03-31T18:00:00", *closed.OpensAt)
	assert.False(t, closed.Allowed)

	open := response.FromDecision("2024-03-02", booking.Decision{Allowed: true})
	assert.Nil(t, open.OpensAt)
	assert.True(t, open.Allowed)
}

func TestFromRecurringResult(t *testing.T) {
	r := &commands.CreateRecurringResult{
		BookingIDs: []int64{3, 4},
		Dates: []time.Time{
			time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
		},
	}

	actual := response.FromRecurringResult(r)

	assert.Equal(t, []string{"2024-03-04", "2024-03-11"}, actual.Dates)
	assert.Equal(t, 2, actual.Count)
}
