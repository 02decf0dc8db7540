//go:build unit

package booking_test

import (
	"slices"
	"testing"
	"time"
	_ "time/tzdata"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seoul = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		panic(err)
	}
	return loc
}()

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, seoul)
}

func baseSpec(mutate func(*booking.RecurrenceSpec)) booking.RecurrenceSpec {
	spec := booking.RecurrenceSpec{
		HallID:    1,
		UserName:  "Choir",
		UserPhone: "010-0000-0000",
		Purpose:   "Practice",
		BaseDate:  date(2024, time.March, 4),
		StartTime: booking.TimeOfDay{Hour: 10},
		EndTime:   booking.TimeOfDay{Hour: 12},
		Mode:      booking.ModeWeekly,
	}
	mutate(&spec)
	return spec
}

func TestExpand_Weekly(t *testing.T) {
	spec := baseSpec(func(s *booking.RecurrenceSpec) { s.WeeklyCount = 4 })

	actual := slices.Collect(booking.Expand(spec))

	expected := []time.Time{
		date(2024, time.March, 4),
		date(2024, time.March, 11),
		date(2024, time.March, 18),
		date(2024, time.March, 25),
	}
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.True(t, expected[i].Equal(actual[i]), "index %d: want %s got %s", i, expected[i], actual[i])
		assert.Equal(t, seoul, actual[i].Location())
	}
}

func TestExpand_WeeklyAcrossMonthBoundary(t *testing.T) {
	spec := baseSpec(func(s *booking.RecurrenceSpec) {
		s.BaseDate = date(2024, time.February, 19)
		s.WeeklyCount = 3
	})

	actual := slices.Collect(booking.Expand(spec))

	require.Len(t, actual, 3)
	assert.True(t, date(2024, time.February, 26).Equal(actual[1]))
	assert.True(t, date(2024, time.March, 4).Equal(actual[2]))
}

func TestExpand_WeeklyNonPositiveCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		spec := baseSpec(func(s *booking.RecurrenceSpec) { s.WeeklyCount = count })

		assert.Empty(t, slices.Collect(booking.Expand(spec)))
		assert.True(t, errs.Is(spec.Validate(), booking.ErrInvalidWeeklyCount))
		assert.True(t, errs.Is(spec.Validate(), booking.ErrValidation))
	}
}

func TestExpand_MonthlyFirstAndThirdMonday(t *testing.T) {
	spec := baseSpec(func(s *booking.RecurrenceSpec) {
		s.BaseDate = date(2024, time.January, 15)
		s.Mode = booking.ModeMonthly
		s.WeekOrdinals = []int{3, 1}
	})

	actual := slices.Collect(booking.Expand(spec))

	expected := []time.Time{
		date(2024, time.January, 1), date(2024, time.January, 15),
		date(2024, time.February, 5), date(2024, time.February, 19),
		date(2024, time.March, 4), date(2024, time.March, 18),
		date(2024, time.April, 1), date(2024, time.April, 15),
		date(2024, time.May, 6), date(2024, time.May, 20),
		date(2024, time.June, 3), date(2024, time.June, 17),
	}
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.True(t, expected[i].Equal(actual[i]), "index %d: want %s got %s", i, expected[i], actual[i])
		assert.Equal(t, time.Monday, actual[i].Weekday())
	}
}

func TestExpand_MonthlySkipsMissingFifthOccurrence(t *testing.T) {
	spec := baseSpec(func(s *booking.RecurrenceSpec) {
		s.BaseDate = date(2024, time.January, 15)
		s.Mode = booking.ModeMonthly
		s.WeekOrdinals = []int{5}
	})

	actual := slices.Collect(booking.Expand(spec))

	expected := []time.Time{date(2024, time.January, 29), date(2024, time.April, 29)}
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.True(t, expected[i].Equal(actual[i]))
	}
}

func TestExpand_MonthlyFebruary(t *testing.T) {
	testCases := []struct {
		name     string
		base     time.Time
		expected []time.Time
	}{
		{
			// February 2023 has exactly four Wednesdays.
			name:     "28 day february",
			base:     date(2023, time.February, 1),
			expected: []time.Time{date(2023, time.February, 22)},
		},
		{
			// February 2024 has five Thursdays.
			name:     "29 day february",
			base:     date(2024, time.February, 1),
			expected: []time.Time{date(2024, time.February, 22), date(2024, time.February, 29)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec := baseSpec(func(s *booking.RecurrenceSpec) {
				s.BaseDate = tc.base
				s.Mode = booking.ModeMonthly
				s.WeekOrdinals = []int{4, 5}
			})

			var february []time.Time
			for d := range booking.Expand(spec) {
				if d.Month() == time.February {
					february = append(february, d)
				}
			}

			require.Len(t, february, len(tc.expected))
			for i := range tc.expected {
				assert.True(t, tc.expected[i].Equal(february[i]))
			}
		})
	}
}

func TestExpand_MonthlyCoversSixMonths(t *testing.T) {
	spec := baseSpec(func(s *booking.RecurrenceSpec) {
		s.BaseDate = date(2024, time.September, 30)
		s.Mode = booking.ModeMonthly
		s.WeekOrdinals = []int{1}
	})

	actual := slices.Collect(booking.Expand(spec))

	require.Len(t, actual, 6)
	assert.Equal(t, time.September, actual[0].Month())
	assert.Equal(t, 2025, actual[5].Year())
	assert.Equal(t, time.February, actual[5].Month())
}

func TestExpand_IsRestartableAndAscending(t *testing.T) {
	spec := baseSpec(func(s *booking.RecurrenceSpec) {
		s.Mode = booking.ModeMonthly
		s.WeekOrdinals = []int{1, 2, 3, 4, 5}
	})
	seq := booking.Expand(spec)

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.True(t, slices.IsSortedFunc(first, func(a, b time.Time) int { return a.Compare(b) }))
}

func TestExpand_StopsWhenConsumerStops(t *testing.T) {
	spec := baseSpec(func(s *booking.RecurrenceSpec) { s.WeeklyCount = 52 })

	var seen int
	for range booking.Expand(spec) {
		seen++
		if seen == 2 {
			break
		}
	}

	assert.Equal(t, 2, seen)
}

func TestRecurrenceSpec_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*booking.RecurrenceSpec)
		errIs  error
	}{
		{name: "valid weekly", mutate: func(s *booking.RecurrenceSpec) { s.WeeklyCount = 1 }},
		{name: "valid monthly", mutate: func(s *booking.RecurrenceSpec) { s.Mode = booking.ModeMonthly; s.WeekOrdinals = []int{2} }},
		{name: "unknown mode", mutate: func(s *booking.RecurrenceSpec) { s.Mode = "daily" }, errIs: booking.ErrInvalidMode},
		{name: "empty ordinals", mutate: func(s *booking.RecurrenceSpec) { s.Mode = booking.ModeMonthly }, errIs: booking.ErrInvalidOrdinals},
		{name: "ordinal zero", mutate: func(s *booking.RecurrenceSpec) { s.Mode = booking.ModeMonthly; s.WeekOrdinals = []int{0} }, errIs: booking.ErrInvalidOrdinals},
		{name: "ordinal six", mutate: func(s *booking.RecurrenceSpec) { s.Mode = booking.ModeMonthly; s.WeekOrdinals = []int{1, 6} }, errIs: booking.ErrInvalidOrdinals},
		{name: "end equals start", mutate: func(s *booking.RecurrenceSpec) { s.WeeklyCount = 1; s.EndTime = s.StartTime }, errIs: booking.ErrInvalidTimeSlot},
		{name: "missing hall", mutate: func(s *booking.RecurrenceSpec) { s.WeeklyCount = 1; s.HallID = 0 }, errIs: booking.ErrMissingHall},
		{name: "blank name", mutate: func(s *booking.RecurrenceSpec) { s.WeeklyCount = 1; s.UserName = "  " }, errIs: booking.ErrMissingUserName},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := baseSpec(tc.mutate).Validate()
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
			assert.True(t, errs.Is(err, booking.ErrValidation))
		})
	}
}
