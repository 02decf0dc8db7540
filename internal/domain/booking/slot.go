package booking

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
	// LocalLayout is the naive wall-clock form timestamps are stored and shown in.
	LocalLayout = "2006-01-02T15:04:05"
)

// TimeSlot is a half-open [Start, End) interval.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{Start: start, End: end}, nil
}

func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Overlaps uses half-open semantics: touching endpoints do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start.Before(other.End) && s.End.After(other.Start)
}

type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// On places the clock time on date's calendar day in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, date.Location())
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	return t.Minute < other.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Exists reports whether the clock time occurs on date's day in date's
// location; it does not inside a daylight saving spring-forward gap.
func (t TimeOfDay) Exists(date time.Time) bool {
	return TimeOfDayOf(t.On(date)) == t
}

// SlotOn builds the interval start-end on the given day. A start or end that
// falls in a spring-forward gap is rejected rather than shifted.
func SlotOn(date time.Time, start, end TimeOfDay) (TimeSlot, error) {
	if !start.Exists(date) || !end.Exists(date) {
		return TimeSlot{}, ErrNonexistentLocalTime
	}
	return NewTimeSlot(start.On(date), end.On(date))
}

// ParseDate reads a YYYY-MM-DD calendar date as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DateIn reinterprets t's calendar date as midnight in loc.
func DateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayRange returns [midnight, next midnight) of date.
func DayRange(date time.Time) TimeSlot {
	start := DateIn(date, date.Location())
	return TimeSlot{Start: start, End: start.AddDate(0, 0, 1)}
}
