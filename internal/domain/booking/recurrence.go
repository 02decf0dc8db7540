package booking

import (
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

type RecurrenceMode string

const (
	ModeWeekly  RecurrenceMode = "weekly"
	ModeMonthly RecurrenceMode = "monthly"
)

// MonthlyHorizonMonths is how many calendar months the monthly mode covers,
// counting the base month.
const MonthlyHorizonMonths = 6

const maxWeekOrdinal = 5

// RecurrenceSpec describes a series of bookings submitted at once.
// BaseDate carries the organization location; only its calendar date is used.
type RecurrenceSpec struct {
	HallID       int64
	UserName     string
	UserPhone    string
	Purpose      string
	BaseDate     time.Time
	StartTime    TimeOfDay
	EndTime      TimeOfDay
	Mode         RecurrenceMode
	WeeklyCount  int
	WeekOrdinals []int
}

func (s RecurrenceSpec) Validate() error {
	probe := Booking{
		HallID:    s.HallID,
		UserName:  strings.TrimSpace(s.UserName),
		UserPhone: strings.TrimSpace(s.UserPhone),
		Purpose:   strings.TrimSpace(s.Purpose),
	}
	// later dates of the series are checked again on admission
	if !s.StartTime.Exists(s.BaseDate) || !s.EndTime.Exists(s.BaseDate) {
		return ErrNonexistentLocalTime
	}
	probe.Slot.Start = s.StartTime.On(s.BaseDate)
	probe.Slot.End = s.EndTime.On(s.BaseDate)
	if err := probe.Validate(); err != nil {
		return err
	}

	switch s.Mode {
	case ModeWeekly:
		if s.WeeklyCount <= 0 {
			return ErrInvalidWeeklyCount
		}
	case ModeMonthly:
		if _, err := normalizeOrdinals(s.WeekOrdinals); err != nil {
			return err
		}
	default:
		return ErrInvalidMode
	}
	return nil
}

// Expand yields the series dates in ascending order. Every range over the
// returned sequence starts again from the first date. Invalid specs yield
// nothing; call Validate to learn why.
func Expand(spec RecurrenceSpec) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		rule, err := spec.rule()
		if err != nil {
			return
		}
		next := rule.Iterator()
		for {
			d, ok := next()
			if !ok || !yield(d) {
				return
			}
		}
	}
}

// ExpandDates collects Expand after validating the spec.
func ExpandDates(spec RecurrenceSpec) ([]time.Time, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	dates := slices.Collect(Expand(spec))
	if len(dates) == 0 {
		return nil, ErrEmptyRecurrence
	}
	return dates, nil
}

func (s RecurrenceSpec) rule() (*rrule.RRule, error) {
	base := DateIn(s.BaseDate, s.BaseDate.Location())

	switch s.Mode {
	case ModeWeekly:
		// Count zero means unbounded to rrule.
		if s.WeeklyCount <= 0 {
			return nil, ErrInvalidWeeklyCount
		}
		return rrule.NewRRule(rrule.ROption{
			Freq:    rrule.WEEKLY,
			Dtstart: base,
			Count:   s.WeeklyCount,
		})

	case ModeMonthly:
		ordinals, err := normalizeOrdinals(s.WeekOrdinals)
		if err != nil {
			return nil, err
		}
		wd := rruleWeekday(base.Weekday())
		byWeekday := make([]rrule.Weekday, len(ordinals))
		for i, n := range ordinals {
			byWeekday[i] = wd.Nth(n)
		}
		monthStart := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, base.Location())
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.MONTHLY,
			Dtstart:   monthStart,
			Until:     monthStart.AddDate(0, MonthlyHorizonMonths, 0).Add(-time.Second),
			Byweekday: byWeekday,
		})
	}
	return nil, ErrInvalidMode
}

func normalizeOrdinals(ordinals []int) ([]int, error) {
	if len(ordinals) == 0 {
		return nil, ErrInvalidOrdinals
	}
	out := slices.Clone(ordinals)
	for _, n := range out {
		if n < 1 || n > maxWeekOrdinal {
			return nil, ErrInvalidOrdinals
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

func rruleWeekday(wd time.Weekday) rrule.Weekday {
	switch wd {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}
