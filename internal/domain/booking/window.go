package booking

import (
	"fmt"
	"time"
)

const (
	DefaultOpenWeekday = time.Sunday
	DefaultOpenHour    = 18
)

// WindowPolicy decides from when bookings for the following month are accepted.
// The next month opens on the last OpenWeekday of the current month at OpenHour.
type WindowPolicy struct {
	Location    *time.Location
	OpenWeekday time.Weekday
	OpenHour    int
}

func NewWindowPolicy(loc *time.Location, openWeekday time.Weekday, openHour int) WindowPolicy {
	return WindowPolicy{Location: loc, OpenWeekday: openWeekday, OpenHour: openHour}
}

type Decision struct {
	Allowed bool
	Reason  string
	OpensAt *time.Time
}

// Evaluate compares calendar months in the policy location.
// Past months are closed.
func (p WindowPolicy) Evaluate(now, target time.Time) Decision {
	now = now.In(p.location())
	target = DateIn(target, p.location())

	switch diff := monthIndex(target) - monthIndex(now); {
	case diff == 0:
		return Decision{Allowed: true}
	case diff < 0:
		return Decision{Reason: fmt.Sprintf("bookings for %s are closed", target.Format("January 2006"))}
	case diff == 1:
		opensAt := p.OpensAt(now)
		if now.Before(opensAt) {
			return Decision{
				Reason:  fmt.Sprintf("bookings for %s open at %s", target.Format("January 2006"), opensAt.Format("2006-01-02 15:04")),
				OpensAt: &opensAt,
			}
		}
		return Decision{Allowed: true}
	default:
		return Decision{Reason: "bookings are permitted at most one month ahead"}
	}
}

func (p WindowPolicy) IsAdmissionOpen(now, target time.Time) bool {
	return p.Evaluate(now, target).Allowed
}

// OpensAt is the instant the month after now's month starts accepting bookings.
func (p WindowPolicy) OpensAt(now time.Time) time.Time {
	now = now.In(p.location())
	day := LastWeekdayOfMonth(now.Year(), now.Month(), p.OpenWeekday, p.location())
	return time.Date(day.Year(), day.Month(), day.Day(), p.OpenHour, 0, 0, 0, p.location())
}

func (p WindowPolicy) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// LastWeekdayOfMonth steps back from the month's final day to the latest wd.
func LastWeekdayOfMonth(year int, month time.Month, wd time.Weekday, loc *time.Location) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	gap := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.AddDate(0, 0, -gap)
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}
