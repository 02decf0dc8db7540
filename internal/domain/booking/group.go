package booking

import (
	"slices"
)

// FindRecurringGroup returns the ids of candidates that belong to the same
// series as ref: same hall, user name, purpose and start clock time.
// The date is ignored. ref's own id is always included.
func FindRecurringGroup(ref Booking, candidates []Booking) []int64 {
	refTime := TimeOfDayOf(ref.Slot.Start)

	ids := []int64{ref.ID}
	for _, c := range candidates {
		if c.HallID != ref.HallID || c.UserName != ref.UserName || c.Purpose != ref.Purpose {
			continue
		}
		if TimeOfDayOf(c.Slot.Start) != refTime {
			continue
		}
		ids = append(ids, c.ID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
