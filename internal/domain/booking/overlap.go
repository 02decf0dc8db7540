package booking

// Overlaps reports whether candidate intersects any of existing.
// Intervals are compared as instants, never as formatted strings.
func Overlaps(candidate TimeSlot, existing []TimeSlot) bool {
	_, found := FirstOverlap(candidate, existing)
	return found
}

// FirstOverlap returns the first existing interval that intersects candidate.
func FirstOverlap(candidate TimeSlot, existing []TimeSlot) (TimeSlot, bool) {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return e, true
		}
	}
	return TimeSlot{}, false
}
