package booking

import (
	"strings"
)

// AdmitBatch expands spec and accepts the whole series or none of it.
// Each candidate is checked against the existing bookings of the hall and
// against the candidates accepted before it. On the first overlap the batch
// is discarded and a *ConflictError naming that date is returned.
func AdmitBatch(spec RecurrenceSpec, existing []TimeSlot) ([]Booking, error) {
	dates, err := ExpandDates(spec)
	if err != nil {
		return nil, err
	}

	accepted := make([]Booking, 0, len(dates))
	taken := make([]TimeSlot, 0, len(existing)+len(dates))
	taken = append(taken, existing...)

	for _, date := range dates {
		slot, err := SlotOn(date, spec.StartTime, spec.EndTime)
		if err != nil {
			return nil, err
		}
		if Overlaps(slot, taken) {
			return nil, &ConflictError{Date: date}
		}
		accepted = append(accepted, Booking{
			HallID:    spec.HallID,
			UserName:  strings.TrimSpace(spec.UserName),
			UserPhone: strings.TrimSpace(spec.UserPhone),
			Purpose:   strings.TrimSpace(spec.Purpose),
			Slot:      slot,
		})
		taken = append(taken, slot)
	}
	return accepted, nil
}

// AdmitSingle checks one new booking against the hall's existing bookings.
func AdmitSingle(candidate Booking, existing []TimeSlot) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	if Overlaps(candidate.Slot, existing) {
		return &ConflictError{Date: candidate.Date()}
	}
	return nil
}
