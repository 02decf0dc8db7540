package booking

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Column widths of the bookings table, in characters.
const (
	MaxUserNameLength  = 50
	MaxUserPhoneLength = 20
	MaxPurposeLength   = 200
)

// Booking is one reserved interval on a hall. ID is zero until stored.
type Booking struct {
	ID        int64
	HallID    int64
	UserName  string
	UserPhone string
	Purpose   string
	Slot      TimeSlot
}

func NewBooking(hallID int64, userName, userPhone, purpose string, slot TimeSlot) (Booking, error) {
	b := Booking{
		HallID:    hallID,
		UserName:  strings.TrimSpace(userName),
		UserPhone: strings.TrimSpace(userPhone),
		Purpose:   strings.TrimSpace(purpose),
		Slot:      slot,
	}
	if err := b.Validate(); err != nil {
		return Booking{}, err
	}
	return b, nil
}

func (b Booking) Validate() error {
	switch {
	case b.HallID <= 0:
		return ErrMissingHall
	case b.UserName == "":
		return ErrMissingUserName
	case b.UserPhone == "":
		return ErrMissingUserPhone
	case b.Purpose == "":
		return ErrMissingPurpose
	case utf8.RuneCountInString(b.UserName) > MaxUserNameLength:
		return ErrUserNameTooLong
	case utf8.RuneCountInString(b.UserPhone) > MaxUserPhoneLength:
		return ErrUserPhoneTooLong
	case utf8.RuneCountInString(b.Purpose) > MaxPurposeLength:
		return ErrPurposeTooLong
	case !b.Slot.Start.Before(b.Slot.End):
		return ErrInvalidTimeSlot
	}
	return nil
}

// Date is the calendar day the booking starts on.
func (b Booking) Date() time.Time {
	return DateIn(b.Slot.Start, b.Slot.Start.Location())
}

// Slots projects bookings onto their intervals.
func Slots(bookings []Booking) []TimeSlot {
	slots := make([]TimeSlot, len(bookings))
	for i, b := range bookings {
		slots[i] = b.Slot
	}
	return slots
}
