package converter

import (
	"time"

	"hall-booking/internal/domain/booking"
	sqlc "hall-booking/internal/infra/sqlc/generated"
	"hall-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b booking.Booking, loc *time.Location) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		HallID:    b.HallID,
		UserName:  b.UserName,
		UserPhone: b.UserPhone,
		Purpose:   b.Purpose,
		StartTime: pgconv.LocalTimeToPgtype(b.Slot.Start, loc),
		EndTime:   pgconv.LocalTimeToPgtype(b.Slot.End, loc),
	}
}
