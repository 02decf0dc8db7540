//go:build unit || e2e

package builder

import (
	"time"
	_ "time/tzdata"

	"hall-booking/internal/domain/booking"
	reqdto "hall-booking/internal/handler/dto/request"
	sqlc "hall-booking/internal/infra/sqlc/generated"
	"hall-booking/internal/pkg/pgconv"
	"hall-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// Seoul is the organization timezone tests run in.
var Seoul = mustLoad("Asia/Seoul")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

type BookingBuilder struct {
	ID        int64
	HallID    int64
	HallName  string
	UserName  string
	UserPhone string
	Purpose   string
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        1,
		HallID:    1,
		HallName:  "Main Hall",
		UserName:  "Choir",
		UserPhone: "010-1234-5678",
		Purpose:   "Practice",
		Start:     time.Date(2024, time.March, 4, 10, 0, 0, 0, Seoul),
		End:       time.Date(2024, time.March, 4, 12, 0, 0, 0, Seoul),
		CreatedAt: time.Date(2024, time.March, 1, 9, 0, 0, 0, Seoul),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithHall(id int64, name string) *BookingBuilder {
	b.HallID = id
	b.HallName = name
	return b
}

func (b *BookingBuilder) WithUser(name, phone string) *BookingBuilder {
	b.UserName = name
	b.UserPhone = phone
	return b
}

func (b *BookingBuilder) WithPurpose(purpose string) *BookingBuilder {
	b.Purpose = purpose
	return b
}

// At places the booking on date from start to end, both HH:MM.
func (b *BookingBuilder) At(date time.Time, start, end string) *BookingBuilder {
	s, err := booking.ParseTimeOfDay(start)
	if err != nil {
		panic(err)
	}
	e, err := booking.ParseTimeOfDay(end)
	if err != nil {
		panic(err)
	}
	day := booking.DateIn(date, Seoul)
	b.Start = s.On(day)
	b.End = e.On(day)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() booking.Booking {
	return booking.Booking{
		ID:        b.ID,
		HallID:    b.HallID,
		UserName:  b.UserName,
		UserPhone: b.UserPhone,
		Purpose:   b.Purpose,
		Slot:      booking.TimeSlot{Start: b.Start, End: b.End},
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:        b.ID,
		HallID:    b.HallID,
		UserName:  b.UserName,
		UserPhone: b.UserPhone,
		Purpose:   b.Purpose,
		StartTime: pgconv.LocalTimeToPgtype(b.Start, Seoul),
		EndTime:   pgconv.LocalTimeToPgtype(b.End, Seoul),
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildViewRow() sqlc.GetBookingViewByIDRow {
	return sqlc.GetBookingViewByIDRow{
		ID:        b.ID,
		HallID:    b.HallID,
		HallName:  b.HallName,
		UserName:  b.UserName,
		UserPhone: b.UserPhone,
		Purpose:   b.Purpose,
		StartTime: pgconv.LocalTimeToPgtype(b.Start, Seoul),
		EndTime:   pgconv.LocalTimeToPgtype(b.End, Seoul),
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		HallID:    b.HallID,
		HallName:  b.HallName,
		UserName:  b.UserName,
		UserPhone: b.UserPhone,
		Purpose:   b.Purpose,
		StartTime: b.Start,
		EndTime:   b.End,
		CreatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HallID:    b.HallID,
		UserName:  b.UserName,
		UserPhone: b.UserPhone,
		Purpose:   b.Purpose,
		Date:      b.Start.Format(booking.DateLayout),
		StartTime: b.Start.Format(booking.TimeOfDayLayout),
		EndTime:   b.End.Format(booking.TimeOfDayLayout),
	}
}

func (b *BookingBuilder) BuildWeeklyRequestDTO(count int) reqdto.CreateRecurringRequest {
	return reqdto.CreateRecurringRequest{
		HallID:      b.HallID,
		UserName:    &b.UserName,
		UserPhone:   &b.UserPhone,
		Purpose:     b.Purpose,
		BaseDate:    b.Start.Format(booking.DateLayout),
		StartTime:   b.Start.Format(booking.TimeOfDayLayout),
		EndTime:     b.End.Format(booking.TimeOfDayLayout),
		Mode:        string(booking.ModeWeekly),
		WeeklyCount: &count,
	}
}
