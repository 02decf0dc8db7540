package queries

import (
	"context"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.ErrBookingNotFound
	ErrInvalidCursor   = errs.ErrInvalidCursor
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	FindInRange(ctx context.Context, start, end time.Time) ([]*BookingView, error)
	FindByHallInRange(ctx context.Context, hallID int64, start, end time.Time) ([]*BookingView, error)
	FindFirstPage(ctx context.Context, from *time.Time, limit int32) ([]*BookingView, error)
	FindKeyset(ctx context.Context, from *time.Time, lastStart time.Time, lastID int64, limit int32) ([]*BookingView, error)
}

// ScheduleCache stores rendered day schedules keyed by calendar date.
// Get reports the date's version on a miss; Set stores the schedule only while
// that version is current, so a schedule read before a write cannot be cached
// after the write's invalidation.
type ScheduleCache interface {
	Get(ctx context.Context, date time.Time) (schedule *DaySchedule, version int64, ok bool)
	Set(ctx context.Context, date time.Time, version int64, schedule *DaySchedule)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	// DaySchedule renders today's board when date is zero.
	DaySchedule(ctx context.Context, date time.Time) (*DaySchedule, error)
	ListBookings(ctx context.Context, filter ListBookingsFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	// ListByHallRange covers the calendar days from..to inclusive.
	ListByHallRange(ctx context.Context, hallID int64, from, to time.Time) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	halls    HallReadStore
	cache    ScheduleCache
	clock    clock.Clock
	loc      *time.Location
}

func NewBookingQueries(bookings BookingReadStore, halls HallReadStore, cache ScheduleCache, clk clock.Clock, loc *time.Location) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		halls:    halls,
		cache:    cache,
		clock:    clk,
		loc:      loc,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *bookingQueriesImpl) DaySchedule(ctx context.Context, date time.Time) (*DaySchedule, error) {
	if date.IsZero() {
		date = clock.Today(q.clock, q.loc)
	}
	day := booking.DateIn(date, q.loc)

	var version int64
	if q.cache != nil {
		cached, v, ok := q.cache.Get(ctx, day)
		if ok {
			q.localizeSchedule(cached)
			return cached, nil
		}
		version = v
	}

	halls, err := q.halls.List(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := q.bookings.FindInRange(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	byHall := make(map[int64][]*BookingView, len(halls))
	for _, row := range rows {
		byHall[row.HallID] = append(byHall[row.HallID], row)
	}

	schedule := &DaySchedule{
		Date:  day.Format(booking.DateLayout),
		Halls: make([]HallSchedule, 0, len(halls)),
	}
	for _, h := range halls {
		entries := byHall[h.ID]
		if entries == nil {
			entries = []*BookingView{}
		}
		schedule.Halls = append(schedule.Halls, HallSchedule{
			HallID:   h.ID,
			HallName: h.Name,
			Bookings: entries,
		})
	}

	if q.cache != nil {
		q.cache.Set(ctx, day, version, schedule)
	}
	return schedule, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, filter ListBookingsFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var from *time.Time
	if filter.From != nil {
		d := booking.DateIn(*filter.From, q.loc)
		from = &d
	}

	var rows []*BookingView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.bookings.FindFirstPage(ctx, from, int32(limit+1))
	} else {
		lastStart, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.bookings.FindKeyset(ctx, from, lastStart, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartTime, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *bookingQueriesImpl) ListByHallRange(ctx context.Context, hallID int64, from, to time.Time) ([]*BookingView, error) {
	span, err := booking.NewTimeSlot(booking.DateIn(from, q.loc), booking.DateIn(to, q.loc).AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	h, err := q.halls.FindByID(ctx, hallID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, err
	}

	rows, err := q.bookings.FindByHallInRange(ctx, hallID, span.Start, span.End)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row.HallName = h.Name
	}
	return rows, nil
}

// Cached schedules come back with a fixed zone from JSON.
func (q *bookingQueriesImpl) localizeSchedule(s *DaySchedule) {
	for _, hs := range s.Halls {
		for _, b := range hs.Bookings {
			b.StartTime = b.StartTime.In(q.loc)
			b.EndTime = b.EndTime.In(q.loc)
			b.CreatedAt = b.CreatedAt.In(q.loc)
		}
	}
}
