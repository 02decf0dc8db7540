package readstore

import (
	"context"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	sqlc "hall-booking/internal/infra/sqlc/generated"
	"hall-booking/internal/pkg/pgconv"
	"hall-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingViewByIDRow, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Bookings, error)
	ListBookingViewsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsInRangeParams) ([]sqlc.ListBookingViewsInRangeRow, error)
	ListBookingsByHallInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByHallInRangeParams) ([]sqlc.Bookings, error)
	ListBookingViewsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsFirstPageParams) ([]sqlc.ListBookingViewsFirstPageRow, error)
	ListBookingViewsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsKeysetParams) ([]sqlc.ListBookingViewsKeysetRow, error)
	ListGroupCandidates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListGroupCandidatesParams) ([]sqlc.Bookings, error)
}

// BookingReadStore materializes the naive stored timestamps in loc.
type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX, loc *time.Location) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return r.toView(sqlc.ListBookingViewsInRangeRow(row)), nil
}

func (r *BookingReadStore) FindInRange(ctx context.Context, start, end time.Time) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsInRange(ctx, r.db, sqlc.ListBookingViewsInRangeParams{
		RangeStart: pgconv.LocalTimeToPgtype(start, r.loc),
		RangeEnd:   pgconv.LocalTimeToPgtype(end, r.loc),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings in range", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = r.toView(row)
	}
	return result, nil
}

// FindByHallInRange leaves HallName empty; callers already hold the hall.
func (r *BookingReadStore) FindByHallInRange(ctx context.Context, hallID int64, start, end time.Time) ([]*queries.BookingView, error) {
	rows, err := r.listByHallInRange(ctx, hallID, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = r.toView(sqlc.ListBookingViewsInRangeRow{
			ID:        row.ID,
			HallID:    row.HallID,
			UserName:  row.UserName,
			UserPhone: row.UserPhone,
			Purpose:   row.Purpose,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
			CreatedAt: row.CreatedAt,
		})
	}
	return result, nil
}

func (r *BookingReadStore) FindFirstPage(ctx context.Context, from *time.Time, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsFirstPage(ctx, r.db, sqlc.ListBookingViewsFirstPageParams{
		FromTime: pgconv.LocalTimePtrToPgtype(from, r.loc),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings first page", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = r.toView(sqlc.ListBookingViewsInRangeRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) FindKeyset(ctx context.Context, from *time.Time, lastStart time.Time, lastID int64, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsKeyset(ctx, r.db, sqlc.ListBookingViewsKeysetParams{
		FromTime:      pgconv.LocalTimePtrToPgtype(from, r.loc),
		LastStartTime: pgconv.LocalTimeToPgtype(lastStart, r.loc),
		LastID:        lastID,
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings keyset page", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = r.toView(sqlc.ListBookingViewsInRangeRow(row))
	}
	return result, nil
}

// Command-side reads return domain bookings.

func (r *BookingReadStore) LoadByID(ctx context.Context, id int64) (booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return booking.Booking{}, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return booking.Booking{}, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return r.toDomain(row), nil
}

func (r *BookingReadStore) LoadByHallInRange(ctx context.Context, hallID int64, start, end time.Time) ([]booking.Booking, error) {
	rows, err := r.listByHallInRange(ctx, hallID, start, end)
	if err != nil {
		return nil, err
	}
	return r.toDomainList(rows), nil
}

func (r *BookingReadStore) LoadGroupCandidates(ctx context.Context, hallID int64, userName, purpose string) ([]booking.Booking, error) {
	rows, err := r.queries.ListGroupCandidates(ctx, r.db, sqlc.ListGroupCandidatesParams{
		HallID:   hallID,
		UserName: userName,
		Purpose:  purpose,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list group candidates", err)
	}
	return r.toDomainList(rows), nil
}

func (r *BookingReadStore) listByHallInRange(ctx context.Context, hallID int64, start, end time.Time) ([]sqlc.Bookings, error) {
	rows, err := r.queries.ListBookingsByHallInRange(ctx, r.db, sqlc.ListBookingsByHallInRangeParams{
		HallID:     hallID,
		RangeStart: pgconv.LocalTimeToPgtype(start, r.loc),
		RangeEnd:   pgconv.LocalTimeToPgtype(end, r.loc),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by hall in range", err)
	}
	return rows, nil
}

func (r *BookingReadStore) toView(row sqlc.ListBookingViewsInRangeRow) *queries.BookingView {
	return &queries.BookingView{
		ID:        row.ID,
		HallID:    row.HallID,
		HallName:  row.HallName,
		UserName:  row.UserName,
		UserPhone: row.UserPhone,
		Purpose:   row.Purpose,
		StartTime: pgconv.LocalTimeFromPgtype(row.StartTime, r.loc),
		EndTime:   pgconv.LocalTimeFromPgtype(row.EndTime, r.loc),
		CreatedAt: createdAt(row.CreatedAt, r.loc),
	}
}

func (r *BookingReadStore) toDomain(row sqlc.Bookings) booking.Booking {
	return booking.Booking{
		ID:        row.ID,
		HallID:    row.HallID,
		UserName:  row.UserName,
		UserPhone: row.UserPhone,
		Purpose:   row.Purpose,
		Slot: booking.TimeSlot{
			Start: pgconv.LocalTimeFromPgtype(row.StartTime, r.loc),
			End:   pgconv.LocalTimeFromPgtype(row.EndTime, r.loc),
		},
	}
}

func (r *BookingReadStore) toDomainList(rows []sqlc.Bookings) []booking.Booking {
	result := make([]booking.Booking, len(rows))
	for i, row := range rows {
		result[i] = r.toDomain(row)
	}
	return result
}

func createdAt(ts pgtype.Timestamptz, loc *time.Location) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return pgconv.TimeFromPgtype(ts).In(loc)
}
