package repository

import (
	"context"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/repository/converter"
	sqlc "hall-booking/internal/infra/sqlc/generated"
	"hall-booking/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	LockHallByID(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	DeleteBookingsByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX, loc *time.Location) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

// LockHall takes a row lock on the hall so writers to the same hall run one at a time.
func (r *BookingRepository) LockHall(ctx context.Context, tx sqlc.DBTX, hallID int64) error {
	if _, err := r.queries.LockHallByID(ctx, tx, hallID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("hall not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock hall", err)
	}
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b booking.Booking) (int64, error) {
	id, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b, r.loc))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	rows, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) DeleteByIDs(ctx context.Context, tx sqlc.DBTX, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	rows, err := r.queries.DeleteBookingsByIDs(ctx, tx, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete bookings", err)
	}
	return rows, nil
}
