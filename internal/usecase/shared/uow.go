package shared

import (
	"context"
	"time"

	"hall-booking/internal/domain/booking"
	sqlc "hall-booking/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	HallByID(ctx context.Context, id int64) (*HallSnapshot, error)
	BookingByID(ctx context.Context, id int64) (booking.Booking, error)
	BookingsByHallInRange(ctx context.Context, hallID int64, start, end time.Time) ([]booking.Booking, error)
	GroupCandidates(ctx context.Context, hallID int64, userName, purpose string) ([]booking.Booking, error)
}

type BookingRepository interface {
	LockHall(ctx context.Context, tx sqlc.DBTX, hallID int64) error
	Create(ctx context.Context, tx sqlc.DBTX, b booking.Booking) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
	DeleteByIDs(ctx context.Context, tx sqlc.DBTX, ids []int64) (int64, error)
}
