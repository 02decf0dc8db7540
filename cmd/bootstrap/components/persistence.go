package components

import (
	"hall-booking/internal/infra/readstore"
	sqlc "hall-booking/internal/infra/sqlc/generated"
	"hall-booking/internal/infra/uow"
	"hall-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Hall
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HallReadQueries)),
		),
		fx.Annotate(
			readstore.NewHallReadStore,
			fx.As(new(queries.HallReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

// Write-side repositories are built per transaction inside the UnitOfWork.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
