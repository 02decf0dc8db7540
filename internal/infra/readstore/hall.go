package readstore

import (
	"context"

	"hall-booking/internal/infra"
	sqlc "hall-booking/internal/infra/sqlc/generated"
	"hall-booking/internal/pkg/pgconv"
	"hall-booking/internal/usecase/queries"
)

type HallReadQueries interface {
	ListHalls(ctx context.Context, db sqlc.DBTX) ([]sqlc.Halls, error)
	GetHallByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Halls, error)
}

type HallReadStore struct {
	queries HallReadQueries
	db      sqlc.DBTX
}

func NewHallReadStore(queries HallReadQueries, db sqlc.DBTX) *HallReadStore {
	return &HallReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HallReadStore) List(ctx context.Context) ([]*queries.HallView, error) {
	rows, err := r.queries.ListHalls(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list halls", err)
	}

	result := make([]*queries.HallView, len(rows))
	for i, row := range rows {
		result[i] = toHallView(row)
	}
	return result, nil
}

func (r *HallReadStore) FindByID(ctx context.Context, id int64) (*queries.HallView, error) {
	row, err := r.queries.GetHallByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hall not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hall by ID", err)
	}
	return toHallView(row), nil
}

func toHallView(row sqlc.Halls) *queries.HallView {
	return &queries.HallView{
		ID:   row.ID,
		Name: row.Name,
	}
}
