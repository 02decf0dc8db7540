package queries

import (
	"context"

	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/errs"
)

var ErrHallNotFound = errs.ErrHallNotFound

type HallReadStore interface {
	List(ctx context.Context) ([]*HallView, error)
	FindByID(ctx context.Context, id int64) (*HallView, error)
}

type HallQueries interface {
	ListHalls(ctx context.Context) ([]*HallView, error)
	GetByID(ctx context.Context, id int64) (*HallView, error)
}

type hallQueriesImpl struct {
	store HallReadStore
}

func NewHallQueries(store HallReadStore) HallQueries {
	return &hallQueriesImpl{store: store}
}

func (q *hallQueriesImpl) ListHalls(ctx context.Context) ([]*HallView, error) {
	return q.store.List(ctx)
}

func (q *hallQueriesImpl) GetByID(ctx context.Context, id int64) (*HallView, error) {
	h, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, err
	}
	return h, nil
}
