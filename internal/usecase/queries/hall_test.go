//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/usecase/queries"
	queriesmock "hall-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHallQueries_ListHalls(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockHallReadStore(ctrl)
	halls := []*queries.HallView{{ID: 1, Name: "Main Hall"}}
	store.EXPECT().List(ctx).Return(halls, nil)

	actual, err := queries.NewHallQueries(store).ListHalls(ctx)

	require.NoError(t, err)
	assert.Equal(t, halls, actual)
}

func TestHallQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found maps to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHallReadStore(ctrl)
		store.EXPECT().FindByID(ctx, int64(9)).Return(nil, infra.WrapRepoErr("hall not found", nil, infra.KindNotFound))

		_, err := queries.NewHallQueries(store).GetByID(ctx, 9)

		assert.True(t, errs.Is(err, queries.ErrHallNotFound))
	})

	t.Run("other errors pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHallReadStore(ctrl)
		store.EXPECT().FindByID(ctx, int64(9)).Return(nil, assert.AnError)

		_, err := queries.NewHallQueries(store).GetByID(ctx, 9)

		assert.ErrorIs(t, err, assert.AnError)
	})
}
