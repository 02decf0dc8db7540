//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"hall-booking/internal/infra"
	"hall-booking/internal/infra/readstore"
	sqlc "hall-booking/internal/infra/sqlc/generated"
	readstoremock "hall-booking/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHallReadStore_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockHallReadQueries(ctrl)
	store := readstore.NewHallReadStore(mockQueries, nil)

	mockQueries.EXPECT().ListHalls(ctx, gomock.Any()).Return([]sqlc.Halls{
		{ID: 1, Name: "Main Hall"},
		{ID: 2, Name: "Education Hall"},
	}, nil)

	halls, err := store.List(ctx)

	require.NoError(t, err)
	require.Len(t, halls, 2)
	assert.Equal(t, "Main Hall", halls[0].Name)
	assert.Equal(t, int64(2), halls[1].ID)
}

func TestHallReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		mockReturn sqlc.Halls
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "found", mockReturn: sqlc.Halls{ID: 3, Name: "Fellowship Room"}},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockHallReadQueries(ctrl)
			store := readstore.NewHallReadStore(mockQueries, nil)

			mockQueries.EXPECT().GetHallByID(ctx, gomock.Any(), int64(3)).Return(tt.mockReturn, tt.mockError)

			hall, err := store.FindByID(ctx, 3)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				assert.Nil(t, hall)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Fellowship Room", hall.Name)
		})
	}
}
