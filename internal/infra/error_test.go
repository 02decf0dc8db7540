//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"hall-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		expected infra.RepositoryErrorKind
	}{
		{name: "plain error", err: errors.New("connection reset"), expected: infra.KindDBFailure},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, expected: infra.KindForeignKeyViolated},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, expected: infra.KindConflict},
		{name: "explicit kind wins", err: &pgconn.PgError{Code: "23505"}, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, expected: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(err, tc.expected))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestIsKind_NotRepositoryError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("x"), infra.KindDBFailure))
}
