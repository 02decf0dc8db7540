//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"hall-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expected: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, expected: true},
		{name: "wrapped by repository", err: infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "40001"}), expected: true},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, expected: false},
		{name: "plain error", err: errors.New("boom"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isRetryableError(tc.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: "40001"}

	assert.True(t, shouldRetry(retryable, 0, 3))
	assert.False(t, shouldRetry(retryable, 3, 3))
	assert.False(t, shouldRetry(errors.New("boom"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 3; attempt++ {
		expected := time.Duration(1<<attempt) * base
		actual := calculateBackoff(attempt, base)

		assert.GreaterOrEqual(t, actual, expected)
		assert.Less(t, actual, expected+expected/5+time.Nanosecond)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Equal(t, int64(0), cryptoRandInt63n(0))
	for i := 0; i < 50; i++ {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}
