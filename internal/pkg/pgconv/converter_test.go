//go:build unit

package pgconv_test

import (
	"fmt"
	"testing"
	"time"
	_ "time/tzdata"

	"hall-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalTimeRoundTrip(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	// 01:00 UTC is 10:00 in Seoul
	in := time.Date(2024, time.March, 4, 1, 0, 0, 0, time.UTC)

	stored := pgconv.LocalTimeToPgtype(in, seoul)
	require.True(t, stored.Valid)
	assert.Equal(t, 10, stored.Time.Hour())
	assert.Equal(t, time.UTC, stored.Time.Location())

	out := pgconv.LocalTimeFromPgtype(stored, seoul)
	assert.True(t, in.Equal(out))
	assert.Equal(t, seoul, out.Location())
	assert.Equal(t, 10, out.Hour())
}

func TestLocalTimePtrToPgtype(t *testing.T) {
	assert.False(t, pgconv.LocalTimePtrToPgtype(nil, time.UTC).Valid)
	assert.True(t, pgconv.LocalTimeFromPgtype(pgtype.Timestamp{}, time.UTC).IsZero())
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(fmt.Errorf("other")))
}
