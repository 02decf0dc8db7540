package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// LocalTimeToPgtype keeps the wall clock of t in loc and drops the zone,
// matching `timestamp without time zone` columns.
func LocalTimeToPgtype(t time.Time, loc *time.Location) pgtype.Timestamp {
	local := t.In(loc)
	return pgtype.Timestamp{
		Time:  time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), time.UTC),
		Valid: true,
	}
}

func LocalTimePtrToPgtype(t *time.Time, loc *time.Location) pgtype.Timestamp {
	if t == nil {
		return pgtype.Timestamp{Valid: false}
	}
	return LocalTimeToPgtype(*t, loc)
}

// LocalTimeFromPgtype reads a naive timestamp as wall clock in loc.
func LocalTimeFromPgtype(pt pgtype.Timestamp, loc *time.Location) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	t := pt.Time
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
