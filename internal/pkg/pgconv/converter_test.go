//go:build unit

package pgconv

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestDateToPgtype_NormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	in := time.Date(2026, 10, 10, 15, 30, 0, 0, loc)

	got := DateToPgtype(in)

	assert.True(t, got.Valid)
	assert.Equal(t, time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC), got.Time)
}

func TestDateFromPgtype_RoundTrip(t *testing.T) {
	d := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)

	got := DateFromPgtype(DateToPgtype(d))

	assert.Equal(t, d, got)
}

func TestDateFromPgtype_InvalidIsZero(t *testing.T) {
	assert.True(t, DateFromPgtype(pgtype.Date{}).IsZero())
	assert.True(t, TimeFromPgtype(pgtype.Timestamptz{}).IsZero())
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.False(t, IsNoRows(assert.AnError))
}
