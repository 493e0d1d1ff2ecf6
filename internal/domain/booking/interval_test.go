//go:build unit

package booking_test

import (
	"testing"
	"time"

	"estatebook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustInterval(t *testing.T, in, out time.Time) booking.DateInterval {
	t.Helper()
	iv, err := booking.NewDateInterval(in, out)
	require.NoError(t, err)
	return iv
}

func TestNewDateInterval(t *testing.T) {
	testCases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		errIs    error
		nights   int
	}{
		{
			name:     "one night stay",
			checkIn:  day(2024, 1, 10),
			checkOut: day(2024, 1, 11),
			nights:   1,
		},
		{
			name:     "multi night stay",
			checkIn:  day(2024, 1, 10),
			checkOut: day(2024, 1, 13),
			nights:   3,
		},
		{
			name:     "zero length rejected",
			checkIn:  day(2024, 1, 10),
			checkOut: day(2024, 1, 10),
			errIs:    booking.ErrInvalidDateRange,
		},
		{
			name:     "inverted range rejected",
			checkIn:  day(2024, 1, 12),
			checkOut: day(2024, 1, 10),
			errIs:    booking.ErrInvalidDateRange,
		},
		{
			name:     "time of day is truncated",
			checkIn:  time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC),
			checkOut: time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC),
			nights:   1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			iv, err := booking.NewDateInterval(tc.checkIn, tc.checkOut)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.nights, iv.Nights())
		})
	}
}

func TestDateInterval_Overlaps(t *testing.T) {
	base := mustInterval(t, day(2024, 1, 10), day(2024, 1, 13))

	testCases := []struct {
		name     string
		other    booking.DateInterval
		overlaps bool
	}{
		{
			name:     "identical range overlaps",
			other:    mustInterval(t, day(2024, 1, 10), day(2024, 1, 13)),
			overlaps: true,
		},
		{
			name:     "partial overlap at tail",
			other:    mustInterval(t, day(2024, 1, 12), day(2024, 1, 15)),
			overlaps: true,
		},
		{
			name:     "contained range overlaps",
			other:    mustInterval(t, day(2024, 1, 11), day(2024, 1, 12)),
			overlaps: true,
		},
		{
			name:     "back to back after is allowed",
			other:    mustInterval(t, day(2024, 1, 13), day(2024, 1, 15)),
			overlaps: false,
		},
		{
			name:     "back to back before is allowed",
			other:    mustInterval(t, day(2024, 1, 8), day(2024, 1, 10)),
			overlaps: false,
		},
		{
			name:     "disjoint range",
			other:    mustInterval(t, day(2024, 2, 1), day(2024, 2, 3)),
			overlaps: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			// overlap is symmetric
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base))
		})
	}
}

func TestDateInterval_OverlapProperties(t *testing.T) {
	epoch := day(2024, 1, 1)

	rapid.Check(t, func(t *rapid.T) {
		aStart := rapid.IntRange(0, 60).Draw(t, "aStart")
		aLen := rapid.IntRange(1, 30).Draw(t, "aLen")
		bStart := rapid.IntRange(0, 60).Draw(t, "bStart")
		bLen := rapid.IntRange(1, 30).Draw(t, "bLen")

		a, err := booking.NewDateInterval(epoch.AddDate(0, 0, aStart), epoch.AddDate(0, 0, aStart+aLen))
		require.NoError(t, err)
		b, err := booking.NewDateInterval(epoch.AddDate(0, 0, bStart), epoch.AddDate(0, 0, bStart+bLen))
		require.NoError(t, err)

		expected := aStart < bStart+bLen && bStart < aStart+aLen
		assert.Equal(t, expected, a.Overlaps(b))
		assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
	})
}

func TestDateInterval_ToDaterange(t *testing.T) {
	iv := mustInterval(t, day(2024, 1, 10), day(2024, 1, 13))
	assert.Equal(t, "[2024-01-10,2024-01-13)", iv.ToDaterange())
}

func TestNewActivityInterval(t *testing.T) {
	iv, err := booking.NewActivityInterval(day(2024, 3, 5), 1)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 3, 5), iv.CheckIn())
	assert.Equal(t, day(2024, 3, 6), iv.CheckOut())

	_, err = booking.NewActivityInterval(day(2024, 3, 5), 0)
	require.ErrorIs(t, err, booking.ErrInvalidDateRange)
}
