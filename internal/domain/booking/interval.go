package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDateRange = errors.New("check-out must be after check-in")

// DateInterval is a half-open range [checkIn, checkOut) in whole days.
// Half-openness is what makes back-to-back stays legal: one booking's
// check-out day is the next booking's check-in day.
type DateInterval struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewDateInterval(checkIn, checkOut time.Time) (DateInterval, error) {
	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	if !checkOut.After(checkIn) {
		return DateInterval{}, ErrInvalidDateRange
	}
	return DateInterval{checkIn: checkIn, checkOut: checkOut}, nil
}

// NewActivityInterval builds the single-day (or multi-day) occupancy span of
// an activity booking from its date and duration in days.
func NewActivityInterval(date time.Time, durationDays int) (DateInterval, error) {
	if durationDays < 1 {
		return DateInterval{}, ErrInvalidDateRange
	}
	date = truncateToDay(date)
	return DateInterval{checkIn: date, checkOut: date.AddDate(0, 0, durationDays)}, nil
}

func (d DateInterval) CheckIn() time.Time {
	return d.checkIn
}

func (d DateInterval) CheckOut() time.Time {
	return d.checkOut
}

func (d DateInterval) Nights() int {
	return int(d.checkOut.Sub(d.checkIn) / (24 * time.Hour))
}

// Overlaps implements the half-open interval test: [a,b) and [c,d) overlap
// iff a < d && c < b.
func (d DateInterval) Overlaps(other DateInterval) bool {
	return d.checkIn.Before(other.checkOut) && other.checkIn.Before(d.checkOut)
}

func (d DateInterval) Contains(day time.Time) bool {
	day = truncateToDay(day)
	return !day.Before(d.checkIn) && day.Before(d.checkOut)
}

// ToDaterange renders the interval as a Postgres daterange literal.
func (d DateInterval) ToDaterange() string {
	return fmt.Sprintf("[%s,%s)", d.checkIn.Format(time.DateOnly), d.checkOut.Format(time.DateOnly))
}

func truncateToDay(t time.Time) time.Time {
	y, m, day := t.UTC().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
