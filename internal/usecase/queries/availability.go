package queries

import (
	"context"
	"time"

	"estatebook/internal/infra"
	"estatebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCalendarRange = errs.New("invalid calendar range")

// Calendars are a preview surface; results may briefly trail concurrent
// commits. The commit path re-validates, so nothing here reserves anything.

const maxCalendarDays = 366

type OccupiedInterval struct {
	CheckIn  time.Time
	CheckOut time.Time
}

type AvailabilityReadStore interface {
	FindActiveIntervals(ctx context.Context, resourceID uuid.UUID) ([]OccupiedInterval, error)
}

type AvailabilityQueries interface {
	Calendar(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]DayAvailability, error)
}

type availabilityQueriesImpl struct {
	availability AvailabilityReadStore
	resources    ResourceReadStore
}

func NewAvailabilityQueries(availability AvailabilityReadStore, resources ResourceReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		availability: availability,
		resources:    resources,
	}
}

func (q *availabilityQueriesImpl) Calendar(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]DayAvailability, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)
	if !to.After(from) {
		return nil, ErrInvalidCalendarRange
	}
	days := int(to.Sub(from) / (24 * time.Hour))
	if days > maxCalendarDays {
		return nil, ErrInvalidCalendarRange
	}

	res, err := q.resources.FindByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	occupied, err := q.availability.FindActiveIntervals(ctx, resourceID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	calendar := make([]DayAvailability, days)
	for i := range calendar {
		d := from.AddDate(0, 0, i)
		calendar[i] = DayAvailability{
			Date:       d,
			Available:  !dayOccupied(d, occupied),
			PriceCents: res.BasePriceCents,
		}
	}
	return calendar, nil
}

func dayOccupied(day time.Time, occupied []OccupiedInterval) bool {
	for _, iv := range occupied {
		// half-open: the check-out day itself is free
		if !day.Before(iv.CheckIn) && day.Before(iv.CheckOut) {
			return true
		}
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
