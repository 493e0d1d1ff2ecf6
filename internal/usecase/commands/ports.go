package commands

import (
	"context"
	"time"

	"estatebook/internal/domain/booking"
	"estatebook/internal/domain/pricing"
	"estatebook/internal/domain/resource"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types.

type ResourceSnapshot struct {
	ID                   uuid.UUID
	Kind                 resource.Kind
	Name                 string
	BasePriceCents       int64
	MaxOccupancy         int
	MinimumStay          int
	CleaningFeeCents     int64
	SecurityDepositCents int64
}

type CatalogItemSnapshot struct {
	ID             uuid.UUID
	Name           string
	UnitPriceCents int64
	Active         bool
}

// IntervalRecord is an occupied span returned by availability reads.
type IntervalRecord struct {
	BookingID uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
}

type BookingSnapshot struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	Kind       resource.Kind
	GuestID    uuid.UUID
	GuestCount int
	CheckIn    time.Time
	CheckOut   time.Time
	AddOns     []booking.AddOnSelection
	Activities []booking.ActivitySelection
	Status     booking.Status
	Breakdown  booking.PriceBreakdown
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BookingRepository is the availability index and the commit arbiter. Create
// must be atomic with respect to overlap: of two racing inserts for
// conflicting intervals on the same resource, at most one may succeed, the
// other must fail with a conflict-kind error. FindActiveIntervals is a plain
// read and never reserves anything.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindActiveIntervals(ctx context.Context, resourceID uuid.UUID) ([]IntervalRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// UpdateStatus persists a transition guarded by the expected current
	// status; it reports a not-found-kind error when the guard misses.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status) error
}

type ResourceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
}

type CatalogRepository interface {
	FindAddOns(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]CatalogItemSnapshot, error)
	FindActivities(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]CatalogItemSnapshot, error)
}

// RateRuleProvider supplies the current rate snapshot. Implementations must
// degrade to cached or default values instead of failing; the booking path
// never blocks on rate-config availability.
type RateRuleProvider interface {
	Current(ctx context.Context) pricing.RateRules
}
