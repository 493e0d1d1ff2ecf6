package booking

import (
	"errors"
	"time"

	"estatebook/internal/domain/resource"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveGuests = errors.New("guest count must be positive")
	ErrInvalidSelection  = errors.New("selection quantity must be positive")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrKindMismatch      = errors.New("booking kind does not match resource kind")
)

// Booking is a committed reservation. The variant is tagged by kind: property
// bookings span [checkIn, checkOut), activity bookings occupy the activity
// date for its duration. Both are stored as the same half-open interval so the
// overlap rule is uniform.
type Booking struct {
	id         uuid.UUID
	resourceID uuid.UUID
	kind       resource.Kind
	guestID    uuid.UUID
	guestCount int
	interval   DateInterval
	addOns     []AddOnSelection
	activities []ActivitySelection
	status     Status
	breakdown  PriceBreakdown
	createdAt  time.Time
	updatedAt  time.Time
}

// NewPropertyBooking creates a pending stay. Callers are expected to have
// resolved occupancy and minimum-stay rules against the resource already;
// this constructor only enforces what any booking must satisfy.
func NewPropertyBooking(
	resourceID uuid.UUID,
	guestID uuid.UUID,
	interval DateInterval,
	guestCount int,
	addOns []AddOnSelection,
	activities []ActivitySelection,
	breakdown PriceBreakdown,
) (*Booking, error) {
	if err := validateCounts(guestCount, addOns, activities); err != nil {
		return nil, err
	}
	return &Booking{
		id:         uuid.New(),
		resourceID: resourceID,
		kind:       resource.KindProperty,
		guestID:    guestID,
		guestCount: guestCount,
		interval:   interval,
		addOns:     addOns,
		activities: activities,
		status:     StatusPending,
		breakdown:  breakdown,
	}, nil
}

func NewActivityBooking(
	resourceID uuid.UUID,
	guestID uuid.UUID,
	date time.Time,
	durationDays int,
	participants int,
	addOns []AddOnSelection,
	breakdown PriceBreakdown,
) (*Booking, error) {
	interval, err := NewActivityInterval(date, durationDays)
	if err != nil {
		return nil, err
	}
	if err := validateCounts(participants, addOns, nil); err != nil {
		return nil, err
	}
	return &Booking{
		id:         uuid.New(),
		resourceID: resourceID,
		kind:       resource.KindActivity,
		guestID:    guestID,
		guestCount: participants,
		interval:   interval,
		addOns:     addOns,
		status:     StatusPending,
		breakdown:  breakdown,
	}, nil
}

func ReconstructBooking(
	id, resourceID uuid.UUID,
	kind resource.Kind,
	guestID uuid.UUID,
	guestCount int,
	interval DateInterval,
	addOns []AddOnSelection,
	activities []ActivitySelection,
	status Status,
	breakdown PriceBreakdown,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		resourceID: resourceID,
		kind:       kind,
		guestID:    guestID,
		guestCount: guestCount,
		interval:   interval,
		addOns:     addOns,
		activities: activities,
		status:     status,
		breakdown:  breakdown,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Confirm is driven by the external payment confirmation event. The interval
// stays occupied.
func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	return nil
}

// Cancel frees the interval from the moment it is applied.
func (b *Booking) Cancel() error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) Complete() error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.OccupiesInterval()
}

func validateCounts(count int, addOns []AddOnSelection, activities []ActivitySelection) error {
	if count <= 0 {
		return ErrNonPositiveGuests
	}
	for _, s := range addOns {
		if s.Quantity <= 0 || s.UnitPriceCents < 0 {
			return ErrInvalidSelection
		}
	}
	for _, s := range activities {
		if s.Participants <= 0 || s.UnitPriceCents < 0 {
			return ErrInvalidSelection
		}
	}
	return nil
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) ResourceID() uuid.UUID            { return b.resourceID }
func (b *Booking) Kind() resource.Kind              { return b.kind }
func (b *Booking) GuestID() uuid.UUID               { return b.guestID }
func (b *Booking) GuestCount() int                  { return b.guestCount }
func (b *Booking) Interval() DateInterval           { return b.interval }
func (b *Booking) AddOns() []AddOnSelection         { return b.addOns }
func (b *Booking) Activities() []ActivitySelection  { return b.activities }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) Breakdown() PriceBreakdown        { return b.breakdown }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }
