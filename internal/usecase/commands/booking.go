package commands

import (
	"context"
	"log/slog"
	"time"

	"estatebook/internal/domain/booking"
	"estatebook/internal/domain/pricing"
	"estatebook/internal/domain/resource"
	"estatebook/internal/infra"
	"estatebook/internal/pkg/errs"
	"estatebook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequest     = errs.New("invalid booking request")
	ErrResourceNotFound   = errs.New("resource not found")
	ErrItemNotFound       = errs.New("selected item not found")
	ErrOccupancyExceeded  = errs.New("occupancy exceeded")
	ErrMinimumStayNotMet  = errs.New("minimum stay not met")
	ErrDateRangeConflict  = errs.New("date range conflict")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrInvalidTransition  = errs.New("invalid status transition")
	ErrPersistenceFailure = errs.New("persistence failure")
)

const commitAttempts = 3

type SelectionInput struct {
	ItemID   uuid.UUID
	Quantity int
}

type StayInput struct {
	CheckIn  time.Time
	CheckOut time.Time
}

type VisitInput struct {
	Date         time.Time
	DurationDays int
}

// CreateBookingInput is a tagged variant: Kind decides which of Stay and
// Visit must be present. Optional-field sniffing is deliberately not how
// dispatch works here.
type CreateBookingInput struct {
	ResourceID uuid.UUID
	GuestID    uuid.UUID
	Kind       resource.Kind
	Stay       *StayInput
	Visit      *VisitInput
	Guests     int
	AddOns     []SelectionInput
	Activities []SelectionInput
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*queries.BookingView, error)
	ConfirmBooking(ctx context.Context, id uuid.UUID) error
	CancelBooking(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	catalogRepo  CatalogRepository
	rateProvider RateRuleProvider
	calculator   pricing.Calculator
	bookingViews queries.BookingReadStore
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	catalogRepo CatalogRepository,
	rateProvider RateRuleProvider,
	calculator pricing.Calculator,
	bookingViews queries.BookingReadStore,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		catalogRepo:  catalogRepo,
		rateProvider: rateProvider,
		calculator:   calculator,
		bookingViews: bookingViews,
	}
}

// CreateBooking runs the attempt pipeline: structural validation, capacity,
// minimum stay, pricing from a rate snapshot taken once, then the atomic
// commit. Everything before the commit is side-effect free; the insert itself
// is the sole arbiter of date conflicts.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, input CreateBookingInput) (*queries.BookingView, error) {
	if err := validateShape(input); err != nil {
		return nil, err
	}

	res, err := c.getResource(ctx, input)
	if err != nil {
		return nil, err
	}

	if !res.CanAccommodate(input.Guests) {
		return nil, ErrOccupancyExceeded
	}

	// Rate snapshot taken once per attempt so a mid-request rate change
	// cannot diverge from what was previewed.
	rates := c.rateProvider.Current(ctx)

	addOns, activities, err := c.resolveSelections(ctx, input)
	if err != nil {
		return nil, err
	}

	entity, err := c.buildBooking(input, res, rates, addOns, activities)
	if err != nil {
		return nil, err
	}

	if err := c.checkAvailability(ctx, entity); err != nil {
		return nil, err
	}

	id, err := c.commit(ctx, entity)
	if err != nil {
		return nil, err
	}

	view, err := c.bookingViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}
	return view, nil
}

// ConfirmBooking is invoked by the external payment collaborator once payment
// settles. The interval stays occupied.
func (c *bookingCommandsImpl) ConfirmBooking(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, func(b *booking.Booking) error { return b.Confirm() })
}

// CancelBooking frees the interval immediately: the status flip removes the
// row from the exclusion predicate, so the next availability read sees it.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, func(b *booking.Booking) error { return b.Cancel() })
}

func (c *bookingCommandsImpl) transition(ctx context.Context, id uuid.UUID, apply func(*booking.Booking) error) error {
	snap, err := c.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrPersistenceFailure)
	}

	entity, err := snapshotToDomain(snap)
	if err != nil {
		return errs.Mark(err, ErrPersistenceFailure)
	}

	from := snap.Status
	if err := apply(entity); err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	if err := c.bookingRepo.UpdateStatus(ctx, id, from, entity.Status()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Lost a race against another transition on the same booking.
			return ErrInvalidTransition
		}
		return errs.Mark(err, ErrPersistenceFailure)
	}
	return nil
}

// validateShape rejects malformed input before any lookup: kind dispatch,
// required window for the kind, date ordering, positive counts. These
// failures are side-effect free and never retried automatically.
func validateShape(input CreateBookingInput) error {
	if !input.Kind.IsValid() {
		return ErrInvalidRequest
	}
	if input.GuestID == uuid.Nil || input.ResourceID == uuid.Nil {
		return ErrInvalidRequest
	}
	if input.Guests <= 0 {
		return ErrInvalidRequest
	}

	switch input.Kind {
	case resource.KindProperty:
		if input.Stay == nil {
			return ErrInvalidRequest
		}
		if _, err := booking.NewDateInterval(input.Stay.CheckIn, input.Stay.CheckOut); err != nil {
			return errs.Mark(err, ErrInvalidRequest)
		}
	case resource.KindActivity:
		if input.Visit == nil {
			return ErrInvalidRequest
		}
		if _, err := booking.NewActivityInterval(input.Visit.Date, input.Visit.DurationDays); err != nil {
			return errs.Mark(err, ErrInvalidRequest)
		}
	}
	return nil
}

func (c *bookingCommandsImpl) getResource(ctx context.Context, input CreateBookingInput) (*resource.Resource, error) {
	snap, err := c.resourceRepo.FindByID(ctx, input.ResourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	if snap.Kind != input.Kind {
		return nil, ErrInvalidRequest
	}

	minimumStay := snap.MinimumStay
	if minimumStay < 1 {
		minimumStay = c.rateProvider.Current(ctx).DefaultMinimumStay
	}

	res, err := resource.NewResource(
		snap.ID, snap.Kind, snap.Name,
		snap.BasePriceCents, snap.MaxOccupancy, minimumStay,
		snap.CleaningFeeCents, snap.SecurityDepositCents,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}
	return res, nil
}

func (c *bookingCommandsImpl) resolveSelections(
	ctx context.Context,
	input CreateBookingInput,
) ([]booking.AddOnSelection, []booking.ActivitySelection, error) {
	addOns, err := c.resolveAddOns(ctx, input.AddOns)
	if err != nil {
		return nil, nil, err
	}

	if input.Kind == resource.KindActivity && len(input.Activities) > 0 {
		// activity bookings carry add-ons only
		return nil, nil, ErrInvalidRequest
	}

	activities, err := c.resolveActivities(ctx, input.Activities)
	if err != nil {
		return nil, nil, err
	}
	return addOns, activities, nil
}

func (c *bookingCommandsImpl) resolveAddOns(ctx context.Context, selections []SelectionInput) ([]booking.AddOnSelection, error) {
	if len(selections) == 0 {
		return nil, nil
	}
	ids := selectionIDs(selections)
	if len(ids) != len(selections) {
		// duplicate item: the client must merge quantities instead
		return nil, ErrInvalidRequest
	}
	items, err := c.catalogRepo.FindAddOns(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	result := make([]booking.AddOnSelection, 0, len(selections))
	for _, sel := range selections {
		item, ok := items[sel.ItemID]
		if !ok || !item.Active {
			return nil, ErrItemNotFound
		}
		if sel.Quantity <= 0 {
			return nil, ErrInvalidRequest
		}
		result = append(result, booking.AddOnSelection{
			ItemID:         item.ID,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       sel.Quantity,
		})
	}
	return result, nil
}

func (c *bookingCommandsImpl) resolveActivities(ctx context.Context, selections []SelectionInput) ([]booking.ActivitySelection, error) {
	if len(selections) == 0 {
		return nil, nil
	}
	ids := selectionIDs(selections)
	if len(ids) != len(selections) {
		return nil, ErrInvalidRequest
	}
	items, err := c.catalogRepo.FindActivities(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	result := make([]booking.ActivitySelection, 0, len(selections))
	for _, sel := range selections {
		item, ok := items[sel.ItemID]
		if !ok || !item.Active {
			return nil, ErrItemNotFound
		}
		if sel.Quantity <= 0 {
			return nil, ErrInvalidRequest
		}
		result = append(result, booking.ActivitySelection{
			ItemID:         item.ID,
			UnitPriceCents: item.UnitPriceCents,
			Participants:   sel.Quantity,
		})
	}
	return result, nil
}

func (c *bookingCommandsImpl) buildBooking(
	input CreateBookingInput,
	res *resource.Resource,
	rates pricing.RateRules,
	addOns []booking.AddOnSelection,
	activities []booking.ActivitySelection,
) (*booking.Booking, error) {
	switch input.Kind {
	case resource.KindProperty:
		interval, err := booking.NewDateInterval(input.Stay.CheckIn, input.Stay.CheckOut)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidRequest)
		}
		if interval.Nights() < res.MinimumStay() {
			return nil, ErrMinimumStayNotMet
		}
		breakdown := c.calculator.QuoteProperty(res, interval.Nights(), addOns, activities, rates)
		entity, err := booking.NewPropertyBooking(
			res.ID(), input.GuestID, interval, input.Guests, addOns, activities, breakdown,
		)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidRequest)
		}
		return entity, nil

	case resource.KindActivity:
		breakdown := c.calculator.QuoteActivity(res, input.Guests, addOns, nil, rates)
		entity, err := booking.NewActivityBooking(
			res.ID(), input.GuestID, input.Visit.Date, input.Visit.DurationDays, input.Guests, addOns, breakdown,
		)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidRequest)
		}
		return entity, nil

	default:
		return nil, ErrInvalidRequest
	}
}

// checkAvailability is advisory: it gives a precise conflict answer before the
// insert is attempted, but the commit re-validates under the exclusion
// constraint regardless, so a stale read here is harmless.
func (c *bookingCommandsImpl) checkAvailability(ctx context.Context, entity *booking.Booking) error {
	records, err := c.bookingRepo.FindActiveIntervals(ctx, entity.ResourceID())
	if err != nil {
		return errs.Mark(err, ErrPersistenceFailure)
	}

	requested := entity.Interval()
	for _, rec := range records {
		occupied, err := booking.NewDateInterval(rec.CheckIn, rec.CheckOut)
		if err != nil {
			continue
		}
		if requested.Overlaps(occupied) {
			slog.Info("booking attempt conflicts with existing interval",
				"resource_id", entity.ResourceID(),
				"conflicting_booking_id", rec.BookingID,
			)
			return ErrDateRangeConflict
		}
	}
	return nil
}

// commit retries transient failures with bounded attempts. A conflict is
// terminal: the loser of a race gets it immediately and may retry with
// different dates on its own.
func (c *bookingCommandsImpl) commit(ctx context.Context, entity *booking.Booking) (uuid.UUID, error) {
	var lastErr error
	for attempt := 1; attempt <= commitAttempts; attempt++ {
		id, err := c.bookingRepo.Create(ctx, entity)
		if err == nil {
			return id, nil
		}
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, ErrDateRangeConflict
		}
		lastErr = err
		slog.Warn("booking commit attempt failed",
			"attempt", attempt,
			"resource_id", entity.ResourceID(),
			"error", err,
		)
		select {
		case <-ctx.Done():
			return uuid.Nil, errs.Mark(ctx.Err(), ErrPersistenceFailure)
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		}
	}
	return uuid.Nil, errs.Mark(lastErr, ErrPersistenceFailure)
}

func snapshotToDomain(snap *BookingSnapshot) (*booking.Booking, error) {
	interval, err := booking.NewDateInterval(snap.CheckIn, snap.CheckOut)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		snap.ID, snap.ResourceID, snap.Kind, snap.GuestID, snap.GuestCount,
		interval, snap.AddOns, snap.Activities, snap.Status, snap.Breakdown,
		snap.CreatedAt, snap.UpdatedAt,
	), nil
}

func selectionIDs(selections []SelectionInput) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(selections))
	seen := make(map[uuid.UUID]struct{}, len(selections))
	for _, s := range selections {
		if _, ok := seen[s.ItemID]; ok {
			continue
		}
		seen[s.ItemID] = struct{}{}
		ids = append(ids, s.ItemID)
	}
	return ids
}
