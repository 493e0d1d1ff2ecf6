package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID           uuid.UUID           `json:"id"`
	ResourceID   uuid.UUID           `json:"resource_id"`
	ResourceName string              `json:"resource_name"`
	Kind         string              `json:"kind"`
	GuestID      uuid.UUID           `json:"guest_id"`
	GuestCount   int                 `json:"guest_count"`
	CheckIn      time.Time           `json:"check_in"`
	CheckOut     time.Time           `json:"check_out"`
	Status       string              `json:"status"`
	AddOns       []SelectionView     `json:"add_ons,omitempty"`
	Activities   []SelectionView     `json:"activities,omitempty"`
	Breakdown    PriceBreakdownView  `json:"price_breakdown"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type SelectionView struct {
	ItemID         uuid.UUID `json:"item_id"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
}

type PriceBreakdownView struct {
	Nights          int    `json:"nights"`
	SubtotalCents   int64  `json:"subtotal_cents"`
	AddOnsCents     int64  `json:"add_ons_cents"`
	ActivitiesCents int64  `json:"activities_cents"`
	CleaningCents   int64  `json:"cleaning_cents"`
	ServiceFeeCents int64  `json:"service_fee_cents"`
	TaxCents        int64  `json:"tax_cents"`
	TotalCents      int64  `json:"total_cents"`
	Currency        string `json:"currency"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	Kind         string    `json:"kind"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"total_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

type ResourceView struct {
	ID                   uuid.UUID `json:"id"`
	Kind                 string    `json:"kind"`
	Name                 string    `json:"name"`
	BasePriceCents       int64     `json:"base_price_cents"`
	MaxOccupancy         int       `json:"max_occupancy"`
	MinimumStay          int       `json:"minimum_stay"`
	CleaningFeeCents     int64     `json:"cleaning_fee_cents"`
	SecurityDepositCents int64     `json:"security_deposit_cents"`
}

// DayAvailability is one calendar cell: whether the day is free and the
// nightly price a UI should show for it.
type DayAvailability struct {
	Date       time.Time `json:"date"`
	Available  bool      `json:"available"`
	PriceCents int64     `json:"price_cents"`
}
