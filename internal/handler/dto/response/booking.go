package response

import (
	"time"

	"estatebook/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type SelectionResponse struct {
	ItemID         uuid.UUID `json:"item_id"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
}

type PriceBreakdownResponse struct {
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

type BookingResponse struct {
	ID           uuid.UUID              `json:"id"`
	ResourceID   uuid.UUID              `json:"resource_id"`
	ResourceName string                 `json:"resource_name"`
	Kind         string                 `json:"kind"`
	GuestID      uuid.UUID              `json:"guest_id"`
	GuestCount   int                    `json:"guest_count"`
	CheckIn      string                 `json:"check_in"`
	CheckOut     string                 `json:"check_out"`
	Status       string                 `json:"status"`
	AddOns       []SelectionResponse    `json:"add_ons,omitempty"`
	Activities   []SelectionResponse    `json:"activities,omitempty"`
	Breakdown    PriceBreakdownResponse `json:"price_breakdown"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

type BookingListResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	Kind         string    `json:"kind"`
	CheckIn      string    `json:"check_in"`
	CheckOut     string    `json:"check_out"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"total_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           view.ID,
		ResourceID:   view.ResourceID,
		ResourceName: view.ResourceName,
		Kind:         view.Kind,
		GuestID:      view.GuestID,
		GuestCount:   view.GuestCount,
		CheckIn:      view.CheckIn.Format(dateLayout),
		CheckOut:     view.CheckOut.Format(dateLayout),
		Status:       view.Status,
		AddOns:       fromSelectionViews(view.AddOns),
		Activities:   fromSelectionViews(view.Activities),
		Breakdown: PriceBreakdownResponse{
			Nights:          view.Breakdown.Nights,
			SubtotalCents:   view.Breakdown.SubtotalCents,
			AddOnsCents:     view.Breakdown.AddOnsCents,
			ActivitiesCents: view.Breakdown.ActivitiesCents,
			CleaningCents:   view.Breakdown.CleaningCents,
			ServiceFeeCents: view.Breakdown.ServiceFeeCents,
			TaxCents:        view.Breakdown.TaxCents,
			TotalCents:      view.Breakdown.TotalCents,
			Currency:        view.Breakdown.Currency,
		},
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:           item.ID,
		ResourceID:   item.ResourceID,
		ResourceName: item.ResourceName,
		Kind:         item.Kind,
		CheckIn:      item.CheckIn.Format(dateLayout),
		CheckOut:     item.CheckOut.Format(dateLayout),
		Status:       item.Status,
		TotalCents:   item.TotalCents,
		CreatedAt:    item.CreatedAt,
	}
}

func fromSelectionViews(views []queries.SelectionView) []SelectionResponse {
	if len(views) == 0 {
		return nil
	}
	selections := make([]SelectionResponse, len(views))
	for i, v := range views {
		selections[i] = SelectionResponse{
			ItemID:         v.ItemID,
			UnitPriceCents: v.UnitPriceCents,
			Quantity:       v.Quantity,
		}
	}
	return selections
}
