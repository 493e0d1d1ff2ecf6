package response

import (
	"estatebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID                   uuid.UUID `json:"id"`
	Kind                 string    `json:"kind"`
	Name                 string    `json:"name"`
	BasePriceCents       int64     `json:"base_price_cents"`
	MaxOccupancy         int       `json:"max_occupancy"`
	MinimumStay          int       `json:"minimum_stay"`
	CleaningFeeCents     int64     `json:"cleaning_fee_cents"`
	SecurityDepositCents int64     `json:"security_deposit_cents"`
}

type CalendarDayResponse struct {
	Date       string `json:"date"`
	Available  bool   `json:"available"`
	PriceCents int64  `json:"price_cents"`
}

func FromResourceView(view *queries.ResourceView) *ResourceResponse {
	return &ResourceResponse{
		ID:                   view.ID,
		Kind:                 view.Kind,
		Name:                 view.Name,
		BasePriceCents:       view.BasePriceCents,
		MaxOccupancy:         view.MaxOccupancy,
		MinimumStay:          view.MinimumStay,
		CleaningFeeCents:     view.CleaningFeeCents,
		SecurityDepositCents: view.SecurityDepositCents,
	}
}

func FromCalendar(days []queries.DayAvailability) []CalendarDayResponse {
	calendar := make([]CalendarDayResponse, len(days))
	for i, d := range days {
		calendar[i] = CalendarDayResponse{
			Date:       d.Date.Format(dateLayout),
			Available:  d.Available,
			PriceCents: d.PriceCents,
		}
	}
	return calendar
}
