package request

import (
	"errors"
	"time"

	"estatebook/internal/domain/resource"
	"estatebook/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var (
	errMissingStay  = errors.New("check_in and check_out are required for property bookings")
	errMissingVisit = errors.New("date is required for activity bookings")
	errBadDate      = errors.New("dates must be formatted as YYYY-MM-DD")
)

type SelectionRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// CreateBookingRequest is dispatched on Kind: property bookings carry a stay
// window, activity bookings a visit date with an optional duration.
type CreateBookingRequest struct {
	ResourceID   uuid.UUID          `json:"resource_id" binding:"required"`
	Kind         string             `json:"kind" binding:"required,oneof=property activity"`
	CheckIn      string             `json:"check_in,omitempty"`
	CheckOut     string             `json:"check_out,omitempty"`
	Date         string             `json:"date,omitempty"`
	DurationDays int                `json:"duration_days,omitempty"`
	Guests       int                `json:"guests" binding:"required,min=1"`
	AddOns       []SelectionRequest `json:"add_ons,omitempty"`
	Activities   []SelectionRequest `json:"activities,omitempty"`
}

func (r *CreateBookingRequest) ToInput(guestID uuid.UUID) (commands.CreateBookingInput, error) {
	input := commands.CreateBookingInput{
		ResourceID: r.ResourceID,
		GuestID:    guestID,
		Kind:       resource.Kind(r.Kind),
		Guests:     r.Guests,
		AddOns:     toSelections(r.AddOns),
		Activities: toSelections(r.Activities),
	}

	switch resource.Kind(r.Kind) {
	case resource.KindProperty:
		if r.CheckIn == "" || r.CheckOut == "" {
			return commands.CreateBookingInput{}, errMissingStay
		}
		checkIn, err := time.Parse(dateLayout, r.CheckIn)
		if err != nil {
			return commands.CreateBookingInput{}, errBadDate
		}
		checkOut, err := time.Parse(dateLayout, r.CheckOut)
		if err != nil {
			return commands.CreateBookingInput{}, errBadDate
		}
		input.Stay = &commands.StayInput{CheckIn: checkIn, CheckOut: checkOut}

	case resource.KindActivity:
		if r.Date == "" {
			return commands.CreateBookingInput{}, errMissingVisit
		}
		date, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return commands.CreateBookingInput{}, errBadDate
		}
		duration := r.DurationDays
		if duration == 0 {
			duration = 1
		}
		input.Visit = &commands.VisitInput{Date: date, DurationDays: duration}
	}

	return input, nil
}

func toSelections(reqs []SelectionRequest) []commands.SelectionInput {
	if len(reqs) == 0 {
		return nil
	}
	selections := make([]commands.SelectionInput, len(reqs))
	for i, req := range reqs {
		selections[i] = commands.SelectionInput{
			ItemID:   req.ItemID,
			Quantity: req.Quantity,
		}
	}
	return selections
}
