//go:build unit || e2e

package builder

import (
	"time"

	"estatebook/internal/domain/booking"
	"estatebook/internal/domain/resource"
	reqdto "estatebook/internal/handler/dto/request"
	"estatebook/internal/usecase/commands"
	"estatebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ResourceID   uuid.UUID
	ResourceName string
	GuestID      uuid.UUID
	Kind         resource.Kind
	CheckIn      time.Time
	CheckOut     time.Time
	Guests       int
	AddOns       []commands.SelectionInput
	Activities   []commands.SelectionInput
	Status       booking.Status
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	checkIn := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ResourceID:   uuid.New(),
		ResourceName: "Seaside Villa",
		GuestID:      uuid.New(),
		Kind:         resource.KindProperty,
		CheckIn:      checkIn,
		CheckOut:     checkIn.AddDate(0, 0, 3),
		Guests:       2,
		Status:       booking.StatusPending,
		CreatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	input := commands.CreateBookingInput{
		ResourceID: b.ResourceID,
		GuestID:    b.GuestID,
		Kind:       b.Kind,
		Guests:     b.Guests,
		AddOns:     b.AddOns,
		Activities: b.Activities,
	}
	switch b.Kind {
	case resource.KindProperty:
		input.Stay = &commands.StayInput{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
	case resource.KindActivity:
		input.Visit = &commands.VisitInput{Date: b.CheckIn, DurationDays: 1}
	}
	return input
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		ResourceID: b.ResourceID,
		Kind:       string(b.Kind),
		Guests:     b.Guests,
	}
	switch b.Kind {
	case resource.KindProperty:
		req.CheckIn = b.CheckIn.Format("2006-01-02")
		req.CheckOut = b.CheckOut.Format("2006-01-02")
	case resource.KindActivity:
		req.Date = b.CheckIn.Format("2006-01-02")
		req.DurationDays = 1
	}
	return req
}

func (b *BookingBuilder) BuildResourceSnapshot() *commands.ResourceSnapshot {
	return &commands.ResourceSnapshot{
		ID:               b.ResourceID,
		Kind:             b.Kind,
		Name:             b.ResourceName,
		BasePriceCents:   10000,
		MaxOccupancy:     4,
		MinimumStay:      1,
		CleaningFeeCents: 5000,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	nights := int(b.CheckOut.Sub(b.CheckIn) / (24 * time.Hour))
	return &queries.BookingView{
		ID:           uuid.New(),
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		Kind:         string(b.Kind),
		GuestID:      b.GuestID,
		GuestCount:   b.Guests,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Status:       string(b.Status),
		Breakdown: queries.PriceBreakdownView{
			Nights:        nights,
			SubtotalCents: int64(nights) * 10000,
			CleaningCents: 5000,
			Currency:      "USD",
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           uuid.New(),
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		Kind:         string(b.Kind),
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Status:       string(b.Status),
		TotalCents:   44700,
		CreatedAt:    b.CreatedAt,
	}
}
