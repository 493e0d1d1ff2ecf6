package pricing

import (
	"math"

	"estatebook/internal/domain/booking"
	"estatebook/internal/domain/resource"
)

// Calculator maps (resource rate card, stay, selections, rate rules) to a
// price breakdown. It is a pure function of its inputs: no clock, no I/O, no
// randomness. Client previews and the committed server total must agree to the
// cent, so rounding happens at each stage, not once at the end.
type Calculator interface {
	QuoteProperty(res *resource.Resource, nights int, addOns []booking.AddOnSelection, activities []booking.ActivitySelection, rates RateRules) booking.PriceBreakdown
	QuoteActivity(res *resource.Resource, participants int, addOns []booking.AddOnSelection, activities []booking.ActivitySelection, rates RateRules) booking.PriceBreakdown
}

type StandardCalculator struct{}

func NewStandardCalculator() *StandardCalculator {
	return &StandardCalculator{}
}

func (c *StandardCalculator) QuoteProperty(
	res *resource.Resource,
	nights int,
	addOns []booking.AddOnSelection,
	activities []booking.ActivitySelection,
	rates RateRules,
) booking.PriceBreakdown {
	subtotal := int64(nights) * res.BasePriceCents()
	return compose(nights, subtotal, res.CleaningFeeCents(), addOns, activities, rates)
}

// QuoteActivity skips the per-night terms: no nights subtotal beyond the
// per-participant base, and no cleaning fee.
func (c *StandardCalculator) QuoteActivity(
	res *resource.Resource,
	participants int,
	addOns []booking.AddOnSelection,
	activities []booking.ActivitySelection,
	rates RateRules,
) booking.PriceBreakdown {
	subtotal := int64(participants) * res.BasePriceCents()
	return compose(0, subtotal, 0, addOns, activities, rates)
}

func compose(
	nights int,
	subtotal int64,
	cleaningFee int64,
	addOns []booking.AddOnSelection,
	activities []booking.ActivitySelection,
	rates RateRules,
) booking.PriceBreakdown {
	var addOnsTotal int64
	for _, s := range addOns {
		addOnsTotal += s.TotalCents()
	}
	var activitiesTotal int64
	for _, s := range activities {
		activitiesTotal += s.TotalCents()
	}

	feeBase := subtotal + addOnsTotal + activitiesTotal + cleaningFee
	serviceFee := roundCents(float64(feeBase) * rates.ServiceFeeRate)
	taxable := feeBase + serviceFee
	tax := roundCents(float64(taxable) * rates.TaxRate)

	return booking.PriceBreakdown{
		Nights:          nights,
		SubtotalCents:   subtotal,
		AddOnsCents:     addOnsTotal,
		ActivitiesCents: activitiesTotal,
		CleaningCents:   cleaningFee,
		ServiceFeeCents: serviceFee,
		TaxCents:        tax,
		TotalCents:      taxable + tax,
		Currency:        rates.Currency,
	}
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
