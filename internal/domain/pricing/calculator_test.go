//go:build unit

package pricing_test

import (
	"testing"

	"estatebook/internal/domain/booking"
	"estatebook/internal/domain/pricing"
	"estatebook/internal/domain/resource"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustRates(t *testing.T, serviceFee, tax float64) pricing.RateRules {
	t.Helper()
	rates, err := pricing.NewRateRules(serviceFee, tax, "USD", 1)
	require.NoError(t, err)
	return rates
}

func newProperty(t *testing.T, basePriceCents, cleaningFeeCents int64) *resource.Resource {
	t.Helper()
	res, err := resource.NewResource(
		uuid.New(), resource.KindProperty, "Seaside Villa",
		basePriceCents, 6, 1, cleaningFeeCents, 0,
	)
	require.NoError(t, err)
	return res
}

// The worked example from the pricing policy: 3 nights at $100, $50 cleaning,
// 12% service fee, 14% tax. Service fee rounds on $350 to $42.00 exactly; tax
// on $392 is $54.88, already at cent precision, so nothing moves. Total $446.88.
func TestStandardCalculator_WorkedExample(t *testing.T) {
	calc := pricing.NewStandardCalculator()
	res := newProperty(t, 10000, 5000)
	rates := mustRates(t, 0.12, 0.14)

	got := calc.QuoteProperty(res, 3, nil, nil, rates)

	want := booking.PriceBreakdown{
		Nights:          3,
		SubtotalCents:   30000,
		AddOnsCents:     0,
		ActivitiesCents: 0,
		CleaningCents:   5000,
		ServiceFeeCents: 4200,
		TaxCents:        5488,
		TotalCents:      44688,
		Currency:        "USD",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestStandardCalculator_SelectionsAndRounding(t *testing.T) {
	calc := pricing.NewStandardCalculator()
	rates := mustRates(t, 0.12, 0.14)

	t.Run("add-ons and activities feed every stage", func(t *testing.T) {
		res := newProperty(t, 10000, 5000)
		addOns := []booking.AddOnSelection{
			{ItemID: uuid.New(), UnitPriceCents: 1500, Quantity: 2}, // 3000
		}
		activities := []booking.ActivitySelection{
			{ItemID: uuid.New(), UnitPriceCents: 2500, Participants: 3}, // 7500
		}

		got := calc.QuoteProperty(res, 2, addOns, activities, rates)

		assert.Equal(t, int64(20000), got.SubtotalCents)
		assert.Equal(t, int64(3000), got.AddOnsCents)
		assert.Equal(t, int64(7500), got.ActivitiesCents)
		// fee base 35500 -> service fee 4260; taxable 39760 -> tax round(5566.4)=5566
		assert.Equal(t, int64(4260), got.ServiceFeeCents)
		assert.Equal(t, int64(5566), got.TaxCents)
		assert.Equal(t, int64(45326), got.TotalCents)
	})

	t.Run("rounding happens per stage, not once at the end", func(t *testing.T) {
		res := newProperty(t, 3333, 0)
		// fee base 3333 -> 399.96 rounds to 400; taxable 3733 -> 522.62 rounds to 523
		got := calc.QuoteProperty(res, 1, nil, nil, rates)

		assert.Equal(t, int64(400), got.ServiceFeeCents)
		assert.Equal(t, int64(523), got.TaxCents)
		assert.Equal(t, int64(4256), got.TotalCents)
	})

	t.Run("zero rates collapse to the component sum", func(t *testing.T) {
		res := newProperty(t, 10000, 5000)
		got := calc.QuoteProperty(res, 3, nil, nil, mustRates(t, 0, 0))

		assert.Zero(t, got.ServiceFeeCents)
		assert.Zero(t, got.TaxCents)
		assert.Equal(t, int64(35000), got.TotalCents)
	})
}

func TestStandardCalculator_QuoteActivity(t *testing.T) {
	calc := pricing.NewStandardCalculator()
	rates := mustRates(t, 0.12, 0.14)

	res, err := resource.NewResource(
		uuid.New(), resource.KindActivity, "Vineyard Tour",
		4000, 12, 1, 0, 0,
	)
	require.NoError(t, err)

	got := calc.QuoteActivity(res, 5, nil, nil, rates)

	// 5 participants x $40, no nights, no cleaning fee
	assert.Zero(t, got.Nights)
	assert.Zero(t, got.CleaningCents)
	assert.Equal(t, int64(20000), got.SubtotalCents)
	assert.Equal(t, int64(2400), got.ServiceFeeCents)
	assert.Equal(t, int64(3136), got.TaxCents)
	assert.Equal(t, int64(25536), got.TotalCents)
}

// Identical inputs must always yield identical totals: previews computed by
// the client path and the committed server total are compared verbatim.
func TestStandardCalculator_Deterministic(t *testing.T) {
	calc := pricing.NewStandardCalculator()

	rapid.Check(t, func(t *rapid.T) {
		basePrice := rapid.Int64Range(100, 1_000_000).Draw(t, "basePrice")
		cleaning := rapid.Int64Range(0, 50_000).Draw(t, "cleaning")
		nights := rapid.IntRange(1, 30).Draw(t, "nights")
		feeRate := rapid.Float64Range(0, 0.5).Draw(t, "feeRate")
		taxRate := rapid.Float64Range(0, 0.5).Draw(t, "taxRate")

		res, err := resource.NewResource(
			uuid.New(), resource.KindProperty, "prop", basePrice, 8, 1, cleaning, 0,
		)
		require.NoError(t, err)
		rates, err := pricing.NewRateRules(feeRate, taxRate, "USD", 1)
		require.NoError(t, err)

		addOns := []booking.AddOnSelection{
			{ItemID: uuid.New(), UnitPriceCents: rapid.Int64Range(0, 10_000).Draw(t, "addOnPrice"), Quantity: rapid.IntRange(1, 5).Draw(t, "addOnQty")},
		}

		first := calc.QuoteProperty(res, nights, addOns, nil, rates)
		second := calc.QuoteProperty(res, nights, addOns, nil, rates)
		assert.Equal(t, first, second)

		// the total is exactly the sum of its parts
		sum := first.SubtotalCents + first.AddOnsCents + first.ActivitiesCents +
			first.CleaningCents + first.ServiceFeeCents + first.TaxCents
		assert.Equal(t, sum, first.TotalCents)
	})
}
