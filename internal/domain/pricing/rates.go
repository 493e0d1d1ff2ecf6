package pricing

import "errors"

var ErrInvalidRate = errors.New("rate must be in [0, 1)")

// RateRules is the externally configured pricing snapshot applied uniformly to
// bookings: service-fee and tax percentages, currency, and the minimum stay a
// resource falls back to when the catalog does not set one.
type RateRules struct {
	ServiceFeeRate     float64
	TaxRate            float64
	Currency           string
	DefaultMinimumStay int
}

func NewRateRules(serviceFeeRate, taxRate float64, currency string, defaultMinimumStay int) (RateRules, error) {
	if serviceFeeRate < 0 || serviceFeeRate >= 1 || taxRate < 0 || taxRate >= 1 {
		return RateRules{}, ErrInvalidRate
	}
	if currency == "" {
		currency = "USD"
	}
	if defaultMinimumStay < 1 {
		defaultMinimumStay = 1
	}
	return RateRules{
		ServiceFeeRate:     serviceFeeRate,
		TaxRate:            taxRate,
		Currency:           currency,
		DefaultMinimumStay: defaultMinimumStay,
	}, nil
}
