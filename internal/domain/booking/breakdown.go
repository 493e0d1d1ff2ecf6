package booking

// PriceBreakdown is the authoritative price decomposition attached to a
// booking. All values are in cents of Currency. The security deposit is
// informational and never part of TotalCents.
type PriceBreakdown struct {
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
