package domain

import "github.com/shopspring/decimal"

// TierRef identifies the price tier a quote was resolved against.
type TierRef struct {
	Range string `json:"range"`
	From  int    `json:"from"`
	To    int    `json:"to"`
}

// Quote is the computed result of applying a quantity to a resolved price
// tier. It is constructed per request, serialized, and discarded — never
// stored.
type Quote struct {
	VariantID     string          `json:"variant_id"`
	VariantName   string          `json:"variant_name"`
	Quantity      int             `json:"quantity"`
	PricingTier   TierRef         `json:"pricing_tier"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Currency      string          `json:"currency"`
	PriceIncludes []string        `json:"price_includes"`
}
