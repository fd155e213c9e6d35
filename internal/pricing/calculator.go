package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/promoworks/catalog-api/internal/domain"
)

// NewQuote derives a quote from a resolved tier and a validated positive
// quantity. Totals are unit value times quantity, rounded half-up to two
// decimal places; no currency-specific rounding rules apply.
func NewQuote(variant *domain.Variant, tier *domain.PriceTier, quantity int) domain.Quote {
	qty := decimal.NewFromInt(int64(quantity))

	includes := variant.PriceIncludes
	if includes == nil {
		includes = []string{}
	}

	return domain.Quote{
		VariantID:   variant.ID,
		VariantName: variant.Name,
		Quantity:    quantity,
		PricingTier: domain.TierRef{
			Range: tier.Quantity.String(),
			From:  tier.Quantity.From,
			To:    tier.Quantity.To,
		},
		UnitPrice:     tier.Price,
		UnitCost:      tier.Cost,
		TotalPrice:    tier.Price.Mul(qty).Round(2),
		TotalCost:     tier.Cost.Mul(qty).Round(2),
		Currency:      tier.CurrencyCode,
		PriceIncludes: includes,
	}
}
