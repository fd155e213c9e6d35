// Package pricing implements the tiered price resolution engine: selecting a
// quantity-banded price tier for a requested quantity and deriving a quote
// from it. All functions are pure and safe for concurrent use.
package pricing

import (
	"github.com/promoworks/catalog-api/internal/domain"
	apperrors "github.com/promoworks/catalog-api/pkg/errors"
)

// Resolve selects the price tier for the given quantity. Rules apply in
// priority order, first match wins:
//
//  1. The first tier, in declared order, whose band contains the quantity.
//  2. The tier with the maximum To, when the quantity clears its From — the
//     top band is open-ended above its declared upper bound.
//  3. The tier with the minimum From — quantities below (or between) the
//     declared bands are priced at the lowest band rather than rejected.
//
// Only an empty tier set fails. Ties for maximum To or minimum From break
// deterministically to the first such tier in declared order. The caller is
// responsible for validating that quantity is positive.
func Resolve(tiers []domain.PriceTier, quantity int) (*domain.PriceTier, error) {
	if len(tiers) == 0 {
		return nil, apperrors.NoPricingAvailable()
	}

	for i := range tiers {
		if tiers[i].Quantity.Contains(quantity) {
			return &tiers[i], nil
		}
	}

	last := &tiers[0]
	for i := range tiers {
		if tiers[i].Quantity.To > last.Quantity.To {
			last = &tiers[i]
		}
	}
	if quantity >= last.Quantity.From {
		return last, nil
	}

	first := &tiers[0]
	for i := range tiers {
		if tiers[i].Quantity.From < first.Quantity.From {
			first = &tiers[i]
		}
	}
	return first, nil
}
