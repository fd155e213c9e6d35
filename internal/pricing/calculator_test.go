package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoworks/catalog-api/internal/domain"
)

func testVariant() *domain.Variant {
	return &domain.Variant{
		ID:            "900101",
		ProductID:     "722541043",
		Name:          "Classic Crew Tee - Red / S",
		Color:         "Red",
		Size:          "S",
		PriceIncludes: []string{"One-colour front print", "Print setup"},
	}
}

func TestNewQuote_Totals(t *testing.T) {
	tests := []struct {
		name      string
		price     string
		cost      string
		quantity  int
		wantTotal string
		wantCost  string
	}{
		{name: "whole amounts", price: "8", cost: "5.2", quantity: 25, wantTotal: "200", wantCost: "130"},
		{name: "below-range scenario", price: "5", cost: "2.5", quantity: 3, wantTotal: "15", wantCost: "7.5"},
		{name: "rounds to two places", price: "0.3333", cost: "0.1111", quantity: 3, wantTotal: "1", wantCost: "0.33"},
		{name: "half rounds up", price: "1.005", cost: "1.005", quantity: 1, wantTotal: "1.01", wantCost: "1.01"},
		{name: "quantity one", price: "10.5", cost: "6.8", quantity: 1, wantTotal: "10.5", wantCost: "6.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := domain.PriceTier{
				Quantity:     domain.QuantityBand{From: 1, To: 999999},
				Price:        decimal.RequireFromString(tt.price),
				Cost:         decimal.RequireFromString(tt.cost),
				CurrencyCode: "USD",
			}

			quote := NewQuote(testVariant(), &pt, tt.quantity)

			assert.True(t, quote.TotalPrice.Equal(decimal.RequireFromString(tt.wantTotal)),
				"total price %s, want %s", quote.TotalPrice, tt.wantTotal)
			assert.True(t, quote.TotalCost.Equal(decimal.RequireFromString(tt.wantCost)),
				"total cost %s, want %s", quote.TotalCost, tt.wantCost)
		})
	}
}

func TestNewQuote_Fields(t *testing.T) {
	pt := domain.PriceTier{
		Quantity:     domain.QuantityBand{From: 10, To: 49},
		Price:        decimal.RequireFromString("8"),
		Cost:         decimal.RequireFromString("5.2"),
		CurrencyCode: "USD",
	}

	quote := NewQuote(testVariant(), &pt, 25)

	assert.Equal(t, "900101", quote.VariantID)
	assert.Equal(t, "Classic Crew Tee - Red / S", quote.VariantName)
	assert.Equal(t, 25, quote.Quantity)
	assert.Equal(t, domain.TierRef{Range: "10-49", From: 10, To: 49}, quote.PricingTier)
	assert.True(t, quote.UnitPrice.Equal(pt.Price))
	assert.True(t, quote.UnitCost.Equal(pt.Cost))
	assert.Equal(t, "USD", quote.Currency)
	assert.Equal(t, []string{"One-colour front print", "Print setup"}, quote.PriceIncludes)
}

func TestNewQuote_NilPriceIncludesBecomesEmpty(t *testing.T) {
	v := testVariant()
	v.PriceIncludes = nil
	pt := domain.PriceTier{
		Quantity: domain.QuantityBand{From: 1, To: 9},
		Price:    decimal.RequireFromString("10"),
		Cost:     decimal.RequireFromString("6.5"),
	}

	quote := NewQuote(v, &pt, 2)

	require.NotNil(t, quote.PriceIncludes)
	assert.Empty(t, quote.PriceIncludes)
}

func TestNewQuote_Idempotent(t *testing.T) {
	pt := domain.PriceTier{
		Quantity:     domain.QuantityBand{From: 10, To: 49},
		Price:        decimal.RequireFromString("8"),
		Cost:         decimal.RequireFromString("5.2"),
		CurrencyCode: "USD",
	}

	first := NewQuote(testVariant(), &pt, 25)
	second := NewQuote(testVariant(), &pt, 25)

	assert.Equal(t, first, second)
}
