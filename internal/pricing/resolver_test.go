package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoworks/catalog-api/internal/domain"
	apperrors "github.com/promoworks/catalog-api/pkg/errors"
)

func tier(from, to int, price string) domain.PriceTier {
	return domain.PriceTier{
		Quantity:     domain.QuantityBand{From: from, To: to},
		Price:        decimal.RequireFromString(price),
		Cost:         decimal.RequireFromString(price).Div(decimal.NewFromInt(2)),
		CurrencyCode: "USD",
	}
}

// The spec's standard tier table: 1-9 @ $10, 10-49 @ $8, 50-999999 @ $6.
func standardTiers() []domain.PriceTier {
	return []domain.PriceTier{
		tier(1, 9, "10"),
		tier(10, 49, "8"),
		tier(50, 999999, "6"),
	}
}

func TestResolve_ExactContainment(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantPrice string
	}{
		{name: "lowest band", quantity: 1, wantPrice: "10"},
		{name: "lowest band upper boundary", quantity: 9, wantPrice: "10"},
		{name: "middle band lower boundary", quantity: 10, wantPrice: "8"},
		{name: "middle band", quantity: 25, wantPrice: "8"},
		{name: "middle band upper boundary", quantity: 49, wantPrice: "8"},
		{name: "top band", quantity: 50, wantPrice: "6"},
		{name: "top band interior", quantity: 500, wantPrice: "6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(standardTiers(), tt.quantity)
			require.NoError(t, err)
			assert.True(t, got.Quantity.Contains(tt.quantity),
				"selected tier %s must contain quantity %d", got.Quantity, tt.quantity)
			assert.Equal(t, tt.wantPrice, got.Price.String())
		})
	}
}

func TestResolve_AboveRangeFallsBackToTopTier(t *testing.T) {
	got, err := Resolve(standardTiers(), 5000000)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Quantity.From)
	assert.Equal(t, "6", got.Price.String())
}

func TestResolve_BelowRangeFallsBackToLowestTier(t *testing.T) {
	tiers := []domain.PriceTier{tier(10, 20, "5")}

	got, err := Resolve(tiers, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity.From)
	assert.Equal(t, "5", got.Price.String())
}

func TestResolve_EmptyTiersFails(t *testing.T) {
	got, err := Resolve(nil, 10)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNoPricing)

	got, err = Resolve([]domain.PriceTier{}, 10)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNoPricing)
}

func TestResolve_UnorderedInput(t *testing.T) {
	tiers := []domain.PriceTier{
		tier(50, 999999, "6"),
		tier(1, 9, "10"),
		tier(10, 49, "8"),
	}

	got, err := Resolve(tiers, 25)
	require.NoError(t, err)
	assert.Equal(t, "8", got.Price.String())
}

func TestResolve_OverlappingBandsFirstDeclaredWins(t *testing.T) {
	tiers := []domain.PriceTier{
		tier(1, 30, "9"),
		tier(20, 50, "7"),
	}

	got, err := Resolve(tiers, 25)
	require.NoError(t, err)
	assert.Equal(t, "9", got.Price.String())
}

func TestResolve_SingleQuantityBand(t *testing.T) {
	tiers := []domain.PriceTier{
		tier(5, 5, "4"),
		tier(6, 10, "3"),
	}

	got, err := Resolve(tiers, 5)
	require.NoError(t, err)
	assert.Equal(t, "4", got.Price.String())
}

func TestResolve_InteriorGapPricesAtLowestBand(t *testing.T) {
	tiers := []domain.PriceTier{
		tier(1, 9, "10"),
		tier(50, 99, "6"),
	}

	// 20 falls between the bands and below the top tier's From; it prices at
	// the lowest declared band rather than being rejected.
	got, err := Resolve(tiers, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity.From)
	assert.Equal(t, "10", got.Price.String())
}

func TestResolve_TiedTopTiersBreakToFirstDeclared(t *testing.T) {
	tiers := []domain.PriceTier{
		tier(1, 10, "9"),
		tier(5, 10, "8"),
	}

	got, err := Resolve(tiers, 20)
	require.NoError(t, err)
	assert.Equal(t, "9", got.Price.String())
}

func TestResolve_Deterministic(t *testing.T) {
	tiers := standardTiers()

	first, err := Resolve(tiers, 25)
	require.NoError(t, err)
	second, err := Resolve(tiers, 25)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
