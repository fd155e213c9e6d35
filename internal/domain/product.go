package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices serialize as JSON numbers, matching the API contract.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is the catalog's single product with its full variant tree.
// A product owns its variants exclusively; variants carry a back-reference
// through ProductID only.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Number      string          `json:"number"`
	Description string          `json:"description"`
	IsNew       bool            `json:"is_new"`
	Images      []string        `json:"images"`
	ImageURL    string          `json:"image_url"`
	Origin      string          `json:"origin"`
	Themes      []string        `json:"themes"`
	PriceRange  PriceRange      `json:"price_range"`
	Supplier    *Supplier       `json:"supplier,omitempty"`
	Shipping    *ShippingPolicy `json:"shipping,omitempty"`
	Variants    []Variant       `json:"variants"`
}

// PriceRange is the aggregate lowest/highest unit price observed across all
// variants of a product.
type PriceRange struct {
	Lowest  PricePoint `json:"lowest"`
	Highest PricePoint `json:"highest"`
}

// PricePoint is a single observed unit price.
type PricePoint struct {
	Price        decimal.Decimal `json:"price"`
	CurrencyCode string          `json:"currency_code,omitempty"`
}

// Supplier holds the product's supplier information.
type Supplier struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// ShippingPolicy describes how a product (or a single variant, as an override)
// is shipped.
type ShippingPolicy struct {
	Method       string `json:"method,omitempty"`
	LeadTimeDays int    `json:"lead_time_days,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// Variant is a concrete purchasable configuration of the product, identified
// by its Color and Size attributes and priced through an ordered set of
// quantity-banded tiers.
type Variant struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	Number        string          `json:"number"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"image_url"`
	Color         string          `json:"color"`
	Size          string          `json:"size"`
	Prices        []PriceTier     `json:"prices"`
	PriceIncludes []string        `json:"price_includes"`
	Shipping      *ShippingPolicy `json:"shipping,omitempty"`
}

// QuantityBand is an inclusive quantity range [From, To].
type QuantityBand struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Contains reports whether q falls inside the band, both ends inclusive.
func (b QuantityBand) Contains(q int) bool {
	return q >= b.From && q <= b.To
}

func (b QuantityBand) String() string {
	return fmt.Sprintf("%d-%d", b.From, b.To)
}

// PriceTier binds a quantity band to a unit price and unit cost.
// Tiers are not guaranteed sorted or gap-free in storage; the resolver handles
// unordered, overlapping, and gapped input.
type PriceTier struct {
	Quantity     QuantityBand    `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	CurrencyCode string          `json:"currency_code"`
}
