// Package jsonfile implements the catalog repository over a single JSON
// product document on disk. The document is decoded into a strongly-typed
// model and validated once at load time; shape or invariant violations
// surface as a single data source error instead of leaking into endpoints.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/promoworks/catalog-api/internal/domain"
	apperrors "github.com/promoworks/catalog-api/pkg/errors"
)

// Repository loads and serves the catalog from a JSON file. The current
// catalog is published through an atomic pointer: readers always observe a
// complete snapshot, and Reload swaps the whole structure in one step.
type Repository struct {
	path    string
	logger  *slog.Logger
	current atomic.Pointer[domain.Catalog]
}

// New creates a repository over the given file path. Call Reload (or Load)
// before serving requests.
func New(path string, logger *slog.Logger) *Repository {
	return &Repository{
		path:   path,
		logger: logger,
	}
}

// Catalog returns the current catalog snapshot.
func (r *Repository) Catalog(ctx context.Context) (*domain.Catalog, error) {
	c := r.current.Load()
	if c == nil {
		return nil, apperrors.DataSource(errors.New("catalog not loaded"))
	}
	return c, nil
}

// Reload reads the file, validates it, and atomically swaps in the new
// catalog. On failure the previous snapshot, if any, stays in place.
func (r *Repository) Reload(ctx context.Context) error {
	product, err := loadFile(r.path)
	if err != nil {
		return apperrors.DataSource(err)
	}

	r.current.Store(domain.NewCatalog(product))
	r.logger.InfoContext(ctx, "catalog loaded",
		slog.String("path", r.path),
		slog.String("product_id", product.ID),
		slog.Int("variants", len(product.Variants)),
	)
	return nil
}

// Healthy reports whether a catalog snapshot is available. Registered as a
// readiness check.
func (r *Repository) Healthy(ctx context.Context) error {
	if r.current.Load() == nil {
		return errors.New("catalog not loaded")
	}
	return nil
}

// --- Source document model ---
//
// The on-disk document uses PascalCase field names; identifiers may be JSON
// numbers or strings.

type productDoc struct {
	ID           json.Number    `json:"Id"`
	Name         string         `json:"Name"`
	Number       string         `json:"Number"`
	Description  string         `json:"Description"`
	IsNew        bool           `json:"IsNew"`
	Images       []string       `json:"Images"`
	ImageURL     string         `json:"ImageUrl"`
	Origin       string         `json:"Origin"`
	Themes       []string       `json:"Themes"`
	LowestPrice  *pricePointDoc `json:"LowestPrice"`
	HighestPrice *pricePointDoc `json:"HighestPrice"`
	Supplier     *supplierDoc   `json:"Supplier"`
	Shipping     *shippingDoc   `json:"Shipping"`
	Variants     []variantDoc   `json:"Variants"`
}

type pricePointDoc struct {
	Price        decimal.Decimal `json:"Price"`
	CurrencyCode string          `json:"CurrencyCode"`
}

type supplierDoc struct {
	Name     string `json:"Name"`
	Location string `json:"Location"`
}

type shippingDoc struct {
	Method       string `json:"Method"`
	LeadTimeDays int    `json:"LeadTimeDays"`
	Notes        string `json:"Notes"`
}

type variantDoc struct {
	ID            json.Number   `json:"Id"`
	Name          string        `json:"Name"`
	Number        string        `json:"Number"`
	Description   string        `json:"Description"`
	ImageURL      string        `json:"ImageUrl"`
	Attributes    attributesDoc `json:"Attributes"`
	Prices        []priceDoc    `json:"Prices"`
	PriceIncludes []string      `json:"PriceIncludes"`
	Shipping      *shippingDoc  `json:"Shipping"`
}

type attributesDoc struct {
	Color string `json:"Color"`
	Size  string `json:"Size"`
}

type priceDoc struct {
	Quantity     quantityDoc     `json:"Quantity"`
	Price        decimal.Decimal `json:"Price"`
	Cost         decimal.Decimal `json:"Cost"`
	CurrencyCode string          `json:"CurrencyCode"`
}

type quantityDoc struct {
	From int `json:"From"`
	To   int `json:"To"`
}

func loadFile(path string) (*domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var doc productDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	product, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return product, nil
}

func (d *productDoc) toDomain() (*domain.Product, error) {
	if d.ID.String() == "" {
		return nil, errors.New("product Id is required")
	}
	if d.Name == "" {
		return nil, errors.New("product Name is required")
	}

	p := &domain.Product{
		ID:          d.ID.String(),
		Name:        d.Name,
		Number:      d.Number,
		Description: d.Description,
		IsNew:       d.IsNew,
		Images:      d.Images,
		ImageURL:    d.ImageURL,
		Origin:      d.Origin,
		Themes:      d.Themes,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Themes == nil {
		p.Themes = []string{}
	}

	if d.LowestPrice != nil {
		p.PriceRange.Lowest = domain.PricePoint{
			Price:        d.LowestPrice.Price,
			CurrencyCode: d.LowestPrice.CurrencyCode,
		}
	}
	if d.HighestPrice != nil {
		p.PriceRange.Highest = domain.PricePoint{
			Price:        d.HighestPrice.Price,
			CurrencyCode: d.HighestPrice.CurrencyCode,
		}
	}
	if d.LowestPrice != nil && d.HighestPrice != nil &&
		p.PriceRange.Lowest.Price.GreaterThan(p.PriceRange.Highest.Price) {
		return nil, fmt.Errorf("product %s: LowestPrice %s exceeds HighestPrice %s",
			p.ID, p.PriceRange.Lowest.Price, p.PriceRange.Highest.Price)
	}

	if d.Supplier != nil {
		p.Supplier = &domain.Supplier{Name: d.Supplier.Name, Location: d.Supplier.Location}
	}
	p.Shipping = d.Shipping.toDomain()

	p.Variants = make([]domain.Variant, 0, len(d.Variants))
	for i := range d.Variants {
		v, err := d.Variants[i].toDomain(p.ID)
		if err != nil {
			return nil, err
		}
		p.Variants = append(p.Variants, v)
	}

	return p, nil
}

func (d *variantDoc) toDomain(productID string) (domain.Variant, error) {
	if d.ID.String() == "" {
		return domain.Variant{}, fmt.Errorf("product %s: variant Id is required", productID)
	}

	v := domain.Variant{
		ID:            d.ID.String(),
		ProductID:     productID,
		Name:          d.Name,
		Number:        d.Number,
		Description:   d.Description,
		ImageURL:      d.ImageURL,
		Color:         d.Attributes.Color,
		Size:          d.Attributes.Size,
		PriceIncludes: d.PriceIncludes,
		Shipping:      d.Shipping.toDomain(),
	}
	if v.PriceIncludes == nil {
		v.PriceIncludes = []string{}
	}

	v.Prices = make([]domain.PriceTier, 0, len(d.Prices))
	for _, pd := range d.Prices {
		if pd.Quantity.From > pd.Quantity.To {
			return domain.Variant{}, fmt.Errorf(
				"variant %s: tier quantity From %d exceeds To %d", v.ID, pd.Quantity.From, pd.Quantity.To)
		}
		if pd.Price.IsNegative() {
			return domain.Variant{}, fmt.Errorf("variant %s: negative tier price %s", v.ID, pd.Price)
		}
		if pd.Cost.IsNegative() {
			return domain.Variant{}, fmt.Errorf("variant %s: negative tier cost %s", v.ID, pd.Cost)
		}
		v.Prices = append(v.Prices, domain.PriceTier{
			Quantity:     domain.QuantityBand{From: pd.Quantity.From, To: pd.Quantity.To},
			Price:        pd.Price,
			Cost:         pd.Cost,
			CurrencyCode: pd.CurrencyCode,
		})
	}

	return v, nil
}

func (d *shippingDoc) toDomain() *domain.ShippingPolicy {
	if d == nil {
		return nil
	}
	return &domain.ShippingPolicy{
		Method:       d.Method,
		LeadTimeDays: d.LeadTimeDays,
		Notes:        d.Notes,
	}
}
