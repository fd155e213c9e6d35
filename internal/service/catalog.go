package service

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/promoworks/catalog-api/internal/domain"
	"github.com/promoworks/catalog-api/internal/pricing"
	"github.com/promoworks/catalog-api/internal/repository"
	apperrors "github.com/promoworks/catalog-api/pkg/errors"
)

var quotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pricing_quotes_total",
		Help: "Total number of price quote requests by outcome",
	},
	[]string{"outcome"},
)

// CatalogService implements the lookup operations over the loaded catalog and
// orchestrates price quoting. It carries no state across calls; every request
// resolves against the repository's current catalog snapshot.
type CatalogService struct {
	repo   repository.CatalogRepository
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CatalogRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// GetProductSummary returns the product with its variants summarized and the
// distinct Color and Size sets derived across all variants, in first-seen
// variant order.
func (s *CatalogService) GetProductSummary(ctx context.Context, productID string) (*domain.ProductSummary, error) {
	catalog, err := s.repo.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	product, err := catalog.FindProduct(productID)
	if err != nil {
		return nil, err
	}

	summary := &domain.ProductSummary{
		Product: *product,
		Attributes: domain.AttributeSet{
			Colors: []string{},
			Sizes:  []string{},
		},
		Variants: make([]domain.VariantSummary, 0, len(product.Variants)),
	}

	seenColors := make(map[string]struct{})
	seenSizes := make(map[string]struct{})
	for i := range product.Variants {
		v := &product.Variants[i]
		if _, ok := seenColors[v.Color]; !ok && v.Color != "" {
			seenColors[v.Color] = struct{}{}
			summary.Attributes.Colors = append(summary.Attributes.Colors, v.Color)
		}
		if _, ok := seenSizes[v.Size]; !ok && v.Size != "" {
			seenSizes[v.Size] = struct{}{}
			summary.Attributes.Sizes = append(summary.Attributes.Sizes, v.Size)
		}
		summary.Variants = append(summary.Variants, domain.VariantSummary{
			ID:       v.ID,
			Name:     v.Name,
			Number:   v.Number,
			Color:    v.Color,
			Size:     v.Size,
			ImageURL: v.ImageURL,
		})
	}

	return summary, nil
}

// GetVariant returns the fully-populated variant of the identified product.
func (s *CatalogService) GetVariant(ctx context.Context, productID, variantID string) (*domain.Variant, error) {
	catalog, err := s.repo.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.FindVariant(productID, variantID)
}

// GetVariantByAttributes returns the variant matching the given color and
// size, case-insensitively.
func (s *CatalogService) GetVariantByAttributes(ctx context.Context, productID, color, size string) (*domain.Variant, error) {
	catalog, err := s.repo.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.FindVariantByAttributes(productID, color, size)
}

// PriceQuote resolves a price tier for the variant and quantity and computes
// the quote. Quantity must be positive; non-positive quantities are rejected
// before the resolver runs.
func (s *CatalogService) PriceQuote(ctx context.Context, productID, variantID string, quantity int) (*domain.Quote, error) {
	if quantity <= 0 {
		quotesTotal.WithLabelValues("invalid_quantity").Inc()
		return nil, apperrors.InvalidInput("quantity must be a positive integer")
	}

	variant, err := s.GetVariant(ctx, productID, variantID)
	if err != nil {
		quotesTotal.WithLabelValues("not_found").Inc()
		return nil, err
	}

	tier, err := pricing.Resolve(variant.Prices, quantity)
	if err != nil {
		quotesTotal.WithLabelValues("no_pricing").Inc()
		s.logger.WarnContext(ctx, "no pricing available",
			slog.String("variant_id", variantID),
			slog.Int("quantity", quantity),
		)
		return nil, err
	}

	quote := pricing.NewQuote(variant, tier, quantity)
	quotesTotal.WithLabelValues("ok").Inc()

	s.logger.DebugContext(ctx, "quote computed",
		slog.String("variant_id", quote.VariantID),
		slog.Int("quantity", quote.Quantity),
		slog.String("tier", quote.PricingTier.Range),
		slog.String("total_price", quote.TotalPrice.String()),
	)

	return &quote, nil
}
