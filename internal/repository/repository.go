package repository

import (
	"context"

	"github.com/promoworks/catalog-api/internal/domain"
)

// CatalogRepository provides access to the loaded catalog. Implementations
// must hand out immutable catalog snapshots: a reload replaces the whole
// structure atomically and never mutates a snapshot a reader may hold.
type CatalogRepository interface {
	// Catalog returns the current catalog snapshot. It fails with a data
	// source error when no catalog has been loaded.
	Catalog(ctx context.Context) (*domain.Catalog, error)

	// Reload re-reads the backing data source and atomically swaps in the new
	// catalog. On failure the previous snapshot stays in place.
	Reload(ctx context.Context) error
}
