package domain

import (
	"fmt"
	"strings"

	apperrors "github.com/promoworks/catalog-api/pkg/errors"
)

// Catalog is the immutable read-only view of one loaded product and its
// variants. It is never mutated after construction, so it may be shared across
// concurrent requests without locking; a reload replaces the whole Catalog.
type Catalog struct {
	product      *Product
	variantsByID map[string]*Variant
}

// NewCatalog builds a catalog over the given product, indexing its variants
// by identifier.
func NewCatalog(product *Product) *Catalog {
	c := &Catalog{
		product:      product,
		variantsByID: make(map[string]*Variant, len(product.Variants)),
	}
	for i := range product.Variants {
		v := &product.Variants[i]
		if _, ok := c.variantsByID[v.ID]; !ok {
			c.variantsByID[v.ID] = v
		}
	}
	return c
}

// FindProduct returns the product with the given identifier.
func (c *Catalog) FindProduct(id string) (*Product, error) {
	if c.product == nil || c.product.ID != id {
		return nil, apperrors.NotFound("Product")
	}
	return c.product, nil
}

// FindVariant returns the identified variant of the identified product.
func (c *Catalog) FindVariant(productID, variantID string) (*Variant, error) {
	if _, err := c.FindProduct(productID); err != nil {
		return nil, err
	}
	v, ok := c.variantsByID[variantID]
	if !ok {
		return nil, apperrors.NotFound("Variant")
	}
	return v, nil
}

// FindVariantByAttributes returns the first variant of the identified product
// whose Color and Size both match, case-insensitively. Duplicate attribute
// combinations are a data-integrity issue, not a runtime error; the first
// declared match wins.
func (c *Catalog) FindVariantByAttributes(productID, color, size string) (*Variant, error) {
	p, err := c.FindProduct(productID)
	if err != nil {
		return nil, err
	}
	for i := range p.Variants {
		v := &p.Variants[i]
		if strings.EqualFold(v.Color, color) && strings.EqualFold(v.Size, size) {
			return v, nil
		}
	}
	return nil, apperrors.NotFoundMsg(
		fmt.Sprintf("No variant found for color '%s' and size '%s'", color, size))
}
