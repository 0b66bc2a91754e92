// Package catalog serves the storefront's compiled-in laptop catalog.
package catalog

import "storefront/internal/domain"

// Catalog is a read-only product index. It is safe for concurrent use
// because nothing mutates it after New returns.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

// New indexes products by id, keeping the given order for listings.
func New(products []domain.Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		c.byID[p.ID] = i
	}
	return c
}

// Default returns the catalog built from the bundled laptop data.
func Default() *Catalog {
	return New(laptops())
}

// Products lists every product in catalog order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Product returns the product with the given id.
func (c *Catalog) Product(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}
