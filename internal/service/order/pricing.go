package order

import (
	"fmt"

	"storefront/internal/catalog"
	"storefront/internal/configurator"
	"storefront/internal/domain"
	"storefront/internal/money"
)

// CatalogVerifier recomputes submitted prices from catalog data.
type CatalogVerifier struct {
	catalog *catalog.Catalog
}

func NewCatalogVerifier(c *catalog.Catalog) *CatalogVerifier {
	return &CatalogVerifier{catalog: c}
}

// Verify rejects items that reference unknown products or options, whose
// prices differ from the catalog, or whose sum differs from total.
func (v *CatalogVerifier) Verify(items []domain.OrderItemInput, total float64) error {
	prices := make([]float64, 0, len(items))
	for i, it := range items {
		p, ok := v.catalog.Product(it.ProductID)
		if !ok {
			return fmt.Errorf("%w: item %d: unknown product %q", domain.ErrInvalidReference, i, it.ProductID)
		}
		if !money.Equal(p.BasePrice, it.BasePrice) {
			return fmt.Errorf("%w: item %d: base price %.2f does not match catalog", domain.ErrInvalidInput, i, it.BasePrice)
		}

		cfg := configurator.New(p)
		for _, entry := range it.Configuration {
			cat, ok := p.Category(entry.Category)
			if !ok {
				return fmt.Errorf("%w: item %d: unknown category %q", domain.ErrInvalidReference, i, entry.Category)
			}
			opt, ok := cat.Option(entry.Selected.Name)
			if !ok {
				return fmt.Errorf("%w: item %d: unknown %s option %q", domain.ErrInvalidReference, i, cat.Name, entry.Selected.Name)
			}
			if !money.Equal(opt.Price, entry.Selected.Price) {
				return fmt.Errorf("%w: item %d: %s price %.2f does not match catalog", domain.ErrInvalidInput, i, cat.Name, entry.Selected.Price)
			}
			cfg.Select(cat.Name, opt)
		}

		if !money.Equal(cfg.Total(), it.Price) {
			return fmt.Errorf("%w: item %d: price %.2f, expected %.2f", domain.ErrInvalidInput, i, it.Price, cfg.Total())
		}
		prices = append(prices, it.Price)
	}
	if sum := money.Sum(prices...); !money.Equal(sum, total) {
		return fmt.Errorf("%w: total %.2f, expected %.2f", domain.ErrInvalidInput, total, sum)
	}
	return nil
}
