// Package configurator tracks the build options picked for one product and
// derives the running price.
package configurator

import (
	"sort"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/money"
)

// Configurator holds one selection per category. It is owned by a single
// session and is not safe for concurrent use.
type Configurator struct {
	product    domain.Product
	selections map[string]domain.Option
}

func New(product domain.Product) *Configurator {
	return &Configurator{
		product:    product,
		selections: make(map[string]domain.Option),
	}
}

// Product returns the product being configured.
func (c *Configurator) Product() domain.Product {
	return c.product
}

// Select overwrites any previous pick for category. The option is not
// checked against the category's option list.
func (c *Configurator) Select(category string, option domain.Option) {
	c.selections[category] = option
}

// Selection returns the current pick for category.
func (c *Configurator) Selection(category string) (domain.Option, bool) {
	o, ok := c.selections[category]
	return o, ok
}

// Selections returns a copy of every pick keyed by category.
func (c *Configurator) Selections() map[string]domain.Option {
	out := make(map[string]domain.Option, len(c.selections))
	for k, v := range c.selections {
		out[k] = v
	}
	return out
}

// Total is the base price plus the price delta of every selected option.
func (c *Configurator) Total() float64 {
	amounts := make([]float64, 0, len(c.selections)+1)
	amounts = append(amounts, c.product.BasePrice)
	for _, o := range c.selections {
		amounts = append(amounts, o.Price)
	}
	return money.Sum(amounts...)
}

// Missing lists required categories that have no selection yet, in catalog
// order. Total is understated while this is non-empty.
func (c *Configurator) Missing() []string {
	var missing []string
	for _, cat := range c.product.Categories {
		if !cat.Required {
			continue
		}
		if _, ok := c.selections[cat.Name]; !ok {
			missing = append(missing, cat.Name)
		}
	}
	return missing
}

// Item builds the order submission line item. Configuration entries follow
// catalog category order; categories unknown to the product come last,
// sorted by name.
func (c *Configurator) Item() domain.OrderItemInput {
	entries := make([]domain.ConfigurationEntry, 0, len(c.selections))
	known := make(map[string]bool, len(c.product.Categories))
	for _, cat := range c.product.Categories {
		known[cat.Name] = true
		if o, ok := c.selections[cat.Name]; ok {
			entries = append(entries, entry(cat.Name, o))
		}
	}

	var extra []string
	for name := range c.selections {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		entries = append(entries, entry(name, c.selections[name]))
	}

	return domain.OrderItemInput{
		ProductID:     c.product.ID,
		ProductName:   c.product.Name,
		Brand:         c.product.Brand,
		BasePrice:     c.product.BasePrice,
		Configuration: entries,
		Price:         c.Total(),
	}
}

func entry(category string, o domain.Option) domain.ConfigurationEntry {
	return domain.ConfigurationEntry{
		Category: category,
		Selected: domain.SelectedOption{
			Name:        strings.TrimSpace(o.Name),
			Price:       o.Price,
			Description: o.Description,
		},
	}
}
