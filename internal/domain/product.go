package domain

import "strings"

// Option is one selectable component inside a configuration category.
type Option struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// Category groups the options a buyer picks one of (RAM, storage, ...).
type Category struct {
	Name     string   `json:"name"`
	Required bool     `json:"required"`
	Options  []Option `json:"options"`
}

// Product is an immutable catalog entry.
type Product struct {
	ID         string     `json:"id"`
	Brand      string     `json:"brand"`
	Name       string     `json:"name"`
	BasePrice  float64    `json:"basePrice"`
	Images     []string   `json:"images"`
	Categories []Category `json:"categories"`
}

// Category looks up a configuration category by name, ignoring case.
func (p Product) Category(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range p.Categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// Option finds an option by id or display name.
func (c Category) Option(key string) (Option, bool) {
	key = strings.TrimSpace(key)
	for _, o := range c.Options {
		if o.ID == key || strings.EqualFold(o.Name, key) {
			return o, true
		}
	}
	return Option{}, false
}
