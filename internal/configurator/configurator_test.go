package configurator

import (
	"reflect"
	"testing"

	"storefront/internal/domain"
)

func testProduct() domain.Product {
	return domain.Product{
		ID:        "1",
		Brand:     "ASUS",
		Name:      "ROG Strix",
		BasePrice: 2499,
		Categories: []domain.Category{
			{Name: "ram", Required: true, Options: []domain.Option{
				{ID: "ram-16", Name: "16GB DDR5", Price: 0},
				{ID: "ram-64", Name: "64GB DDR5", Price: 200, Description: "6400MHz"},
			}},
			{Name: "storage", Required: true, Options: []domain.Option{
				{ID: "ssd-1", Name: "1TB", Price: 0},
				{ID: "ssd-2", Name: "2TB", Price: 150.5},
			}},
			{Name: "warranty", Options: []domain.Option{
				{ID: "war-3", Name: "3 years", Price: 199.99},
			}},
		},
	}
}

func TestTotal_IsBasePlusSelectedDeltas(t *testing.T) {
	c := New(testProduct())
	if c.Total() != 2499 {
		t.Fatalf("expected base price with no selections, got %v", c.Total())
	}
	c.Select("ram", domain.Option{Name: "64GB DDR5", Price: 200})
	c.Select("storage", domain.Option{Name: "2TB", Price: 150.5})
	c.Select("warranty", domain.Option{Name: "3 years", Price: 199.99})
	if got := c.Total(); got != 3049.49 {
		t.Fatalf("expected 3049.49, got %v", got)
	}
}

func TestSelect_OverwritesPerCategory(t *testing.T) {
	c := New(testProduct())
	c.Select("ram", domain.Option{Name: "64GB DDR5", Price: 200})
	c.Select("storage", domain.Option{Name: "2TB", Price: 150})
	before := c.Total()

	c.Select("ram", domain.Option{Name: "16GB DDR5", Price: 0})
	c.Select("ram", domain.Option{Name: "16GB DDR5", Price: 0})
	if got := c.Total(); got != before-200 {
		t.Fatalf("expected only ram contribution to change, got %v from %v", got, before)
	}
	if sel, _ := c.Selection("ram"); sel.Name != "16GB DDR5" {
		t.Fatalf("expected overwrite, got %+v", sel)
	}
	if len(c.Selections()) != 2 {
		t.Fatalf("expected two selections, got %d", len(c.Selections()))
	}
}

func TestSelect_AcceptsOptionsOutsideCategory(t *testing.T) {
	c := New(testProduct())
	c.Select("case-color", domain.Option{Name: "Eclipse Gray", Price: 25})
	if c.Total() != 2524 {
		t.Fatalf("expected unchecked option to count, got %v", c.Total())
	}
}

func TestMissing_ListsRequiredWithoutSelection(t *testing.T) {
	c := New(testProduct())
	if got := c.Missing(); !reflect.DeepEqual(got, []string{"ram", "storage"}) {
		t.Fatalf("unexpected missing %v", got)
	}
	c.Select("storage", domain.Option{Name: "1TB"})
	if got := c.Missing(); !reflect.DeepEqual(got, []string{"ram"}) {
		t.Fatalf("unexpected missing %v", got)
	}
}

func TestItem_FollowsCatalogOrder(t *testing.T) {
	c := New(testProduct())
	c.Select("zz-extra", domain.Option{Name: "Sticker", Price: 1})
	c.Select("warranty", domain.Option{Name: "3 years", Price: 199.99})
	c.Select("ram", domain.Option{Name: "64GB DDR5", Price: 200, Description: "6400MHz"})

	item := c.Item()
	if item.ProductID != "1" || item.ProductName != "ROG Strix" || item.Brand != "ASUS" || item.BasePrice != 2499 {
		t.Fatalf("unexpected item header %+v", item)
	}
	var order []string
	for _, e := range item.Configuration {
		order = append(order, e.Category)
	}
	if !reflect.DeepEqual(order, []string{"ram", "warranty", "zz-extra"}) {
		t.Fatalf("unexpected configuration order %v", order)
	}
	if item.Configuration[0].Selected != (domain.SelectedOption{Name: "64GB DDR5", Price: 200, Description: "6400MHz"}) {
		t.Fatalf("unexpected ram snapshot %+v", item.Configuration[0].Selected)
	}
	if item.Price != c.Total() {
		t.Fatalf("expected item price %v to equal total %v", item.Price, c.Total())
	}
}
