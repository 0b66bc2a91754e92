package catalog

import "testing"

func TestDefault_IDsUniqueAndLookup(t *testing.T) {
	c := Default()
	seen := map[string]bool{}
	for _, p := range c.Products() {
		if seen[p.ID] {
			t.Fatalf("duplicate product id %s", p.ID)
		}
		seen[p.ID] = true
		got, ok := c.Product(p.ID)
		if !ok || got.Name != p.Name {
			t.Fatalf("lookup mismatch for %s: %+v", p.ID, got)
		}
	}
	if _, ok := c.Product("missing"); ok {
		t.Fatalf("expected missing product lookup to fail")
	}
}

func TestDefault_OptionIDsUniquePerProduct(t *testing.T) {
	for _, p := range Default().Products() {
		ids := map[string]bool{}
		for _, cat := range p.Categories {
			if len(cat.Options) == 0 {
				t.Fatalf("%s/%s has no options", p.ID, cat.Name)
			}
			for _, o := range cat.Options {
				if ids[o.ID] {
					t.Fatalf("duplicate option id %s in product %s", o.ID, p.ID)
				}
				ids[o.ID] = true
			}
		}
	}
}

func TestProductCategoryAndOptionLookup(t *testing.T) {
	p, ok := Default().Product("1")
	if !ok {
		t.Fatalf("expected product 1")
	}
	if p.Brand != "ASUS" || p.BasePrice != 2499 {
		t.Fatalf("unexpected product %+v", p)
	}
	ram, ok := p.Category("RAM")
	if !ok || !ram.Required {
		t.Fatalf("expected required ram category, got %+v", ram)
	}
	byName, ok := ram.Option("64GB DDR5")
	if !ok || byName.Price != 200 || byName.Description != "6400MHz" {
		t.Fatalf("unexpected option by name %+v", byName)
	}
	byID, ok := ram.Option("rog-ram-64")
	if !ok || byID != byName {
		t.Fatalf("expected id lookup to match name lookup, got %+v", byID)
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	c := Default()
	list := c.Products()
	list[0].Name = "changed"
	if p, _ := c.Product(list[0].ID); p.Name == "changed" {
		t.Fatalf("expected catalog to be unaffected by caller mutation")
	}
}
