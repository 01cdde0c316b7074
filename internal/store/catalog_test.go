package store

import (
	"errors"
	"testing"

	"github.com/shopstack/storefront/internal/domain"
)

func TestCatalog_AdjustStock(t *testing.T) {
	t.Run("applies signed delta", func(t *testing.T) {
		catalog := NewCatalog()
		catalog.AddProduct(domain.Product{ID: "p1", Name: "Widget", Stock: 10})

		p, err := catalog.AdjustStock("p1", -4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Stock != 6 {
			t.Errorf("expected stock 6, got %d", p.Stock)
		}

		p, err = catalog.AdjustStock("p1", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Stock != 8 {
			t.Errorf("expected stock 8, got %d", p.Stock)
		}
	})

	t.Run("returns ErrNotFound for unknown product", func(t *testing.T) {
		catalog := NewCatalog()

		_, err := catalog.AdjustStock("missing", -1)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCatalog_Products(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		catalog := NewCatalog()
		catalog.AddProduct(domain.Product{ID: "a", Name: "A"})
		catalog.AddProduct(domain.Product{ID: "b", Name: "B"})
		catalog.AddProduct(domain.Product{ID: "c", Name: "C"})

		products := catalog.Products()
		if len(products) != 3 {
			t.Fatalf("expected 3 products, got %d", len(products))
		}
		for i, want := range []string{"a", "b", "c"} {
			if products[i].ID != want {
				t.Errorf("position %d: expected %s, got %s", i, want, products[i].ID)
			}
		}
	})

	t.Run("replaces on duplicate ID without duplicating listing", func(t *testing.T) {
		catalog := NewCatalog()
		catalog.AddProduct(domain.Product{ID: "a", Name: "Old", Stock: 1})
		catalog.AddProduct(domain.Product{ID: "a", Name: "New", Stock: 2})

		products := catalog.Products()
		if len(products) != 1 {
			t.Fatalf("expected 1 product, got %d", len(products))
		}
		if products[0].Name != "New" || products[0].Stock != 2 {
			t.Errorf("expected replaced product, got %+v", products[0])
		}
	})

	t.Run("assigns an ID when absent", func(t *testing.T) {
		catalog := NewCatalog()
		p := catalog.AddProduct(domain.Product{Name: "Anon"})
		if p.ID == "" {
			t.Error("expected generated ID")
		}
	})
}

func TestCatalog_Categories(t *testing.T) {
	catalog := NewCatalog()
	catalog.AddCategory(domain.Category{ID: "1", Name: "Electronics", Slug: "electronics"})
	catalog.AddCategory(domain.Category{ID: "2", Name: "Fashion", Slug: "fashion"})

	if got := len(catalog.Categories()); got != 2 {
		t.Fatalf("expected 2 categories, got %d", got)
	}

	cat, ok := catalog.CategoryBySlug("fashion")
	if !ok {
		t.Fatal("expected to find category by slug")
	}
	if cat.ID != "2" {
		t.Errorf("expected category 2, got %s", cat.ID)
	}

	if _, ok := catalog.CategoryBySlug("unknown"); ok {
		t.Error("expected miss for unknown slug")
	}
}
