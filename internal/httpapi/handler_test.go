package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopstack/storefront/internal/auth"
	"github.com/shopstack/storefront/internal/checkout"
	"github.com/shopstack/storefront/internal/domain"
	"github.com/shopstack/storefront/internal/store"
)

// tokenIsSubject treats the bearer token itself as the verified subject
// so tests can act as any user with "Bearer <user>".
type tokenIsSubject struct{}

func (tokenIsSubject) Verify(_ context.Context, token string) (string, error) {
	return token, nil
}

type fixture struct {
	mux       *http.ServeMux
	catalog   *store.Catalog
	carts     *store.CartStore
	wishlists *store.WishlistStore
	orders    *store.OrderStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := store.NewCatalog()
	carts := store.NewCartStore()
	wishlists := store.NewWishlistStore()
	orders := store.NewOrderStore()
	addresses := store.NewAddressStore()
	checkoutSvc := checkout.NewService(catalog, carts, orders, nil, logger)

	handler := NewHandler(catalog, carts, wishlists, orders, addresses, checkoutSvc, logger)
	mw := auth.NewMiddleware(tokenIsSubject{}, logger)

	mux := http.NewServeMux()
	handler.Register(mux, mw)

	return &fixture{mux: mux, catalog: catalog, carts: carts, wishlists: wishlists, orders: orders}
}

func (f *fixture) do(t *testing.T, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+user)
	}
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp["error"]
}

func TestHandler_Products(t *testing.T) {
	f := newFixture(t)
	f.catalog.AddProduct(domain.Product{ID: "p1", Name: "Widget", Price: 100, Stock: 3})

	rec := f.do(t, http.MethodGet, "/api/products", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var products []domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestHandler_AuthRequired(t *testing.T) {
	f := newFixture(t)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/api/cart"},
		{http.MethodPost, "/api/orders"},
		{http.MethodGet, "/api/orders/all"},
		{http.MethodGet, "/api/addresses"},
	} {
		rec := f.do(t, tc.method, tc.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401 without token, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestHandler_AddToCart(t *testing.T) {
	t.Run("rejects unknown product", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(t, http.MethodPost, "/api/cart", "u1", `{"productId":"ghost","quantity":1}`)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("rejects out of stock product", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.AddProduct(domain.Product{ID: "p1", Name: "Widget", Stock: 0})

		rec := f.do(t, http.MethodPost, "/api/cart", "u1", `{"productId":"p1","quantity":1}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if msg := errorMessage(t, rec); msg != "product is out of stock" {
			t.Errorf("unexpected message: %s", msg)
		}
	})

	t.Run("rejects quantity above stock", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.AddProduct(domain.Product{ID: "p1", Name: "Widget", Stock: 2})

		rec := f.do(t, http.MethodPost, "/api/cart", "u1", `{"productId":"p1","quantity":3}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.AddProduct(domain.Product{ID: "p1", Name: "Widget", Stock: 2})

		rec := f.do(t, http.MethodPost, "/api/cart", "u1", `{"productId":"p1","quantity":0}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("merges duplicate adds", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.AddProduct(domain.Product{ID: "p1", Name: "Widget", Stock: 10})

		f.do(t, http.MethodPost, "/api/cart", "u1", `{"productId":"p1","quantity":3}`)
		rec := f.do(t, http.MethodPost, "/api/cart", "u1", `{"productId":"p1","quantity":3}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var item domain.CartItem
		if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if item.Quantity != 6 {
			t.Errorf("expected merged quantity 6, got %d", item.Quantity)
		}
	})
}

func TestHandler_UpdateCartItem(t *testing.T) {
	f := newFixture(t)
	f.catalog.AddProduct(domain.Product{ID: "p1", Name: "Widget", Stock: 5})
	item := f.carts.Add("u1", "p1", 2)

	t.Run("owner can update within stock", func(t *testing.T) {
		rec := f.do(t, http.MethodPatch, "/api/cart/"+item.ID, "u1", `{"quantity":5}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects quantity above stock", func(t *testing.T) {
		rec := f.do(t, http.MethodPatch, "/api/cart/"+item.ID, "u1", `{"quantity":6}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("other user is forbidden and item unchanged", func(t *testing.T) {
		rec := f.do(t, http.MethodPatch, "/api/cart/"+item.ID, "u2", `{"quantity":1}`)
		if rec.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", rec.Code)
		}
		got, _ := f.carts.Get(item.ID)
		if got.Quantity != 5 {
			t.Errorf("expected quantity unchanged at 5, got %d", got.Quantity)
		}
	})

	t.Run("missing item is 404", func(t *testing.T) {
		rec := f.do(t, http.MethodPatch, "/api/cart/missing", "u1", `{"quantity":1}`)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}

func TestHandler_RemoveCartItem(t *testing.T) {
	f := newFixture(t)
	f.catalog.AddProduct(domain.Product{ID: "p1", Name: "Widget", Stock: 5})
	item := f.carts.Add("u1", "p1", 1)

	t.Run("other user is forbidden", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, "/api/cart/"+item.ID, "u2", "")
		if rec.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("owner deletes and gets a success flag", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, "/api/cart/"+item.ID, "u1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp map[string]bool
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !resp["success"] {
			t.Error("expected success true")
		}
	})

	t.Run("second delete is 404", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, "/api/cart/"+item.ID, "u1", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}
