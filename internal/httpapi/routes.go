package httpapi

import (
	"net/http"

	"github.com/shopstack/storefront/internal/auth"
	"github.com/shopstack/storefront/internal/telemetry"
)

// Register wires every storefront route onto the mux. Catalog reads are
// public; everything else requires a verified bearer token.
func (h *Handler) Register(mux *http.ServeMux, mw *auth.Middleware) {
	public := telemetry.WithHTTPRoute
	protected := func(next http.HandlerFunc) http.HandlerFunc {
		return telemetry.WithHTTPRoute(mw.RequireUser(next))
	}

	mux.HandleFunc("GET /api/products", public(h.HandleListProducts))
	mux.HandleFunc("GET /api/categories", public(h.HandleListCategories))

	mux.HandleFunc("GET /api/cart", protected(h.HandleListCart))
	mux.HandleFunc("POST /api/cart", protected(h.HandleAddToCart))
	mux.HandleFunc("PATCH /api/cart/{id}", protected(h.HandleUpdateCartItem))
	mux.HandleFunc("DELETE /api/cart/{id}", protected(h.HandleRemoveCartItem))

	mux.HandleFunc("GET /api/wishlist", protected(h.HandleListWishlist))
	mux.HandleFunc("POST /api/wishlist", protected(h.HandleAddToWishlist))
	mux.HandleFunc("DELETE /api/wishlist/{id}", protected(h.HandleRemoveWishlistItem))

	mux.HandleFunc("GET /api/orders", protected(h.HandleListOrders))
	mux.HandleFunc("GET /api/orders/all", protected(h.HandleListAllOrders))
	mux.HandleFunc("POST /api/orders", protected(h.HandlePlaceOrder))
	mux.HandleFunc("PATCH /api/orders/{id}/status", protected(h.HandleUpdateOrderStatus))

	mux.HandleFunc("GET /api/addresses", protected(h.HandleListAddresses))
	mux.HandleFunc("POST /api/addresses", protected(h.HandleCreateAddress))
}
