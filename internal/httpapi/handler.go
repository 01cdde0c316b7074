// Package httpapi exposes the storefront over REST and maps store and
// workflow failures onto HTTP status codes.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopstack/storefront/internal/checkout"
	"github.com/shopstack/storefront/internal/store"
)

type Handler struct {
	catalog   *store.Catalog
	carts     *store.CartStore
	wishlists *store.WishlistStore
	orders    *store.OrderStore
	addresses *store.AddressStore
	checkout  *checkout.Service
	logger    *slog.Logger
}

func NewHandler(
	catalog *store.Catalog,
	carts *store.CartStore,
	wishlists *store.WishlistStore,
	orders *store.OrderStore,
	addresses *store.AddressStore,
	checkoutSvc *checkout.Service,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		catalog:   catalog,
		carts:     carts,
		wishlists: wishlists,
		orders:    orders,
		addresses: addresses,
		checkout:  checkoutSvc,
		logger:    logger,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
