package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/shopstack/storefront/internal/auth"
	"github.com/shopstack/storefront/internal/domain"
)

func (h *Handler) HandleListWishlist(w http.ResponseWriter, r *http.Request) {
	userID := auth.Subject(r.Context())
	items := h.wishlists.ListForUser(userID)
	if items == nil {
		items = []domain.WishlistItem{}
	}
	h.writeJSON(w, http.StatusOK, items)
}

type addToWishlistRequest struct {
	ProductID string `json:"productId"`
}

func (h *Handler) HandleAddToWishlist(w http.ResponseWriter, r *http.Request) {
	userID := auth.Subject(r.Context())

	var req addToWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, ok := h.catalog.Product(req.ProductID)
	if !ok {
		h.writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if product.Stock == 0 {
		h.writeError(w, http.StatusBadRequest, "cannot add out of stock items to wishlist")
		return
	}

	item := h.wishlists.Add(userID, req.ProductID)
	h.writeJSON(w, http.StatusOK, item)
}

func (h *Handler) HandleRemoveWishlistItem(w http.ResponseWriter, r *http.Request) {
	userID := auth.Subject(r.Context())
	id := r.PathValue("id")

	item, ok := h.wishlists.Get(id)
	if !ok {
		h.writeError(w, http.StatusNotFound, "wishlist item not found")
		return
	}
	if item.UserID != userID {
		h.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	h.wishlists.Remove(id)
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
