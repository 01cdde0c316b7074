package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/shopstack/storefront/internal/auth"
	"github.com/shopstack/storefront/internal/domain"
)

func (h *Handler) HandleListCart(w http.ResponseWriter, r *http.Request) {
	userID := auth.Subject(r.Context())
	items := h.carts.ListForUser(userID)
	if items == nil {
		items = []domain.CartItem{}
	}
	h.writeJSON(w, http.StatusOK, items)
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) HandleAddToCart(w http.ResponseWriter, r *http.Request) {
	userID := auth.Subject(r.Context())

	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity < 1 {
		h.writeError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	product, ok := h.catalog.Product(req.ProductID)
	if !ok {
		h.writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if product.Stock == 0 {
		h.writeError(w, http.StatusBadRequest, "product is out of stock")
		return
	}
	if product.Stock < req.Quantity {
		h.writeError(w, http.StatusBadRequest, "not enough stock available")
		return
	}

	item := h.carts.Add(userID, req.ProductID, req.Quantity)
	h.logger.Info("cart item added", "user_id", userID, "product_id", req.ProductID, "quantity", item.Quantity)
	h.writeJSON(w, http.StatusOK, item)
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) HandleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	userID := auth.Subject(r.Context())
	id := r.PathValue("id")

	var req updateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, ok := h.carts.Get(id)
	if !ok {
		h.writeError(w, http.StatusNotFound, "cart item not found")
		return
	}
	if item.UserID != userID {
		h.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	product, ok := h.catalog.Product(item.ProductID)
	if !ok {
		h.writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if req.Quantity < 1 {
		h.writeError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}
	if req.Quantity > product.Stock {
		h.writeError(w, http.StatusBadRequest, "not enough stock available")
		return
	}

	updated, err := h.carts.UpdateQuantity(id, req.Quantity)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "cart item not found")
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	userID := auth.Subject(r.Context())
	id := r.PathValue("id")

	item, ok := h.carts.Get(id)
	if !ok {
		h.writeError(w, http.StatusNotFound, "cart item not found")
		return
	}
	if item.UserID != userID {
		h.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	h.carts.Remove(id)
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
