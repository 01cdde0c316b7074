package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopstack/storefront/internal/auth"
	"github.com/shopstack/storefront/internal/checkout"
	"github.com/shopstack/storefront/internal/domain"
	"github.com/shopstack/storefront/internal/store"
)

func (h *Handler) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	userID := auth.Subject(r.Context())
	orders := h.orders.ListForUser(userID)
	if orders == nil {
		orders = []domain.Order{}
	}
	h.writeJSON(w, http.StatusOK, orders)
}

// HandleListAllOrders backs the seller-side admin view. Any
// authenticated subject may call it; the storefront has no role system.
func (h *Handler) HandleListAllOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orders.ListAll()
	h.logger.Info("all orders listed", "count", len(orders))
	h.writeJSON(w, http.StatusOK, orders)
}

type placeOrderRequest struct {
	AddressID string `json:"addressId"`
}

func (h *Handler) HandlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID := auth.Subject(r.Context())

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.checkout.Checkout(r.Context(), userID, req.AddressID)
	if err != nil {
		var stockErr *checkout.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			h.writeError(w, http.StatusBadRequest, stockErr.Error())
		case errors.Is(err, checkout.ErrEmptyCart):
			h.writeError(w, http.StatusBadRequest, "cart is empty")
		default:
			h.logger.Error("checkout failed", "error", err, "user_id", userID)
			h.writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.writeJSON(w, http.StatusCreated, order)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) HandleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orders.SetStatus(id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("failed to update order status", "error", err, "order_id", id)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("order status updated", "order_id", order.ID, "status", order.Status)
	h.writeJSON(w, http.StatusOK, order)
}
