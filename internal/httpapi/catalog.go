package httpapi

import "net/http"

func (h *Handler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Products()
	h.logger.Info("products listed", "count", len(products))
	h.writeJSON(w, http.StatusOK, products)
}

func (h *Handler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Categories())
}
