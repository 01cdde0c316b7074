package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/shopstack/storefront/internal/auth"
	"github.com/shopstack/storefront/internal/domain"
)

func (h *Handler) HandleListAddresses(w http.ResponseWriter, r *http.Request) {
	userID := auth.Subject(r.Context())
	addresses := h.addresses.ListForUser(userID)
	if addresses == nil {
		addresses = []domain.Address{}
	}
	h.writeJSON(w, http.StatusOK, addresses)
}

type createAddressRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	IsDefault    bool   `json:"isDefault"`
}

func (h *Handler) HandleCreateAddress(w http.ResponseWriter, r *http.Request) {
	userID := auth.Subject(r.Context())

	var req createAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	for field, value := range map[string]string{
		"name":         req.Name,
		"phone":        req.Phone,
		"addressLine1": req.AddressLine1,
		"city":         req.City,
		"state":        req.State,
		"pincode":      req.Pincode,
	} {
		if value == "" {
			h.writeError(w, http.StatusBadRequest, field+" is required")
			return
		}
	}

	address := h.addresses.Create(domain.Address{
		UserID:       userID,
		Name:         req.Name,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		IsDefault:    req.IsDefault,
	})
	h.writeJSON(w, http.StatusCreated, address)
}
