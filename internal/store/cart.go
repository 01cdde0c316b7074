package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/shopstack/storefront/internal/domain"
)

// CartStore holds every user's cart line items keyed by item ID.
type CartStore struct {
	mu    sync.RWMutex
	items map[string]domain.CartItem
	ids   []string
}

func NewCartStore() *CartStore {
	return &CartStore{items: make(map[string]domain.CartItem)}
}

func (s *CartStore) ListForUser(userID string) []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.CartItem
	for _, id := range s.ids {
		if item := s.items[id]; item.UserID == userID {
			out = append(out, item)
		}
	}
	return out
}

func (s *CartStore) Get(id string) (domain.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok
}

// Add creates a line item for (user, product), or merges quantities into
// the existing line if one is already present.
func (s *CartStore) Add(userID, productID string, quantity int) domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.ids {
		item := s.items[id]
		if item.UserID == userID && item.ProductID == productID {
			item.Quantity += quantity
			s.items[id] = item
			return item
		}
	}

	item := domain.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	s.items[item.ID] = item
	s.ids = append(s.ids, item.ID)
	return item
}

// UpdateQuantity sets the absolute quantity on a line item. Bounds
// checks against product stock belong to the caller.
func (s *CartStore) UpdateQuantity(id string, quantity int) (domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return domain.CartItem{}, ErrNotFound
	}
	item.Quantity = quantity
	s.items[id] = item
	return item, nil
}

// Remove deletes a line item and reports whether anything was deleted.
func (s *CartStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	s.ids = removeID(s.ids, id)
	return true
}

// ClearForUser deletes every line item owned by the user. Checkout calls
// this after committing an order.
func (s *CartStore) ClearForUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.ids[:0]
	for _, id := range s.ids {
		if s.items[id].UserID == userID {
			delete(s.items, id)
			continue
		}
		kept = append(kept, id)
	}
	s.ids = kept
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
