package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/shopstack/storefront/internal/domain"
)

// WishlistStore holds saved product references, at most one per
// (user, product) pair.
type WishlistStore struct {
	mu    sync.RWMutex
	items map[string]domain.WishlistItem
	ids   []string
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{items: make(map[string]domain.WishlistItem)}
}

func (s *WishlistStore) ListForUser(userID string) []domain.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.WishlistItem
	for _, id := range s.ids {
		if item := s.items[id]; item.UserID == userID {
			out = append(out, item)
		}
	}
	return out
}

func (s *WishlistStore) Get(id string) (domain.WishlistItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok
}

// Add saves a product reference, returning the existing item when the
// user already wishlisted the product.
func (s *WishlistStore) Add(userID, productID string) domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.ids {
		item := s.items[id]
		if item.UserID == userID && item.ProductID == productID {
			return item
		}
	}

	item := domain.WishlistItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
	}
	s.items[item.ID] = item
	s.ids = append(s.ids, item.ID)
	return item
}

func (s *WishlistStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	s.ids = removeID(s.ids, id)
	return true
}
