package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/shopstack/storefront/internal/domain"
)

// AddressStore holds delivery addresses per user.
type AddressStore struct {
	mu        sync.RWMutex
	addresses map[string]domain.Address
	ids       []string
}

func NewAddressStore() *AddressStore {
	return &AddressStore{addresses: make(map[string]domain.Address)}
}

func (s *AddressStore) ListForUser(userID string) []domain.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Address
	for _, id := range s.ids {
		if addr := s.addresses[id]; addr.UserID == userID {
			out = append(out, addr)
		}
	}
	return out
}

func (s *AddressStore) Create(addr domain.Address) domain.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	addr.ID = uuid.New().String()
	s.addresses[addr.ID] = addr
	s.ids = append(s.ids, addr.ID)
	return addr
}
