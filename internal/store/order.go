package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shopstack/storefront/internal/domain"
)

// OrderStore holds committed orders. Records are immutable after
// creation except for the status field.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
	ids    []string
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]domain.Order)}
}

// Create allocates an ID, stamps the creation time and stores the order
// in its initial Placed status. The caller never chooses the status.
func (s *OrderStore) Create(userID string, items []domain.OrderItem, total int64, addressID string) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := domain.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Items:     append([]domain.OrderItem(nil), items...),
		Total:     total,
		AddressID: addressID,
		Status:    domain.OrderStatusPlaced,
		CreatedAt: time.Now().UTC(),
	}
	s.orders[order.ID] = order
	s.ids = append(s.ids, order.ID)
	return order
}

func (s *OrderStore) Get(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	return order, ok
}

func (s *OrderStore) ListForUser(userID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Order
	for _, id := range s.ids {
		if order := s.orders[id]; order.UserID == userID {
			out = append(out, order)
		}
	}
	return out
}

func (s *OrderStore) ListAll() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.orders[id])
	}
	return out
}

// SetStatus overwrites the status field. Transitions are deliberately
// unrestricted; any status may be set from any other.
func (s *OrderStore) SetStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return domain.Order{}, ErrNotFound
	}
	order.Status = status
	s.orders[id] = order
	return order, nil
}
