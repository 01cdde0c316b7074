// Package checkout converts a user's cart into a committed order while
// keeping inventory consistent: stock never goes negative and a cart
// becomes an order atomically or not at all.
package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/shopstack/storefront/internal/domain"
	"github.com/shopstack/storefront/internal/store"
)

// Orders above the threshold ship free; everything else pays the flat fee.
const (
	freeShippingThreshold = 500
	shippingFee           = 50
)

var tracer = otel.Tracer("checkout")

// InsufficientStockError names the first product whose available stock
// cannot cover the requested quantity, or that no longer exists.
type InsufficientStockError struct {
	Product string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.Product)
}

// ErrEmptyCart is returned when checkout is attempted with no cart lines.
var ErrEmptyCart = fmt.Errorf("cart is empty")

// EventPublisher emits domain events after a checkout commits.
// messaging.Producer satisfies it; a nil publisher disables publishing.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Service orchestrates the catalog, cart and order stores. It holds no
// persistent state of its own.
type Service struct {
	catalog   *store.Catalog
	carts     *store.CartStore
	orders    *store.OrderStore
	publisher EventPublisher
	logger    *slog.Logger

	// Serializes the validate-then-decrement window so two concurrent
	// checkouts cannot both pass validation and oversell a product.
	mu sync.Mutex

	ordersPlaced metric.Int64Counter
}

func NewService(catalog *store.Catalog, carts *store.CartStore, orders *store.OrderStore, publisher EventPublisher, logger *slog.Logger) *Service {
	meter := otel.Meter("checkout")
	ordersPlaced, err := meter.Int64Counter("orders_placed_total",
		metric.WithDescription("Number of orders committed by checkout"),
	)
	if err != nil {
		logger.Error("failed to create orders_placed counter", "error", err)
	}

	return &Service{
		catalog:      catalog,
		carts:        carts,
		orders:       orders,
		publisher:    publisher,
		logger:       logger,
		ordersPlaced: ordersPlaced,
	}
}

// Checkout validates stock for every cart line, decrements stock,
// snapshots the purchased products into an order, and clears the cart.
// Validation failures abort before any mutation.
func (s *Service) Checkout(ctx context.Context, userID, addressID string) (domain.Order, error) {
	ctx, span := tracer.Start(ctx, "checkout",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	order, err := s.commit(userID, addressID)
	if err != nil {
		span.RecordError(err)
		return domain.Order{}, err
	}

	span.SetAttributes(
		attribute.String("order.id", order.ID),
		attribute.Int64("order.total", order.Total),
	)
	if s.ordersPlaced != nil {
		s.ordersPlaced.Add(ctx, 1)
	}

	s.publish(ctx, order)

	s.logger.Info("order placed",
		"order_id", order.ID,
		"user_id", userID,
		"items", len(order.Items),
		"total", order.Total,
	)
	return order, nil
}

func (s *Service) commit(userID, addressID string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts.ListForUser(userID)
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	// Pass 1: every line must be coverable before anything mutates.
	products := make([]domain.Product, len(lines))
	for i, line := range lines {
		product, ok := s.catalog.Product(line.ProductID)
		if !ok {
			return domain.Order{}, &InsufficientStockError{Product: line.ProductID}
		}
		if product.Stock < line.Quantity {
			return domain.Order{}, &InsufficientStockError{Product: product.Name}
		}
		products[i] = product
	}

	// Pass 2: commit the decrements and snapshot each line.
	items := make([]domain.OrderItem, len(lines))
	var subtotal int64
	for i, line := range lines {
		if _, err := s.catalog.AdjustStock(line.ProductID, -line.Quantity); err != nil {
			return domain.Order{}, fmt.Errorf("adjust stock for %s: %w", line.ProductID, err)
		}
		p := products[i]
		items[i] = domain.OrderItem{
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductImage: p.ImageURL,
			Quantity:     line.Quantity,
			Price:        p.Price,
		}
		subtotal += int64(line.Quantity) * p.Price
	}

	total := subtotal
	if subtotal <= freeShippingThreshold {
		total += shippingFee
	}

	order := s.orders.Create(userID, items, total, addressID)
	s.carts.ClearForUser(userID)
	return order, nil
}

// publish runs after the commit; a broker failure never unwinds an order.
func (s *Service) publish(ctx context.Context, order domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderPlacedEvent{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Items:     order.Items,
		Total:     order.Total,
		Timestamp: order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, order.ID, event); err != nil {
		s.logger.Error("failed to publish order placed event", "error", err, "order_id", order.ID)
	}
}
