package domain

import (
	"fmt"
	"time"
)

// OrderStatus values use the storefront's user-facing literals on the wire.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "On Process"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// ParseOrderStatus validates a status literal from a request body.
// Any valid status may be set from any other; transitions are not
// restricted to the Placed -> Shipped -> Delivered order.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(s); status {
	case OrderStatusPlaced, OrderStatusShipped, OrderStatusDelivered:
		return status, nil
	default:
		return "", fmt.Errorf("invalid order status %q", s)
	}
}

// OrderItem is a point-in-time snapshot of a purchased product. Name,
// image and price are captured at checkout so later catalog edits do
// not rewrite order history.
type OrderItem struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	ProductImage string `json:"productImage"`
	Quantity     int    `json:"quantity"`
	Price        int64  `json:"price"`
}

// Order is immutable after creation except for Status.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Items     []OrderItem `json:"items"`
	Total     int64       `json:"total"`
	AddressID string      `json:"addressId"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}
