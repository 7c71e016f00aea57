package models

import "fmt"

// OrderStatus is the delivery state of an order.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// ParseOrderStatus validates a status value received from a client.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusOutForDelivery, StatusDelivered:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown order status %q", ErrValidation, s)
}
