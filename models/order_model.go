package models

import "time"

// Order is an immutable record of a checkout. Total and the item
// snapshots are fixed at creation; only Status and DeliveryCrewID
// change afterwards, under role-specific rules.
type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	UserID         uint        `gorm:"not null;index" json:"user_id"`
	DeliveryCrewID *uint       `gorm:"index" json:"delivery_crew"`
	Status         OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Total          float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Date           time.Time   `gorm:"not null" json:"date"`
	Items          []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a snapshot of one cart row at checkout time.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"not null;index" json:"order_id"`
	MenuItemID uint    `gorm:"not null" json:"menuitem_id"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Price      float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderEvent is the payload published to Kafka on order lifecycle changes.
type OrderEvent struct {
	Event        string      `json:"event"`
	OrderID      uint        `json:"order_id"`
	UserID       uint        `json:"user_id"`
	Status       OrderStatus `json:"status"`
	DeliveryCrew *uint       `json:"delivery_crew,omitempty"`
	Total        float64     `json:"total"`
	Timestamp    time.Time   `json:"timestamp"`
}

// Order lifecycle event names.
const (
	EventOrderPlaced        = "order_placed"
	EventOrderAssigned      = "order_assigned"
	EventOrderStatusChanged = "order_status_changed"
	EventOrderCancelled     = "order_cancelled"
)
