package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "Pending"    // set by checkout, never by admins directly
	OrderStatusProcessing OrderStatus = "Processing" // accepted, being prepared
	OrderStatusShipped    OrderStatus = "Shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "Delivered"  // customer received the items
	OrderStatusCancelled  OrderStatus = "Cancelled"  // called off

	PaymentMethodCash   PaymentMethod = "Cash"
	PaymentMethodOnline PaymentMethod = "Online"
)

// ParseOrderStatus maps client input onto the status enum, case-insensitively.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(s) {
	case "pending":
		return OrderStatusPending, nil
	case "processing":
		return OrderStatusProcessing, nil
	case "shipped":
		return OrderStatusShipped, nil
	case "delivered":
		return OrderStatusDelivered, nil
	case "cancelled":
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(s) {
	case "cash":
		return PaymentMethodCash, nil
	case "online":
		return PaymentMethodOnline, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// Order is created exactly once per checkout. Everything but Status is
// immutable after creation: prices, total and address are snapshots taken at
// checkout time and are never recomputed from the catalog.
type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        string        `gorm:"not null;index" json:"user_id"`
	User          User          `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(10);not null" json:"payment_method"`
	Address       Address       `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	OrderID      uint    `gorm:"index" json:"-"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
}
