// order.go - Defines the Order model, its JSON line-item column and input shapes

package models // Declares the package name

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Recognized order statuses. updateOrderStatus does not currently
// validate against this list (kept lenient for client compatibility).
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem - A single (productId, quantity) line within an order.
// This is a point-in-time snapshot, not a live product reference.
type OrderItem struct {
	ProductID uint `json:"productId"` // Product the line refers to
	Quantity  int  `json:"quantity"`  // Units ordered
}

// OrderItems - JSON-serialized line-item list stored in a single column.
type OrderItems []OrderItem

// Value implements driver.Valuer so GORM can persist the list as JSON.
func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan implements sql.Scanner so GORM can read the JSON column back.
func (items *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*items = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return errors.New("unsupported type for order items column")
	}
}

type Order struct { // Order struct represents a placed order
	ID                uint       `json:"id" gorm:"primaryKey"`       // Unique order ID (primary key)
	UserID            uint       `json:"userId" gorm:"not null"`     // Foreign key to users table (owning user)
	Status            string     `json:"status" gorm:"not null;default:'pending'"` // Order status (always "pending" on creation)
	Total             float64    `json:"total" gorm:"not null"`      // Order total as submitted at checkout
	Items             OrderItems `json:"items" gorm:"not null"`      // Line items (JSON column)
	ShippingAddressID *uint      `json:"shippingAddressId"`          // Optional shipping address reference
	PaymentMethod     string     `json:"paymentMethod"`              // "cod" or "card"
	CreatedAt         time.Time  `json:"createdAt"`                  // When the order was placed (set server-side)
}

// InsertOrder - Request body for POST /api/orders (checkout).
// The user ID comes from the session, never from the payload, and any
// submitted status is ignored.
type InsertOrder struct {
	Total             *float64    `json:"total" binding:"required,gte=0"`    // Cart total computed client-side
	Items             []OrderItem `json:"items" binding:"required,min=1,dive"` // Line items (at least one)
	ShippingAddressID *uint       `json:"shippingAddressId"`                 // Selected shipping address
	PaymentMethod     string      `json:"paymentMethod" binding:"omitempty,oneof=cod card"` // Payment method
}
