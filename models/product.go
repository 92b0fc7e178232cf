// product.go - Defines the Product model and admin input shapes

package models // Declares the package name

import "time"

type Product struct { // Product struct represents a catalog product
	ID          uint      `json:"id" gorm:"primaryKey"`             // Unique product ID (primary key)
	Name        string    `json:"name" gorm:"not null"`             // Product name (cannot be null)
	Description string    `json:"description"`                      // Optional description
	Price       float64   `json:"price" gorm:"not null"`            // Unit price
	Image       string    `json:"image"`                            // Optional image URL
	CategoryID  *uint     `json:"categoryId"`                       // Foreign key to categories table (optional)
	Inventory   int       `json:"inventory" gorm:"not null;default:0"` // Units in stock
	CreatedAt   time.Time `json:"createdAt"`                        // When the product was created (set server-side)
}

// InsertProduct - Request body for creating a product (admin only).
// Price is a pointer so that "required" rejects a missing price but
// still accepts an explicit zero.
type InsertProduct struct {
	Name        string   `json:"name" binding:"required"`          // Product name (required)
	Description string   `json:"description"`                      // Optional description
	Price       *float64 `json:"price" binding:"required,gte=0"`   // Unit price (required, non-negative)
	Image       string   `json:"image"`                            // Optional image URL
	CategoryID  *uint    `json:"categoryId"`                       // Optional category reference
	Inventory   int      `json:"inventory" binding:"gte=0"`        // Units in stock (non-negative, defaults to 0)
}

// ProductPatch - Partial update for PATCH /api/products/:id.
// Nil fields are left untouched.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Image       *string  `json:"image"`
	CategoryID  *uint    `json:"categoryId"`
	Inventory   *int     `json:"inventory" binding:"omitempty,gte=0"`
}
