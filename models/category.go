// category.go - Defines the Category model for the database

package models // Declares the package name

type Category struct { // Category struct groups products in the catalog
	ID          uint   `json:"id" gorm:"primaryKey"` // Unique category ID (primary key)
	Name        string `json:"name" gorm:"not null"` // Category name (cannot be null)
	Description string `json:"description"`          // Optional description
	Image       string `json:"image"`                // Optional image URL
}
