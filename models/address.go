// address.go - Defines the Address model and its input shapes

package models // Declares the package name

type Address struct { // Address struct represents a user's shipping address
	ID         uint   `json:"id" gorm:"primaryKey"`   // Unique address ID (primary key)
	UserID     uint   `json:"userId" gorm:"not null"` // Foreign key to users table (owning user)
	User       User   `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // Foreign key constraint
	Street     string `json:"street" gorm:"not null"`     // Street line
	City       string `json:"city" gorm:"not null"`       // City
	State      string `json:"state" gorm:"not null"`      // State / province
	PostalCode string `json:"postalCode" gorm:"not null"` // Postal code
	Country    string `json:"country" gorm:"not null"`    // Country
	IsDefault  bool   `json:"isDefault" gorm:"not null;default:false"` // At most one default per user
}

// InsertAddress - Request body for creating an address.
type InsertAddress struct {
	Street     string `json:"street" binding:"required"`     // Street line (required)
	City       string `json:"city" binding:"required"`       // City (required)
	State      string `json:"state" binding:"required"`      // State / province (required)
	PostalCode string `json:"postalCode" binding:"required"` // Postal code (required)
	Country    string `json:"country" binding:"required"`    // Country (required)
	IsDefault  bool   `json:"isDefault"`                     // Whether this becomes the user's default
}

// AddressPatch - Partial update for PATCH /api/addresses/:id.
// Nil fields are left untouched. Setting IsDefault to true clears the
// default flag on the owner's other addresses.
type AddressPatch struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postalCode"`
	Country    *string `json:"country"`
	IsDefault  *bool   `json:"isDefault"`
}
