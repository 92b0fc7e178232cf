// user.go - Defines the User model for the database

package models // Declares the package name

type User struct { // User struct represents a user in the database
	ID       uint   `json:"id" gorm:"primaryKey"`                // Unique user ID (primary key)
	Username string `json:"username" gorm:"unique;not null"`     // Username (must be unique, cannot be null)
	Password string `json:"-" gorm:"not null"`                   // Hashed password (never serialized)
	IsAdmin  bool   `json:"isAdmin" gorm:"not null;default:false"` // Whether the user can access admin endpoints
}
