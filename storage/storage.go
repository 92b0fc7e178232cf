// storage.go - Storage contract shared by the SQLite and in-memory backends

package storage // Declares the package name

import (
	"errors"

	"go-shop-backend/models" // Shop models
)

// ErrNotFound is returned by single-entity getters and updates when no
// row matches the given ID. Handlers map it to 404; any other storage
// error surfaces as 500.
var ErrNotFound = errors.New("not found")

// Storage - Uniform CRUD contract over users, addresses, products,
// categories and orders, independent of the backing technology. Both
// backends must satisfy the same contract test suite.
type Storage interface {
	// User operations
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) (*models.User, error)

	// Address operations
	GetAddresses(userID uint) ([]models.Address, error)
	GetAddress(id uint) (*models.Address, error)
	CreateAddress(userID uint, insert *models.InsertAddress) (*models.Address, error)
	UpdateAddress(id uint, patch *models.AddressPatch) (*models.Address, error)
	DeleteAddress(id uint) (bool, error)

	// Product operations
	GetProducts() ([]models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) (*models.Product, error)
	UpdateProduct(id uint, patch *models.ProductPatch) (*models.Product, error)
	DeleteProduct(id uint) (bool, error)

	// Category operations
	GetCategories() ([]models.Category, error)

	// Order operations
	GetOrders() ([]models.Order, error)
	GetOrdersByUser(userID uint) ([]models.Order, error)
	CreateOrder(order *models.Order) (*models.Order, error)
	UpdateOrderStatus(id uint, status string) (*models.Order, error)
}
