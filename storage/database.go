// database.go - SQLite-backed storage implementation (GORM)

package storage // Declares the package name

import ( // Import required packages
	"errors"
	"time"

	"go-shop-backend/config" // Project config
	"go-shop-backend/models" // Shop models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM
)

// DatabaseStorage - Persistent Storage implementation backed by SQLite
// through GORM. Constructed once at startup and passed to handlers
// (no package-level DB handle).
type DatabaseStorage struct {
	db *gorm.DB
}

// NewDatabaseStorage opens the database, runs migrations and seeds the
// default admin account and catalog category.
func NewDatabaseStorage(cfg *config.Config) (*DatabaseStorage, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{}) // Open SQLite DB
	if err != nil {
		return nil, err
	}

	// Auto-migrate all models (create tables if needed)
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Address{},
		&models.Order{},
	); err != nil {
		return nil, err
	}

	s := &DatabaseStorage{db: db}
	if err := s.seed(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// seed - Creates the default admin user (if configured and none exists)
// and the default catalog category. Admin credentials come from the
// environment instead of hardcoded values.
func (s *DatabaseStorage) seed(cfg *config.Config) error {
	if cfg.CreateAdmin {
		var count int64
		s.db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count)
		if count == 0 {
			hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			admin := models.User{
				Username: cfg.AdminUsername,
				Password: string(hash),
				IsAdmin:  true,
			}
			if err := s.db.Create(&admin).Error; err != nil {
				return err
			}
		}
	}

	var categories int64
	s.db.Model(&models.Category{}).Count(&categories)
	if categories == 0 {
		def := models.Category{Name: "General", Description: "Default category"}
		if err := s.db.Create(&def).Error; err != nil {
			return err
		}
	}
	return nil
}

// --- User operations ---

func (s *DatabaseStorage) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &user, nil
}

func (s *DatabaseStorage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &user, nil
}

func (s *DatabaseStorage) CreateUser(user *models.User) (*models.User, error) {
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// --- Address operations ---

func (s *DatabaseStorage) GetAddresses(userID uint) ([]models.Address, error) {
	var addresses []models.Address
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (s *DatabaseStorage) GetAddress(id uint) (*models.Address, error) {
	var address models.Address
	if err := s.db.First(&address, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &address, nil
}

// CreateAddress inserts a new address for the user. When the new
// address is marked default, the default flag is cleared on the user's
// other addresses inside the same transaction, so two defaults can
// never coexist.
func (s *DatabaseStorage) CreateAddress(userID uint, insert *models.InsertAddress) (*models.Address, error) {
	address := &models.Address{
		UserID:     userID,
		Street:     insert.Street,
		City:       insert.City,
		State:      insert.State,
		PostalCode: insert.PostalCode,
		Country:    insert.Country,
		IsDefault:  insert.IsDefault,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if insert.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// UpdateAddress applies the patch. Setting IsDefault clears the flag on
// the owner's sibling addresses, in the same transaction as the write.
func (s *DatabaseStorage) UpdateAddress(id uint, patch *models.AddressPatch) (*models.Address, error) {
	var address models.Address
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&address, id).Error; err != nil {
			return err
		}
		if patch.IsDefault != nil && *patch.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ? AND id <> ?", address.UserID, address.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		applyAddressPatch(&address, patch)
		return tx.Save(&address).Error
	})
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &address, nil
}

func (s *DatabaseStorage) DeleteAddress(id uint) (bool, error) {
	result := s.db.Delete(&models.Address{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// --- Product operations ---

func (s *DatabaseStorage) GetProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *DatabaseStorage) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &product, nil
}

func (s *DatabaseStorage) CreateProduct(product *models.Product) (*models.Product, error) {
	product.CreatedAt = time.Now()
	if err := s.db.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (s *DatabaseStorage) UpdateProduct(id uint, patch *models.ProductPatch) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	applyProductPatch(&product, patch)
	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *DatabaseStorage) DeleteProduct(id uint) (bool, error) {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// --- Category operations ---

func (s *DatabaseStorage) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// --- Order operations ---

func (s *DatabaseStorage) GetOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *DatabaseStorage) GetOrdersByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder persists a new order. Status is forced to "pending" and
// the creation timestamp is set server-side regardless of the input.
func (s *DatabaseStorage) CreateOrder(order *models.Order) (*models.Order, error) {
	order.Status = models.OrderStatusPending
	order.CreatedAt = time.Now()
	if err := s.db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus overwrites the status unconditionally. The value is
// not checked against the recognized status list.
func (s *DatabaseStorage) UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	order.Status = status
	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// notFoundOr translates GORM's record-not-found into the package
// sentinel so handlers can distinguish 404 from storage failures.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
