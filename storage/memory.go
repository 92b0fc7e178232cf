// memory.go - In-memory storage implementation (volatile backend)

package storage // Declares the package name

import ( // Import required packages
	"errors"
	"sort"
	"sync"
	"time"

	"go-shop-backend/config" // Project config
	"go-shop-backend/models" // Shop models

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// MemoryStorage - Volatile Storage implementation backed by in-process
// maps with monotonic per-entity ID counters starting at 1. Used for
// tests and ephemeral deployments; all data is lost on restart. A
// single mutex guards every operation, so multi-step invariants like
// default-address exclusivity hold under concurrent requests.
type MemoryStorage struct {
	mu sync.Mutex

	users      map[uint]*models.User
	addresses  map[uint]*models.Address
	products   map[uint]*models.Product
	categories map[uint]*models.Category
	orders     map[uint]*models.Order

	nextUserID     uint
	nextAddressID  uint
	nextProductID  uint
	nextCategoryID uint
	nextOrderID    uint
}

// NewMemoryStorage builds an empty store and seeds the default admin
// account and catalog category, mirroring the database backend.
func NewMemoryStorage(cfg *config.Config) (*MemoryStorage, error) {
	s := &MemoryStorage{
		users:          make(map[uint]*models.User),
		addresses:      make(map[uint]*models.Address),
		products:       make(map[uint]*models.Product),
		categories:     make(map[uint]*models.Category),
		orders:         make(map[uint]*models.Order),
		nextUserID:     1,
		nextAddressID:  1,
		nextProductID:  1,
		nextCategoryID: 1,
		nextOrderID:    1,
	}

	if cfg.CreateAdmin {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin := &models.User{
			ID:       s.nextUserID,
			Username: cfg.AdminUsername,
			Password: string(hash),
			IsAdmin:  true,
		}
		s.users[admin.ID] = admin
		s.nextUserID++
	}

	def := &models.Category{ID: s.nextCategoryID, Name: "General", Description: "Default category"}
	s.categories[def.ID] = def
	s.nextCategoryID++

	return s, nil
}

// --- User operations ---

func (s *MemoryStorage) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) CreateUser(user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Mirror the database backend's unique constraint on username
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return nil, errors.New("username already taken")
		}
	}
	user.ID = s.nextUserID
	s.nextUserID++
	copied := *user
	s.users[copied.ID] = &copied
	return user, nil
}

// --- Address operations ---

func (s *MemoryStorage) GetAddresses(userID uint) ([]models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var addresses []models.Address
	for _, address := range s.addresses {
		if address.UserID == userID {
			addresses = append(addresses, *address)
		}
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i].ID < addresses[j].ID })
	return addresses, nil
}

func (s *MemoryStorage) GetAddress(id uint) (*models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	address, ok := s.addresses[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *address
	return &copied, nil
}

func (s *MemoryStorage) CreateAddress(userID uint, insert *models.InsertAddress) (*models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if insert.IsDefault {
		s.clearDefaultsLocked(userID, 0)
	}
	address := &models.Address{
		ID:         s.nextAddressID,
		UserID:     userID,
		Street:     insert.Street,
		City:       insert.City,
		State:      insert.State,
		PostalCode: insert.PostalCode,
		Country:    insert.Country,
		IsDefault:  insert.IsDefault,
	}
	s.nextAddressID++
	s.addresses[address.ID] = address
	copied := *address
	return &copied, nil
}

func (s *MemoryStorage) UpdateAddress(id uint, patch *models.AddressPatch) (*models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	address, ok := s.addresses[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.IsDefault != nil && *patch.IsDefault {
		s.clearDefaultsLocked(address.UserID, address.ID)
	}
	applyAddressPatch(address, patch)
	copied := *address
	return &copied, nil
}

func (s *MemoryStorage) DeleteAddress(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.addresses[id]; !ok {
		return false, nil
	}
	delete(s.addresses, id)
	return true, nil
}

// clearDefaultsLocked clears the default flag on all of the user's
// addresses except the one being written. Caller must hold the mutex.
func (s *MemoryStorage) clearDefaultsLocked(userID, exceptID uint) {
	for _, address := range s.addresses {
		if address.UserID == userID && address.ID != exceptID {
			address.IsDefault = false
		}
	}
}

// --- Product operations ---

func (s *MemoryStorage) GetProducts() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var products []models.Product
	for _, product := range s.products {
		products = append(products, *product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (s *MemoryStorage) GetProduct(id uint) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func (s *MemoryStorage) CreateProduct(product *models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product.ID = s.nextProductID
	s.nextProductID++
	product.CreatedAt = time.Now()
	copied := *product
	s.products[copied.ID] = &copied
	return product, nil
}

func (s *MemoryStorage) UpdateProduct(id uint, patch *models.ProductPatch) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyProductPatch(product, patch)
	copied := *product
	return &copied, nil
}

func (s *MemoryStorage) DeleteProduct(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

// --- Category operations ---

func (s *MemoryStorage) GetCategories() ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var categories []models.Category
	for _, category := range s.categories {
		categories = append(categories, *category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

// --- Order operations ---

func (s *MemoryStorage) GetOrders() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var orders []models.Order
	for _, order := range s.orders {
		orders = append(orders, *order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (s *MemoryStorage) GetOrdersByUser(userID uint) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var orders []models.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (s *MemoryStorage) CreateOrder(order *models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = s.nextOrderID
	s.nextOrderID++
	order.Status = models.OrderStatusPending
	order.CreatedAt = time.Now()
	copied := *order
	s.orders[copied.ID] = &copied
	return order, nil
}

func (s *MemoryStorage) UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	order.Status = status
	copied := *order
	return &copied, nil
}
