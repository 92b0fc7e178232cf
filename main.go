// main.go - Entry point for the Go shop backend server

package main // Declares the package name

import ( // Import required packages
	"log" // Logging

	"go-shop-backend/config"   // Project config management
	"go-shop-backend/handlers" // HTTP handlers for API endpoints
	"go-shop-backend/storage"  // Storage backends

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and pick the storage backend
	cfg := config.Load() // Load configuration (port, DB path, JWT secret, admin seed)

	var store storage.Storage
	var err error
	switch cfg.Storage {
	case "memory": // Volatile backend: in-process maps, lost on restart
		store, err = storage.NewMemoryStorage(cfg)
	default: // Persistent backend: SQLite via GORM
		store, err = storage.NewDatabaseStorage(cfg)
	}
	if err != nil {
		log.Fatal("storage init error: ", err) // If error, log and exit
	}

	// STEP 2: Create Gin router and register routes
	r := gin.Default() // Create a new Gin router (web server)
	h := handlers.New(cfg, store)
	h.RegisterRoutes(r)

	// STEP 3: Start the web server
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
