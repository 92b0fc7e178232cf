// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables

	"github.com/joho/godotenv" // Loads .env files into the environment
)

type Config struct { // Config struct holds all configuration values
	Port          string // Port the HTTP server listens on
	DBPath        string // Path to the SQLite database file
	Storage       string // Storage backend: "sqlite" or "memory"
	JWTSecret     string // Secret key for JWT authentication
	CreateAdmin   bool   // Whether to seed a default admin account
	AdminUsername string // Username of the seeded admin account
	AdminPassword string // Password of the seeded admin account
}

func Load() *Config { // Load reads config from .env / environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present; real env vars take precedence

	return &Config{
		Port:          getEnv("PORT", "8080"),                   // Get server port or use default
		DBPath:        getEnv("DB_PATH", "shop.db"),             // Get DB path or use default
		Storage:       getEnv("STORAGE", "sqlite"),              // Get storage backend or use default
		JWTSecret:     getEnv("JWT_SECRET", "supersecret"),      // Get JWT secret or use default
		CreateAdmin:   getEnv("CREATE_ADMIN", "true") == "true", // Whether to seed the admin account
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),        // Get admin username or use default
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),     // Get admin password or use default
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
