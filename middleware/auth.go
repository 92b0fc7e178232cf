// auth.go - JWT authentication and admin authorization middleware
//
// Authentication Flow:
// 1. Extract JWT token from Authorization header
// 2. Validate token signature and expiration
// 3. Extract user ID from token claims
// 4. Store user ID in context for handlers
//
// Authorization Flow (Admin):
// 1. AuthMiddleware runs earlier in the chain
// 2. Look the user up in storage
// 3. Allow/deny access based on the IsAdmin flag

package middleware // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes (401, 403, etc.)
	"strings"  // String operations (for header parsing)

	"go-shop-backend/config"  // Project config (for JWT secret)
	"go-shop-backend/storage" // Storage handle (for user lookups)

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
)

// AuthMiddleware - Returns a Gin middleware validating the Bearer token
// and storing the authenticated user ID in the request context under
// "user_id". Unauthenticated requests are rejected with 401.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Extract Authorization header ("Bearer <token>")
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}

		// STEP 2: Parse and validate the JWT token
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// STEP 3: Extract user ID from claims and store it in the context.
		// JWT numbers decode as float64; convert to uint for storage lookups.
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}
		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user ID not found in token"})
			return
		}
		c.Set("user_id", uint(userID))

		c.Next() // Authentication successful
	}
}

// AdminMiddleware - Returns a Gin middleware for admin access control.
// Must be chained after AuthMiddleware, which puts the user ID in the
// context. Authenticated non-admins get 403.
func AdminMiddleware(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Load the user and check the admin flag. The token does not
		// carry role information, so this is a storage lookup.
		userID := c.GetUint("user_id")
		user, err := store.GetUser(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Next() // Admin access granted
	}
}
