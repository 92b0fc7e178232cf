// auth.go - Handles user registration and login

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes
	"time"     // For token expiration

	"go-shop-backend/models" // User model

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
	"golang.org/x/crypto/bcrypt"   // Password hashing
)

type RegisterInput struct { // Struct for registration input
	Username string `json:"username" binding:"required"` // Username (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

type LoginInput struct { // Struct for login input
	Username string `json:"username" binding:"required"` // Username (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

// Register - Handler for user registration. New accounts are always
// regular users; admin accounts are only ever seeded from config.
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	user := &models.User{Username: input.Username, Password: string(hash)}
	if _, err := h.Store.CreateUser(user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Duplicate username etc.
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "registration successful"})
}

// Login - Handler for user login. Issues a 72h JWT carrying the user ID.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Store.GetUserByUsername(input.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	// JWT generation
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,                               // Add user ID to token
		"exp":     time.Now().Add(time.Hour * 72).Unix(), // Set expiration (72 hours)
	})
	tokenString, err := token.SignedString([]byte(h.Cfg.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}
