// routes.go - Route table wiring handlers to the Gin router

package handlers // Declares the package name

import (
	"go-shop-backend/middleware" // Auth / admin middleware

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterRoutes attaches every endpoint to the router. Public catalog
// reads take no auth, /api mutations require a valid token, and product
// and order-status management require the admin flag.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Public routes (no authentication required)
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/api/products", h.ListProducts)
	r.GET("/api/products/:id", h.GetProduct)
	r.GET("/api/categories", h.ListCategories)

	auth := middleware.AuthMiddleware(h.Cfg)

	// Authenticated user routes
	user := r.Group("/api")
	user.Use(auth)
	{
		user.GET("/addresses", h.ListAddresses)
		user.POST("/addresses", h.CreateAddress)
		user.PATCH("/addresses/:id", h.UpdateAddress)
		user.DELETE("/addresses/:id", h.DeleteAddress)
		user.GET("/orders", h.ListOrders)
		user.POST("/orders", h.CreateOrder)
	}

	// Admin-only routes (auth first, then the admin check)
	admin := r.Group("/api")
	admin.Use(auth, middleware.AdminMiddleware(h.Store))
	{
		admin.POST("/products", h.CreateProduct)
		admin.PATCH("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)
		admin.PATCH("/orders/:id/status", h.UpdateOrderStatus)
	}
}
