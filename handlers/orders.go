// orders.go - Order listing, checkout, and admin status updates

package handlers // Declares the package name

import (
	"net/http"

	"go-shop-backend/models"

	"github.com/gin-gonic/gin"
)

// ListOrders - GET /api/orders (user). Admins see every order, regular
// users only their own.
func (h *Handler) ListOrders(c *gin.Context) {
	userID := c.GetUint("user_id")
	user, err := h.Store.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var orders []models.Order
	if user.IsAdmin {
		orders, err = h.Store.GetOrders()
	} else {
		orders, err = h.Store.GetOrdersByUser(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder - POST /api/orders (user). Translates the submitted cart
// snapshot into a persisted order. The user ID comes from the session,
// the status is forced to "pending" and the timestamp is set
// server-side by storage. The total is stored as submitted by the
// client; it is not recomputed against current product prices.
func (h *Handler) CreateOrder(c *gin.Context) {
	userID := c.GetUint("user_id")
	var input models.InsertOrder
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order := &models.Order{
		UserID:            userID,
		Total:             *input.Total,
		Items:             input.Items,
		ShippingAddressID: input.ShippingAddressID,
		PaymentMethod:     input.PaymentMethod,
	}
	created, err := h.Store.CreateOrder(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

type UpdateOrderStatusInput struct { // Struct for status update input
	Status string `json:"status" binding:"required"` // New status (required; not checked against the enum)
}

// UpdateOrderStatus - PATCH /api/orders/:id/status (admin)
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Store.UpdateOrderStatus(id, input.Status)
	if err != nil {
		notFoundOrFail(c, err, "order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}
