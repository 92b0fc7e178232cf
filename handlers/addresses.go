// addresses.go - Shipping address CRUD for the authenticated user

package handlers // Declares the package name

import (
	"net/http"

	"go-shop-backend/models"

	"github.com/gin-gonic/gin"
)

// ListAddresses - GET /api/addresses (user)
func (h *Handler) ListAddresses(c *gin.Context) {
	userID := c.GetUint("user_id")
	addresses, err := h.Store.GetAddresses(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, addresses)
}

// CreateAddress - POST /api/addresses (user). Creating a default
// address demotes the user's previous default; storage enforces the
// exclusivity invariant atomically.
func (h *Handler) CreateAddress(c *gin.Context) {
	userID := c.GetUint("user_id")
	var input models.InsertAddress
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	address, err := h.Store.CreateAddress(userID, &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, address)
}

// UpdateAddress - PATCH /api/addresses/:id (user, owner only).
// A foreign address ID answers 404 so existence is not probeable.
func (h *Handler) UpdateAddress(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.AddressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.ownsAddress(c, userID, id) {
		return
	}
	address, err := h.Store.UpdateAddress(id, &patch)
	if err != nil {
		notFoundOrFail(c, err, "address not found")
		return
	}
	c.JSON(http.StatusOK, address)
}

// DeleteAddress - DELETE /api/addresses/:id (user, owner only)
func (h *Handler) DeleteAddress(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.ownsAddress(c, userID, id) {
		return
	}
	deleted, err := h.Store.DeleteAddress(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ownsAddress verifies the address exists and belongs to the caller,
// writing the error response itself when it does not.
func (h *Handler) ownsAddress(c *gin.Context, userID, id uint) bool {
	address, err := h.Store.GetAddress(id)
	if err != nil {
		notFoundOrFail(c, err, "address not found")
		return false
	}
	if address.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		return false
	}
	return true
}
