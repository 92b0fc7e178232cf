// products.go - Catalog browsing (public) and product management (admin)

package handlers // Declares the package name

import (
	"net/http"

	"go-shop-backend/models"

	"github.com/gin-gonic/gin"
)

// ListProducts - GET /api/products (public)
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Store.GetProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct - GET /api/products/:id (public)
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	product, err := h.Store.GetProduct(id)
	if err != nil {
		notFoundOrFail(c, err, "product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct - POST /api/products (admin)
func (h *Handler) CreateProduct(c *gin.Context) {
	var input models.InsertProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		Image:       input.Image,
		CategoryID:  input.CategoryID,
		Inventory:   input.Inventory,
	}
	created, err := h.Store.CreateProduct(product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProduct - PATCH /api/products/:id (admin)
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.Store.UpdateProduct(id, &patch)
	if err != nil {
		notFoundOrFail(c, err, "product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct - DELETE /api/products/:id (admin)
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := h.Store.DeleteProduct(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// ListCategories - GET /api/categories (public)
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Store.GetCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}
