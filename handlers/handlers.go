// handlers.go - Shared handler state and helpers

package handlers // Declares the package name

import (
	"errors"
	"net/http"
	"strconv"

	"go-shop-backend/config"  // Project config
	"go-shop-backend/storage" // Storage contract

	"github.com/gin-gonic/gin" // Gin web framework
)

// Handler - Holds the dependencies every route handler needs. The
// storage handle is injected at construction so tests can swap in the
// memory backend; there is no package-level storage singleton.
type Handler struct {
	Cfg   *config.Config
	Store storage.Storage
}

// New builds a Handler around the given config and storage backend.
func New(cfg *config.Config, store storage.Storage) *Handler {
	return &Handler{Cfg: cfg, Store: store}
}

// idParam parses the ":id" path parameter as an unsigned integer.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// notFoundOrFail maps a storage error onto the response: ErrNotFound
// becomes 404 with the given message, anything else is a storage
// failure surfaced as 500 rather than being conflated with "absent".
func notFoundOrFail(c *gin.Context, err error, message string) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
