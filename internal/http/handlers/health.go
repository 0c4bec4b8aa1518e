package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	dbAvailable func() bool
}

// NewHealthHandler reports the database state through dbAvailable; nil means
// the server runs without one.
func NewHealthHandler(dbAvailable func() bool) *HealthHandler {
	return &HealthHandler{dbAvailable: dbAvailable}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	db := h.dbAvailable != nil && h.dbAvailable()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dbAvailable": db})
}
