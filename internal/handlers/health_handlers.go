package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles service health checks
type HealthHandler struct {
	common *CommonServices
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(common *CommonServices) *HealthHandler {
	return &HealthHandler{common: common}
}

// HealthCheck godoc
// @Summary      Health check
// @Description  Reports whether the service is up
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
