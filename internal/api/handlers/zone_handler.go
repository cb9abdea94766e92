package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/richei-group/richei-backend/internal/zones"
)

// ============================================
// Zone Handler
// ============================================

type ZoneHandler struct{}

// GetStates - All Nigerian states
// GET /zones/states
func (h *ZoneHandler) GetStates(c *gin.Context) {
	c.JSON(http.StatusOK, zones.GetStates())
}

// GetLGAs - Local government areas of a state
// GET /zones/states/:state/lgas
func (h *ZoneHandler) GetLGAs(c *gin.Context) {
	c.JSON(http.StatusOK, zones.GetLGAs(c.Param("state")))
}
