package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health responds to liveness probes.
// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "quickpass"})
}
