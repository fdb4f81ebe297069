package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck is GET /api/health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Job Deck API is running",
	})
}
