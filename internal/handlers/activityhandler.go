package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jobdeck/job-deck/internal/dtos"
	"github.com/jobdeck/job-deck/internal/services"
	"github.com/jobdeck/job-deck/internal/telemetry"
)

// ActivityHandler exposes the per-job activity endpoints.
type ActivityHandler struct {
	Activities *services.ActivityService
}

// NewActivityHandler creates the handler with dependencies.
func NewActivityHandler(activities *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		Activities: activities,
	}
}

// ListForJob is GET /api/jobs/:id/activities
func (h *ActivityHandler) ListForJob(c *gin.Context) {
	activities, err := h.Activities.ListForJob(userID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// Create is POST /api/jobs/:id/activities
func (h *ActivityHandler) Create(c *gin.Context) {
	var req dtos.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.Type == "" || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type and title are required fields"})
		return
	}

	activity, err := h.Activities.Create(userID(c), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}
	telemetry.ActivitiesCreated.Inc()
	c.JSON(http.StatusCreated, activity)
}

// Delete is DELETE /api/activities/:id
func (h *ActivityHandler) Delete(c *gin.Context) {
	err := h.Activities.Delete(userID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}
	c.JSON(http.StatusOK, dtos.DeleteResponse{OK: true})
}
