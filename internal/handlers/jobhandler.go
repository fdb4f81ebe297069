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

// JobHandler exposes the job CRUD endpoints.
type JobHandler struct {
	Jobs *services.JobService
}

// NewJobHandler creates the handler with dependencies.
func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{
		Jobs: jobs,
	}
}

// userID resolves the caller's identity. Auth itself lives upstream; the
// server only consumes the resolved id, falling back to the demo user for
// local development.
func userID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return "demo-user-1"
}

// List is GET /api/jobs
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.Jobs.ListJobs(userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get is GET /api/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.Jobs.GetJob(userID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create is POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.Title == "" || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and status are required fields"})
		return
	}

	job, err := h.Jobs.CreateJob(userID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job: " + err.Error()})
		return
	}
	telemetry.JobsCreated.Inc()
	c.JSON(http.StatusCreated, job)
}

// Update is PUT /api/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	var req dtos.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.UpdateJob(userID(c), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete is DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	err := h.Jobs.DeleteJob(userID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}
	c.JSON(http.StatusOK, dtos.DeleteResponse{OK: true})
}
