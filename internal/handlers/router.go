package handlers

import "github.com/gin-gonic/gin"

// Register attaches every API route to the engine. Middleware (CORS,
// metrics) is the caller's business and must be installed beforehand.
func Register(r *gin.Engine, jobs *JobHandler, activities *ActivityHandler) {
	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		// Job Routes
		api.GET("/jobs", jobs.List)
		api.POST("/jobs", jobs.Create)
		api.GET("/jobs/:id", jobs.Get)
		api.PUT("/jobs/:id", jobs.Update)
		api.DELETE("/jobs/:id", jobs.Delete)

		// Activity Routes
		api.GET("/jobs/:id/activities", activities.ListForJob)
		api.POST("/jobs/:id/activities", activities.Create)
		api.DELETE("/activities/:id", activities.Delete)
	}
}
