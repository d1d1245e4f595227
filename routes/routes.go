package routes

import (
	"net/http"
	"time"

	"worklink/handlers"
	"worklink/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers schedule configuration endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.GET("/:id/schedule", hb.GetScheduleHandler)

		// Mutating the schedule requires the owning professional's token.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.PUT("/:id/schedule", hb.SetScheduleHandler)
	}
}

// RegisterSchedulingRoutes sets up the slot-picker and reservation endpoints.
func RegisterSchedulingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/scheduling")
	{
		api.GET("/slots", hb.GetAvailableSlotsHandler)
		api.GET("/commitments", hb.ListCommitmentsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/reserve", hb.ReserveHandler)
		protected.POST("/commitments/:id/cancel", hb.CancelCommitmentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Worklink"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, hb)
	RegisterSchedulingRoutes(r, hb)
	RegisterHealthRoute(r)
}
