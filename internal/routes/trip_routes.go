package routes

import (
	"tripplanner/internal/controllers"
	"tripplanner/internal/middleware"

	"github.com/gin-gonic/gin"
)

func TripRoutes(r *gin.Engine) {
	trips := r.Group("/api/trips")
	{
		trips.GET("", controllers.ListTrips)
		trips.GET("/:id", controllers.GetTrip)

		trips.POST("", middleware.RequireAdmin(), controllers.CreateTrip)
		trips.PUT("/:id", middleware.RequireAdmin(), controllers.UpdateTrip)
		trips.DELETE("/:id", middleware.RequireAdmin(), controllers.DeleteTrip)
	}
}
