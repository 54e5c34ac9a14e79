package routes

import (
	"tripplanner/internal/controllers"
	"tripplanner/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DashboardRoutes(r *gin.Engine) {
	dashboard := r.Group("/api/dashboard")
	dashboard.Use(middleware.RequireAdmin())
	{
		dashboard.GET("/stats", controllers.GetStats)
	}
}
