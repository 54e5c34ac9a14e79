package routes

import (
	"tripplanner/internal/controllers"
	"tripplanner/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middleware.RequireAuth(), controllers.Me)

		// Dev-only recovery for the seeded admin; refused in production
		auth.POST("/reset-admin-password", controllers.ResetAdminPassword)
	}
}
