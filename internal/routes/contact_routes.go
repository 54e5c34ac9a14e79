package routes

import (
	"tripplanner/internal/controllers"
	"tripplanner/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ContactRoutes(r *gin.Engine) {
	contact := r.Group("/api/contact")
	{
		contact.POST("", controllers.SubmitMessage)
		contact.GET("/my", middleware.RequireAuth(), controllers.GetMyMessages)

		contact.GET("", middleware.RequireAdmin(), controllers.ListMessages)
		contact.PATCH("/:id/reply", middleware.RequireAdmin(), controllers.ReplyToMessage)
	}
}
