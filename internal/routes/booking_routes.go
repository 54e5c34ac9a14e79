package routes

import (
	"tripplanner/internal/controllers"
	"tripplanner/internal/middleware"

	"github.com/gin-gonic/gin"
)

func BookingRoutes(r *gin.Engine) {
	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", middleware.RequireAuth(), controllers.CreateBooking)
		bookings.GET("/my", middleware.RequireAuth(), controllers.GetMyBookings)

		bookings.GET("", middleware.RequireAdmin(), controllers.ListBookings)
		bookings.PATCH("/:id/status", middleware.RequireAdmin(), controllers.UpdateBookingStatus)
	}
}
