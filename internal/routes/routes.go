package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	TripRoutes(r)
	BookingRoutes(r)
	ContactRoutes(r)
	DashboardRoutes(r)

	return r
}
