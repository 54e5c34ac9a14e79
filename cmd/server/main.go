package main

import (
	"log"
	"net/http"

	"tripplanner/internal/bootstrap"
	"tripplanner/internal/config"
	"tripplanner/internal/logger"
	"tripplanner/internal/middleware"
	"tripplanner/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	cfg := config.Load()

	// Seed the default admin before accepting requests
	if err := bootstrap.EnsureDefaultAdmin(config.DB, cfg.IsProduction()); err != nil {
		log.Fatalf("failed to ensure default admin: %v", err)
	}

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r, cfg.AllowedOrigins)

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
