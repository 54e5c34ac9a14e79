package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// EnableCORS wraps the handler with cross-origin support for the configured
// origins. Pass []string{"*"} to accept any origin.
func EnableCORS(next http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(next)
}
