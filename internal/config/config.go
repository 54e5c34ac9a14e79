package config

import (
	"os"
	"strings"
)

// Config holds server-level settings read from the environment.
// Database settings are read separately by InitDB.
type Config struct {
	Port           string
	Env            string   // "production" disables the admin password reset endpoint
	JWTSecret      string
	AllowedOrigins []string // CORS; "*" allows any origin
}

// App is the active configuration. Load replaces it at startup; the default
// matches a bare development environment.
var App = &Config{
	Port:           "8000",
	Env:            "development",
	JWTSecret:      "secret",
	AllowedOrigins: []string{"*"},
}

// Load reads server configuration from environment variables and installs it
// as App. InitDB must have been called first so .env values are present.
func Load() *Config {
	origins := []string{"*"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	App = &Config{
		Port:           getEnv("PORT", "8000"),
		Env:            getEnv("APP_ENV", "development"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		AllowedOrigins: origins,
	}
	return App
}

// IsProduction reports whether the production flag is set; the dev-only
// admin password reset endpoint is refused when it is.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
