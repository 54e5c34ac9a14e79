package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"tripplanner/internal/config"
	"tripplanner/internal/models"
)

const tokenValidity = 7 * 24 * time.Hour

func jwtSecret() []byte {
	return []byte(config.App.JWTSecret)
}

// GenerateToken issues a bearer token for the given user, valid for 7 days.
func GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenValidity).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// authenticate verifies the bearer token and resolves its subject to a live
// user record, storing it in the context under "user". On failure it aborts
// the request with 401 and reports false. It never advances the handler
// chain; the calling middleware decides when to c.Next().
func authenticate(c *gin.Context) (models.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return models.User{}, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return models.User{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return models.User{}, false
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return models.User{}, false
	}

	var user models.User
	if err := config.DB.First(&user, uint(rawID)).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return models.User{}, false
	}

	c.Set("user", user)
	return user, true
}

// RequireAuth ensures a valid JWT is present and resolves its subject to a
// live user record. A token whose user has since been deleted is rejected.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c); !ok {
			return
		}
		c.Next()
	}
}

// RequireAdmin ensures the JWT is valid and the resolved user is an admin.
// The role check happens before the handler chain advances, so a non-admin
// request never reaches the guarded handler.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c)
		if !ok {
			return
		}
		if user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user record stored in the context by RequireAuth.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet("user").(models.User)
}
