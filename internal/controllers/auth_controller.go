package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tripplanner/internal/bootstrap"
	"tripplanner/internal/config"
	"tripplanner/internal/middleware"
	"tripplanner/internal/models"
)

type registerInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields: " + err.Error()})
		return
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		logrus.WithError(err).Error("Register: could not hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	user := models.User{
		Email:    input.Email,
		Name:     input.Name,
		Password: hash,
		Role:     "user",
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if isDuplicateEmail(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		logrus.WithError(err).Error("Register: could not create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user: " + err.Error()})
		return
	}

	issueToken(c, user)
}

func Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		} else {
			logrus.WithError(err).Error("Login: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if user.Password == "" {
		logrus.Warnf("Login: user %s has no password hash", user.Email)
		// Recovery hint for the seeded admin account only (non-production)
		if user.Email == bootstrap.DefaultAdminEmail && !config.App.IsProduction() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Admin exists but has no password. POST /api/auth/reset-admin-password with {\"password\": \"<new>\"} to set it."})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	issueToken(c, user)
}

// Me returns the public view of the authenticated user.
func Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, publicUser(user))
}

// ResetAdminPassword sets (or seeds) the default admin's password.
// Development convenience only; refused outright in production.
func ResetAdminPassword(c *gin.Context) {
	if config.App.IsProduction() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed in production"})
		return
	}

	var body struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing password"})
		return
	}

	hash, err := hashPassword(body.Password)
	if err != nil {
		logrus.WithError(err).Error("ResetAdminPassword: could not hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	var admin models.User
	err = config.DB.Where("email = ?", bootstrap.DefaultAdminEmail).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		admin = models.User{
			Email:    bootstrap.DefaultAdminEmail,
			Name:     "Admin",
			Role:     "admin",
			Password: hash,
		}
		if err := config.DB.Create(&admin).Error; err != nil {
			logrus.WithError(err).Error("ResetAdminPassword: could not create admin")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create admin: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Admin created and password set"})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("ResetAdminPassword: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	if err := config.DB.Model(&admin).Update("password", hash).Error; err != nil {
		logrus.WithError(err).Error("ResetAdminPassword: could not update password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update password: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin password reset"})
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isDuplicateEmail(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func issueToken(c *gin.Context, user models.User) {
	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		logrus.WithError(err).Error("could not generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         publicUser(user),
	})
}

func publicUser(user models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	}
}
