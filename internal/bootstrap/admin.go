package bootstrap

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tripplanner/internal/models"
)

const (
	// DefaultAdminEmail is the seeded administrator account.
	DefaultAdminEmail = "admin@tripplanner.com"

	defaultAdminPassword = "admin123"
)

// EnsureDefaultAdmin makes sure the seeded admin account exists. It runs once
// before the server starts accepting requests and performs at most one write.
// Outside production, an admin row that has lost its password hash (older
// data) gets the default password back.
func EnsureDefaultAdmin(db *gorm.DB, production bool) error {
	var admin models.User
	err := db.Where("email = ?", DefaultAdminEmail).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin = models.User{
			Email:    DefaultAdminEmail,
			Name:     "Admin User",
			Role:     "admin",
			Password: string(hash),
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		logrus.Infof("Default admin user created: %s", DefaultAdminEmail)
		return nil
	}
	if err != nil {
		return err
	}

	if admin.Password == "" && !production {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := db.Model(&admin).Update("password", string(hash)).Error; err != nil {
			return err
		}
		logrus.Warn("Admin was missing its password hash – reset to the default (dev only)")
	}
	return nil
}
