package bootstrap

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tripplanner/internal/models"
)

var bootstrapTestSeq int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:bootstrap_test_%d?mode=memory&cache=shared", atomic.AddInt64(&bootstrapTestSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("could not migrate test database: %v", err)
	}
	return db
}

func TestEnsureDefaultAdminIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 2; i++ {
		if err := EnsureDefaultAdmin(db, false); err != nil {
			t.Fatalf("run %d failed: %v", i+1, err)
		}
	}

	var admins []models.User
	if err := db.Where("email = ?", DefaultAdminEmail).Find(&admins).Error; err != nil {
		t.Fatalf("could not list admins: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("expected exactly one seeded admin, got %d", len(admins))
	}
	if admins[0].Role != "admin" {
		t.Fatalf("expected admin role, got %q", admins[0].Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admins[0].Password), []byte(defaultAdminPassword)); err != nil {
		t.Fatalf("seeded admin password does not verify: %v", err)
	}
}

func TestEnsureDefaultAdminRepairsMissingHashInDev(t *testing.T) {
	db := openTestDB(t)

	admin := models.User{Email: DefaultAdminEmail, Name: "Admin", Role: "admin"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("could not seed hash-less admin: %v", err)
	}

	if err := EnsureDefaultAdmin(db, false); err != nil {
		t.Fatalf("ensure failed: %v", err)
	}

	var repaired models.User
	if err := db.Where("email = ?", DefaultAdminEmail).First(&repaired).Error; err != nil {
		t.Fatalf("could not reload admin: %v", err)
	}
	if repaired.Password == "" {
		t.Fatalf("expected password hash to be restored in dev mode")
	}
}

func TestEnsureDefaultAdminLeavesMissingHashInProduction(t *testing.T) {
	db := openTestDB(t)

	admin := models.User{Email: DefaultAdminEmail, Name: "Admin", Role: "admin"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("could not seed hash-less admin: %v", err)
	}

	if err := EnsureDefaultAdmin(db, true); err != nil {
		t.Fatalf("ensure failed: %v", err)
	}

	var unchanged models.User
	if err := db.Where("email = ?", DefaultAdminEmail).First(&unchanged).Error; err != nil {
		t.Fatalf("could not reload admin: %v", err)
	}
	if unchanged.Password != "" {
		t.Fatalf("expected production mode to leave the row alone")
	}
}
