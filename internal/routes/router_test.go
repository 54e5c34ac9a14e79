package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tripplanner/internal/config"
	"tripplanner/internal/middleware"
	"tripplanner/internal/models"
)

var testDBSeq int64

// setupTest wires the router to a fresh in-memory database.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A named shared-cache DB so every pooled connection sees the same data
	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Trip{}, &models.Booking{}, &models.ContactMessage{}); err != nil {
		t.Fatalf("could not migrate test database: %v", err)
	}

	config.DB = db
	config.App = &config.Config{
		Port:           "8000",
		Env:            "development",
		JWTSecret:      "secret",
		AllowedOrigins: []string{"*"},
	}

	return SetupRouter()
}

// seedUser inserts a user with password "pass1234" and returns a signed token.
func seedUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("pass1234"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("could not hash test password: %v", err)
	}
	user := models.User{Email: email, Name: "Test " + role, Password: string(hash), Role: role}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("could not seed user %s: %v", email, err)
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("could not sign token for %s: %v", email, err)
	}
	return user, token
}

func seedTrip(t *testing.T, title string) models.Trip {
	t.Helper()

	trip := models.Trip{
		Title:       title,
		Destination: "Lisbon",
		Duration:    "5 days",
		Price:       999,
		Description: "Guided city break",
		Image:       "https://example.com/lisbon.jpg",
	}
	if err := config.DB.Create(&trip).Error; err != nil {
		t.Fatalf("could not seed trip %q: %v", title, err)
	}
	return trip
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("could not marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), v); err != nil {
		t.Fatalf("could not decode response %q: %v", resp.Body.String(), err)
	}
}

// JSON views used in assertions

type authResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	} `json:"user"`
}

type tripJSON struct {
	ID          uint    `json:"ID"`
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
}

type bookingJSON struct {
	ID        uint   `json:"ID"`
	UserEmail string `json:"user_email"`
	TripID    uint   `json:"trip_id"`
	TripTitle string `json:"trip_title"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

type contactJSON struct {
	ID     uint   `json:"ID"`
	Email  string `json:"email"`
	Reply  string `json:"reply"`
	Status string `json:"status"`
}
