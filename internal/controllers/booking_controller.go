package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tripplanner/internal/config"
	"tripplanner/internal/middleware"
	"tripplanner/internal/models"
)

// CreateBooking reserves a trip for the authenticated user. The trip's title
// and the user's email are snapshotted onto the booking and never re-synced.
func CreateBooking(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input struct {
		TripID     uint   `json:"trip_id" binding:"required"`
		TravelDate string `json:"travel_date" binding:"required"`
		Travelers  int    `json:"travelers" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking input: " + err.Error()})
		return
	}

	var trip models.Trip
	if err := config.DB.First(&trip, input.TripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			logrus.WithError(err).Error("CreateBooking: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	booking := models.Booking{
		UserID:     user.ID,
		UserEmail:  user.Email,
		TripID:     trip.ID,
		TripTitle:  trip.Title,
		Reference:  uuid.NewString(),
		TravelDate: input.TravelDate,
		Travelers:  input.Travelers,
		Status:     models.BookingStatusPending,
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		logrus.WithError(err).Error("CreateBooking: could not create booking")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create booking: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetMyBookings lists the requester's own bookings in store order.
func GetMyBookings(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var bookings []models.Booking
	if err := config.DB.Where("user_id = ?", user.ID).Find(&bookings).Error; err != nil {
		logrus.WithError(err).Error("GetMyBookings: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching bookings: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListBookings returns every booking (admin only).
func ListBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.Find(&bookings).Error; err != nil {
		logrus.WithError(err).Error("ListBookings: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing bookings: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus overwrites a booking's status (admin only). Any of the
// three statuses may be set from any other; there is no transition graph.
func UpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c, "Invalid booking id")
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status: " + err.Error()})
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			logrus.WithError(err).Error("UpdateBookingStatus: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	booking.Status = input.Status
	if err := config.DB.Save(&booking).Error; err != nil {
		logrus.WithError(err).Error("UpdateBookingStatus: could not save booking")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update booking: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, booking)
}
