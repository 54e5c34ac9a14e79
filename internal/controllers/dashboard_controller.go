package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tripplanner/internal/config"
	"tripplanner/internal/models"
)

// GetStats computes the admin summary counts. The four counts are independent
// queries, not a single transaction; under concurrent writes they may reflect
// slightly different instants.
func GetStats(c *gin.Context) {
	var totalTrips, totalBookings, pendingBookings, totalContacts int64

	if err := config.DB.Model(&models.Trip{}).Count(&totalTrips).Error; err != nil {
		statsError(c, err)
		return
	}
	if err := config.DB.Model(&models.Booking{}).Count(&totalBookings).Error; err != nil {
		statsError(c, err)
		return
	}
	if err := config.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusPending).
		Count(&pendingBookings).Error; err != nil {
		statsError(c, err)
		return
	}
	if err := config.DB.Model(&models.ContactMessage{}).Count(&totalContacts).Error; err != nil {
		statsError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_trips":      totalTrips,
		"total_bookings":   totalBookings,
		"pending_bookings": pendingBookings,
		"total_contacts":   totalContacts,
	})
}

func statsError(c *gin.Context, err error) {
	logrus.WithError(err).Error("GetStats: database error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing stats: " + err.Error()})
}
