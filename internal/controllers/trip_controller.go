package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tripplanner/internal/config"
	"tripplanner/internal/models"
)

// CreateTrip adds a new listing to the catalog (admin only).
func CreateTrip(c *gin.Context) {
	var input struct {
		Title       string  `json:"title" binding:"required"`
		Destination string  `json:"destination" binding:"required"`
		Duration    string  `json:"duration" binding:"required"`
		Price       float64 `json:"price" binding:"gte=0"`
		Description string  `json:"description"`
		Image       string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip input: " + err.Error()})
		return
	}

	trip := models.Trip{
		Title:       input.Title,
		Destination: input.Destination,
		Duration:    input.Duration,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := config.DB.Create(&trip).Error; err != nil {
		logrus.WithError(err).Error("CreateTrip: could not create trip")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create trip: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, trip)
}

func ListTrips(c *gin.Context) {
	var trips []models.Trip
	if err := config.DB.Find(&trips).Error; err != nil {
		logrus.WithError(err).Error("ListTrips: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing trips: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, trips)
}

func GetTrip(c *gin.Context) {
	id, ok := parseID(c, "Invalid trip id")
	if !ok {
		return
	}

	var trip models.Trip
	if err := config.DB.First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			logrus.WithError(err).Error("GetTrip: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, trip)
}

// UpdateTrip replaces the provided fields on an existing trip (admin only).
// Absent fields keep their stored values.
func UpdateTrip(c *gin.Context) {
	id, ok := parseID(c, "Invalid trip id")
	if !ok {
		return
	}

	var trip models.Trip
	if err := config.DB.First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			logrus.WithError(err).Error("UpdateTrip: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	var input struct {
		Title       *string  `json:"title"`
		Destination *string  `json:"destination"`
		Duration    *string  `json:"duration"`
		Price       *float64 `json:"price"`
		Description *string  `json:"description"`
		Image       *string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip input: " + err.Error()})
		return
	}

	if input.Title != nil {
		trip.Title = *input.Title
	}
	if input.Destination != nil {
		trip.Destination = *input.Destination
	}
	if input.Duration != nil {
		trip.Duration = *input.Duration
	}
	if input.Price != nil {
		trip.Price = *input.Price
	}
	if input.Description != nil {
		trip.Description = *input.Description
	}
	if input.Image != nil {
		trip.Image = *input.Image
	}

	if err := config.DB.Save(&trip).Error; err != nil {
		logrus.WithError(err).Error("UpdateTrip: could not save trip")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update trip: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, trip)
}

func DeleteTrip(c *gin.Context) {
	id, ok := parseID(c, "Invalid trip id")
	if !ok {
		return
	}

	var trip models.Trip
	if err := config.DB.First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			logrus.WithError(err).Error("DeleteTrip: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := config.DB.Delete(&trip).Error; err != nil {
		logrus.WithError(err).Error("DeleteTrip: could not delete trip")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete trip: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}

// parseID reads the :id path parameter; on garbage it writes a 400 with the
// given message and reports false.
func parseID(c *gin.Context, badIDMessage string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": badIDMessage})
		return 0, false
	}
	return uint(id), true
}
