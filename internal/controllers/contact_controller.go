package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tripplanner/internal/config"
	"tripplanner/internal/middleware"
	"tripplanner/internal/models"
)

// SubmitMessage accepts a public contact message; no authentication required.
func SubmitMessage(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact input: " + err.Error()})
		return
	}

	message := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
		Status:  models.ContactStatusPending,
	}
	if err := config.DB.Create(&message).Error; err != nil {
		logrus.WithError(err).Error("SubmitMessage: could not create message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create message: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, message)
}

// GetMyMessages lists messages whose email equals the requester's email.
// Exact string match, no case or whitespace normalization.
func GetMyMessages(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var messages []models.ContactMessage
	if err := config.DB.Where("email = ?", user.Email).Find(&messages).Error; err != nil {
		logrus.WithError(err).Error("GetMyMessages: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching messages: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ListMessages returns every contact message (admin only).
func ListMessages(c *gin.Context) {
	var messages []models.ContactMessage
	if err := config.DB.Find(&messages).Error; err != nil {
		logrus.WithError(err).Error("ListMessages: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing messages: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ReplyToMessage attaches an admin reply and marks the message replied.
// Replying again overwrites the text; the status stays "replied".
func ReplyToMessage(c *gin.Context) {
	id, ok := parseID(c, "Invalid message id")
	if !ok {
		return
	}

	var input struct {
		Reply string `json:"reply" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing reply"})
		return
	}

	var message models.ContactMessage
	if err := config.DB.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
		} else {
			logrus.WithError(err).Error("ReplyToMessage: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	message.Reply = input.Reply
	message.Status = models.ContactStatusReplied
	if err := config.DB.Save(&message).Error; err != nil {
		logrus.WithError(err).Error("ReplyToMessage: could not save message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update message: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, message)
}
