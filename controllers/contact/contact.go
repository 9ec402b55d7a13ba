package contactController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

type ReplyRequest struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

func GetAllMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.ContactMessage
		if err := db.Order("created_at DESC").Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

func GetMessageByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var message models.ContactMessage
		if err := db.First(&message, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusOK, message)
	}
}

func MarkMessageRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := db.Model(&models.ContactMessage{}).Where("id = ?", id).
			Update("read", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark message read"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
	}
}

// ReplyToMessage stores the reply on the message and marks it read. Actual
// mail delivery is handled by a separate mailer service reading these rows.
func ReplyToMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req ReplyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "subject and body are required"})
			return
		}

		var message models.ContactMessage
		if err := db.First(&message, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}

		now := time.Now()
		message.ReplySubject = req.Subject
		message.ReplyBody = req.Body
		message.RepliedAt = &now
		message.Read = true
		if adminID, ok := c.Get("admin_id"); ok {
			if aid, ok := adminID.(uint); ok {
				message.RepliedBy = aid
			}
		}

		if err := db.Save(&message).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reply"})
			return
		}
		c.JSON(http.StatusOK, message)
	}
}
