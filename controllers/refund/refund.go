package refundControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pandiyanpvt/jsmart-admin-api/events"
	"github.com/pandiyanpvt/jsmart-admin-api/lifecycle"
	"github.com/pandiyanpvt/jsmart-admin-api/middleware"
	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

type UpdateRefundStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

type CreateRefundRequest struct {
	OrderID      uint    `json:"order_id" binding:"required"`
	ProductID    uint    `json:"product_id"`
	RefundAmount float64 `json:"refund_amount" binding:"required"`
	Reason       string  `json:"reason" binding:"required"`
}

func GetAllRefunds(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var refunds []models.Refund
		if err := db.Order("created_at DESC").Find(&refunds).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch refunds"})
			return
		}
		c.JSON(http.StatusOK, refunds)
	}
}

// CreateRefund registers a storefront return request in PENDING.
func CreateRefund(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRefundRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, req.OrderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		refund := models.Refund{
			OrderID:      req.OrderID,
			ProductID:    req.ProductID,
			RefundAmount: req.RefundAmount,
			Reason:       req.Reason,
			Status:       string(lifecycle.RefundPending),
			CreatedAt:    time.Now(),
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&refund).Error; err != nil {
				return err
			}
			entry := models.RefundTrackingEntry{
				RefundID:  refund.ID,
				Status:    refund.Status,
				Timestamp: refund.CreatedAt,
			}
			return tx.Create(&entry).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refund"})
			return
		}
		c.JSON(http.StatusCreated, refund)
	}
}

// UpdateRefundStatus applies one refund transition with the same guard shape
// as orders: re-read under a lock, validate against the branch table, append
// a tracking entry.
func UpdateRefundStatus(db *gorm.DB, publisher *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		refundID := c.Param("refundID")
		if refundID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "refundID is required"})
			return
		}

		var req UpdateRefundStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		target, err := lifecycle.ParseRefundStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid refund status"})
			return
		}

		var refund models.Refund
		var fromStatus string
		txErr := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&refund, "id = ?", refundID).Error; err != nil {
				return err
			}
			fromStatus = refund.Status

			entry, err := lifecycle.TransitionRefund(&refund, target, req.Comment, time.Now())
			if err != nil {
				return err
			}

			if err := tx.Model(&models.Refund{}).Where("id = ?", refund.ID).
				Updates(map[string]interface{}{
					"status":        refund.Status,
					"admin_comment": refund.AdminComment,
				}).Error; err != nil {
				return err
			}
			return tx.Create(&entry).Error
		})
		if txErr != nil {
			var ite *lifecycle.InvalidTransitionError
			switch {
			case errors.Is(txErr, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "refund not found"})
			case errors.As(txErr, &ite):
				middleware.RecordTransition("refund", false)
				c.JSON(http.StatusConflict, gin.H{
					"error": ite.Error(),
					"code":  "invalid_transition",
				})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update refund status"})
			}
			return
		}

		middleware.RecordTransition("refund", true)

		adminID, _ := c.Get("admin_id")
		event := events.StatusEvent{
			Resource:   "refund",
			ID:         refund.ID,
			FromStatus: fromStatus,
			ToStatus:   refund.Status,
			OccurredAt: time.Now(),
		}
		if id, ok := adminID.(uint); ok {
			event.AdminID = id
		}
		publisher.Publish(event)

		c.JSON(http.StatusOK, refund)
	}
}

// GetRefundTracking returns the refund status history, oldest first.
func GetRefundTracking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		refundID := c.Param("refundID")

		var entries []models.RefundTrackingEntry
		if err := db.
			Where("refund_id = ?", refundID).
			Order("timestamp ASC").
			Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tracking"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
