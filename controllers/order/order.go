package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pandiyanpvt/jsmart-admin-api/events"
	"github.com/pandiyanpvt/jsmart-admin-api/lifecycle"
	"github.com/pandiyanpvt/jsmart-admin-api/middleware"
	"github.com/pandiyanpvt/jsmart-admin-api/models"
	"github.com/pandiyanpvt/jsmart-admin-api/realtime"
)

type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"order_status" binding:"required"`
}

// generateOrderRef builds a unique storefront-visible reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// GetAllOrders returns every order, newest first, with customer and items.
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Customer").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByID returns the full detail: totals, shipping address, line items
// and discount logs. Accepts the numeric id or the order ref.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Customer").
			Preload("ShippingAddress").
			Preload("Items").
			Preload("DiscountLogs").
			Where("id::text = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GetOrderTracking returns the status history, oldest first.
func GetOrderTracking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var entries []models.OrderTrackingEntry
		if err := db.
			Where("order_id = ?", orderID).
			Order("timestamp ASC").
			Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tracking"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

// UpdateOrderStatus applies one status transition. The row is re-read under
// a lock and re-validated against the transition table, so a stale client is
// rejected even if its own guard allowed the move.
func UpdateOrderStatus(db *gorm.DB, hub *realtime.Hub, publisher *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		target, err := lifecycle.ParseOrderStatus(req.OrderStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		var order models.Order
		var fromStatus string
		txErr := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&order, "id = ?", orderID).Error; err != nil {
				return err
			}
			fromStatus = order.Status

			entry, err := lifecycle.Transition(&order, target, time.Now())
			if err != nil {
				return err
			}

			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("status", order.Status).Error; err != nil {
				return err
			}
			return tx.Create(&entry).Error
		})
		if txErr != nil {
			var ite *lifecycle.InvalidTransitionError
			switch {
			case errors.Is(txErr, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case errors.As(txErr, &ite):
				middleware.RecordTransition("order", false)
				c.JSON(http.StatusConflict, gin.H{
					"error": ite.Error(),
					"code":  "invalid_transition",
				})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			}
			return
		}

		middleware.RecordTransition("order", true)

		adminID, _ := c.Get("admin_id")
		event := events.StatusEvent{
			Resource:   "order",
			ID:         order.ID,
			FromStatus: fromStatus,
			ToStatus:   order.Status,
			OccurredAt: time.Now(),
		}
		if id, ok := adminID.(uint); ok {
			event.AdminID = id
		}
		publisher.Publish(event)
		if hub != nil {
			hub.Broadcast(gin.H{"type": "order_status", "order_id": order.ID, "status": order.Status})
		}

		c.JSON(http.StatusOK, order)
	}
}

// MarkOrderPaid flips the paid flag.
func MarkOrderPaid(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req struct {
			IsPaid bool `json:"is_paid"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("is_paid", req.IsPaid).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment flag"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment flag updated"})
	}
}
