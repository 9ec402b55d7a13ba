package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pandiyanpvt/jsmart-admin-api/lifecycle"
	"github.com/pandiyanpvt/jsmart-admin-api/models"
	"github.com/pandiyanpvt/jsmart-admin-api/realtime"
)

// Storefront order intake. Orders are created by the storefront checkout,
// not by dashboard operators; this endpoint sits behind the API key.

type IntakeItem struct {
	ProductID      uint    `json:"product_id" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required"`
	DiscountAmount float64 `json:"discount_amount"`
}

type IntakeOrderRequest struct {
	CustomerID        uint         `json:"customer_id" binding:"required"`
	ShippingAddressID uint         `json:"shipping_address_id"`
	Items             []IntakeItem `json:"items" binding:"required"`
	TaxRate           float64      `json:"tax_rate"`
	IsPaid            bool         `json:"is_paid"`
}

// IntakeOrder creates an order in PENDING, deducts stock under row locks and
// writes the first tracking entry.
func IntakeOrder(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IntakeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order has no items"})
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var subtotal, discount float64
			var orderItems []models.OrderItem

			for _, item := range req.Items {
				if item.Quantity <= 0 {
					return errors.New("item quantity must be positive")
				}

				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&product, "id = ?", item.ProductID).Error; err != nil {
					return err
				}

				if product.Stock < item.Quantity {
					return errors.New("insufficient stock for product: " + product.Name)
				}

				product.Stock -= item.Quantity
				if err := tx.Save(&product).Error; err != nil {
					return err
				}

				subtotal += product.Price * float64(item.Quantity)
				discount += item.DiscountAmount

				orderItems = append(orderItems, models.OrderItem{
					ProductID:      product.ID,
					ProductName:    product.Name,
					UnitPrice:      product.Price,
					Quantity:       item.Quantity,
					DiscountAmount: item.DiscountAmount,
				})
			}

			tax := (subtotal - discount) * req.TaxRate

			order = models.Order{
				OrderRef:          generateOrderRef(),
				CustomerID:        req.CustomerID,
				ShippingAddressID: req.ShippingAddressID,
				Items:             orderItems,
				Subtotal:          subtotal,
				Discount:          discount,
				Tax:               tax,
				TotalAmount:       subtotal - discount + tax,
				Status:            string(lifecycle.OrderPending),
				IsPaid:            req.IsPaid,
				CreatedAt:         time.Now(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			entry := models.OrderTrackingEntry{
				OrderID:   order.ID,
				Status:    string(lifecycle.OrderPending),
				Timestamp: order.CreatedAt,
			}
			return tx.Create(&entry).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if hub != nil {
			hub.Broadcast(gin.H{"type": "order_created", "order_id": order.ID})
		}
		c.JSON(http.StatusCreated, order)
	}
}
