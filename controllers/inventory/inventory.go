package inventorycontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

type AdjustStockRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Type      string `json:"type" binding:"required"` // "add" or "remove"
	Quantity  int    `json:"quantity" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

var errUnknownAdjustType = errors.New("adjustment type must be add or remove")

// ApplyAdjustment computes the new stock level. A remove never drives stock
// below zero.
func ApplyAdjustment(current int, adjustType string, qty int) (int, error) {
	switch adjustType {
	case models.StockAdjustAdd:
		return current + qty, nil
	case models.StockAdjustRemove:
		next := current - qty
		if next < 0 {
			next = 0
		}
		return next, nil
	default:
		return current, errUnknownAdjustType
	}
}

type InventoryItem struct {
	models.Product
	IsLowStock bool `json:"is_low_stock"`
}

// GetInventory lists all products with their stock levels and a low-stock
// flag.
func GetInventory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("name").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
			return
		}

		items := make([]InventoryItem, 0, len(products))
		for _, p := range products {
			items = append(items, InventoryItem{Product: p, IsLowStock: p.LowStock()})
		}
		c.JSON(http.StatusOK, items)
	}
}

// AdjustStock applies one stock adjustment inside a locking transaction and
// writes the stock log with before/after quantities.
func AdjustStock(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdjustStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be greater than zero"})
			return
		}

		adminID, _ := c.Get("admin_id")

		var logEntry models.StockLog
		err := db.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", req.ProductID).Error; err != nil {
				return err
			}

			previous := product.Stock
			next, err := ApplyAdjustment(previous, req.Type, req.Quantity)
			if err != nil {
				return err
			}

			product.Stock = next
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			logEntry = models.StockLog{
				ProductID:     product.ID,
				ProductName:   product.Name,
				Type:          req.Type,
				Quantity:      req.Quantity,
				PreviousStock: previous,
				NewStock:      next,
				Reason:        req.Reason,
				CreatedAt:     time.Now(),
			}
			if id, ok := adminID.(uint); ok {
				logEntry.AdminID = id
			}
			return tx.Create(&logEntry).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			if errors.Is(err, errUnknownAdjustType) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
			return
		}

		c.JSON(http.StatusOK, logEntry)
	}
}

// GetStockLogs lists adjustments, newest first, optionally scoped to one
// product.
func GetStockLogs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.StockLog{}).Order("created_at DESC")
		if productID := c.Query("product_id"); productID != "" {
			query = query.Where("product_id = ?", productID)
		}

		var logs []models.StockLog
		if err := query.Find(&logs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stock logs"})
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}
