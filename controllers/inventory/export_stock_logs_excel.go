package inventorycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

// ExportStockLogs downloads the adjustment history as an xlsx file,
// optionally scoped to one product.
func ExportStockLogs(db *gorm.DB) gin.HandlerFunc {
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

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("StockLogs")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "ProductID", "ProductName", "Type", "Quantity",
			"PreviousStock", "NewStock", "Reason", "AdminID", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, l := range logs {
			row := sheet.AddRow()

			row.AddCell().SetValue(l.ID)
			row.AddCell().SetValue(l.ProductID)
			row.AddCell().SetValue(l.ProductName)
			row.AddCell().SetValue(l.Type)
			row.AddCell().SetValue(l.Quantity)
			row.AddCell().SetValue(l.PreviousStock)
			row.AddCell().SetValue(l.NewStock)
			row.AddCell().SetValue(l.Reason)
			row.AddCell().SetValue(l.AdminID)
			row.AddCell().SetValue(l.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=stock_logs.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
