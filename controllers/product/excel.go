package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			brand := get(3)
			price, err1 := strconv.ParseFloat(get(4), 64)
			baseCost, _ := strconv.ParseFloat(get(5), 64)
			stock, _ := strconv.ParseFloat(get(6), 64)
			minLevel, _ := strconv.ParseFloat(get(7), 64)
			maxLevel, _ := strconv.ParseFloat(get(8), 64)
			categoryIDStr := get(9)
			supplierIDStr := get(10)

			if name == "" || err1 != nil {
				skippedCount++
				continue
			}

			product := models.Product{
				Name:          name,
				Description:   description,
				Brand:         brand,
				Price:         price,
				BaseCost:      baseCost,
				Stock:         int(stock),
				MinStockLevel: int(minLevel),
				MaxStockLevel: int(maxLevel),
			}
			if id, err := strconv.Atoi(categoryIDStr); err == nil {
				product.CategoryID = uint(id)
			}
			if id, err := strconv.Atoi(supplierIDStr); err == nil {
				product.SupplierID = uint(id)
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						existing.Name = product.Name
						existing.Description = product.Description
						existing.Brand = product.Brand
						existing.Price = product.Price
						existing.BaseCost = product.BaseCost
						existing.Stock = product.Stock
						existing.MinStockLevel = product.MinStockLevel
						existing.MaxStockLevel = product.MaxStockLevel
						existing.CategoryID = product.CategoryID
						existing.SupplierID = product.SupplierID

						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
					}
				}
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
