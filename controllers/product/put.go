package productcontroller

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

// UpdateProduct applies the multipart fields that were supplied; everything
// else is left as-is.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("brand"); v != "" {
			product.Brand = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("base_cost"); v != "" {
			if bc, err := strconv.ParseFloat(v, 64); err == nil {
				product.BaseCost = bc
			}
		}
		if v := c.PostForm("category_id"); v != "" {
			if id64, err := strconv.ParseUint(v, 10, 64); err == nil {
				product.CategoryID = uint(id64)
			}
		}
		if v := c.PostForm("supplier_id"); v != "" {
			if id64, err := strconv.ParseUint(v, 10, 64); err == nil {
				product.SupplierID = uint(id64)
			}
		}
		if v := c.PostForm("min_stock_level"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				product.MinStockLevel = n
			}
		}
		if v := c.PostForm("max_stock_level"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				product.MaxStockLevel = n
			}
		}

		if url, err := saveUpload(c, "image", "products"); err == nil {
			// Drop the replaced image file.
			if product.Image != "" {
				oldPath := filepath.Join(uploadDir(), "products", filepath.Base(product.Image))
				_ = os.Remove(oldPath)
			}
			product.Image = url
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
