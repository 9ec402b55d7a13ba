package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "/var/www/jsmart/uploads"
}

// saveUpload stores a multipart file under uploadDir()/<sub> and returns the
// public URL path.
func saveUpload(c *gin.Context, field, sub string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	saveDir := filepath.Join(uploadDir(), sub)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s/%s", sub, filename), nil
}

// CreateProduct creates a product from a multipart form, image optional.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		product := models.Product{
			Name:        name,
			Description: c.PostForm("description"),
			Brand:       c.PostForm("brand"),
			Price:       price,
		}

		if v := c.PostForm("base_cost"); v != "" {
			if bc, parseErr := strconv.ParseFloat(v, 64); parseErr == nil {
				product.BaseCost = bc
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base_cost"})
				return
			}
		}
		if v := c.PostForm("category_id"); v != "" {
			if id64, parseErr := strconv.ParseUint(v, 10, 64); parseErr == nil {
				product.CategoryID = uint(id64)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}
		if v := c.PostForm("supplier_id"); v != "" {
			if id64, parseErr := strconv.ParseUint(v, 10, 64); parseErr == nil {
				product.SupplierID = uint(id64)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supplier_id"})
				return
			}
		}
		if v := c.PostForm("stock"); v != "" {
			if n, parseErr := strconv.Atoi(v); parseErr == nil && n >= 0 {
				product.Stock = n
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}
		if v := c.PostForm("min_stock_level"); v != "" {
			if n, parseErr := strconv.Atoi(v); parseErr == nil {
				product.MinStockLevel = n
			}
		}
		if v := c.PostForm("max_stock_level"); v != "" {
			if n, parseErr := strconv.Atoi(v); parseErr == nil {
				product.MaxStockLevel = n
			}
		}

		if url, upErr := saveUpload(c, "image", "products"); upErr == nil {
			product.Image = url
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
