package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

// GetProducts returns the full catalog, newest first.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns one product with its category.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// SearchProducts matches name, description and brand. Returns an unpaginated,
// already-filtered array; the dashboard disables paging for filtered loads.
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}

		likePattern := "%" + q + "%"
		var products []models.Product
		if err := db.Preload("Category").
			Where("name ILIKE ? OR description ILIKE ? OR brand ILIKE ?", likePattern, likePattern, likePattern).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductsByCategory returns the unpaginated set for one category.
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}

		var products []models.Product
		if err := db.Preload("Category").
			Where("category_id = ?", uint(categoryID)).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductsByBrand returns the unpaginated set for one brand.
func GetProductsByBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		brand := c.Param("brand")
		if brand == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "brand is required"})
			return
		}

		var products []models.Product
		if err := db.Preload("Category").
			Where("brand ILIKE ?", brand).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductsByPriceRange filters on min/max price, both optional.
func GetProductsByPriceRange(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Preload("Category")

		if minStr := c.Query("min"); minStr != "" {
			min, err := strconv.ParseFloat(minStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min"})
				return
			}
			query = query.Where("price >= ?", min)
		}
		if maxStr := c.Query("max"); maxStr != "" {
			max, err := strconv.ParseFloat(maxStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max"})
				return
			}
			query = query.Where("price <= ?", max)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
