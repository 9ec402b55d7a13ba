package deliveryareacontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

type DeliveryAreaInput struct {
	Name        string   `json:"name" binding:"required"`
	PostalCode  string   `json:"postal_code"`
	DeliveryFee *float64 `json:"delivery_fee"`
	Active      *bool    `json:"active"`
}

func GetAllDeliveryAreas(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var areas []models.DeliveryArea
		if err := db.Order("name").Find(&areas).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery areas"})
			return
		}
		c.JSON(http.StatusOK, areas)
	}
}

func CreateDeliveryArea(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DeliveryAreaInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		area := models.DeliveryArea{
			Name:       input.Name,
			PostalCode: input.PostalCode,
			Active:     true,
		}
		if input.DeliveryFee != nil {
			area.DeliveryFee = *input.DeliveryFee
		}
		if input.Active != nil {
			area.Active = *input.Active
		}

		if err := db.Create(&area).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery area"})
			return
		}
		c.JSON(http.StatusCreated, area)
	}
}

func UpdateDeliveryArea(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var area models.DeliveryArea
		if err := db.First(&area, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery area not found"})
			return
		}

		var input DeliveryAreaInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		area.Name = input.Name
		if input.PostalCode != "" {
			area.PostalCode = input.PostalCode
		}
		if input.DeliveryFee != nil {
			area.DeliveryFee = *input.DeliveryFee
		}
		if input.Active != nil {
			area.Active = *input.Active
		}

		if err := db.Save(&area).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery area"})
			return
		}
		c.JSON(http.StatusOK, area)
	}
}

func DeleteDeliveryArea(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := db.Delete(&models.DeliveryArea{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete delivery area"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery area deleted successfully"})
	}
}
