package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/pandiyanpvt/jsmart-admin-api/controllers/order"
	refundControllers "github.com/pandiyanpvt/jsmart-admin-api/controllers/refund"
	"github.com/pandiyanpvt/jsmart-admin-api/middleware"
	"github.com/pandiyanpvt/jsmart-admin-api/realtime"
)

// SetupStorefrontRoutes registers the endpoints the storefront checkout
// calls. Requires API-key middleware; orders and return requests enter the
// system here, never through the dashboard.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub) {
	storeGroup := r.Group("/storefront")
	storeGroup.Use(middleware.ValidateAPIKey)
	{
		storeGroup.POST("/orders", orderControllers.IntakeOrder(db, hub))
		storeGroup.POST("/refunds", refundControllers.CreateRefund(db))
	}
}
