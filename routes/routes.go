package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pandiyanpvt/jsmart-admin-api/events"
	"github.com/pandiyanpvt/jsmart-admin-api/realtime"
)

// SetupRoutes is the single entry-point that wires up Auth, Admin and
// Storefront route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub, publisher *events.Publisher) {
	// 1. Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2. Admin dashboard routes (JWT-protected)
	SetupAdminRoutes(r, db, hub, publisher)

	// 3. Storefront integration routes (API-key-protected)
	SetupStorefrontRoutes(r, db, hub)
}
