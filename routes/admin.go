package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/pandiyanpvt/jsmart-admin-api/controllers/admin"
	categorycontroller "github.com/pandiyanpvt/jsmart-admin-api/controllers/category"
	contactController "github.com/pandiyanpvt/jsmart-admin-api/controllers/contact"
	customercontroller "github.com/pandiyanpvt/jsmart-admin-api/controllers/customer"
	deliveryareacontroller "github.com/pandiyanpvt/jsmart-admin-api/controllers/deliveryarea"
	inventorycontroller "github.com/pandiyanpvt/jsmart-admin-api/controllers/inventory"
	offercontroller "github.com/pandiyanpvt/jsmart-admin-api/controllers/offer"
	orderControllers "github.com/pandiyanpvt/jsmart-admin-api/controllers/order"
	productcontroller "github.com/pandiyanpvt/jsmart-admin-api/controllers/product"
	refundControllers "github.com/pandiyanpvt/jsmart-admin-api/controllers/refund"
	suppliercontroller "github.com/pandiyanpvt/jsmart-admin-api/controllers/supplier"
	"github.com/pandiyanpvt/jsmart-admin-api/events"
	"github.com/pandiyanpvt/jsmart-admin-api/middleware"
	"github.com/pandiyanpvt/jsmart-admin-api/realtime"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires JWT
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub, publisher *events.Publisher) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.GET("/paginated", productcontroller.GetProductsPaginated(db))
			productAdmin.GET("/search", productcontroller.SearchProducts(db))
			productAdmin.GET("/category/:id", productcontroller.GetProductsByCategory(db))
			productAdmin.GET("/brand/:brand", productcontroller.GetProductsByBrand(db))
			productAdmin.GET("/price-range", productcontroller.GetProductsByPriceRange(db))
			productAdmin.GET("/:id", productcontroller.GetProductByID(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", categorycontroller.GetAllCategories(db))
			categoryAdmin.GET("/:id", categorycontroller.GetCategoryByID(db))
			categoryAdmin.POST("", categorycontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", categorycontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", categorycontroller.DeleteCategory(db))
		}

		// ─────────── Inventory & Stock Logs ───────────
		inventoryAdmin := adminGroup.Group("/inventory")
		{
			inventoryAdmin.GET("", inventorycontroller.GetInventory(db))
			inventoryAdmin.POST("/adjust", inventorycontroller.AdjustStock(db))
			inventoryAdmin.GET("/stock-logs", inventorycontroller.GetStockLogs(db))
			inventoryAdmin.GET("/stock-logs/export-excel", inventorycontroller.ExportStockLogs(db))
		}

		// ─────────── Suppliers ───────────
		supplierAdmin := adminGroup.Group("/suppliers")
		{
			supplierAdmin.GET("", suppliercontroller.GetAllSuppliers(db))
			supplierAdmin.GET("/:id", suppliercontroller.GetSupplierByID(db))
			supplierAdmin.POST("", suppliercontroller.CreateSupplier(db))
			supplierAdmin.PUT("/:id", suppliercontroller.UpdateSupplier(db))
			supplierAdmin.DELETE("/:id", suppliercontroller.DeleteSupplier(db))
		}

		// ─────────── Customers ───────────
		customerAdmin := adminGroup.Group("/customers")
		{
			customerAdmin.GET("", customercontroller.GetAllCustomers(db))
			customerAdmin.GET("/:id", customercontroller.GetCustomerByID(db))
			customerAdmin.PUT("/:id", customercontroller.UpdateCustomer(db))
			customerAdmin.DELETE("/:id", customercontroller.DeleteCustomer(db))
		}

		// ─────────── Admin Users & Roles ───────────
		adminMgmt := adminGroup.Group("/admins")
		{
			adminMgmt.GET("", adminController.GetAllAdmins(db))
			adminMgmt.POST("", adminController.CreateAdmin(db))
			adminMgmt.PUT("/:id", adminController.UpdateAdmin(db))
			adminMgmt.DELETE("/:id", adminController.DeleteAdmin(db))
		}
		adminGroup.GET("/roles", adminController.GetRoles(db))

		// ─────────── Delivery Areas ───────────
		areaAdmin := adminGroup.Group("/delivery-areas")
		{
			areaAdmin.GET("", deliveryareacontroller.GetAllDeliveryAreas(db))
			areaAdmin.POST("", deliveryareacontroller.CreateDeliveryArea(db))
			areaAdmin.PUT("/:id", deliveryareacontroller.UpdateDeliveryArea(db))
			areaAdmin.DELETE("/:id", deliveryareacontroller.DeleteDeliveryArea(db))
		}

		// ─────────── Offers ───────────
		offerAdmin := adminGroup.Group("/offers")
		{
			offerAdmin.GET("", offercontroller.GetAllOffers(db))
			offerAdmin.GET("/types", offercontroller.GetOfferTypes(db))
			offerAdmin.POST("", offercontroller.CreateOffer(db))
			offerAdmin.PUT("/:id", offercontroller.UpdateOffer(db))
			offerAdmin.DELETE("/:id", offercontroller.DeleteOffer(db))
		}

		// ─────────── Orders & Tracking ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByID(db))
			orderAdmin.GET("/:orderID/tracking", orderControllers.GetOrderTracking(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(db, hub, publisher))
			orderAdmin.PUT("/:orderID/paid", orderControllers.MarkOrderPaid(db))
		}

		// ─────────── Refunds & Tracking ───────────
		refundAdmin := adminGroup.Group("/refunds")
		{
			refundAdmin.GET("", refundControllers.GetAllRefunds(db))
			refundAdmin.GET("/:refundID/tracking", refundControllers.GetRefundTracking(db))
			refundAdmin.PUT("/:refundID/status", refundControllers.UpdateRefundStatus(db, publisher))
		}

		// ─────────── Contact Messages ───────────
		contactAdmin := adminGroup.Group("/messages")
		{
			contactAdmin.GET("", contactController.GetAllMessages(db))
			contactAdmin.GET("/:id", contactController.GetMessageByID(db))
			contactAdmin.PUT("/:id/read", contactController.MarkMessageRead(db))
			contactAdmin.POST("/:id/reply", contactController.ReplyToMessage(db))
		}
	}

	// Websocket endpoint for real-time order updates.
	r.GET("/ws/orders", hub.Handler)
}
