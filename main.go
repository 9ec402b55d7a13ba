package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tealeg/xlsx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pandiyanpvt/jsmart-admin-api/config"
	"github.com/pandiyanpvt/jsmart-admin-api/events"
	"github.com/pandiyanpvt/jsmart-admin-api/middleware"
	"github.com/pandiyanpvt/jsmart-admin-api/models"
	"github.com/pandiyanpvt/jsmart-admin-api/realtime"
	"github.com/pandiyanpvt/jsmart-admin-api/routes"
)

func main() {
	log.Println("Starting JS Mart admin API...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.UserRole{},
		&models.Category{},
		&models.Supplier{},
		&models.Product{},
		&models.Customer{},
		&models.ShippingAddress{},
		&models.DeliveryArea{},
		&models.OfferType{},
		&models.Offer{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderTrackingEntry{},
		&models.DiscountLog{},
		&models.Refund{},
		&models.RefundTrackingEntry{},
		&models.StockLog{},
		&models.ContactMessage{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	seedLookups(db)

	// RabbitMQ is optional; a nil publisher is a no-op.
	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		log.Fatalf("RabbitMQ initialization failed: %v", err)
	}
	defer publisher.Close()

	hub := realtime.NewHub()

	// Gin setup
	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20 // 32 MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadDir)

	// Setup routes
	routes.SetupRoutes(r, db, hub, publisher)

	// Write the low-stock report at 2 AM daily, keep 4 days of reports
	go startDailyLowStockReport(db, cfg.ReportDir, 4*24*time.Hour, 2, 0)

	// Start server
	log.Printf("Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}
	return db
}

// seedLookups inserts the fixed role and offer-type rows if missing.
func seedLookups(db *gorm.DB) {
	roles := []models.UserRole{
		{ID: models.RoleDeveloper, Name: "DEVELOPER"},
		{ID: models.RoleAdmin, Name: "ADMIN"},
		{ID: models.RoleManager, Name: "MANAGER"},
	}
	for _, role := range roles {
		db.Where(models.UserRole{ID: role.ID}).FirstOrCreate(&role)
	}

	offerTypes := []models.OfferType{
		{ID: models.OfferTypePercentage, Name: "Percentage Discount"},
		{ID: models.OfferTypeFixed, Name: "Fixed Discount"},
		{ID: models.OfferTypeBuyXGetY, Name: "Buy X Get Y"},
		{ID: models.OfferTypeMinOrder, Name: "Minimum Order Discount"},
	}
	for _, ot := range offerTypes {
		db.Where(models.OfferType{ID: ot.ID}).FirstOrCreate(&ot)
	}
}

// startDailyLowStockReport writes a low-stock xlsx daily at a fixed hour and
// removes old reports.
func startDailyLowStockReport(db *gorm.DB, reportDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("Next low-stock report scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		if err := writeLowStockReport(db, reportDir); err != nil {
			log.Printf("Failed to write low-stock report: %v", err)
		}
		cleanupOldReports(reportDir, retention)
	}
}

// writeLowStockReport exports every product below its minimum stock level.
func writeLowStockReport(db *gorm.DB, reportDir string) error {
	var products []models.Product
	if err := db.Where("stock < min_stock_level").Order("name").Find(&products).Error; err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("LowStock")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	for _, h := range []string{"ID", "Name", "Brand", "Stock", "MinStockLevel", "SupplierID"} {
		headerRow.AddCell().SetValue(h)
	}
	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Brand)
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(p.MinStockLevel)
		row.AddCell().SetValue(p.SupplierID)
	}

	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(reportDir, "low_stock_"+time.Now().Format("2006-01-02")+".xlsx")
	if err := file.Save(path); err != nil {
		return err
	}

	log.Printf("Low-stock report written: %s (%d products)", path, len(products))
	return nil
}

// cleanupOldReports removes report files older than the retention duration.
func cleanupOldReports(reportDir string, retention time.Duration) {
	entries, err := os.ReadDir(reportDir)
	if err != nil {
		log.Printf("Failed to read report directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(reportDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				log.Printf("Failed to remove old report %s: %v", path, err)
			} else {
				log.Printf("Removed old report: %s", path)
			}
		}
	}
}
