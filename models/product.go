package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Description string   `json:"description"`
	Brand       string   `gorm:"index" json:"brand"`
	CategoryID  uint     `gorm:"index" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"category"`
	SupplierID  uint     `gorm:"index" json:"supplier_id"`
	Price       float64  `gorm:"not null" json:"price"`
	BaseCost    float64  `json:"base_cost"`
	Image       string   `json:"image"`
	// Stock is never negative; "remove" adjustments clamp at zero.
	Stock         int            `gorm:"default:0" json:"stock"`
	MinStockLevel int            `gorm:"default:0" json:"min_stock_level"`
	MaxStockLevel int            `gorm:"default:0" json:"max_stock_level"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// LowStock reports whether current stock has fallen below the minimum level.
func (p Product) LowStock() bool {
	return p.Stock < p.MinStockLevel
}
