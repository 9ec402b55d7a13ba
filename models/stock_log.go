package models

import "time"

// Stock adjustment types.
const (
	StockAdjustAdd    = "add"
	StockAdjustRemove = "remove"
)

// StockLog records one stock adjustment with the quantity before and after,
// so the history is auditable even after later adjustments.
type StockLog struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID     uint      `gorm:"not null;index" json:"product_id"`
	ProductName   string    `json:"product_name"`
	Type          string    `gorm:"type:VARCHAR(10);not null" json:"type"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	Reason        string    `gorm:"not null" json:"reason"`
	AdminID       uint      `json:"admin_id"`
	CreatedAt     time.Time `json:"created_at"`
}
