package models

import "time"

type Order struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	OrderRef          string            `gorm:"uniqueIndex" json:"order_ref"`
	CustomerID        uint              `gorm:"not null;index" json:"customer_id"`
	Customer          Customer          `gorm:"foreignKey:CustomerID" json:"customer"`
	ShippingAddressID uint              `json:"shipping_address_id"`
	ShippingAddress   ShippingAddress   `gorm:"foreignKey:ShippingAddressID" json:"shipping_address"`
	Items             []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	DiscountLogs      []DiscountLog     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"discount_logs,omitempty"`
	Subtotal          float64           `json:"subtotal"`
	Discount          float64           `json:"discount"`
	Tax               float64           `json:"tax"`
	TotalAmount       float64           `json:"total_amount"`
	Status            string            `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	IsPaid            bool              `gorm:"default:false" json:"is_paid"`
	CreatedAt         time.Time         `json:"created_at"`
}

type OrderItem struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	OrderID        uint    `gorm:"index" json:"order_id"`
	ProductID      uint    `json:"product_id"`
	ProductName    string  `json:"product_name"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
	DiscountAmount float64 `json:"discount_amount"`
}

// OrderTrackingEntry is append-only: one row is added per status change and
// existing rows are never updated or deleted.
type OrderTrackingEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"index" json:"order_id"`
	Status    string    `gorm:"type:VARCHAR(20)" json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type DiscountLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"index" json:"order_id"`
	OfferID   uint      `json:"offer_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
