package models

import "time"

type Refund struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      uint      `gorm:"not null;index" json:"order_id"`
	ProductID    uint      `json:"product_id"`
	RefundAmount float64   `json:"refund_amount"`
	Reason       string    `json:"reason"`
	Status       string    `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	AdminComment string    `json:"admin_comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// RefundTrackingEntry mirrors OrderTrackingEntry: append-only status history.
type RefundTrackingEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RefundID  uint      `gorm:"index" json:"refund_id"`
	Status    string    `gorm:"type:VARCHAR(20)" json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
