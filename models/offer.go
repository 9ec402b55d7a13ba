package models

import (
	"time"

	"gorm.io/gorm"
)

// Offer type identifiers. The required fields of an offer depend on its type;
// see the per-type validation in the offer controller.
const (
	OfferTypePercentage uint = 1
	OfferTypeFixed      uint = 2
	OfferTypeBuyXGetY   uint = 3
	OfferTypeMinOrder   uint = 4
)

type OfferType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

type Offer struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	OfferTypeID uint      `gorm:"not null;index" json:"offer_type_id"`
	OfferType   OfferType `gorm:"foreignKey:OfferTypeID" json:"offer_type"`
	Image       string    `json:"image"`

	// Percentage offers.
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	MaxDiscount     float64 `json:"max_discount,omitempty"`

	// Fixed-amount and minimum-order offers.
	DiscountAmount float64 `json:"discount_amount,omitempty"`

	// Buy-X-get-Y offers.
	ProductID uint `json:"product_id,omitempty"`
	BuyQty    int  `json:"buy_qty,omitempty"`
	GetQty    int  `json:"get_qty,omitempty"`

	// Minimum-order offers.
	ThresholdAmount float64 `json:"threshold_amount,omitempty"`

	StartsAt  *time.Time     `json:"starts_at,omitempty"`
	EndsAt    *time.Time     `json:"ends_at,omitempty"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
