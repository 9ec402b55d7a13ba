package models

type DeliveryArea struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	PostalCode  string  `gorm:"index" json:"postal_code"`
	DeliveryFee float64 `json:"delivery_fee"`
	Active      bool    `gorm:"default:true" json:"active"`
}
