package models

import "time"

type Customer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   Address   `gorm:"embedded" json:"address"`
	Orders    []Order   `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Address is embedded wherever a postal address is stored.
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}

// ShippingAddress is a standalone address snapshot referenced by orders, so
// later edits to the customer profile never rewrite past orders.
type ShippingAddress struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint    `gorm:"index" json:"customer_id"`
	Address    Address `gorm:"embedded" json:"address"`
	Phone      string  `json:"phone"`
}
