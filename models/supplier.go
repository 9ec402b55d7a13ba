package models

import "time"

type Supplier struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	ContactName string    `json:"contact_name"`
	Email       string    `gorm:"unique" json:"email"`
	Phone       string    `json:"phone"`
	Address     Address   `gorm:"embedded" json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
