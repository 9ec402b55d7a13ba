package models

import "time"

// Admin role identifiers. Role gating: a DEVELOPER viewer sees every account,
// an ADMIN viewer never sees DEVELOPER accounts.
const (
	RoleDeveloper uint = 1
	RoleAdmin     uint = 2
	RoleManager   uint = 3
)

type AdminUser struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	RoleID       uint      `gorm:"not null;default:3" json:"role_id"`
	Active       bool      `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserRole struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}
