package models

import "time"

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`

	ReplySubject string     `json:"reply_subject,omitempty"`
	ReplyBody    string     `json:"reply_body,omitempty"`
	RepliedAt    *time.Time `json:"replied_at,omitempty"`
	RepliedBy    uint       `json:"replied_by,omitempty"`
}
