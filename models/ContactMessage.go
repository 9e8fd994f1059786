package models

import "time"

const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"
)

// ContactMessage is a standalone inbound message with no relational references.
type ContactMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;size:255"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message" gorm:"not null"`
	Status    string    `json:"status" gorm:"default:unread"`
	CreatedAt time.Time `json:"createdAt"`
}
