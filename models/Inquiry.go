package models

import "time"

const (
	InquiryStatusPending   = "pending"
	InquiryStatusResponded = "responded"
)

type Inquiry struct {
	ID         string    `json:"id" gorm:"primaryKey;size:255"`
	UserID     *string   `json:"userId" gorm:"size:255;index"`
	PropertyID *string   `json:"propertyId" gorm:"size:255;index"`
	AgentID    *string   `json:"agentId" gorm:"size:255;index"`
	Name       string    `json:"name" gorm:"not null"`
	Email      string    `json:"email" gorm:"not null"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message" gorm:"not null"`
	Status     string    `json:"status" gorm:"default:pending"`
	CreatedAt  time.Time `json:"createdAt"`
}
