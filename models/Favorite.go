package models

import "time"

// Favorite links one user to one property. At most one row may exist
// per (UserID, PropertyID) pair; adding an existing pair is idempotent.
type Favorite struct {
	ID         string    `json:"id" gorm:"primaryKey;size:255"`
	UserID     string    `json:"userId" gorm:"size:255;index:idx_fav_pair,unique"`
	PropertyID string    `json:"propertyId" gorm:"size:255;index:idx_fav_pair,unique"`
	CreatedAt  time.Time `json:"createdAt"`
}
