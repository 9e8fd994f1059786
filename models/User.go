package models

import "time"

const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	FullName  string    `json:"fullName" gorm:"not null"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Role      string    `json:"role" gorm:"default:user"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserUpdate carries the settable fields of a user. Nil fields are left untouched.
type UserUpdate struct {
	FullName  *string `json:"fullName"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatarUrl"`
	Role      *string `json:"role"`
}

// Credential keeps password hashes in their own record so the User
// entity never carries secrets over the wire.
type Credential struct {
	UserID       string `json:"-" gorm:"primaryKey;size:255"`
	PasswordHash string `json:"-"`
}
