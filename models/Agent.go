package models

type Agent struct {
	ID              string  `json:"id" gorm:"primaryKey;size:255"`
	UserID          *string `json:"userId" gorm:"size:255;index"`
	Bio             string  `json:"bio"`
	Specialization  string  `json:"specialization"`
	YearsExperience int     `json:"yearsExperience"`
	LicenseNumber   string  `json:"licenseNumber,omitempty"`
	Location        string  `json:"location"`
	PropertiesCount int     `json:"propertiesCount" gorm:"default:0"`
	Rating          string  `json:"rating" gorm:"type:decimal(2,1)"`
	IsActive        bool    `json:"isActive" gorm:"default:true"`
}

// AgentWithUser is the agent joined with the person behind it.
// User is nil when the reference does not resolve.
type AgentWithUser struct {
	Agent
	User *User `json:"user,omitempty" gorm:"-"`
}
