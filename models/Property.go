package models

import "time"

const (
	PropertyStatusAvailable = "available"

	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortPopular   = "popular"
)

type Property struct {
	ID           string    `json:"id" gorm:"primaryKey;size:255"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	Price        int       `json:"price" gorm:"not null;index"`
	PropertyType string    `json:"propertyType" gorm:"not null;index"` // apartment, villa, penthouse, townhouse, condo, house
	Status       string    `json:"status" gorm:"default:available"`
	Location     string    `json:"location" gorm:"not null"`
	Address      string    `json:"address"`
	City         string    `json:"city" gorm:"not null;index"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	Area         int       `json:"area" gorm:"not null"`
	Bedrooms     int       `json:"bedrooms" gorm:"not null"`
	Bathrooms    int       `json:"bathrooms" gorm:"not null"`
	FloorNumber  *int      `json:"floorNumber,omitempty"`
	YearBuilt    *int      `json:"yearBuilt,omitempty"`
	Amenities    []string  `json:"amenities" gorm:"serializer:json"`
	Features     []string  `json:"features" gorm:"serializer:json"`
	Images       []string  `json:"images" gorm:"serializer:json"` // first image is the cover
	AgentID      *string   `json:"agentId" gorm:"size:255;index"`
	IsFeatured   bool      `json:"isFeatured" gorm:"default:false;index"`
	ViewCount    int       `json:"viewCount" gorm:"default:0"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PropertyUpdate carries the settable fields of a property.
// Nil fields are left untouched.
type PropertyUpdate struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Price        *int      `json:"price"`
	PropertyType *string   `json:"propertyType"`
	Status       *string   `json:"status"`
	Location     *string   `json:"location"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	State        *string   `json:"state"`
	ZipCode      *string   `json:"zipCode"`
	Area         *int      `json:"area"`
	Bedrooms     *int      `json:"bedrooms"`
	Bathrooms    *int      `json:"bathrooms"`
	FloorNumber  *int      `json:"floorNumber"`
	YearBuilt    *int      `json:"yearBuilt"`
	Amenities    *[]string `json:"amenities"`
	Features     *[]string `json:"features"`
	Images       *[]string `json:"images"`
	AgentID      *string   `json:"agentId"`
	IsFeatured   *bool     `json:"isFeatured"`
}

// PropertyWithAgent is the single-property detail view: the property
// joined with its servicing agent (and the agent's user). Agent is nil
// when the reference does not resolve.
type PropertyWithAgent struct {
	Property
	Agent *AgentWithUser `json:"agent,omitempty" gorm:"-"`
}
