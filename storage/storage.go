package storage

import (
	"errors"

	"luxe-estates-server/models"
)

var (
	// ErrNotFound is returned when an id-keyed lookup fails for an
	// operation that requires existence.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a uniqueness invariant would be
	// violated (duplicate blog slug, duplicate user email).
	ErrConflict = errors.New("record already exists")
)

// PropertyFilters describes one listing request. All filters are
// optional and conjunctive; a zero value is a no-op. Bedrooms and
// Bathrooms accept either an exact count ("2") or a minimum with a
// trailing plus ("3+").
type PropertyFilters struct {
	Location  string
	Type      string // "any" is treated as absent
	MinPrice  *int
	MaxPrice  *int
	MinArea   *int
	MaxArea   *int
	Bedrooms  string
	Bathrooms string
	Amenities []string // property must carry every requested label
	Sort      string   // newest (default), price-low, price-high, popular
	Page      int      // 1-indexed
	Limit     int      // page size, defaults to DefaultPageSize
}

// DefaultPageSize is the listing page size when the caller does not set one.
const DefaultPageSize = 9

// Store is the keyed-storage abstraction for all domain entities plus
// the query layer over properties. Implementations must be safe for
// concurrent use. All entity mutation funnels through these methods.
type Store interface {
	// Users
	GetUser(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user models.User) (*models.User, error)
	UpdateUser(id string, data models.UserUpdate) (*models.User, error)

	// Credentials (identity bridge; never exposed through entity reads)
	SetCredential(userID, passwordHash string) error
	GetCredential(userID string) (string, error)

	// Agents
	GetAgents() ([]models.AgentWithUser, error)
	GetAgent(id string) (*models.AgentWithUser, error)
	CreateAgent(agent models.Agent) (*models.Agent, error)
	GetAgentProperties(agentID string) ([]models.Property, error)
	GetAgentInquiries(agentID string) ([]models.Inquiry, error)

	// Properties
	GetProperties(filters PropertyFilters) ([]models.Property, int, error)
	GetFeaturedProperties() ([]models.Property, error)
	// GetProperty is the single-property detail fetch. It is not a pure
	// read: each successful call increments the property's view count
	// exactly once, atomically with the read.
	GetProperty(id string) (*models.PropertyWithAgent, error)
	GetSimilarProperties(id string) ([]models.Property, error)
	CreateProperty(property models.Property) (*models.Property, error)
	UpdateProperty(id string, data models.PropertyUpdate) (*models.Property, error)
	DeleteProperty(id string) error

	// Favorites
	GetUserFavorites(userID string) ([]models.Property, error)
	AddFavorite(userID, propertyID string) (*models.Favorite, error)
	RemoveFavorite(userID, propertyID string) error

	// Inquiries
	CreateInquiry(inquiry models.Inquiry) (*models.Inquiry, error)
	GetUserInquiries(userID string) ([]models.Inquiry, error)
	GetInquiries() ([]models.Inquiry, error)
	UpdateInquiryStatus(id, status string) (*models.Inquiry, error)

	// Blog
	GetBlogPosts(category string) ([]models.BlogPostWithAuthor, error)
	GetBlogPost(slug string) (*models.BlogPostWithAuthor, error)
	CreateBlogPost(post models.BlogPost) (*models.BlogPost, error)

	// Contact
	CreateContactMessage(message models.ContactMessage) (*models.ContactMessage, error)
	GetContactMessages() ([]models.ContactMessage, error)
	MarkContactMessageRead(id string) (*models.ContactMessage, error)
}
