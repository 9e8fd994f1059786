package storage

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"luxe-estates-server/models"
)

// GormStore implements Store on a relational database through gorm,
// with the same filter/sort/pagination contract as MemoryStore. The
// row set is selected with the query builder; amenity matching, final
// ordering and windowing go through the shared query helpers so both
// implementations return identical results for identical inputs.
//
// Insertion order, which MemoryStore uses for sort tie-breaks, is
// approximated here by (created_at, id) ascending.
type GormStore struct {
	db *gorm.DB
}

// OpenDatabase connects to postgres when DB_CONNECTION_STRING is set
// and falls back to an in-process sqlite database otherwise, so the
// server stays runnable with no external services.
func OpenDatabase() (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	if dsn := os.Getenv("DB_CONNECTION_STRING"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), cfg)
	}
	log.Println("DB_CONNECTION_STRING not set, using in-memory sqlite")
	return gorm.Open(sqlite.Open("file::memory:?cache=shared"), cfg)
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Credential{},
		&models.Agent{},
		&models.Property{},
		&models.Favorite{},
		&models.Inquiry{},
		&models.BlogPost{},
		&models.ContactMessage{},
	)
	if err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Users

func (s *GormStore) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "LOWER(email) = LOWER(?)", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(user models.User) (*models.User, error) {
	var count int64
	s.db.Model(&models.User{}).Where("LOWER(email) = LOWER(?)", user.Email).Count(&count)
	if count > 0 {
		return nil, ErrConflict
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UpdateUser(id string, data models.UserUpdate) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	if data.FullName != nil {
		user.FullName = *data.FullName
	}
	if data.Phone != nil {
		user.Phone = *data.Phone
	}
	if data.AvatarURL != nil {
		user.AvatarURL = *data.AvatarURL
	}
	if data.Role != nil {
		user.Role = *data.Role
	}
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) SetCredential(userID, passwordHash string) error {
	cred := models.Credential{UserID: userID, PasswordHash: passwordHash}
	return s.db.Save(&cred).Error
}

func (s *GormStore) GetCredential(userID string) (string, error) {
	var cred models.Credential
	if err := s.db.First(&cred, "user_id = ?", userID).Error; err != nil {
		return "", translate(err)
	}
	return cred.PasswordHash, nil
}

// Agents

func (s *GormStore) GetAgents() ([]models.AgentWithUser, error) {
	var agents []models.Agent
	if err := s.db.Order("id ASC").Find(&agents).Error; err != nil {
		return nil, err
	}
	joined := make([]models.AgentWithUser, 0, len(agents))
	for _, a := range agents {
		joined = append(joined, s.joinAgent(a))
	}
	return joined, nil
}

func (s *GormStore) GetAgent(id string) (*models.AgentWithUser, error) {
	var agent models.Agent
	if err := s.db.First(&agent, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	joined := s.joinAgent(agent)
	return &joined, nil
}

func (s *GormStore) CreateAgent(agent models.Agent) (*models.Agent, error) {
	if agent.ID == "" {
		agent.ID = uuid.NewString()
	}
	if err := s.db.Create(&agent).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

func (s *GormStore) GetAgentProperties(agentID string) ([]models.Property, error) {
	properties := []models.Property{}
	err := s.db.Where("agent_id = ?", agentID).
		Order("created_at ASC").Order("id ASC").
		Find(&properties).Error
	return properties, err
}

func (s *GormStore) GetAgentInquiries(agentID string) ([]models.Inquiry, error) {
	inquiries := []models.Inquiry{}
	err := s.db.Where("agent_id = ?", agentID).
		Order("created_at ASC").Order("id ASC").
		Find(&inquiries).Error
	return inquiries, err
}

func (s *GormStore) joinAgent(agent models.Agent) models.AgentWithUser {
	joined := models.AgentWithUser{Agent: agent}
	if agent.UserID != nil {
		var user models.User
		if err := s.db.First(&user, "id = ?", *agent.UserID).Error; err == nil {
			joined.User = &user
		}
	}
	return joined
}

// Properties

func (s *GormStore) GetProperties(filters PropertyFilters) ([]models.Property, int, error) {
	filters = normalizeFilters(filters)

	q := s.db.Model(&models.Property{})
	if filters.Location != "" {
		pattern := "%" + strings.ToLower(filters.Location) + "%"
		q = q.Where("LOWER(location) LIKE ? OR LOWER(city) LIKE ?", pattern, pattern)
	}
	if filters.Type != "" {
		q = q.Where("property_type = ?", filters.Type)
	}
	if filters.MinPrice != nil {
		q = q.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		q = q.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.MinArea != nil {
		q = q.Where("area >= ?", *filters.MinArea)
	}
	if filters.MaxArea != nil {
		q = q.Where("area <= ?", *filters.MaxArea)
	}
	q = applyRoomFilter(q, "bedrooms", filters.Bedrooms)
	q = applyRoomFilter(q, "bathrooms", filters.Bathrooms)

	var results []models.Property
	if err := q.Order("created_at ASC").Order("id ASC").Find(&results).Error; err != nil {
		return nil, 0, err
	}

	// Amenity labels live in a JSON column; the superset match runs on
	// the loaded rows with the shared predicate.
	if len(filters.Amenities) > 0 {
		kept := results[:0]
		for _, p := range results {
			if hasAllAmenities(p.Amenities, filters.Amenities) {
				kept = append(kept, p)
			}
		}
		results = kept
	}

	sortProperties(results, filters.Sort)
	total := len(results)
	return paginate(results, filters.Page, filters.Limit), total, nil
}

func applyRoomFilter(q *gorm.DB, column, filter string) *gorm.DB {
	if filter == "" {
		return q
	}
	atLeast := strings.HasSuffix(filter, "+")
	value := strings.TrimSuffix(filter, "+")
	if _, ok := parseCount(value); !ok {
		return q
	}
	if atLeast {
		return q.Where(column+" >= ?", value)
	}
	return q.Where(column+" = ?", value)
}

func parseCount(value string) (int, bool) {
	n := 0
	if value == "" {
		return 0, false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

func (s *GormStore) GetFeaturedProperties() ([]models.Property, error) {
	featured := []models.Property{}
	err := s.db.Where("is_featured = ?", true).
		Order("created_at ASC").Order("id ASC").
		Find(&featured).Error
	return featured, err
}

// GetProperty increments the view count in the same statement that
// asserts existence, so concurrent detail fetches each count once.
func (s *GormStore) GetProperty(id string) (*models.PropertyWithAgent, error) {
	res := s.db.Model(&models.Property{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	detail := models.PropertyWithAgent{Property: property}
	if property.AgentID != nil {
		var agent models.Agent
		if err := s.db.First(&agent, "id = ?", *property.AgentID).Error; err == nil {
			joined := s.joinAgent(agent)
			detail.Agent = &joined
		}
	}
	return &detail, nil
}

func (s *GormStore) GetSimilarProperties(id string) ([]models.Property, error) {
	var source models.Property
	if err := s.db.First(&source, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	matches := []models.Property{}
	err := s.db.Where("id <> ?", id).
		Where("property_type = ? OR city = ?", source.PropertyType, source.City).
		Order("created_at DESC").Order("id ASC").
		Limit(3).
		Find(&matches).Error
	return matches, err
}

func (s *GormStore) CreateProperty(property models.Property) (*models.Property, error) {
	if property.ID == "" {
		property.ID = uuid.NewString()
	}
	if property.Status == "" {
		property.Status = models.PropertyStatusAvailable
	}
	if property.Amenities == nil {
		property.Amenities = []string{}
	}
	if property.Features == nil {
		property.Features = []string{}
	}
	if property.Images == nil {
		property.Images = []string{}
	}
	now := time.Now()
	if property.CreatedAt.IsZero() {
		property.CreatedAt = now
	}
	if property.UpdatedAt.IsZero() {
		property.UpdatedAt = property.CreatedAt
	}
	if err := s.db.Create(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *GormStore) UpdateProperty(id string, data models.PropertyUpdate) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	applyPropertyUpdate(&property, data)
	property.UpdatedAt = time.Now()
	if err := s.db.Save(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *GormStore) DeleteProperty(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Property{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		// Favorites cascade; inquiries stay as historical records.
		return tx.Delete(&models.Favorite{}, "property_id = ?", id).Error
	})
}

// Favorites

func (s *GormStore) GetUserFavorites(userID string) ([]models.Property, error) {
	var ids []string
	if err := s.db.Model(&models.Favorite{}).Where("user_id = ?", userID).
		Pluck("property_id", &ids).Error; err != nil {
		return nil, err
	}
	properties := []models.Property{}
	if len(ids) == 0 {
		return properties, nil
	}
	err := s.db.Where("id IN ?", ids).
		Order("created_at ASC").Order("id ASC").
		Find(&properties).Error
	return properties, err
}

func (s *GormStore) AddFavorite(userID, propertyID string) (*models.Favorite, error) {
	var existing models.Favorite
	err := s.db.First(&existing, "user_id = ? AND property_id = ?", userID, propertyID).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	favorite := models.Favorite{
		ID:         uuid.NewString(),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now(),
	}
	if err := s.db.Create(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (s *GormStore) RemoveFavorite(userID, propertyID string) error {
	res := s.db.Delete(&models.Favorite{}, "user_id = ? AND property_id = ?", userID, propertyID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Inquiries

func (s *GormStore) CreateInquiry(inquiry models.Inquiry) (*models.Inquiry, error) {
	if inquiry.ID == "" {
		inquiry.ID = uuid.NewString()
	}
	inquiry.Status = models.InquiryStatusPending
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now()
	}
	if err := s.db.Create(&inquiry).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (s *GormStore) GetUserInquiries(userID string) ([]models.Inquiry, error) {
	inquiries := []models.Inquiry{}
	err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").Order("id ASC").
		Find(&inquiries).Error
	return inquiries, err
}

func (s *GormStore) GetInquiries() ([]models.Inquiry, error) {
	inquiries := []models.Inquiry{}
	err := s.db.Order("created_at ASC").Order("id ASC").Find(&inquiries).Error
	return inquiries, err
}

func (s *GormStore) UpdateInquiryStatus(id, status string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.db.First(&inquiry, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	inquiry.Status = status
	if err := s.db.Save(&inquiry).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// Blog

func (s *GormStore) GetBlogPosts(category string) ([]models.BlogPostWithAuthor, error) {
	var posts []models.BlogPost
	if err := s.db.Where("is_published = ?", true).
		Order("created_at ASC").Order("id ASC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	joined := []models.BlogPostWithAuthor{}
	for _, post := range posts {
		if category != "" && category != "all" && CategorySlug(post.Category) != category {
			continue
		}
		joined = append(joined, s.joinBlogPost(post))
	}
	return joined, nil
}

func (s *GormStore) GetBlogPost(slug string) (*models.BlogPostWithAuthor, error) {
	var post models.BlogPost
	if err := s.db.First(&post, "slug = ? AND is_published = ?", slug, true).Error; err != nil {
		return nil, translate(err)
	}
	joined := s.joinBlogPost(post)
	return &joined, nil
}

func (s *GormStore) CreateBlogPost(post models.BlogPost) (*models.BlogPost, error) {
	var count int64
	s.db.Model(&models.BlogPost{}).Where("slug = ?", post.Slug).Count(&count)
	if count > 0 {
		return nil, ErrConflict
	}
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *GormStore) joinBlogPost(post models.BlogPost) models.BlogPostWithAuthor {
	joined := models.BlogPostWithAuthor{BlogPost: post}
	if post.AuthorID != nil {
		var author models.User
		if err := s.db.First(&author, "id = ?", *post.AuthorID).Error; err == nil {
			joined.Author = &author
		}
	}
	return joined
}

// Contact

func (s *GormStore) CreateContactMessage(message models.ContactMessage) (*models.ContactMessage, error) {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	message.Status = models.ContactStatusUnread
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *GormStore) GetContactMessages() ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	err := s.db.Order("created_at ASC").Order("id ASC").Find(&messages).Error
	return messages, err
}

func (s *GormStore) MarkContactMessageRead(id string) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := s.db.First(&message, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	message.Status = models.ContactStatusRead
	if err := s.db.Save(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}
