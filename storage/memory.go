package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"luxe-estates-server/models"
)

// MemoryStore is the in-process reference implementation of Store.
// Every entity map is guarded by a single mutex so multi-step
// operations (read-then-increment of view counts, favorite
// deduplication, cascade deletes) stay atomic under concurrent
// request handling. Insertion order is recorded per entity type to
// keep iteration deterministic.
type MemoryStore struct {
	mu sync.RWMutex

	users       map[string]models.User
	credentials map[string]string
	agents      map[string]models.Agent
	properties  map[string]models.Property
	favorites   map[string]models.Favorite
	inquiries   map[string]models.Inquiry
	blogPosts   map[string]models.BlogPost
	contacts    map[string]models.ContactMessage

	userOrder     []string
	agentOrder    []string
	propertyOrder []string
	favoriteOrder []string
	inquiryOrder  []string
	blogOrder     []string
	contactOrder  []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[string]models.User),
		credentials: make(map[string]string),
		agents:      make(map[string]models.Agent),
		properties:  make(map[string]models.Property),
		favorites:   make(map[string]models.Favorite),
		inquiries:   make(map[string]models.Inquiry),
		blogPosts:   make(map[string]models.BlogPost),
		contacts:    make(map[string]models.ContactMessage),
	}
}

// Users

func (s *MemoryStore) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if user := s.users[id]; strings.EqualFold(user.Email, email) {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return nil, ErrConflict
		}
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
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return &user, nil
}

func (s *MemoryStore) UpdateUser(id string, data models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
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
	s.users[id] = user
	return &user, nil
}

func (s *MemoryStore) SetCredential(userID, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[userID] = passwordHash
	return nil
}

func (s *MemoryStore) GetCredential(userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hash, ok := s.credentials[userID]
	if !ok {
		return "", ErrNotFound
	}
	return hash, nil
}

// Agents

func (s *MemoryStore) GetAgents() ([]models.AgentWithUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	agents := make([]models.AgentWithUser, 0, len(s.agentOrder))
	for _, id := range s.agentOrder {
		agents = append(agents, s.joinAgent(s.agents[id]))
	}
	return agents, nil
}

func (s *MemoryStore) GetAgent(id string) (*models.AgentWithUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	agent, ok := s.agents[id]
	if !ok {
		return nil, ErrNotFound
	}
	joined := s.joinAgent(agent)
	return &joined, nil
}

func (s *MemoryStore) CreateAgent(agent models.Agent) (*models.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if agent.ID == "" {
		agent.ID = uuid.NewString()
	}
	s.agents[agent.ID] = agent
	s.agentOrder = append(s.agentOrder, agent.ID)
	return &agent, nil
}

func (s *MemoryStore) GetAgentProperties(agentID string) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	properties := []models.Property{}
	for _, id := range s.propertyOrder {
		p := s.properties[id]
		if p.AgentID != nil && *p.AgentID == agentID {
			properties = append(properties, p)
		}
	}
	return properties, nil
}

func (s *MemoryStore) GetAgentInquiries(agentID string) ([]models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inquiries := []models.Inquiry{}
	for _, id := range s.inquiryOrder {
		inq := s.inquiries[id]
		if inq.AgentID != nil && *inq.AgentID == agentID {
			inquiries = append(inquiries, inq)
		}
	}
	return inquiries, nil
}

// joinAgent resolves the agent's user reference. Callers hold the lock.
func (s *MemoryStore) joinAgent(agent models.Agent) models.AgentWithUser {
	joined := models.AgentWithUser{Agent: agent}
	if agent.UserID != nil {
		if user, ok := s.users[*agent.UserID]; ok {
			joined.User = &user
		}
	}
	return joined
}

// Properties

func (s *MemoryStore) GetProperties(filters PropertyFilters) ([]models.Property, int, error) {
	filters = normalizeFilters(filters)

	s.mu.RLock()
	results := []models.Property{}
	for _, id := range s.propertyOrder {
		if p := s.properties[id]; matchesFilters(p, filters) {
			results = append(results, p)
		}
	}
	s.mu.RUnlock()

	sortProperties(results, filters.Sort)
	total := len(results)
	return paginate(results, filters.Page, filters.Limit), total, nil
}

func (s *MemoryStore) GetFeaturedProperties() ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := []models.Property{}
	for _, id := range s.propertyOrder {
		if p := s.properties[id]; p.IsFeatured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// GetProperty fetches a property for detail display and increments its
// view count as part of the same critical section, so concurrent
// detail fetches each count exactly once. Unknown ids mutate nothing.
func (s *MemoryStore) GetProperty(id string) (*models.PropertyWithAgent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	property, ok := s.properties[id]
	if !ok {
		return nil, ErrNotFound
	}
	property.ViewCount++
	s.properties[id] = property

	detail := models.PropertyWithAgent{Property: property}
	if property.AgentID != nil {
		if agent, ok := s.agents[*property.AgentID]; ok {
			joined := s.joinAgent(agent)
			detail.Agent = &joined
		}
	}
	return &detail, nil
}

func (s *MemoryStore) GetSimilarProperties(id string) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	source, ok := s.properties[id]
	if !ok {
		return nil, ErrNotFound
	}

	matches := []models.Property{}
	for _, pid := range s.propertyOrder {
		if pid == id {
			continue
		}
		p := s.properties[pid]
		if p.PropertyType == source.PropertyType || p.City == source.City {
			matches = append(matches, p)
		}
	}
	// Deterministic order: newest first, id as tie-break.
	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].ID < matches[j].ID
	})
	if len(matches) > 3 {
		matches = matches[:3]
	}
	return matches, nil
}

func (s *MemoryStore) CreateProperty(property models.Property) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.properties[property.ID] = property
	s.propertyOrder = append(s.propertyOrder, property.ID)
	return &property, nil
}

func (s *MemoryStore) UpdateProperty(id string, data models.PropertyUpdate) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	property, ok := s.properties[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyPropertyUpdate(&property, data)
	property.UpdatedAt = time.Now()
	s.properties[id] = property
	return &property, nil
}

func (s *MemoryStore) DeleteProperty(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[id]; !ok {
		return ErrNotFound
	}
	delete(s.properties, id)
	s.propertyOrder = removeID(s.propertyOrder, id)

	// Favorites are pure join rows; they go with the property.
	// Inquiries are kept as historical records.
	for _, fid := range append([]string(nil), s.favoriteOrder...) {
		if s.favorites[fid].PropertyID == id {
			delete(s.favorites, fid)
			s.favoriteOrder = removeID(s.favoriteOrder, fid)
		}
	}
	return nil
}

// Favorites

func (s *MemoryStore) GetUserFavorites(userID string) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favored := make(map[string]bool)
	for _, fid := range s.favoriteOrder {
		if f := s.favorites[fid]; f.UserID == userID {
			favored[f.PropertyID] = true
		}
	}
	properties := []models.Property{}
	for _, pid := range s.propertyOrder {
		if favored[pid] {
			properties = append(properties, s.properties[pid])
		}
	}
	return properties, nil
}

// AddFavorite is idempotent: re-adding an existing (user, property)
// pair returns the existing row instead of accumulating duplicates.
func (s *MemoryStore) AddFavorite(userID, propertyID string) (*models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, fid := range s.favoriteOrder {
		f := s.favorites[fid]
		if f.UserID == userID && f.PropertyID == propertyID {
			return &f, nil
		}
	}
	favorite := models.Favorite{
		ID:         uuid.NewString(),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now(),
	}
	s.favorites[favorite.ID] = favorite
	s.favoriteOrder = append(s.favoriteOrder, favorite.ID)
	return &favorite, nil
}

func (s *MemoryStore) RemoveFavorite(userID, propertyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, fid := range s.favoriteOrder {
		f := s.favorites[fid]
		if f.UserID == userID && f.PropertyID == propertyID {
			delete(s.favorites, fid)
			s.favoriteOrder = removeID(s.favoriteOrder, fid)
			return nil
		}
	}
	return ErrNotFound
}

// Inquiries

func (s *MemoryStore) CreateInquiry(inquiry models.Inquiry) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inquiry.ID == "" {
		inquiry.ID = uuid.NewString()
	}
	inquiry.Status = models.InquiryStatusPending
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now()
	}
	s.inquiries[inquiry.ID] = inquiry
	s.inquiryOrder = append(s.inquiryOrder, inquiry.ID)
	return &inquiry, nil
}

func (s *MemoryStore) GetUserInquiries(userID string) ([]models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inquiries := []models.Inquiry{}
	for _, id := range s.inquiryOrder {
		if inq := s.inquiries[id]; inq.UserID != nil && *inq.UserID == userID {
			inquiries = append(inquiries, inq)
		}
	}
	return inquiries, nil
}

func (s *MemoryStore) GetInquiries() ([]models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inquiries := make([]models.Inquiry, 0, len(s.inquiryOrder))
	for _, id := range s.inquiryOrder {
		inquiries = append(inquiries, s.inquiries[id])
	}
	return inquiries, nil
}

func (s *MemoryStore) UpdateInquiryStatus(id, status string) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inquiry, ok := s.inquiries[id]
	if !ok {
		return nil, ErrNotFound
	}
	inquiry.Status = status
	s.inquiries[id] = inquiry
	return &inquiry, nil
}

// Blog

func (s *MemoryStore) GetBlogPosts(category string) ([]models.BlogPostWithAuthor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := []models.BlogPostWithAuthor{}
	for _, id := range s.blogOrder {
		post := s.blogPosts[id]
		if !post.IsPublished {
			continue
		}
		if category != "" && category != "all" && CategorySlug(post.Category) != category {
			continue
		}
		posts = append(posts, s.joinBlogPost(post))
	}
	return posts, nil
}

func (s *MemoryStore) GetBlogPost(slug string) (*models.BlogPostWithAuthor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.blogOrder {
		post := s.blogPosts[id]
		if post.Slug == slug && post.IsPublished {
			joined := s.joinBlogPost(post)
			return &joined, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateBlogPost(post models.BlogPost) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.blogPosts {
		if existing.Slug == post.Slug {
			return nil, ErrConflict
		}
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
	s.blogPosts[post.ID] = post
	s.blogOrder = append(s.blogOrder, post.ID)
	return &post, nil
}

func (s *MemoryStore) joinBlogPost(post models.BlogPost) models.BlogPostWithAuthor {
	joined := models.BlogPostWithAuthor{BlogPost: post}
	if post.AuthorID != nil {
		if author, ok := s.users[*post.AuthorID]; ok {
			joined.Author = &author
		}
	}
	return joined
}

// Contact

func (s *MemoryStore) CreateContactMessage(message models.ContactMessage) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	message.Status = models.ContactStatusUnread
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	s.contacts[message.ID] = message
	s.contactOrder = append(s.contactOrder, message.ID)
	return &message, nil
}

func (s *MemoryStore) GetContactMessages() ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]models.ContactMessage, 0, len(s.contactOrder))
	for _, id := range s.contactOrder {
		messages = append(messages, s.contacts[id])
	}
	return messages, nil
}

func (s *MemoryStore) MarkContactMessageRead(id string) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, ok := s.contacts[id]
	if !ok {
		return nil, ErrNotFound
	}
	message.Status = models.ContactStatusRead
	s.contacts[id] = message
	return &message, nil
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
