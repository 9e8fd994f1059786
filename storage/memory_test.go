package storage

import (
	"errors"
	"sync"
	"testing"
	"time"

	"luxe-estates-server/models"
)

func newSeededStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	if err := Seed(store); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return store
}

func TestGetPropertiesConjunctiveFilters(t *testing.T) {
	store := newSeededStore(t)

	minPrice := 1400000
	maxPrice := 3500000
	filters := PropertyFilters{
		Location: "new york",
		Type:     "apartment",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Bedrooms: "2",
		Limit:    100,
	}

	properties, total, err := store.GetProperties(filters)
	if err != nil {
		t.Fatalf("GetProperties: %v", err)
	}
	if total != len(properties) {
		t.Fatalf("total %d does not match unpaginated result size %d", total, len(properties))
	}
	if len(properties) == 0 {
		t.Fatal("expected matches for the seeded set")
	}
	for _, p := range properties {
		if p.PropertyType != "apartment" {
			t.Errorf("property %s fails type filter: %s", p.ID, p.PropertyType)
		}
		if p.Price < minPrice || p.Price > maxPrice {
			t.Errorf("property %s fails price bounds: %d", p.ID, p.Price)
		}
		if p.Bedrooms != 2 {
			t.Errorf("property %s fails bedrooms filter: %d", p.ID, p.Bedrooms)
		}
	}

	// prop-6 is a 1-bedroom apartment in range; it must not leak through.
	for _, p := range properties {
		if p.ID == "prop-6" {
			t.Error("prop-6 returned despite failing the bedrooms predicate")
		}
	}
}

func TestGetPropertiesBedroomsPlusSuffix(t *testing.T) {
	store := newSeededStore(t)

	properties, _, err := store.GetProperties(PropertyFilters{Bedrooms: "4+", Limit: 100})
	if err != nil {
		t.Fatalf("GetProperties: %v", err)
	}
	want := map[string]bool{"prop-1": true, "prop-2": true, "prop-3": true}
	if len(properties) != len(want) {
		t.Fatalf("got %d properties, want %d", len(properties), len(want))
	}
	for _, p := range properties {
		if !want[p.ID] {
			t.Errorf("unexpected property %s for bedrooms 4+", p.ID)
		}
		if p.Bedrooms < 4 {
			t.Errorf("property %s has %d bedrooms, want >= 4", p.ID, p.Bedrooms)
		}
	}
}

func TestGetPropertiesTypeAnyIsNoop(t *testing.T) {
	store := newSeededStore(t)

	_, totalAny, err := store.GetProperties(PropertyFilters{Type: "any", Limit: 100})
	if err != nil {
		t.Fatalf("GetProperties: %v", err)
	}
	_, totalNone, err := store.GetProperties(PropertyFilters{Limit: 100})
	if err != nil {
		t.Fatalf("GetProperties: %v", err)
	}
	if totalAny != totalNone {
		t.Fatalf("type=any filtered results: %d vs %d", totalAny, totalNone)
	}
}

func TestGetPropertiesAmenitiesSuperset(t *testing.T) {
	store := newSeededStore(t)

	properties, _, err := store.GetProperties(PropertyFilters{
		Amenities: []string{"swimming pool", "Gym"},
		Limit:     100,
	})
	if err != nil {
		t.Fatalf("GetProperties: %v", err)
	}
	want := map[string]bool{"prop-1": true, "prop-5": true}
	if len(properties) != len(want) {
		t.Fatalf("got %d properties, want %d", len(properties), len(want))
	}
	for _, p := range properties {
		if !want[p.ID] {
			t.Errorf("property %s does not carry both requested amenities", p.ID)
		}
	}
}

func TestTotalIndependentOfPage(t *testing.T) {
	store := newSeededStore(t)

	_, total1, _ := store.GetProperties(PropertyFilters{Location: "new york", Page: 1, Limit: 2})
	_, total3, _ := store.GetProperties(PropertyFilters{Location: "new york", Page: 3, Limit: 2})
	if total1 != 6 || total3 != 6 {
		t.Fatalf("totals changed with page: %d vs %d (want 6)", total1, total3)
	}
}

func TestPaginationReassemblesFilteredSet(t *testing.T) {
	store := newSeededStore(t)

	full, total, err := store.GetProperties(PropertyFilters{Sort: models.SortPriceLow, Limit: 100})
	if err != nil {
		t.Fatalf("GetProperties: %v", err)
	}

	limit := 2
	var pages [][]models.Property
	for page := 1; ; page++ {
		chunk, chunkTotal, err := store.GetProperties(PropertyFilters{Sort: models.SortPriceLow, Page: page, Limit: limit})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if chunkTotal != total {
			t.Fatalf("page %d reported total %d, want %d", page, chunkTotal, total)
		}
		if len(chunk) == 0 {
			break
		}
		pages = append(pages, chunk)
	}

	wantPages := (total + limit - 1) / limit
	if len(pages) != wantPages {
		t.Fatalf("got %d non-empty pages, want %d", len(pages), wantPages)
	}

	var reassembled []models.Property
	for _, page := range pages {
		reassembled = append(reassembled, page...)
	}
	if len(reassembled) != len(full) {
		t.Fatalf("reassembled %d properties, want %d", len(reassembled), len(full))
	}
	seen := map[string]bool{}
	for i, p := range reassembled {
		if p.ID != full[i].ID {
			t.Errorf("position %d: got %s, want %s", i, p.ID, full[i].ID)
		}
		if seen[p.ID] {
			t.Errorf("duplicate property %s across pages", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestPageBeyondEndIsEmpty(t *testing.T) {
	store := newSeededStore(t)

	properties, total, err := store.GetProperties(PropertyFilters{Page: 99})
	if err != nil {
		t.Fatalf("GetProperties: %v", err)
	}
	if len(properties) != 0 {
		t.Fatalf("expected empty page, got %d properties", len(properties))
	}
	if total != 6 {
		t.Fatalf("total %d, want 6", total)
	}
}

func TestPriceSortsAreMirrored(t *testing.T) {
	store := newSeededStore(t)

	low, _, _ := store.GetProperties(PropertyFilters{Sort: models.SortPriceLow, Limit: 100})
	high, _, _ := store.GetProperties(PropertyFilters{Sort: models.SortPriceHigh, Limit: 100})
	if len(low) != len(high) {
		t.Fatalf("result sizes differ: %d vs %d", len(low), len(high))
	}
	for i := range low {
		if low[i].Price != high[len(high)-1-i].Price {
			t.Errorf("position %d: price-low %d vs reversed price-high %d",
				i, low[i].Price, high[len(high)-1-i].Price)
		}
	}
}

func TestSortOrders(t *testing.T) {
	store := newSeededStore(t)

	newest, _, _ := store.GetProperties(PropertyFilters{Sort: models.SortNewest, Limit: 100})
	for i := 1; i < len(newest); i++ {
		if newest[i].CreatedAt.After(newest[i-1].CreatedAt) {
			t.Errorf("newest sort violated at %d", i)
		}
	}
	if newest[0].ID != "prop-6" {
		t.Errorf("newest seed property is %s, want prop-6", newest[0].ID)
	}

	popular, _, _ := store.GetProperties(PropertyFilters{Sort: models.SortPopular, Limit: 100})
	for i := 1; i < len(popular); i++ {
		if popular[i].ViewCount > popular[i-1].ViewCount {
			t.Errorf("popular sort violated at %d", i)
		}
	}
	if popular[0].ID != "prop-1" {
		t.Errorf("most viewed seed property is %s, want prop-1", popular[0].ID)
	}
}

func TestNewYorkPriceHighScenario(t *testing.T) {
	store := newSeededStore(t)

	properties, total, err := store.GetProperties(PropertyFilters{
		Location: "new york",
		Sort:     models.SortPriceHigh,
		Limit:    100,
	})
	if err != nil {
		t.Fatalf("GetProperties: %v", err)
	}
	if total != 6 {
		t.Fatalf("total %d, want all 6 New York properties", total)
	}
	pos := map[string]int{}
	for i, p := range properties {
		pos[p.ID] = i
	}
	if pos["prop-1"] >= pos["prop-4"] {
		t.Errorf("prop-1 (higher price) must come before prop-4: %d vs %d", pos["prop-1"], pos["prop-4"])
	}
}

func TestViewCountIncrementsExactlyOncePerDetailFetch(t *testing.T) {
	store := newSeededStore(t)

	first, err := store.GetProperty("prop-3")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	second, err := store.GetProperty("prop-3")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if second.ViewCount != first.ViewCount+1 {
		t.Fatalf("second fetch count %d, want %d", second.ViewCount, first.ViewCount+1)
	}
}

func TestViewCountUnderConcurrentFetches(t *testing.T) {
	store := newSeededStore(t)

	baseline, err := store.GetProperty("prop-2")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}

	const fetches = 50
	var wg sync.WaitGroup
	wg.Add(fetches)
	for i := 0; i < fetches; i++ {
		go func() {
			defer wg.Done()
			store.GetProperty("prop-2")
		}()
	}
	wg.Wait()

	final, err := store.GetProperty("prop-2")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if final.ViewCount != baseline.ViewCount+fetches+1 {
		t.Fatalf("view count %d, want %d", final.ViewCount, baseline.ViewCount+fetches+1)
	}
}

func TestUnknownPropertyDetailMutatesNothing(t *testing.T) {
	store := newSeededStore(t)

	before, _, _ := store.GetProperties(PropertyFilters{Limit: 100})

	if _, err := store.GetProperty("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, _, _ := store.GetProperties(PropertyFilters{Limit: 100})
	for i := range before {
		if after[i].ViewCount != before[i].ViewCount {
			t.Errorf("property %s view count changed on a failed fetch", after[i].ID)
		}
	}
}

func TestListFetchDoesNotIncrementViewCount(t *testing.T) {
	store := newSeededStore(t)

	before, _, _ := store.GetProperties(PropertyFilters{Limit: 100})
	store.GetProperties(PropertyFilters{Limit: 100})
	store.GetFeaturedProperties()
	after, _, _ := store.GetProperties(PropertyFilters{Limit: 100})

	for i := range before {
		if after[i].ViewCount != before[i].ViewCount {
			t.Errorf("property %s view count changed on list reads", after[i].ID)
		}
	}
}

func TestFavoriteAddIsIdempotent(t *testing.T) {
	store := newSeededStore(t)

	first, err := store.AddFavorite("user-5", "prop-1")
	if err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	second, err := store.AddFavorite("user-5", "prop-1")
	if err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("duplicate favorite created: %s vs %s", first.ID, second.ID)
	}

	favorites, err := store.GetUserFavorites("user-5")
	if err != nil {
		t.Fatalf("GetUserFavorites: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("got %d favorites, want 1", len(favorites))
	}

	if err := store.RemoveFavorite("user-5", "prop-1"); err != nil {
		t.Fatalf("RemoveFavorite: %v", err)
	}
	favorites, _ = store.GetUserFavorites("user-5")
	if len(favorites) != 0 {
		t.Fatalf("favorite not fully removed, %d left", len(favorites))
	}
	if err := store.RemoveFavorite("user-5", "prop-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second removal should be ErrNotFound, got %v", err)
	}
}

func TestSimilarProperties(t *testing.T) {
	store := newSeededStore(t)

	source, err := store.GetProperty("prop-4")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}

	similar, err := store.GetSimilarProperties("prop-4")
	if err != nil {
		t.Fatalf("GetSimilarProperties: %v", err)
	}
	if len(similar) == 0 || len(similar) > 3 {
		t.Fatalf("got %d similar properties, want 1..3", len(similar))
	}
	for _, p := range similar {
		if p.ID == "prop-4" {
			t.Error("similar set contains the source property")
		}
		if p.PropertyType != source.PropertyType && p.City != source.City {
			t.Errorf("property %s shares neither type nor city with the source", p.ID)
		}
	}
	// Deterministic: newest first.
	for i := 1; i < len(similar); i++ {
		if similar[i].CreatedAt.After(similar[i-1].CreatedAt) {
			t.Errorf("similar ordering violated at %d", i)
		}
	}

	again, _ := store.GetSimilarProperties("prop-4")
	for i := range similar {
		if again[i].ID != similar[i].ID {
			t.Fatalf("similar set not stable across calls at %d", i)
		}
	}
}

func TestDeletePropertyCascadesFavoritesKeepsInquiries(t *testing.T) {
	store := newSeededStore(t)

	userID := "user-5"
	propID := "prop-6"
	if _, err := store.AddFavorite(userID, propID); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	if _, err := store.CreateInquiry(models.Inquiry{
		UserID:     &userID,
		PropertyID: &propID,
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Message:    "Is the garden apartment still available?",
	}); err != nil {
		t.Fatalf("CreateInquiry: %v", err)
	}

	if err := store.DeleteProperty(propID); err != nil {
		t.Fatalf("DeleteProperty: %v", err)
	}
	if err := store.DeleteProperty(propID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}

	favorites, _ := store.GetUserFavorites(userID)
	if len(favorites) != 0 {
		t.Errorf("favorites not cascaded, %d left", len(favorites))
	}
	inquiries, _ := store.GetUserInquiries(userID)
	if len(inquiries) != 1 {
		t.Errorf("inquiries should survive property deletion, got %d", len(inquiries))
	}
}

func TestUpdatePropertyMergesFields(t *testing.T) {
	store := newSeededStore(t)

	newPrice := 4750000
	updated, err := store.UpdateProperty("prop-1", models.PropertyUpdate{Price: &newPrice})
	if err != nil {
		t.Fatalf("UpdateProperty: %v", err)
	}
	if updated.Price != newPrice {
		t.Errorf("price not updated: %d", updated.Price)
	}
	if updated.Title != "Luxurious Penthouse with Panoramic City Views" {
		t.Errorf("untouched field changed: %q", updated.Title)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Error("UpdatedAt not refreshed")
	}

	if _, err := store.UpdateProperty("no-such-id", models.PropertyUpdate{Price: &newPrice}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDuplicateBlogSlugRejected(t *testing.T) {
	store := newSeededStore(t)

	_, err := store.CreateBlogPost(models.BlogPost{
		Title:    "Another Trends Piece",
		Slug:     "luxury-real-estate-trends-2024",
		Content:  "<p>dup</p>",
		Category: "Market Trends",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate slug, got %v", err)
	}
}

func TestBlogVisibilityAndJoins(t *testing.T) {
	store := newSeededStore(t)

	draft := models.BlogPost{
		Title:    "Unpublished Draft",
		Slug:     "unpublished-draft",
		Content:  "<p>wip</p>",
		Category: "Market Trends",
	}
	if _, err := store.CreateBlogPost(draft); err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}

	posts, err := store.GetBlogPosts("")
	if err != nil {
		t.Fatalf("GetBlogPosts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d published posts, want 3", len(posts))
	}
	for _, p := range posts {
		if !p.IsPublished {
			t.Errorf("unpublished post %s leaked through the public listing", p.Slug)
		}
	}

	byCategory, _ := store.GetBlogPosts("buying-tips")
	if len(byCategory) != 1 || byCategory[0].Slug != "first-time-buyer-guide-nyc" {
		t.Fatalf("category filter returned %d posts", len(byCategory))
	}

	single, err := store.GetBlogPost("investment-properties-maximizing-returns")
	if err != nil {
		t.Fatalf("GetBlogPost: %v", err)
	}
	if single.Author == nil || single.Author.ID != "user-3" {
		t.Error("author join not resolved")
	}

	if _, err := store.GetBlogPost("unpublished-draft"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unpublished post visible by slug: %v", err)
	}
}

func TestJoinsOmitUnresolvedReferences(t *testing.T) {
	store := newSeededStore(t)

	danglingAgent := "agent-ghost"
	created, err := store.CreateProperty(models.Property{
		Title:        "Orphaned Listing",
		Price:        100000,
		PropertyType: "condo",
		Location:     "Nowhere",
		City:         "Ghost Town",
		Area:         500,
		Bedrooms:     1,
		Bathrooms:    1,
		AgentID:      &danglingAgent,
	})
	if err != nil {
		t.Fatalf("CreateProperty: %v", err)
	}

	detail, err := store.GetProperty(created.ID)
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if detail.Agent != nil {
		t.Error("unresolvable agent reference must be omitted, not an error")
	}

	ghostUser := "user-ghost"
	agent, err := store.CreateAgent(models.Agent{UserID: &ghostUser, Bio: "no person yet"})
	if err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}
	joined, err := store.GetAgent(agent.ID)
	if err != nil {
		t.Fatalf("GetAgent: %v", err)
	}
	if joined.User != nil {
		t.Error("unresolvable user reference must be omitted")
	}
}

func TestGetUserByEmail(t *testing.T) {
	store := newSeededStore(t)

	user, err := store.GetUserByEmail("ADMIN@luxeestates.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if user.ID != "user-5" {
		t.Errorf("got %s, want user-5", user.ID)
	}
	if _, err := store.GetUserByEmail("nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newSeededStore(t)

	_, err := store.CreateUser(models.User{Email: "john@luxeestates.com", FullName: "Impostor"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestInquiryLifecycle(t *testing.T) {
	store := newSeededStore(t)

	agentID := "agent-2"
	propID := "prop-2"
	created, err := store.CreateInquiry(models.Inquiry{
		PropertyID: &propID,
		AgentID:    &agentID,
		Name:       "Sam Buyer",
		Email:      "sam@example.com",
		Message:    "Interested in a viewing.",
		Status:     "responded", // must be ignored; new inquiries start pending
	})
	if err != nil {
		t.Fatalf("CreateInquiry: %v", err)
	}
	if created.Status != models.InquiryStatusPending {
		t.Fatalf("new inquiry status %q, want pending", created.Status)
	}

	forAgent, _ := store.GetAgentInquiries(agentID)
	if len(forAgent) != 1 {
		t.Fatalf("agent inquiry listing returned %d, want 1", len(forAgent))
	}

	updated, err := store.UpdateInquiryStatus(created.ID, models.InquiryStatusResponded)
	if err != nil {
		t.Fatalf("UpdateInquiryStatus: %v", err)
	}
	if updated.Status != models.InquiryStatusResponded {
		t.Fatalf("status %q, want responded", updated.Status)
	}
}

func TestContactMessageLifecycle(t *testing.T) {
	store := newSeededStore(t)

	created, err := store.CreateContactMessage(models.ContactMessage{
		Name:    "Curious Visitor",
		Email:   "visitor@example.com",
		Message: "Do you handle rentals?",
	})
	if err != nil {
		t.Fatalf("CreateContactMessage: %v", err)
	}
	if created.Status != models.ContactStatusUnread {
		t.Fatalf("status %q, want unread", created.Status)
	}

	read, err := store.MarkContactMessageRead(created.ID)
	if err != nil {
		t.Fatalf("MarkContactMessageRead: %v", err)
	}
	if read.Status != models.ContactStatusRead {
		t.Fatalf("status %q, want read", read.Status)
	}
}

func TestFeaturedProperties(t *testing.T) {
	store := newSeededStore(t)

	featured, err := store.GetFeaturedProperties()
	if err != nil {
		t.Fatalf("GetFeaturedProperties: %v", err)
	}
	if len(featured) != 4 {
		t.Fatalf("got %d featured properties, want 4", len(featured))
	}
	for _, p := range featured {
		if !p.IsFeatured {
			t.Errorf("non-featured property %s returned", p.ID)
		}
	}
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	store := newSeededStore(t)

	properties, total, err := store.GetProperties(PropertyFilters{Location: "atlantis"})
	if err != nil {
		t.Fatalf("GetProperties: %v", err)
	}
	if total != 0 || len(properties) != 0 {
		t.Fatalf("expected empty result with total 0, got %d/%d", len(properties), total)
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := newSeededStore(t)
	b := newSeededStore(t)

	listA, _, _ := a.GetProperties(PropertyFilters{Sort: models.SortPopular, Limit: 100})
	listB, _, _ := b.GetProperties(PropertyFilters{Sort: models.SortPopular, Limit: 100})
	if len(listA) != len(listB) {
		t.Fatal("seeded stores differ in size")
	}
	for i := range listA {
		if listA[i].ID != listB[i].ID || listA[i].ViewCount != listB[i].ViewCount {
			t.Fatalf("seeded stores diverge at %d: %s/%d vs %s/%d",
				i, listA[i].ID, listA[i].ViewCount, listB[i].ID, listB[i].ViewCount)
		}
	}
	if listA[0].CreatedAt.Equal(time.Time{}) {
		t.Fatal("seed timestamps must be set")
	}
}
