package storage

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"luxe-estates-server/models"
)

var testDBCounter atomic.Int64

// newSeededGormStore opens a private in-memory sqlite database per
// test so state never leaks between them.
func newSeededGormStore(t *testing.T) *GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	store, err := NewGormStore(db)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := Seed(store); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return store
}

// The relational backend must honor the same listing contract as the
// in-memory one: same filters, same totals, same ordering, same pages.
func TestGormStoreMatchesMemoryListingContract(t *testing.T) {
	gormStore := newSeededGormStore(t)
	memStore := newSeededStore(t)

	minPrice := 1300000
	queries := []PropertyFilters{
		{},
		{Location: "new york", Sort: models.SortPriceHigh, Limit: 100},
		{Type: "apartment", Limit: 100},
		{Bedrooms: "4+", Limit: 100},
		{MinPrice: &minPrice, Bathrooms: "2", Limit: 100},
		{Amenities: []string{"swimming pool", "Gym"}, Limit: 100},
		{Sort: models.SortPriceLow, Page: 2, Limit: 2},
		{Sort: models.SortPopular, Limit: 100},
		{Location: "soho", Limit: 100},
		{Page: 99},
	}
	for i, q := range queries {
		fromGorm, totalGorm, err := gormStore.GetProperties(q)
		if err != nil {
			t.Fatalf("query %d: %v", i, err)
		}
		fromMem, totalMem, err := memStore.GetProperties(q)
		if err != nil {
			t.Fatalf("query %d: %v", i, err)
		}
		if totalGorm != totalMem {
			t.Errorf("query %d: totals diverge, %d vs %d", i, totalGorm, totalMem)
		}
		if len(fromGorm) != len(fromMem) {
			t.Errorf("query %d: sizes diverge, %d vs %d", i, len(fromGorm), len(fromMem))
			continue
		}
		for j := range fromGorm {
			if fromGorm[j].ID != fromMem[j].ID {
				t.Errorf("query %d position %d: %s vs %s", i, j, fromGorm[j].ID, fromMem[j].ID)
			}
		}
	}
}

func TestGormStoreViewCountIncrement(t *testing.T) {
	store := newSeededGormStore(t)

	first, err := store.GetProperty("prop-1")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if first.ViewCount != 343 {
		t.Fatalf("first fetch count %d, want 343", first.ViewCount)
	}
	if first.Agent == nil || first.Agent.User == nil {
		t.Fatal("agent join not resolved")
	}

	second, err := store.GetProperty("prop-1")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if second.ViewCount != first.ViewCount+1 {
		t.Fatalf("second fetch count %d, want %d", second.ViewCount, first.ViewCount+1)
	}

	if _, err := store.GetProperty("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGormStoreRoundTripsJSONColumns(t *testing.T) {
	store := newSeededGormStore(t)

	detail, err := store.GetProperty("prop-1")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if len(detail.Amenities) != 7 || detail.Amenities[0] != "Swimming Pool" {
		t.Errorf("amenities did not survive the round trip: %v", detail.Amenities)
	}
	if len(detail.Images) != 3 {
		t.Errorf("images did not survive the round trip: %v", detail.Images)
	}
}

func TestGormStoreFavoritesAndCascade(t *testing.T) {
	store := newSeededGormStore(t)

	first, err := store.AddFavorite("user-5", "prop-3")
	if err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	second, err := store.AddFavorite("user-5", "prop-3")
	if err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("duplicate favorite created")
	}

	if err := store.DeleteProperty("prop-3"); err != nil {
		t.Fatalf("DeleteProperty: %v", err)
	}
	favorites, err := store.GetUserFavorites("user-5")
	if err != nil {
		t.Fatalf("GetUserFavorites: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("favorites not cascaded, %d left", len(favorites))
	}
	if err := store.DeleteProperty("prop-3"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestGormStoreBlogSlugConflict(t *testing.T) {
	store := newSeededGormStore(t)

	_, err := store.CreateBlogPost(models.BlogPost{
		Title:    "Dup",
		Slug:     "luxury-real-estate-trends-2024",
		Content:  "<p>dup</p>",
		Category: "Market Trends",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	posts, err := store.GetBlogPosts("")
	if err != nil {
		t.Fatalf("GetBlogPosts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
}

func TestGormStoreSimilarProperties(t *testing.T) {
	store := newSeededGormStore(t)

	similar, err := store.GetSimilarProperties("prop-4")
	if err != nil {
		t.Fatalf("GetSimilarProperties: %v", err)
	}
	if len(similar) != 3 {
		t.Fatalf("got %d similar listings, want 3", len(similar))
	}
	memSimilar, _ := newSeededStore(t).GetSimilarProperties("prop-4")
	for i := range similar {
		if similar[i].ID != memSimilar[i].ID {
			t.Errorf("position %d diverges from the reference backend: %s vs %s",
				i, similar[i].ID, memSimilar[i].ID)
		}
	}
}
