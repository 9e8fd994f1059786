package storage

import (
	"testing"

	"luxe-estates-server/models"
)

func TestMatchesRoomCount(t *testing.T) {
	cases := []struct {
		filter string
		count  int
		want   bool
	}{
		{"", 2, true},
		{"any", 2, true},
		{"2", 2, true},
		{"2", 3, false},
		{"3+", 3, true},
		{"3+", 5, true},
		{"3+", 2, false},
		{"garbage", 1, true},
		{"garbage+", 1, true},
	}
	for _, c := range cases {
		if got := matchesRoomCount(c.filter, c.count); got != c.want {
			t.Errorf("matchesRoomCount(%q, %d) = %v, want %v", c.filter, c.count, got, c.want)
		}
	}
}

func TestCategorySlug(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Market Trends", "market-trends"},
		{"Buying Tips", "buying-tips"},
		{"Investment", "investment"},
		{"  Spaced   Out  ", "-spaced-out-"},
	}
	for _, c := range cases {
		if got := CategorySlug(c.in); got != c.want {
			t.Errorf("CategorySlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeFilters(t *testing.T) {
	f := normalizeFilters(PropertyFilters{Page: 0, Limit: 0, Type: "Any"})
	if f.Page != 1 {
		t.Errorf("page defaulted to %d, want 1", f.Page)
	}
	if f.Limit != DefaultPageSize {
		t.Errorf("limit defaulted to %d, want %d", f.Limit, DefaultPageSize)
	}
	if f.Type != "" {
		t.Errorf("type %q not neutralized", f.Type)
	}
}

func TestPaginateBounds(t *testing.T) {
	items := []models.Property{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}

	if got := paginate(items, 1, 2); len(got) != 2 || got[0].ID != "a" {
		t.Errorf("page 1: %v", got)
	}
	if got := paginate(items, 3, 2); len(got) != 1 || got[0].ID != "e" {
		t.Errorf("last partial page: %v", got)
	}
	if got := paginate(items, 4, 2); len(got) != 0 {
		t.Errorf("past-end page should be empty: %v", got)
	}
}
