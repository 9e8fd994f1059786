package storage

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"luxe-estates-server/models"
)

// The query helpers below define the listing contract shared by every
// Store implementation: conjunctive filter predicates, stable total
// orders and 1-indexed pagination windows.

func normalizeFilters(f PropertyFilters) PropertyFilters {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if strings.EqualFold(f.Type, "any") {
		f.Type = ""
	}
	return f
}

func matchesFilters(p models.Property, f PropertyFilters) bool {
	if f.Location != "" {
		needle := strings.ToLower(f.Location)
		if !strings.Contains(strings.ToLower(p.Location), needle) &&
			!strings.Contains(strings.ToLower(p.City), needle) {
			return false
		}
	}
	if f.Type != "" && p.PropertyType != f.Type {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinArea != nil && p.Area < *f.MinArea {
		return false
	}
	if f.MaxArea != nil && p.Area > *f.MaxArea {
		return false
	}
	if !matchesRoomCount(f.Bedrooms, p.Bedrooms) {
		return false
	}
	if !matchesRoomCount(f.Bathrooms, p.Bathrooms) {
		return false
	}
	if !hasAllAmenities(p.Amenities, f.Amenities) {
		return false
	}
	return true
}

// matchesRoomCount interprets a room filter value: "3" matches exactly
// three, "3+" matches three or more. Unparsable values are ignored.
func matchesRoomCount(filter string, count int) bool {
	if filter == "" {
		return true
	}
	atLeast := strings.HasSuffix(filter, "+")
	n, err := strconv.Atoi(strings.TrimSuffix(filter, "+"))
	if err != nil {
		return true
	}
	if atLeast {
		return count >= n
	}
	return count == n
}

// hasAllAmenities reports whether have is a superset of want,
// compared case-insensitively.
func hasAllAmenities(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[string]bool, len(have))
	for _, a := range have {
		set[strings.ToLower(a)] = true
	}
	for _, w := range want {
		if !set[strings.ToLower(w)] {
			return false
		}
	}
	return true
}

// sortProperties orders results in place. The input slice must already
// be in insertion order; the stable sort keeps that order for ties so
// identical queries always return identical results.
func sortProperties(results []models.Property, sortKey string) {
	switch sortKey {
	case models.SortPriceLow:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price < results[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price > results[j].Price
		})
	case models.SortPopular:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].ViewCount > results[j].ViewCount
		})
	default: // newest
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		})
	}
}

// applyPropertyUpdate merges the provided fields over the existing
// record. Identifier, view count and timestamps are never settable
// through an update.
func applyPropertyUpdate(p *models.Property, data models.PropertyUpdate) {
	if data.Title != nil {
		p.Title = *data.Title
	}
	if data.Description != nil {
		p.Description = *data.Description
	}
	if data.Price != nil {
		p.Price = *data.Price
	}
	if data.PropertyType != nil {
		p.PropertyType = *data.PropertyType
	}
	if data.Status != nil {
		p.Status = *data.Status
	}
	if data.Location != nil {
		p.Location = *data.Location
	}
	if data.Address != nil {
		p.Address = *data.Address
	}
	if data.City != nil {
		p.City = *data.City
	}
	if data.State != nil {
		p.State = *data.State
	}
	if data.ZipCode != nil {
		p.ZipCode = *data.ZipCode
	}
	if data.Area != nil {
		p.Area = *data.Area
	}
	if data.Bedrooms != nil {
		p.Bedrooms = *data.Bedrooms
	}
	if data.Bathrooms != nil {
		p.Bathrooms = *data.Bathrooms
	}
	if data.FloorNumber != nil {
		p.FloorNumber = data.FloorNumber
	}
	if data.YearBuilt != nil {
		p.YearBuilt = data.YearBuilt
	}
	if data.Amenities != nil {
		p.Amenities = *data.Amenities
	}
	if data.Features != nil {
		p.Features = *data.Features
	}
	if data.Images != nil {
		p.Images = *data.Images
	}
	if data.AgentID != nil {
		p.AgentID = data.AgentID
	}
	if data.IsFeatured != nil {
		p.IsFeatured = *data.IsFeatured
	}
}

var categorySeparators = regexp.MustCompile(`\s+`)

// CategorySlug turns a blog category label into its URL form,
// e.g. "Market Trends" -> "market-trends".
func CategorySlug(category string) string {
	return categorySeparators.ReplaceAllString(strings.ToLower(category), "-")
}

// paginate returns the 1-indexed page window. Pages past the end are
// empty, never an error.
func paginate(results []models.Property, page, limit int) []models.Property {
	start := (page - 1) * limit
	if start >= len(results) {
		return []models.Property{}
	}
	end := start + limit
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}
