package storage

import (
	"time"

	"luxe-estates-server/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// Seed loads the fixture data every fresh store starts with, so the
// marketplace is browsable without external data. Timestamps and view
// counts are fixed, which keeps the newest/popular sort orders and the
// similar-properties ranking deterministic. Seeding goes through the
// Store interface and therefore works for any backend.
func Seed(store Store) error {
	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	users := []models.User{
		{ID: "user-1", Email: "john@luxeestates.com", FullName: "John Anderson", Phone: "+1 234 567 8901", Role: models.RoleAgent, CreatedAt: base},
		{ID: "user-2", Email: "sarah@luxeestates.com", FullName: "Sarah Mitchell", Phone: "+1 234 567 8902", Role: models.RoleAgent, CreatedAt: base},
		{ID: "user-3", Email: "michael@luxeestates.com", FullName: "Michael Chen", Phone: "+1 234 567 8903", Role: models.RoleAgent, CreatedAt: base},
		{ID: "user-4", Email: "emily@luxeestates.com", FullName: "Emily Rodriguez", Phone: "+1 234 567 8904", Role: models.RoleAgent, CreatedAt: base},
		{ID: "user-5", Email: "admin@luxeestates.com", FullName: "Admin User", Role: models.RoleAdmin, CreatedAt: base},
	}
	for _, u := range users {
		if _, err := store.CreateUser(u); err != nil {
			return err
		}
	}

	agents := []models.Agent{
		{ID: "agent-1", UserID: strPtr("user-1"), Bio: "Specializing in luxury penthouses and high-rise properties with over 15 years of experience in Manhattan real estate.", Specialization: "Luxury Penthouses", YearsExperience: 15, Location: "Manhattan", PropertiesCount: 24, Rating: "4.9", IsActive: true},
		{ID: "agent-2", UserID: strPtr("user-2"), Bio: "Expert in waterfront properties and vacation homes. Passionate about helping families find their dream homes.", Specialization: "Waterfront Homes", YearsExperience: 12, Location: "Brooklyn", PropertiesCount: 18, Rating: "4.8", IsActive: true},
		{ID: "agent-3", UserID: strPtr("user-3"), Bio: "Commercial and investment property specialist with a background in finance and real estate development.", Specialization: "Investment Properties", YearsExperience: 10, Location: "Queens", PropertiesCount: 32, Rating: "4.7", IsActive: true},
		{ID: "agent-4", UserID: strPtr("user-4"), Bio: "First-time buyer specialist who makes the home buying process simple and stress-free.", Specialization: "First-time Buyers", YearsExperience: 8, Location: "Manhattan", PropertiesCount: 15, Rating: "5.0", IsActive: true},
	}
	for _, a := range agents {
		if _, err := store.CreateAgent(a); err != nil {
			return err
		}
	}

	properties := []models.Property{
		{
			ID:           "prop-1",
			Title:        "Luxurious Penthouse with Panoramic City Views",
			Description:  "Experience the pinnacle of urban luxury in this breathtaking penthouse offering 360-degree views of the Manhattan skyline. Features include a private rooftop terrace, chef's kitchen with premium appliances, floor-to-ceiling windows, and smart home automation throughout.",
			Price:        4500000,
			PropertyType: "penthouse",
			Status:       models.PropertyStatusAvailable,
			Location:     "Upper East Side",
			Address:      "432 Park Avenue, PH-A",
			City:         "New York",
			State:        "NY",
			ZipCode:      "10022",
			Area:         4500,
			Bedrooms:     4,
			Bathrooms:    5,
			FloorNumber:  intPtr(85),
			YearBuilt:    intPtr(2020),
			Amenities:    []string{"Swimming Pool", "Gym", "Concierge", "Parking", "Smart Home", "Terrace", "Security"},
			Features:     []string{"Floor-to-ceiling windows", "Private elevator", "Wine cellar", "Home theater"},
			Images: []string{
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=1200&q=80",
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=1200&q=80",
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=1200&q=80",
			},
			AgentID:    strPtr("agent-1"),
			IsFeatured: true,
			ViewCount:  342,
			CreatedAt:  base.Add(1 * time.Hour),
		},
		{
			ID:           "prop-2",
			Title:        "Modern Waterfront Villa with Private Dock",
			Description:  "Stunning contemporary villa set on the waterfront with a private dock. This architectural masterpiece features an open floor plan, infinity pool overlooking the water, and state-of-the-art amenities.",
			Price:        3200000,
			PropertyType: "villa",
			Status:       models.PropertyStatusAvailable,
			Location:     "Brooklyn Heights",
			Address:      "15 Columbia Heights",
			City:         "New York",
			State:        "NY",
			ZipCode:      "11201",
			Area:         5200,
			Bedrooms:     5,
			Bathrooms:    6,
			YearBuilt:    intPtr(2019),
			Amenities:    []string{"Swimming Pool", "Garden", "Parking", "Security", "Smart Home", "Pet Friendly"},
			Features:     []string{"Private dock", "Infinity pool", "Home office", "Guest house"},
			Images: []string{
				"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=1200&q=80",
				"https://images.unsplash.com/photo-1613977257363-707ba9348227?w=1200&q=80",
			},
			AgentID:    strPtr("agent-2"),
			IsFeatured: true,
			ViewCount:  289,
			CreatedAt:  base.Add(2 * time.Hour),
		},
		{
			ID:           "prop-3",
			Title:        "Elegant Brownstone in Historic District",
			Description:  "Beautifully restored brownstone townhouse in a prestigious historic neighborhood. Original architectural details blend seamlessly with modern updates including a gourmet kitchen and spa-like bathrooms.",
			Price:        2800000,
			PropertyType: "townhouse",
			Status:       models.PropertyStatusAvailable,
			Location:     "Park Slope",
			Address:      "342 President Street",
			City:         "New York",
			State:        "NY",
			ZipCode:      "11215",
			Area:         3800,
			Bedrooms:     4,
			Bathrooms:    3,
			YearBuilt:    intPtr(1890),
			Amenities:    []string{"Garden", "Parking", "Furnished"},
			Features:     []string{"Original moldings", "Fireplace", "Private garden", "Chef's kitchen"},
			Images: []string{
				"https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?w=1200&q=80",
				"https://images.unsplash.com/photo-1600047509358-9dc75507daeb?w=1200&q=80",
			},
			AgentID:    strPtr("agent-4"),
			IsFeatured: true,
			ViewCount:  198,
			CreatedAt:  base.Add(3 * time.Hour),
		},
		{
			ID:           "prop-4",
			Title:        "Contemporary Loft in SoHo",
			Description:  "Stunning sun-drenched loft in the heart of SoHo featuring 14-foot ceilings, exposed brick, and oversized windows. The open layout is perfect for entertaining.",
			Price:        1950000,
			PropertyType: "apartment",
			Status:       models.PropertyStatusAvailable,
			Location:     "SoHo",
			Address:      "101 Wooster Street, 4F",
			City:         "New York",
			State:        "NY",
			ZipCode:      "10012",
			Area:         2200,
			Bedrooms:     2,
			Bathrooms:    2,
			FloorNumber:  intPtr(4),
			YearBuilt:    intPtr(2015),
			Amenities:    []string{"Gym", "Elevator", "Concierge"},
			Features:     []string{"Exposed brick", "High ceilings", "Cast-iron columns", "Custom closets"},
			Images: []string{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=1200&q=80",
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=1200&q=80",
			},
			AgentID:    strPtr("agent-3"),
			IsFeatured: true,
			ViewCount:  276,
			CreatedAt:  base.Add(4 * time.Hour),
		},
		{
			ID:           "prop-5",
			Title:        "Sleek High-Rise Apartment with City Views",
			Description:  "Modern high-rise apartment with stunning city views from every room. Features include a gourmet kitchen, marble bathrooms, and access to world-class amenities.",
			Price:        1450000,
			PropertyType: "apartment",
			Status:       models.PropertyStatusAvailable,
			Location:     "Midtown",
			Address:      "157 West 57th Street, 42B",
			City:         "New York",
			State:        "NY",
			ZipCode:      "10019",
			Area:         1800,
			Bedrooms:     2,
			Bathrooms:    2,
			FloorNumber:  intPtr(42),
			YearBuilt:    intPtr(2018),
			Amenities:    []string{"Swimming Pool", "Gym", "Concierge", "Security", "Parking"},
			Features:     []string{"City views", "Marble bathrooms", "Custom cabinetry"},
			Images: []string{
				"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=1200&q=80",
			},
			AgentID:   strPtr("agent-1"),
			ViewCount: 154,
			CreatedAt: base.Add(5 * time.Hour),
		},
		{
			ID:           "prop-6",
			Title:        "Charming Garden Apartment in Greenwich Village",
			Description:  "Rare garden apartment in a prime Greenwich Village location. Private outdoor space, wood-burning fireplace, and classic pre-war details.",
			Price:        1250000,
			PropertyType: "apartment",
			Status:       models.PropertyStatusAvailable,
			Location:     "Greenwich Village",
			Address:      "45 Jane Street, 1A",
			City:         "New York",
			State:        "NY",
			ZipCode:      "10014",
			Area:         1400,
			Bedrooms:     1,
			Bathrooms:    1,
			FloorNumber:  intPtr(1),
			YearBuilt:    intPtr(1925),
			Amenities:    []string{"Garden", "Pet Friendly"},
			Features:     []string{"Private garden", "Fireplace", "Pre-war details"},
			Images: []string{
				"https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?w=1200&q=80",
			},
			AgentID:   strPtr("agent-4"),
			ViewCount: 121,
			CreatedAt: base.Add(6 * time.Hour),
		},
	}
	for _, p := range properties {
		if _, err := store.CreateProperty(p); err != nil {
			return err
		}
	}

	published := func(year int, month time.Month, day int) *time.Time {
		t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &t
	}
	blogPosts := []models.BlogPost{
		{
			ID:            "blog-1",
			Title:         "Top 10 Luxury Real Estate Trends for 2024",
			Slug:          "luxury-real-estate-trends-2024",
			Excerpt:       "Discover the latest trends shaping the luxury real estate market this year, from smart home technology to sustainable design.",
			Content:       "<p>The luxury real estate market continues to evolve with exciting new trends...</p><h2>1. Smart Home Integration</h2><p>Modern luxury buyers expect seamless smart home technology...</p>",
			FeaturedImage: "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&q=80",
			Category:      "Market Trends",
			Tags:          []string{"luxury", "trends", "2024", "smart home"},
			AuthorID:      strPtr("user-1"),
			IsPublished:   true,
			PublishedAt:   published(2024, time.January, 15),
			CreatedAt:     base,
		},
		{
			ID:            "blog-2",
			Title:         "First-Time Home Buyer's Guide to NYC",
			Slug:          "first-time-buyer-guide-nyc",
			Excerpt:       "Everything you need to know about purchasing your first home in New York City, from financing to closing.",
			Content:       "<p>Buying your first home in NYC can feel overwhelming...</p>",
			FeaturedImage: "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=800&q=80",
			Category:      "Buying Tips",
			Tags:          []string{"first-time buyer", "NYC", "guide"},
			AuthorID:      strPtr("user-4"),
			IsPublished:   true,
			PublishedAt:   published(2024, time.February, 1),
			CreatedAt:     base,
		},
		{
			ID:            "blog-3",
			Title:         "Investment Properties: Maximizing Your Returns",
			Slug:          "investment-properties-maximizing-returns",
			Excerpt:       "Expert strategies for identifying and managing profitable investment properties in today's market.",
			Content:       "<p>Real estate investment remains one of the most reliable paths to wealth building...</p>",
			FeaturedImage: "https://images.unsplash.com/photo-1560520653-9e0e4c89eb11?w=800&q=80",
			Category:      "Investment",
			Tags:          []string{"investment", "ROI", "passive income"},
			AuthorID:      strPtr("user-3"),
			IsPublished:   true,
			PublishedAt:   published(2024, time.February, 15),
			CreatedAt:     base,
		},
	}
	for _, p := range blogPosts {
		if _, err := store.CreateBlogPost(p); err != nil {
			return err
		}
	}

	return nil
}
