package models

import "time"

type BlogPost struct {
	ID            string     `json:"id" gorm:"primaryKey;size:255"`
	Title         string     `json:"title" gorm:"not null"`
	Slug          string     `json:"slug" gorm:"uniqueIndex;not null"` // immutable once assigned
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"` // HTML
	FeaturedImage string     `json:"featuredImage,omitempty"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags" gorm:"serializer:json"`
	AuthorID      *string    `json:"authorId" gorm:"size:255;index"`
	IsPublished   bool       `json:"isPublished" gorm:"default:false"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// BlogPostWithAuthor is a published post joined with its authoring user.
type BlogPostWithAuthor struct {
	BlogPost
	Author *User `json:"author,omitempty" gorm:"-"`
}
