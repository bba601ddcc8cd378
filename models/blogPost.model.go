package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Blog post lifecycle states
const (
	BlogStatusDraft     = "draft"
	BlogStatusScheduled = "scheduled"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"
)

type BlogPost struct {
	gorm.Model
	Title string `json:"title" gorm:"not null"`
	Slug  string `json:"slug" gorm:"uniqueIndex;not null"`

	Excerpt       string `json:"excerpt"`
	ContentHTML   string `json:"content_html" gorm:"type:text;not null"`
	CoverImageURL string `json:"cover_image_url"`

	AuthorName  string `json:"author_name" gorm:"not null"`
	AuthorEmail string `json:"author_email"`
	AuthorImage string `json:"author_image"`

	Categories datatypes.JSON `json:"categories"` // array of category names

	Status      string     `json:"status" gorm:"default:'draft';index"` // draft, scheduled, published, archived
	PublishedAt *time.Time `json:"published_at" gorm:"index"`

	Likes int64 `json:"likes" gorm:"default:0"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
}
