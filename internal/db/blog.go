package db

import (
	"time"

	"gorm.io/gorm"
)

// Blog is a post managed through the admin console. A blog is publicly
// visible (listed, fetchable by slug, included in the sitemap) iff
// IsPublished is true.
type Blog struct {
	gorm.Model
	Title            string `gorm:"not null"`
	Slug             string `gorm:"uniqueIndex;not null"`
	CoverImage       string
	ShortDescription string
	Content          string `gorm:"type:text"`
	Author           string `gorm:"not null"`
	IsPublished      bool   `gorm:"index"`
	PublishedAt      *time.Time

	// Optional SEO overrides; the renderer falls back to Title and
	// ShortDescription when these are empty.
	SEOTitle       string
	SEODescription string
	Keywords       string
	CanonicalURL   string
}
