package service

import (
	"errors"
	"strings"
	"time"

	"github.com/harborlaw/website/internal/db"
	"gorm.io/gorm"
)

var (
	ErrBlogNotFound   = errors.New("blog not found")
	ErrSlugTaken      = errors.New("blog slug is already in use")
	ErrBlogValidation = errors.New("blog is missing required fields")
)

// BlogService wraps blog related content-store operations.
type BlogService struct {
	db *gorm.DB
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb}
}

// BlogFilter describes filters for the admin blog list.
type BlogFilter struct {
	// Status filters on publication state: "published", "draft", or ""
	// for all.
	Status string
	// Search is a case-insensitive substring match on the title,
	// executed store-side.
	Search string
}

// BlogInput represents fields accepted when creating or updating a blog.
type BlogInput struct {
	Title            string
	Slug             string
	CoverImage       string
	ShortDescription string
	Content          string
	Author           string
	IsPublished      bool
	SEOTitle         string
	SEODescription   string
	Keywords         string
	CanonicalURL     string
}

// List returns blogs for the admin console, newest first.
func (s *BlogService) List(filter BlogFilter) ([]db.Blog, error) {
	query := s.db.Model(&db.Blog{}).Order("created_at desc")

	switch filter.Status {
	case "published":
		query = query.Where("is_published = ?", true)
	case "draft":
		query = query.Where("is_published = ?", false)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("lower(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var blogs []db.Blog
	if err := query.Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// ListPublished returns published blogs for the public blog index,
// newest publication first.
func (s *BlogService) ListPublished() ([]db.Blog, error) {
	var blogs []db.Blog
	err := s.db.Where("is_published = ?", true).
		Order("published_at desc").
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// Get fetches a blog by id.
func (s *BlogService) Get(id uint) (*db.Blog, error) {
	var blog db.Blog
	if err := s.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// GetPublishedBySlug fetches a blog by slug for the public detail page.
// Unpublished blogs are not reachable by slug.
func (s *BlogService) GetPublishedBySlug(slug string) (*db.Blog, error) {
	var blog db.Blog
	err := s.db.Where("slug = ? AND is_published = ?", slug, true).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// Create persists a new blog. The slug is derived from the title when not
// supplied explicitly; either way it must be unique.
func (s *BlogService) Create(input BlogInput) (*db.Blog, error) {
	title := strings.TrimSpace(input.Title)
	author := strings.TrimSpace(input.Author)
	if title == "" || author == "" {
		return nil, ErrBlogValidation
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return nil, ErrBlogValidation
	}

	if err := s.ensureSlugFree(slug, 0); err != nil {
		return nil, err
	}

	blog := db.Blog{
		Title:            title,
		Slug:             slug,
		CoverImage:       strings.TrimSpace(input.CoverImage),
		ShortDescription: strings.TrimSpace(input.ShortDescription),
		Content:          input.Content,
		Author:           author,
		IsPublished:      input.IsPublished,
		SEOTitle:         strings.TrimSpace(input.SEOTitle),
		SEODescription:   strings.TrimSpace(input.SEODescription),
		Keywords:         strings.TrimSpace(input.Keywords),
		CanonicalURL:     strings.TrimSpace(input.CanonicalURL),
	}
	if blog.IsPublished {
		now := time.Now()
		blog.PublishedAt = &now
	}

	if err := s.db.Create(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// Update applies changes to an existing blog. Edits overwrite in place;
// there is no versioning. Toggling publication sets or clears PublishedAt.
func (s *BlogService) Update(id uint, input BlogInput) (*db.Blog, error) {
	blog, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	author := strings.TrimSpace(input.Author)
	slug := strings.TrimSpace(input.Slug)
	if title == "" || author == "" || slug == "" {
		return nil, ErrBlogValidation
	}

	if slug != blog.Slug {
		if err := s.ensureSlugFree(slug, blog.ID); err != nil {
			return nil, err
		}
	}

	wasPublished := blog.IsPublished

	blog.Title = title
	blog.Slug = slug
	blog.CoverImage = strings.TrimSpace(input.CoverImage)
	blog.ShortDescription = strings.TrimSpace(input.ShortDescription)
	blog.Content = input.Content
	blog.Author = author
	blog.IsPublished = input.IsPublished
	blog.SEOTitle = strings.TrimSpace(input.SEOTitle)
	blog.SEODescription = strings.TrimSpace(input.SEODescription)
	blog.Keywords = strings.TrimSpace(input.Keywords)
	blog.CanonicalURL = strings.TrimSpace(input.CanonicalURL)

	if blog.IsPublished && !wasPublished {
		now := time.Now()
		blog.PublishedAt = &now
	}
	if !blog.IsPublished {
		blog.PublishedAt = nil
	}

	if err := s.db.Save(blog).Error; err != nil {
		return nil, err
	}
	return blog, nil
}

// Delete removes a blog permanently. There is no soft delete or undo.
func (s *BlogService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.Blog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlogNotFound
	}
	return nil
}

func (s *BlogService) ensureSlugFree(slug string, excludeID uint) error {
	var count int64
	query := s.db.Model(&db.Blog{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugTaken
	}
	return nil
}

// Slugify derives a URL slug from a title: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, leading and
// trailing hyphens trimmed.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
