package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harborlaw/website/internal/service"
)

// blogPayload is the JSON body accepted by the blog admin API.
type blogPayload struct {
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	CoverImage       string `json:"cover_image"`
	ShortDescription string `json:"short_description"`
	Content          string `json:"content"`
	Author           string `json:"author"`
	IsPublished      bool   `json:"is_published"`
	SEOTitle         string `json:"seo_title"`
	SEODescription   string `json:"seo_description"`
	Keywords         string `json:"keywords"`
	CanonicalURL     string `json:"canonical_url"`
}

func (p blogPayload) toInput() service.BlogInput {
	return service.BlogInput{
		Title:            p.Title,
		Slug:             p.Slug,
		CoverImage:       p.CoverImage,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		Author:           p.Author,
		IsPublished:      p.IsPublished,
		SEOTitle:         p.SEOTitle,
		SEODescription:   p.SEODescription,
		Keywords:         p.Keywords,
		CanonicalURL:     p.CanonicalURL,
	}
}

// GetBlogs lists blogs for the admin console, with optional status and
// search filters.
func (a *API) GetBlogs(c *gin.Context) {
	blogs, err := a.blogs.List(service.BlogFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list blogs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

// GetBlog fetches one blog by id.
func (a *API) GetBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid blog id")
		return
	}

	blog, err := a.blogs.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respondError(c, http.StatusNotFound, "blog not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to fetch blog")
		return
	}
	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// CreateBlog creates a blog from the admin console.
func (a *API) CreateBlog(c *gin.Context) {
	var payload blogPayload
	if !bindJSON(c, &payload, "invalid blog payload") {
		return
	}

	blog, err := a.blogs.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogValidation):
			respondError(c, http.StatusBadRequest, "title and author are required")
		case errors.Is(err, service.ErrSlugTaken):
			respondError(c, http.StatusConflict, "slug is already in use")
		default:
			respondError(c, http.StatusInternalServerError, "failed to create blog")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// UpdateBlog applies edits to a blog, including the publish toggle.
func (a *API) UpdateBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid blog id")
		return
	}

	var payload blogPayload
	if !bindJSON(c, &payload, "invalid blog payload") {
		return
	}

	blog, err := a.blogs.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			respondError(c, http.StatusNotFound, "blog not found")
		case errors.Is(err, service.ErrBlogValidation):
			respondError(c, http.StatusBadRequest, "title, slug, and author are required")
		case errors.Is(err, service.ErrSlugTaken):
			respondError(c, http.StatusConflict, "slug is already in use")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update blog")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// DeleteBlog removes a blog permanently.
func (a *API) DeleteBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid blog id")
		return
	}

	if err := a.blogs.Delete(id); err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respondError(c, http.StatusNotFound, "blog not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete blog")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "blog deleted"})
}
