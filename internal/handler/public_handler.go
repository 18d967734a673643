package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harborlaw/website/internal/service"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps(), goldmarkhtml.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderBlogContent converts stored markdown/HTML to sanitized HTML for the
// public blog page.
func renderBlogContent(content string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return template.HTML(sanitizer.Sanitize(content))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// ShowHome renders the public home page: featured practice areas, latest
// posts, and the hero lead form.
func (a *API) ShowHome(c *gin.Context) {
	posts, err := a.blogs.ListPublished()
	if err != nil {
		// Degrade to an empty list; the page still renders.
		a.logger.Warn("home blog query failed", zap.Error(err))
		posts = nil
	}
	if len(posts) > 3 {
		posts = posts[:3]
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":      "Home",
		"categories": a.catalog.Categories(),
		"posts":      posts,
	})
}

// ShowAbout renders the firm about page.
func (a *API) ShowAbout(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "about.html", gin.H{
		"title": "About the Firm",
	})
}

// ShowServicesIndex renders the services hub listing every category.
func (a *API) ShowServicesIndex(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "services.html", gin.H{
		"title":      "Practice Areas",
		"categories": a.catalog.Categories(),
	})
}

// ShowServiceCategory renders one category and its sub-services.
func (a *API) ShowServiceCategory(c *gin.Context) {
	cat, ok := a.catalog.CategoryBySlug(c.Param("category"))
	if !ok {
		a.renderNotFound(c)
		return
	}

	a.renderHTML(c, http.StatusOK, "service_category.html", gin.H{
		"title":       cat.Title,
		"category":    cat,
		"subServices": cat.SubServices,
	})
}

// ShowSubService renders a sub-service detail page with its structured data.
func (a *API) ShowSubService(c *gin.Context) {
	sub, ok := a.catalog.ResolveSubService(c.Param("category"), c.Param("sub"))
	if !ok {
		a.renderNotFound(c)
		return
	}
	cat := a.catalog.CategoryOf(sub)

	related := make([]gin.H, 0, len(sub.RelatedPracticeAreas))
	for _, id := range sub.RelatedPracticeAreas {
		// Soft references: silently skip ids that no longer exist.
		other, ok := a.catalog.SubServiceByID(id)
		if !ok {
			continue
		}
		otherCat := a.catalog.CategoryOf(other)
		related = append(related, gin.H{
			"title": other.Title,
			"url":   "/services/" + otherCat.Slug + "/" + other.Slug,
		})
	}

	metaTitle := sub.Metadata.MetaTitle
	if metaTitle == "" {
		metaTitle = sub.Title
	}

	a.renderHTML(c, http.StatusOK, "service_detail.html", gin.H{
		"title":           metaTitle,
		"metaDescription": sub.Metadata.MetaDescription,
		"keywords":        strings.Join(sub.Metadata.Keywords, ", "),
		"category":        cat,
		"subService":      sub,
		"related":         related,
		"legalServiceLD":  a.legalServiceJSONLD(cat, sub),
		"faqLD":           a.faqJSONLD(sub.Content.FAQs),
	})
}

// ShowBlogIndex renders the public blog list. A store failure degrades to an
// empty list rather than an error page.
func (a *API) ShowBlogIndex(c *gin.Context) {
	posts, err := a.blogs.ListPublished()
	if err != nil {
		a.logger.Warn("blog index query failed", zap.Error(err))
		posts = nil
	}

	a.renderHTML(c, http.StatusOK, "blog.html", gin.H{
		"title": "Insights & News",
		"posts": posts,
	})
}

// ShowBlogDetail renders a published blog post by slug.
func (a *API) ShowBlogDetail(c *gin.Context) {
	blog, err := a.blogs.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		a.renderNotFound(c)
		return
	}

	seoTitle := blog.SEOTitle
	if seoTitle == "" {
		seoTitle = blog.Title
	}
	seoDescription := blog.SEODescription
	if seoDescription == "" {
		seoDescription = blog.ShortDescription
	}

	a.renderHTML(c, http.StatusOK, "blog_detail.html", gin.H{
		"title":           seoTitle,
		"metaDescription": seoDescription,
		"keywords":        blog.Keywords,
		"canonicalURL":    blog.CanonicalURL,
		"blog":            blog,
		"content":         renderBlogContent(blog.Content),
		"blogPostingLD":   a.blogPostingJSONLD(blog),
	})
}

// ShowAttorneys renders the public attorney roster.
func (a *API) ShowAttorneys(c *gin.Context) {
	attorneys, err := a.attorneys.List("")
	if err != nil {
		a.logger.Warn("attorney query failed", zap.Error(err))
		attorneys = nil
	}

	a.renderHTML(c, http.StatusOK, "attorneys.html", gin.H{
		"title":     "Our Attorneys",
		"attorneys": attorneys,
	})
}

// ShowContactPage renders the contact form with the service types offered.
func (a *API) ShowContactPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"title":      "Contact Us",
		"categories": a.catalog.Categories(),
	})
}

// SubmitContact handles the public contact and hero lead forms. The consent
// checkbox is enforced client-side on the contact form only; the hero form
// posts here with form=hero and no consent gate.
func (a *API) SubmitContact(c *gin.Context) {
	input := service.ContactInput{
		FirstName:   c.PostForm("first_name"),
		LastName:    c.PostForm("last_name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		ServiceType: c.PostForm("service_type"),
		Message:     c.PostForm("message"),
	}

	submission, err := a.contacts.Submit(input)
	if err != nil {
		if errors.Is(err, service.ErrContactValidation) {
			respondError(c, http.StatusBadRequest, "please fill in all required fields")
			return
		}
		a.logger.Error("contact submission failed", zap.Error(err))
		respondError(c, http.StatusBadGateway, "we could not save your message, please try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "submitted successfully",
		"reference": submission.Reference,
	})
}
