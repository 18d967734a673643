package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/harborlaw/website/internal/catalog"
	"github.com/harborlaw/website/internal/notify"
	"github.com/harborlaw/website/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	catalog   *catalog.Catalog
	blogs     *service.BlogService
	attorneys *service.AttorneyService
	contacts  *service.ContactService
	sitemap   *service.SitemapService
	logger    *zap.Logger
	baseURL   string
	siteName  string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cat *catalog.Catalog, notifier notify.Notifier, logger *zap.Logger, baseURL string) *API {
	if logger == nil {
		logger = zap.NewNop()
	}

	blogs := service.NewBlogService(gdb)

	return &API{
		db:        gdb,
		catalog:   cat,
		blogs:     blogs,
		attorneys: service.NewAttorneyService(gdb),
		contacts:  service.NewContactService(gdb, notifier, logger),
		sitemap:   service.NewSitemapService(cat, blogs, baseURL, logger),
		logger:    logger,
		baseURL:   baseURL,
		siteName:  "Harbor Law",
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}
	if _, exists := payload["siteName"]; !exists {
		payload["siteName"] = a.siteName
	}
	c.HTML(status, template, payload)
}

func (a *API) renderNotFound(c *gin.Context) {
	a.renderHTML(c, 404, "404.html", gin.H{"title": "Page Not Found"})
}
