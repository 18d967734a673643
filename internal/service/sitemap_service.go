package service

import (
	"strings"
	"time"

	"github.com/harborlaw/website/internal/catalog"
	"go.uber.org/zap"
)

// SitemapEntry is one crawlable URL with its search-engine metadata.
type SitemapEntry struct {
	Loc        string
	LastMod    *time.Time
	ChangeFreq string
	Priority   string
}

// SitemapService unions static routes, the service taxonomy, and published
// blogs into one sitemap.
type SitemapService struct {
	catalog *catalog.Catalog
	blogs   *BlogService
	baseURL string
	logger  *zap.Logger
}

// NewSitemapService creates a SitemapService. baseURL is the absolute site
// origin without a trailing slash.
func NewSitemapService(c *catalog.Catalog, blogs *BlogService, baseURL string, logger *zap.Logger) *SitemapService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SitemapService{
		catalog: c,
		blogs:   blogs,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// staticRoutes are the hand-assigned pages that always appear.
var staticRoutes = []SitemapEntry{
	{Loc: "/", ChangeFreq: "weekly", Priority: "1.0"},
	{Loc: "/services", ChangeFreq: "monthly", Priority: "0.9"},
	{Loc: "/about", ChangeFreq: "monthly", Priority: "0.6"},
	{Loc: "/attorneys", ChangeFreq: "monthly", Priority: "0.7"},
	{Loc: "/blog", ChangeFreq: "daily", Priority: "0.8"},
	{Loc: "/contact", ChangeFreq: "yearly", Priority: "0.6"},
}

// Entries builds the full sitemap. Every static and taxonomy route appears
// exactly once. Published blogs are queried fresh from the content store;
// if that query fails the sitemap degrades to static and taxonomy routes
// instead of failing outright.
func (s *SitemapService) Entries() []SitemapEntry {
	seen := make(map[string]bool)
	entries := make([]SitemapEntry, 0, 32)

	add := func(e SitemapEntry) {
		loc := s.baseURL + e.Loc
		if seen[loc] {
			return
		}
		seen[loc] = true
		e.Loc = loc
		entries = append(entries, e)
	}

	for _, e := range staticRoutes {
		add(e)
	}

	for _, cat := range s.catalog.Categories() {
		add(SitemapEntry{
			Loc:        "/services/" + cat.Slug,
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
		for _, sub := range cat.SubServices {
			add(SitemapEntry{
				Loc:        "/services/" + cat.Slug + "/" + sub.Slug,
				ChangeFreq: "monthly",
				Priority:   "0.7",
			})
		}
	}

	blogs, err := s.blogs.ListPublished()
	if err != nil {
		s.logger.Warn("sitemap blog query failed, emitting static routes only", zap.Error(err))
		blogs = nil
	}
	for i := range blogs {
		updated := blogs[i].UpdatedAt
		add(SitemapEntry{
			Loc:        "/blog/" + blogs[i].Slug,
			LastMod:    &updated,
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	return entries
}
