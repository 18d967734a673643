package handler

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// sitemapURLSet is the sitemaps.org urlset document.
type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// ShowSitemap serves /sitemap.xml.
func (a *API) ShowSitemap(c *gin.Context) {
	entries := a.sitemap.Entries()

	urlset := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(entries)),
	}
	for _, e := range entries {
		u := sitemapURL{
			Loc:        e.Loc,
			ChangeFreq: e.ChangeFreq,
			Priority:   e.Priority,
		}
		if e.LastMod != nil {
			u.LastMod = e.LastMod.UTC().Format(time.RFC3339)
		}
		urlset.URLs = append(urlset.URLs, u)
	}

	c.XML(http.StatusOK, urlset)
}
