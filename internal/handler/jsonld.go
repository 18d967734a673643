package handler

import (
	"encoding/json"
	"html/template"

	"github.com/harborlaw/website/internal/catalog"
	"github.com/harborlaw/website/internal/db"
)

// JSON-LD builders for the structured-data blocks embedded in public pages.
// Each returns ready-to-embed script content; marshal failures degrade to an
// empty block rather than breaking the page.

func (a *API) legalServiceJSONLD(cat *catalog.ServiceCategory, sub *catalog.SubService) template.JS {
	doc := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "LegalService",
		"name":        sub.Title,
		"description": sub.Description,
		"url":         a.baseURL + "/services/" + cat.Slug + "/" + sub.Slug,
		"provider": map[string]interface{}{
			"@type": "Attorney",
			"name":  a.siteName,
			"url":   a.baseURL,
		},
		"areaServed":  "US",
		"serviceType": cat.Title,
	}
	return marshalJSONLD(doc)
}

func (a *API) faqJSONLD(faqs []catalog.FAQ) template.JS {
	if len(faqs) == 0 {
		return ""
	}

	items := make([]map[string]interface{}, 0, len(faqs))
	for _, faq := range faqs {
		items = append(items, map[string]interface{}{
			"@type": "Question",
			"name":  faq.Question,
			"acceptedAnswer": map[string]interface{}{
				"@type": "Answer",
				"text":  faq.Answer,
			},
		})
	}

	return marshalJSONLD(map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": items,
	})
}

func (a *API) blogPostingJSONLD(blog *db.Blog) template.JS {
	doc := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    blog.Title,
		"description": blog.ShortDescription,
		"url":         a.baseURL + "/blog/" + blog.Slug,
		"author": map[string]interface{}{
			"@type": "Person",
			"name":  blog.Author,
		},
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  a.siteName,
		},
		"dateModified": blog.UpdatedAt,
	}
	if blog.PublishedAt != nil {
		doc["datePublished"] = blog.PublishedAt
	}
	if blog.CoverImage != "" {
		doc["image"] = blog.CoverImage
	}
	return marshalJSONLD(doc)
}

func marshalJSONLD(doc map[string]interface{}) template.JS {
	raw, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	return template.JS(raw)
}
