package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// categoryFile mirrors the on-disk YAML shape: one category per file plus the
// sub-services authored under it.
type categoryFile struct {
	Category    ServiceCategory `yaml:"category"`
	SubServices []*SubService   `yaml:"sub_services"`
}

// Catalog is the immutable, fully validated service taxonomy. It is built
// once at startup and shared read-only across requests.
type Catalog struct {
	categories     []*ServiceCategory
	subServices    []*SubService
	categoryByID   map[string]*ServiceCategory
	categoryBySlug map[string]*ServiceCategory
	subByID        map[string]*SubService
	categoryOfSub  map[string]*ServiceCategory
}

// Load parses the embedded catalog data, validates it, and derives each
// category's member list from the sub-services' CategoryID fields. Any
// authoring mistake fails the load outright; the catalog is never served in
// a partially valid state.
func Load() (*Catalog, error) {
	return loadFS(dataFS)
}

func loadFS(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "data/*.yaml")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("catalog: no data files found")
	}
	// Lexical file order is the authored category order.
	sort.Strings(names)

	c := &Catalog{
		categoryByID:   make(map[string]*ServiceCategory),
		categoryBySlug: make(map[string]*ServiceCategory),
		subByID:        make(map[string]*SubService),
		categoryOfSub:  make(map[string]*ServiceCategory),
	}

	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}

		var file categoryFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", name, err)
		}

		cat := file.Category
		if err := validateCategory(&cat); err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", name, err)
		}
		if _, dup := c.categoryByID[cat.ID]; dup {
			return nil, fmt.Errorf("catalog: %s: duplicate category id %q", name, cat.ID)
		}
		if _, dup := c.categoryBySlug[cat.Slug]; dup {
			return nil, fmt.Errorf("catalog: %s: duplicate category slug %q", name, cat.Slug)
		}

		category := cat
		c.categories = append(c.categories, &category)
		c.categoryByID[category.ID] = &category
		c.categoryBySlug[category.Slug] = &category

		slugsInCategory := make(map[string]bool)
		for _, sub := range file.SubServices {
			if err := validateSubService(sub); err != nil {
				return nil, fmt.Errorf("catalog: %s: sub-service %q: %w", name, sub.ID, err)
			}
			if sub.CategoryID != category.ID {
				return nil, fmt.Errorf("catalog: %s: sub-service %q has category_id %q, want %q",
					name, sub.ID, sub.CategoryID, category.ID)
			}
			if _, dup := c.subByID[sub.ID]; dup {
				return nil, fmt.Errorf("catalog: %s: duplicate sub-service id %q", name, sub.ID)
			}
			if slugsInCategory[sub.Slug] {
				return nil, fmt.Errorf("catalog: %s: duplicate slug %q in category %q",
					name, sub.Slug, category.ID)
			}
			slugsInCategory[sub.Slug] = true

			c.subServices = append(c.subServices, sub)
			c.subByID[sub.ID] = sub
			c.categoryOfSub[sub.ID] = &category
			category.SubServices = append(category.SubServices, sub)
		}
	}

	return c, nil
}

func validateCategory(cat *ServiceCategory) error {
	switch {
	case cat.ID == "":
		return fmt.Errorf("category id is required")
	case cat.Slug == "":
		return fmt.Errorf("category slug is required")
	case cat.Title == "":
		return fmt.Errorf("category title is required")
	}
	return nil
}

func validateSubService(sub *SubService) error {
	switch {
	case sub.ID == "":
		return fmt.Errorf("id is required")
	case sub.Slug == "":
		return fmt.Errorf("slug is required")
	case sub.Title == "":
		return fmt.Errorf("title is required")
	case sub.CategoryID == "":
		return fmt.Errorf("category_id is required")
	}

	for i, step := range sub.Content.Process {
		if step.Step != i+1 {
			return fmt.Errorf("process step %d is numbered %d, steps must be contiguous from 1", i+1, step.Step)
		}
	}

	if p := sub.Content.Pricing; p != nil {
		if (p.StartingPrice == "") == (p.PriceRange == "") {
			return fmt.Errorf("pricing must set exactly one of starting_price or price_range")
		}
	}

	// RelatedPracticeAreas are soft references and deliberately not checked.
	return nil
}
