package catalog

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(c.Categories()) == 0 {
		t.Fatal("expected at least one category")
	}
	if len(c.SubServices()) == 0 {
		t.Fatal("expected at least one sub-service")
	}
}

func TestEverySubServiceBelongsToExactlyOneCategory(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	for _, sub := range c.SubServices() {
		owners := 0
		for _, cat := range c.Categories() {
			for _, member := range cat.SubServices {
				if member.ID == sub.ID {
					owners++
					if cat.ID != sub.CategoryID {
						t.Fatalf("sub-service %q listed under category %q but has category_id %q",
							sub.ID, cat.ID, sub.CategoryID)
					}
				}
			}
		}
		if owners != 1 {
			t.Fatalf("sub-service %q appears under %d categories, want exactly 1", sub.ID, owners)
		}
	}
}

func TestResolveEveryAuthoredSlugPair(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	seen := make(map[string]string)
	for _, cat := range c.Categories() {
		for _, sub := range cat.SubServices {
			resolved, ok := c.ResolveSubService(cat.Slug, sub.Slug)
			if !ok {
				t.Fatalf("ResolveSubService(%q, %q) missed an authored pair", cat.Slug, sub.Slug)
			}
			if resolved.ID != sub.ID {
				t.Fatalf("ResolveSubService(%q, %q) = %q, want %q", cat.Slug, sub.Slug, resolved.ID, sub.ID)
			}

			key := cat.Slug + "/" + sub.Slug
			if prev, dup := seen[key]; dup {
				t.Fatalf("slug pair %q resolves to both %q and %q", key, prev, sub.ID)
			}
			seen[key] = sub.ID
		}
	}
}

func TestResolveSubServiceMisses(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if _, ok := c.ResolveSubService("no-such-category", "divorce"); ok {
		t.Fatal("expected miss for unknown category slug")
	}
	if _, ok := c.ResolveSubService("family-law", "no-such-service"); ok {
		t.Fatal("expected miss for unknown sub-service slug")
	}
	// Slugs are scoped to their category: a valid slug under the wrong
	// category must not resolve.
	if _, ok := c.ResolveSubService("business-law", "divorce"); ok {
		t.Fatal("expected miss for slug under the wrong category")
	}
}

func TestCategoryOfMatchesCategoryID(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	for _, sub := range c.SubServices() {
		cat := c.CategoryOf(sub)
		if cat == nil {
			t.Fatalf("CategoryOf(%q) returned nil", sub.ID)
		}
		if cat.ID != sub.CategoryID {
			t.Fatalf("CategoryOf(%q) = %q, want %q", sub.ID, cat.ID, sub.CategoryID)
		}
	}
}

func loadFromYAML(t *testing.T, doc string) (*Catalog, error) {
	t.Helper()
	return loadFS(fstest.MapFS{
		"data/test.yaml": &fstest.MapFile{Data: []byte(doc)},
	})
}

func TestLoadRejectsMismatchedCategoryID(t *testing.T) {
	_, err := loadFromYAML(t, `
category:
  id: cat-a
  slug: a
  title: A
sub_services:
  - id: svc-x
    category_id: cat-other
    slug: x
    title: X
`)
	if err == nil || !strings.Contains(err.Error(), "category_id") {
		t.Fatalf("expected category_id mismatch error, got %v", err)
	}
}

func TestLoadRejectsNonContiguousProcessSteps(t *testing.T) {
	_, err := loadFromYAML(t, `
category:
  id: cat-a
  slug: a
  title: A
sub_services:
  - id: svc-x
    category_id: cat-a
    slug: x
    title: X
    content:
      process:
        - step: 1
          title: One
        - step: 3
          title: Three
`)
	if err == nil || !strings.Contains(err.Error(), "contiguous") {
		t.Fatalf("expected contiguous step error, got %v", err)
	}
}

func TestLoadRejectsAmbiguousPricing(t *testing.T) {
	_, err := loadFromYAML(t, `
category:
  id: cat-a
  slug: a
  title: A
sub_services:
  - id: svc-x
    category_id: cat-a
    slug: x
    title: X
    content:
      pricing:
        starting_price: "$100"
        price_range: "$100-$200"
`)
	if err == nil || !strings.Contains(err.Error(), "pricing") {
		t.Fatalf("expected pricing error, got %v", err)
	}
}

func TestLoadRejectsDuplicateSlugWithinCategory(t *testing.T) {
	_, err := loadFromYAML(t, `
category:
  id: cat-a
  slug: a
  title: A
sub_services:
  - id: svc-x
    category_id: cat-a
    slug: same
    title: X
  - id: svc-y
    category_id: cat-a
    slug: same
    title: Y
`)
	if err == nil || !strings.Contains(err.Error(), "duplicate slug") {
		t.Fatalf("expected duplicate slug error, got %v", err)
	}
}
