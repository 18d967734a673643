package catalog

// ResolveSubService maps a category slug and sub-service slug to the matching
// sub-service. Absence is reported through the boolean, never an error;
// callers turn a miss into a 404.
func (c *Catalog) ResolveSubService(categorySlug, subServiceSlug string) (*SubService, bool) {
	cat, ok := c.categoryBySlug[categorySlug]
	if !ok {
		return nil, false
	}
	for _, sub := range cat.SubServices {
		if sub.Slug == subServiceSlug {
			return sub, true
		}
	}
	return nil, false
}

// SubServiceByID looks up a sub-service by its stable id.
func (c *Catalog) SubServiceByID(id string) (*SubService, bool) {
	sub, ok := c.subByID[id]
	return sub, ok
}

// SubServicesByCategory returns the sub-services of a category in authored
// order. An unknown category id yields an empty slice.
func (c *Catalog) SubServicesByCategory(categoryID string) []*SubService {
	cat, ok := c.categoryByID[categoryID]
	if !ok {
		return nil
	}
	return cat.SubServices
}

// Categories returns every category in authored order.
func (c *Catalog) Categories() []*ServiceCategory {
	return c.categories
}

// SubServices returns every sub-service in authored order.
func (c *Catalog) SubServices() []*SubService {
	return c.subServices
}

// CategoryBySlug looks up a category by its URL slug.
func (c *Catalog) CategoryBySlug(slug string) (*ServiceCategory, bool) {
	cat, ok := c.categoryBySlug[slug]
	return cat, ok
}

// CategoryByID looks up a category by its stable id.
func (c *Catalog) CategoryByID(id string) (*ServiceCategory, bool) {
	cat, ok := c.categoryByID[id]
	return cat, ok
}

// CategoryOf returns the owning category of a sub-service. The loader
// guarantees every sub-service has one.
func (c *Catalog) CategoryOf(sub *SubService) *ServiceCategory {
	return c.categoryOfSub[sub.ID]
}
