package catalog

// ServiceCategory is a top-level practice area grouping. Categories are
// authored in YAML and loaded once at startup; they never change at runtime.
type ServiceCategory struct {
	ID               string `yaml:"id"`
	Slug             string `yaml:"slug"`
	Title            string `yaml:"title"`
	ShortDescription string `yaml:"short_description"`

	// SubServices is derived at load time from each sub-service's
	// CategoryID, in declaration order. It is never authored by hand.
	SubServices []*SubService `yaml:"-"`
}

// SubService is a single offering within a category. Slugs are unique within
// their category, not globally.
type SubService struct {
	ID                   string   `yaml:"id"`
	CategoryID           string   `yaml:"category_id"`
	Slug                 string   `yaml:"slug"`
	Title                string   `yaml:"title"`
	Description          string   `yaml:"description"`
	ShortDescription     string   `yaml:"short_description"`
	Content              Content  `yaml:"content"`
	RelatedPracticeAreas []string `yaml:"related_practice_areas"`
	Metadata             Metadata `yaml:"metadata"`
}

// Content holds the structured body of a sub-service page.
type Content struct {
	Overview    string        `yaml:"overview"`
	KeyFeatures []string      `yaml:"key_features"`
	Process     []ProcessStep `yaml:"process"`
	FAQs        []FAQ         `yaml:"faqs"`
	Pricing     *Pricing      `yaml:"pricing"`
}

// ProcessStep is one step of an engagement process. Steps are contiguous
// starting at 1.
type ProcessStep struct {
	Step        int    `yaml:"step"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// FAQ is a question/answer pair rendered on the page and in structured data.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Pricing carries exactly one of StartingPrice or PriceRange.
type Pricing struct {
	StartingPrice string `yaml:"starting_price"`
	PriceRange    string `yaml:"price_range"`
	Note          string `yaml:"note"`
}

// Metadata is consumed only by the rendering layer for titles and meta tags.
type Metadata struct {
	MetaTitle       string   `yaml:"meta_title"`
	MetaDescription string   `yaml:"meta_description"`
	Keywords        []string `yaml:"keywords"`
}
