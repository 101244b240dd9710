package domain

// Source identifies where a candidate product was discovered
type Source string

const (
	SourceFlipkart      Source = "flipkart"
	SourceAmazon        Source = "amazon"
	SourceInstantAnswer Source = "instant_answer"
	SourceCurated       Source = "curated"
	SourceFallback      Source = "fallback"
)

// Candidate represents a normalized product record from any search source.
// Optional fields may be empty depending on the originating adapter;
// Normalize fills defined defaults at the adapter boundary.
type Candidate struct {
	Name         string `json:"name"`
	Price        string `json:"price"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	FlipkartLink string `json:"flipkart_link,omitempty"`
	AmazonLink   string `json:"amazon_link,omitempty"`
	Rating       string `json:"rating,omitempty"`
	InStock      bool   `json:"inStock"`
	Source       Source `json:"source"`
}

// DefaultDescription is used when a source provides no description text
const DefaultDescription = "Popular product with good reviews. Check the website for full details."

// Normalize applies defined defaults for optional fields. Candidates are
// validated once here, at the adapter boundary, so the rest of the pipeline
// can rely on the fields being populated.
func (c *Candidate) Normalize() {
	if c.Price == "" {
		c.Price = "Check website"
	}
	if c.Rating == "" {
		c.Rating = "4.0+"
	}
	if c.Description == "" {
		c.Description = DefaultDescription
	}
	c.InStock = true
}

// Key returns the dedup key for a candidate. Within one resolved list,
// (name, source) pairs are unique.
func (c *Candidate) Key() string {
	return string(c.Source) + ":" + c.Name
}

// PriceRange is a numeric price window extracted from free text.
// Derived per-query, never persisted.
type PriceRange struct {
	Min float64
	Max float64
}

// ChatRequest represents an incoming chat message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
