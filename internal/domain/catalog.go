package domain

// CatalogEntry is a static record in the legacy in-memory catalog.
// The catalog is loaded once at startup and never mutated. It is a separate
// search surface from the marketplace resolver and the two are never merged.
type CatalogEntry struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	InStock     bool    `json:"inStock"`
}
