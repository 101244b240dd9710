package usecase

import "github.com/shopchat/backend/internal/domain"

// defaultCatalog is the legacy static product table. Loaded once, never
// mutated, and kept as a search surface separate from the marketplace
// resolver for backward compatibility. Prices are in USD.
var defaultCatalog = []domain.CatalogEntry{
	{
		ID:          1,
		Name:        "Wireless Bluetooth Headphones",
		Price:       79.99,
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
		Category:    "Electronics",
		Description: "Premium noise-cancelling wireless headphones with 30-hour battery life",
		Rating:      4.5,
		InStock:     true,
	},
	{
		ID:          2,
		Name:        "Smart Watch Pro",
		Price:       249.99,
		Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
		Category:    "Electronics",
		Description: "Advanced fitness tracking smartwatch with heart rate monitor and GPS",
		Rating:      4.7,
		InStock:     true,
	},
	{
		ID:          3,
		Name:        "Laptop Backpack",
		Price:       49.99,
		Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
		Category:    "Accessories",
		Description: "Durable laptop backpack with USB charging port and water-resistant material",
		Rating:      4.3,
		InStock:     true,
	},
	{
		ID:          4,
		Name:        "Wireless Mouse",
		Price:       29.99,
		Image:       "https://images.unsplash.com/photo-1527814050087-3793815479db?w=400",
		Category:    "Electronics",
		Description: "Ergonomic wireless mouse with precision tracking and long battery life",
		Rating:      4.4,
		InStock:     true,
	},
	{
		ID:          5,
		Name:        "Mechanical Keyboard",
		Price:       129.99,
		Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400",
		Category:    "Electronics",
		Description: "RGB backlit mechanical keyboard with Cherry MX switches",
		Rating:      4.6,
		InStock:     true,
	},
	{
		ID:          6,
		Name:        "USB-C Hub",
		Price:       39.99,
		Image:       "https://images.unsplash.com/photo-1625842268584-8f7623b58d85?w=400",
		Category:    "Accessories",
		Description: "7-in-1 USB-C hub with HDMI, USB 3.0, and SD card reader",
		Rating:      4.2,
		InStock:     true,
	},
	{
		ID:          7,
		Name:        "Phone Stand",
		Price:       19.99,
		Image:       "https://images.unsplash.com/photo-1601784551446-20c9e07cdbdb?w=400",
		Category:    "Accessories",
		Description: "Adjustable aluminum phone stand for desk and car use",
		Rating:      4.1,
		InStock:     true,
	},
	{
		ID:          8,
		Name:        "Wireless Charger",
		Price:       24.99,
		Image:       "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=400",
		Category:    "Electronics",
		Description: "Fast wireless charging pad compatible with all Qi-enabled devices",
		Rating:      4.5,
		InStock:     true,
	},
	{
		ID:          9,
		Name:        "Fitness Watch Elite",
		Price:       199.99,
		Image:       "https://images.unsplash.com/photo-1579586337278-3befd40f17ca?w=400",
		Category:    "Electronics",
		Description: "Premium fitness smartwatch with advanced health monitoring and 10-day battery",
		Rating:      4.6,
		InStock:     true,
	},
	{
		ID:          10,
		Name:        "Sport Watch Active",
		Price:       179.99,
		Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
		Category:    "Electronics",
		Description: "Rugged sports watch with GPS, heart rate monitor, and 14-day battery life",
		Rating:      4.4,
		InStock:     true,
	},
	{
		ID:          11,
		Name:        "Classic Smart Watch",
		Price:       229.99,
		Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
		Category:    "Electronics",
		Description: "Elegant smartwatch with premium design, AMOLED display, and comprehensive health tracking",
		Rating:      4.8,
		InStock:     true,
	},
}

// DefaultCatalog returns the static legacy catalog
func DefaultCatalog() []domain.CatalogEntry {
	return defaultCatalog
}
