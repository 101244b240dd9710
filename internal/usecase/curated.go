package usecase

import (
	"net/url"
	"strings"

	"github.com/shopchat/backend/internal/domain"
	"github.com/shopchat/backend/internal/infrastructure/marketplace"
)

// curatedTemplate is one canned product suggestion for a known category
type curatedTemplate struct {
	name        string
	price       string
	rating      string
	description string
}

// curatedCategories fixes the match order for the canned categories. A query
// mentioning several (e.g. "headphones for my phone") always resolves to the
// earliest match.
var curatedCategories = []string{"watch", "headphone", "laptop", "phone"}

// curatedCatalog holds canned suggestions for common shopping categories.
// Matched by substring against the lowercased query, in curatedCategories
// order.
var curatedCatalog = map[string][]curatedTemplate{
	"watch": {
		{
			name:   "Seiko 5 Sports Automatic SRPD Series",
			price:  "₹15,000 - ₹25,000",
			rating: "4.5",
			description: "A highly regarded automatic watch known for its reliability and value. " +
				"It features a robust in-house automatic movement, a day-date display, and a see-through case back. " +
				"Its versatile design makes it suitable for both casual and semi-formal occasions.",
		},
		{
			name:   "Tissot PRX Quartz",
			price:  "₹20,000 - ₹30,000",
			rating: "4.6",
			description: "A stunning Swiss-made watch featuring a timeless 1970s integrated bracelet design. " +
				"It comes with a high-quality quartz movement, a scratch-resistant sapphire crystal, and a " +
				"beautifully finished case that exudes premium quality.",
		},
		{
			name:   "Fossil Gen 6 Smartwatch",
			price:  "₹18,000 - ₹25,000",
			rating: "4.4",
			description: "Feature-rich smartwatch with fitness tracking, notifications, and Google Wear OS. " +
				"Perfect for active lifestyles and tech enthusiasts who want style and functionality.",
		},
	},
	"headphone": {
		{
			name:   "Sony WH-1000XM4 Wireless Headphones",
			price:  "₹25,000 - ₹30,000",
			rating: "4.7",
			description: "Premium noise-cancelling headphones with exceptional sound quality. " +
				"Features 30-hour battery life and industry-leading ANC technology for immersive listening experience.",
		},
		{
			name:   "Bose QuietComfort 45",
			price:  "₹28,000 - ₹35,000",
			rating: "4.6",
			description: "Comfortable over-ear headphones with excellent noise cancellation. " +
				"Known for superior comfort during long listening sessions and crystal-clear audio.",
		},
		{
			name:   "JBL Tune 760NC",
			price:  "₹5,000 - ₹8,000",
			rating: "4.3",
			description: "Affordable wireless headphones with active noise cancellation. " +
				"Great value for money with good sound quality and comfortable fit.",
		},
	},
	"laptop": {
		{
			name:   "HP Pavilion 15",
			price:  "₹45,000 - ₹60,000",
			rating: "4.4",
			description: "Reliable laptop for everyday computing tasks. Features modern processors, " +
				"good display, and solid build quality perfect for students and professionals.",
		},
		{
			name:   "Dell Inspiron 15",
			price:  "₹50,000 - ₹65,000",
			rating: "4.5",
			description: "Versatile laptop suitable for work and entertainment. Known for durability " +
				"and excellent customer support with good performance.",
		},
	},
	"phone": {
		{
			name:   "Samsung Galaxy S23",
			price:  "₹60,000 - ₹80,000",
			rating: "4.6",
			description: "Flagship smartphone with excellent camera system and powerful performance. " +
				"Premium design and display quality with long-lasting battery.",
		},
		{
			name:   "OnePlus 11",
			price:  "₹50,000 - ₹65,000",
			rating: "4.5",
			description: "High-performance smartphone with fast charging and smooth user experience. " +
				"Great for gaming and photography enthusiasts.",
		},
	},
}

// curatedCandidates builds candidates from the canned category lists, or
// synthesizes a generic pair when the query matches no known category.
// Always returns a non-empty list.
func curatedCandidates(query string) []domain.Candidate {
	queryLower := strings.ToLower(query)

	var templates []curatedTemplate
	for _, key := range curatedCategories {
		if strings.Contains(queryLower, key) {
			templates = append([]curatedTemplate(nil), curatedCatalog[key]...)
			break
		}
	}

	if templates == nil {
		templates = genericTemplates(query)
	}

	candidates := make([]domain.Candidate, 0, len(templates))
	for _, t := range templates {
		candidate := domain.Candidate{
			Name:         t.name,
			Price:        t.price,
			Description:  t.description,
			Rating:       t.rating,
			Image:        unsplashImage(firstWord(t.name, query)),
			FlipkartLink: marketplace.FlipkartSearchURL(t.name),
			AmazonLink:   marketplace.AmazonSearchURL(t.name),
			Source:       domain.SourceCurated,
		}
		candidate.Normalize()
		candidates = append(candidates, candidate)
	}
	return candidates
}

// genericTemplates synthesizes a Premium/Standard pair for unknown
// categories, using any extracted price hint as the display price
func genericTemplates(query string) []curatedTemplate {
	price := "Check website"
	if r, ok := ExtractPriceRange(query); ok {
		price = FormatPriceRange(r)
	}

	title := titleCase(query)
	return []curatedTemplate{
		{
			name:   title + " - Premium Option",
			price:  price,
			rating: "4.5",
			description: "High-quality " + query + " option with excellent features and customer satisfaction. " +
				"Available on major e-commerce platforms with secure payment and reliable delivery.",
		},
		{
			name:   title + " - Standard Option",
			price:  price,
			rating: "4.3",
			description: "Well-balanced " + query + " option offering great value. " +
				"Popular choice among customers with positive reviews and good build quality.",
		},
	}
}

// fallbackCandidates is the absolute safety net: three generic suggestions
// with search links. Unreachable as long as curatedCandidates holds its
// non-empty guarantee, but kept so the resolver is total by construction.
func fallbackCandidates(query string) []domain.Candidate {
	title := titleCase(query)

	candidates := make([]domain.Candidate, 0, 3)
	for _, suffix := range []string{"Option 1", "Option 2", "Option 3"} {
		candidate := domain.Candidate{
			Name:  title + " - " + suffix,
			Price: "Check website",
			Description: "Find the best " + query + " options on e-commerce platforms. " +
				"Browse through various models and compare prices.",
			Rating:       "4.0+",
			Image:        unsplashImage(query),
			FlipkartLink: marketplace.FlipkartSearchURL(query),
			AmazonLink:   marketplace.AmazonSearchURL(query),
			Source:       domain.SourceFallback,
		}
		candidate.Normalize()
		candidates = append(candidates, candidate)
	}
	return candidates
}

// unsplashImage builds a keyword-seeded stock image URL
func unsplashImage(keyword string) string {
	return "https://source.unsplash.com/400x400/?" + url.QueryEscape(keyword)
}

// firstWord returns the first word of s, or fallback when s is empty
func firstWord(s, fallback string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return fallback
	}
	return fields[0]
}

// titleCase uppercases the first letter of each word
func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}
