package usecase

import (
	"sort"
	"strings"

	"github.com/shopchat/backend/internal/domain"
)

// Scoring weights for the legacy catalog search
const (
	substringScore = 10 // lowercased query appears verbatim in entry text
	synonymScore   = 8  // a synonym group links the query to the entry
	tokenScore     = 2  // per query token (>2 chars) found in entry text

	// priceToleranceRatio widens an extracted price band by 10% on each side
	priceToleranceRatio = 0.10
)

// synonymGroups maps a canonical catalog term to the variants a shopper
// might type. If any variant appears in the query and the canonical key
// appears in the entry text, the group contributes synonymScore.
var synonymGroups = map[string][]string{
	"watch":     {"watch", "smartwatch", "smart watch", "timepiece", "wristwatch"},
	"headphone": {"headphone", "headphones", "earphone", "earphones", "audio"},
	"mouse":     {"mouse", "computer mouse", "wireless mouse"},
	"keyboard":  {"keyboard", "mechanical keyboard"},
	"backpack":  {"backpack", "bag", "laptop bag", "rucksack"},
	"charger":   {"charger", "wireless charger", "charging"},
	"hub":       {"hub", "usb hub", "adapter"},
}

// CatalogSearch is the legacy heuristic search over the static catalog.
// It is a separate surface from the marketplace resolver; the two are
// deliberately never merged.
type CatalogSearch struct {
	entries   []domain.CatalogEntry
	inrPerUSD float64
}

// NewCatalogSearch creates a catalog search over the given entries.
// inrPerUSD converts INR-magnitude price hints to the catalog's USD prices.
func NewCatalogSearch(entries []domain.CatalogEntry, inrPerUSD float64) *CatalogSearch {
	if inrPerUSD <= 0 {
		inrPerUSD = 83.0
	}

	return &CatalogSearch{
		entries:   entries,
		inrPerUSD: inrPerUSD,
	}
}

// Search scores every catalog entry against the query and returns matches
// ordered by descending score. Ties keep original catalog order. The score
// itself is internal and never exposed.
func (s *CatalogSearch) Search(query string) []domain.CatalogEntry {
	queryLower := strings.ToLower(query)

	priceMin, priceMax, priceFilter := s.priceBand(query)

	type scored struct {
		entry domain.CatalogEntry
		score int
	}

	var results []scored
	for _, entry := range s.entries {
		entryText := strings.ToLower(entry.Name + " " + entry.Category + " " + entry.Description)

		score := scoreEntry(entryText, queryLower)
		if score == 0 {
			continue
		}

		// Price filtering excludes out-of-band entries regardless of
		// how well the text matched
		if priceFilter && (entry.Price < priceMin || entry.Price > priceMax) {
			continue
		}

		results = append(results, scored{entry: entry, score: score})
	}

	// Stable sort keeps catalog order for equal scores
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	entries := make([]domain.CatalogEntry, len(results))
	for i, r := range results {
		entries[i] = r.entry
	}
	return entries
}

// scoreEntry computes the additive relevance score for one entry
func scoreEntry(entryText, queryLower string) int {
	score := 0

	// Exact substring match
	if strings.Contains(entryText, queryLower) {
		score += substringScore
	}

	// Synonym matching: each group can contribute once
	for key, variants := range synonymGroups {
		for _, variant := range variants {
			if strings.Contains(queryLower, variant) && strings.Contains(entryText, key) {
				score += synonymScore
				break
			}
		}
	}

	// Token overlap
	for _, word := range strings.Fields(queryLower) {
		if len(word) > 2 && strings.Contains(entryText, word) {
			score += tokenScore
		}
	}

	return score
}

// priceBand derives the tolerance-widened price filter band from the query.
// Hints written in the "k" shorthand are INR magnitudes and are converted to
// the catalog's USD prices via the configured constant. That cross-currency
// coupling is a documented deployment assumption, not general currency logic.
func (s *CatalogSearch) priceBand(query string) (min, max float64, ok bool) {
	r, found := ExtractPriceRange(query)
	if !found {
		return 0, 0, false
	}

	if hasThousandMarker(query) {
		r.Min /= s.inrPerUSD
		r.Max /= s.inrPerUSD
	}

	tolerance := (r.Max - r.Min) * priceToleranceRatio
	return r.Min - tolerance, r.Max + tolerance, true
}
