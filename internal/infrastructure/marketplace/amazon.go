package marketplace

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopchat/backend/internal/domain"
)

// Amazon listing selectors, tried in order
var (
	amazonContainerSelectors = []string{
		"div.s-result-item[data-component-type='s-search-result']",
		"div[data-asin].s-result-item",
		"div.s-main-slot > div[data-asin]",
	}
	amazonNameSelectors   = []string{"h2 a span", "span.a-size-medium.a-text-normal", "span.a-size-base-plus.a-text-normal"}
	amazonPriceSelectors  = []string{"span.a-price > span.a-offscreen", "span.a-price-whole"}
	amazonRatingSelectors = []string{"span.a-icon-alt", "i.a-icon-star-small span"}
	amazonImageSelectors  = []string{"img.s-image"}
	amazonDescSelectors   = []string{"div.a-row.a-size-base.a-color-secondary", "div.a-section.a-spacing-small span.a-text-normal"}
)

// AmazonClient fetches product listings from Amazon search pages
type AmazonClient struct {
	fetcher *fetcher
	baseURL string
}

// NewAmazonClient creates an Amazon search adapter
func NewAmazonClient(baseURL string, timeout time.Duration) *AmazonClient {
	return &AmazonClient{
		fetcher: newFetcher(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Marketplace identifies this adapter's source
func (c *AmazonClient) Marketplace() domain.Source {
	return domain.SourceAmazon
}

// Search fetches the Amazon search page for the query and extracts up to
// limit listings. Same degrade-to-empty contract as the Flipkart adapter.
func (c *AmazonClient) Search(ctx context.Context, query string, limit int) (candidates []domain.Candidate) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[AMAZON] Parse panic for query %q: %v (returning %d collected)", query, r, len(candidates))
		}
	}()

	reqURL := c.baseURL + "/s?k=" + url.QueryEscape(query)
	doc, err := c.fetcher.fetchDocument(ctx, reqURL)
	if err != nil {
		log.Printf("[AMAZON] Fetch error for query %q: %v", query, err)
		return nil
	}

	listings := firstNonEmptySelection(doc, amazonContainerSelectors)
	if listings == nil {
		log.Printf("[AMAZON] No listing containers matched for query %q", query)
		return nil
	}

	seen := make(map[string]bool)
	listings.EachWithBreak(func(_ int, listing *goquery.Selection) bool {
		name := firstText(listing, amazonNameSelectors)
		if name == "" || seen[name] {
			return true
		}
		seen[name] = true

		candidate := domain.Candidate{
			Name:        name,
			Price:       NormalizePrice(firstText(listing, amazonPriceSelectors)),
			Rating:      amazonRating(listing),
			Description: bulletDescription(listing, amazonDescSelectors),
			Image:       normalizeImageURL(firstAttr(listing, amazonImageSelectors, "src")),
			AmazonLink:  resolveLink(c.baseURL, listing.Find("h2 a, a.a-link-normal").First().AttrOr("href", "")),
			Source:      domain.SourceAmazon,
		}
		candidate.Normalize()
		candidates = append(candidates, candidate)

		return len(candidates) < limit
	})

	log.Printf("[AMAZON] Extracted %d listings for query %q", len(candidates), query)
	return candidates
}

// amazonRating extracts the leading numeric part of "4.3 out of 5 stars"
func amazonRating(listing *goquery.Selection) string {
	text := firstText(listing, amazonRatingSelectors)
	if text == "" {
		return ""
	}
	if idx := strings.Index(text, " out of"); idx > 0 {
		return text[:idx]
	}
	return text
}
