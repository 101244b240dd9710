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

// Flipkart listing selectors, tried in order. Flipkart rotates its obfuscated
// class names every few releases; when listings stop parsing, add the new
// class here rather than replacing the old one.
var (
	flipkartContainerSelectors = []string{
		"div[data-id]",
		"div._1AtVbE div._13oc-S",
		"div._2kHMtA",
		"div._75nlfW",
	}
	flipkartNameSelectors   = []string{"div._4rR01T", "a.s1Q9rs", "a.IRpwTa", "div.KzDlHZ", "a.wjcEIp"}
	flipkartPriceSelectors  = []string{"div._30jeq3", "div.Nx9bqj"}
	flipkartRatingSelectors = []string{"div._3LWZlK", "div.XQDdHH"}
	flipkartImageSelectors  = []string{"img._396cs4", "img._2r_T1I", "img.DByuf4"}
	flipkartDescSelectors   = []string{"ul._1xgFaf li", "ul.G4BRas li"}
)

// FlipkartClient fetches product listings from Flipkart search pages
type FlipkartClient struct {
	fetcher *fetcher
	baseURL string
}

// NewFlipkartClient creates a Flipkart search adapter
func NewFlipkartClient(baseURL string, timeout time.Duration) *FlipkartClient {
	return &FlipkartClient{
		fetcher: newFetcher(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Marketplace identifies this adapter's source
func (c *FlipkartClient) Marketplace() domain.Source {
	return domain.SourceFlipkart
}

// Search fetches the Flipkart search page for the query and extracts up to
// limit listings. Never returns an error: any failure degrades to whatever
// was collected so far, usually empty, with a logged diagnostic.
func (c *FlipkartClient) Search(ctx context.Context, query string, limit int) (candidates []domain.Candidate) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[FLIPKART] Parse panic for query %q: %v (returning %d collected)", query, r, len(candidates))
		}
	}()

	reqURL := c.baseURL + "/search?q=" + url.QueryEscape(query)
	doc, err := c.fetcher.fetchDocument(ctx, reqURL)
	if err != nil {
		log.Printf("[FLIPKART] Fetch error for query %q: %v", query, err)
		return nil
	}

	listings := firstNonEmptySelection(doc, flipkartContainerSelectors)
	if listings == nil {
		log.Printf("[FLIPKART] No listing containers matched for query %q", query)
		return nil
	}

	seen := make(map[string]bool)
	listings.EachWithBreak(func(_ int, listing *goquery.Selection) bool {
		name := firstText(listing, flipkartNameSelectors)
		if name == "" || seen[name] {
			return true
		}
		seen[name] = true

		candidate := domain.Candidate{
			Name:         name,
			Price:        NormalizePrice(firstText(listing, flipkartPriceSelectors)),
			Rating:       firstText(listing, flipkartRatingSelectors),
			Description:  bulletDescription(listing, flipkartDescSelectors),
			Image:        normalizeImageURL(firstAttr(listing, flipkartImageSelectors, "src")),
			FlipkartLink: resolveLink(c.baseURL, listing.Find("a").First().AttrOr("href", "")),
			Source:       domain.SourceFlipkart,
		}
		candidate.Normalize()
		candidates = append(candidates, candidate)

		return len(candidates) < limit
	})

	log.Printf("[FLIPKART] Extracted %d listings for query %q", len(candidates), query)
	return candidates
}

// firstText returns the trimmed text of the first selector that matches
func firstText(s *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if found := s.Find(sel).First(); found.Length() > 0 {
			if text := strings.TrimSpace(found.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

// firstAttr returns the named attribute of the first selector that matches
func firstAttr(s *goquery.Selection, selectors []string, attr string) string {
	for _, sel := range selectors {
		if found := s.Find(sel).First(); found.Length() > 0 {
			if val := strings.TrimSpace(found.AttrOr(attr, "")); val != "" {
				return val
			}
		}
	}
	return ""
}

// bulletDescription joins the first few bullet points of a listing
func bulletDescription(s *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		var bullets []string
		s.Find(sel).EachWithBreak(func(_ int, li *goquery.Selection) bool {
			if text := strings.TrimSpace(li.Text()); text != "" {
				bullets = append(bullets, text)
			}
			return len(bullets) < 3
		})
		if len(bullets) > 0 {
			return strings.Join(bullets, ", ")
		}
	}
	return ""
}
