package marketplace

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopchat/backend/internal/domain"
	"golang.org/x/time/rate"
)

// browserUserAgent is sent on every marketplace fetch. Search pages serve
// stripped-down markup (or block outright) for non-browser agents.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// fetcher is the shared HTTP machinery for the marketplace adapters
type fetcher struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

func newFetcher(timeout time.Duration) *fetcher {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	// Keep scraping polite: at most one fetch per second per marketplace,
	// with a small burst for back-to-back requests
	limiter := rate.NewLimiter(rate.Limit(1), 3)

	return &fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimiter: limiter,
	}
}

// fetchDocument issues a single GET and parses the body as HTML.
// No retries: a single failure moves the resolver to its next source.
func (f *fetcher) fetchDocument(ctx context.Context, reqURL string) (*goquery.Document, error) {
	if err := f.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMarketplaceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrMarketplaceUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search page: %w", err)
	}

	return doc, nil
}

// firstNonEmptySelection tries each selector in order and returns the first
// non-empty match set. Marketplace markup changes frequently, so each adapter
// carries a chain of known-good selectors instead of a single one.
func firstNonEmptySelection(doc *goquery.Document, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if s := doc.Find(sel); s.Length() > 0 {
			return s
		}
	}
	return nil
}

// normalizeImageURL fixes protocol-relative image URLs
func normalizeImageURL(src string) string {
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}

// resolveLink resolves a listing href against the marketplace base URL
func resolveLink(baseURL, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(href, "/")
}

// FlipkartSearchURL builds a Flipkart search link for a product name
func FlipkartSearchURL(name string) string {
	return "https://www.flipkart.com/search?q=" + url.QueryEscape(name)
}

// AmazonSearchURL builds an Amazon search link for a product name
func AmazonSearchURL(name string) string {
	return "https://www.amazon.in/s?k=" + url.QueryEscape(name)
}
