package instantanswer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopchat/backend/internal/domain"
	"github.com/shopchat/backend/internal/infrastructure/marketplace"
	"golang.org/x/time/rate"
)

// response is the subset of the DuckDuckGo Instant Answer payload we consume
type response struct {
	RelatedTopics []topic `json:"RelatedTopics"`
}

type topic struct {
	Text string `json:"Text"`
	Icon icon   `json:"Icon"`
}

type icon struct {
	URL string `json:"URL"`
}

// Client queries the DuckDuckGo Instant Answer API as a low-fidelity product
// discovery fallback. Free, no API key required.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates an instant-answer client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		rateLimiter: rate.NewLimiter(rate.Limit(1), 3),
	}
}

// Lookup maps the API's related topics into candidates, up to limit.
// Never returns an error: failures degrade to an empty slice with a logged
// diagnostic so the resolver can move on to its next source.
func (c *Client) Lookup(ctx context.Context, query string, limit int) []domain.Candidate {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		log.Printf("[INSTANT] Rate limiter error: %v", err)
		return nil
	}

	// "buy online" steers the instant answers toward shopping topics
	params := url.Values{}
	params.Add("q", query+" buy online")
	params.Add("format", "json")
	params.Add("no_html", "1")
	reqURL := fmt.Sprintf("%s/?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		log.Printf("[INSTANT] Failed to create request: %v", err)
		return nil
	}
	req.Header.Set("User-Agent", "shopchat/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[INSTANT] Request error for query %q: %v", query, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[INSTANT] API error for query %q - status: %d", query, resp.StatusCode)
		return nil
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("[INSTANT] JSON decode error: %v", err)
		return nil
	}

	var candidates []domain.Candidate
	for _, t := range payload.RelatedTopics {
		if t.Text == "" {
			continue
		}

		candidates = append(candidates, topicToCandidate(t, query))
		if len(candidates) >= limit {
			break
		}
	}

	log.Printf("[INSTANT] Mapped %d topics for query %q", len(candidates), query)
	return candidates
}

// topicToCandidate normalizes one related topic into a candidate record
func topicToCandidate(t topic, query string) domain.Candidate {
	// Topic text reads like "Product Name - some description"
	name := query
	if idx := strings.Index(t.Text, " - "); idx > 0 {
		name = t.Text[:idx]
	}
	name = truncate(name, 100)

	image := t.Icon.URL
	if image == "" {
		image = placeholderImage(name)
	}

	candidate := domain.Candidate{
		Name:         name,
		Price:        "Check website",
		Description:  truncate(t.Text, 200),
		Image:        image,
		FlipkartLink: marketplace.FlipkartSearchURL(name),
		AmazonLink:   marketplace.AmazonSearchURL(name),
		Rating:       "4.0+",
		Source:       domain.SourceInstantAnswer,
	}
	candidate.Normalize()
	return candidate
}

// truncate cuts s to max characters. Topic text is frequently non-ASCII, so
// the cut lands on a rune boundary, never inside a UTF-8 sequence.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// placeholderImage builds a generic placeholder when a topic has no icon
func placeholderImage(name string) string {
	return "https://via.placeholder.com/300x300/667eea/ffffff?text=" + url.QueryEscape(truncate(name, 20))
}
