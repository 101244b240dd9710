package domain

import (
	"context"
	"time"
)

// MarketplaceClient fetches product listings from one marketplace's search
// page. Implementations never return an error: all failures degrade to an
// empty slice with a logged diagnostic, so a broken marketplace only moves
// the resolver to its next source.
type MarketplaceClient interface {
	Marketplace() Source
	Search(ctx context.Context, query string, limit int) []Candidate
}

// InstantAnswerClient looks up product topics from a free instant-answer API.
// Same degrade-to-empty contract as MarketplaceClient.
type InstantAnswerClient interface {
	Lookup(ctx context.Context, query string, limit int) []Candidate
}

// TextGenerator produces response text from a prompt via an external provider
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CandidateCache caches resolved candidate lists keyed by normalized query
type CandidateCache interface {
	Get(ctx context.Context, key string) ([]Candidate, error)
	Set(ctx context.Context, key string, candidates []Candidate, ttl time.Duration) error
}
