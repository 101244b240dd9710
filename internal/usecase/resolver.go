package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/shopchat/backend/internal/domain"
	"github.com/shopchat/backend/internal/infrastructure/marketplace"
)

// Package-level compiled regex patterns for cache-key normalization
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// instantAnswerCap bounds how many instant-answer topics become candidates
const instantAnswerCap = 5

// ResolverConfig holds configuration for the resolver
type ResolverConfig struct {
	AdapterLimit int
	CombinedCap  int
	CacheTTL     time.Duration
}

// Resolver runs the ordered fallback chain over the product sources.
// Resolve is total: it always returns a non-empty candidate list and
// never returns an error.
type Resolver struct {
	marketplaces []domain.MarketplaceClient
	instant      domain.InstantAnswerClient
	cache        domain.CandidateCache
	adapterLimit int
	combinedCap  int
	cacheTTL     time.Duration
}

// NewResolver creates a resolver. Marketplaces are consulted in the order
// given (Flipkart first in production wiring). A nil cache disables caching.
func NewResolver(
	marketplaces []domain.MarketplaceClient,
	instant domain.InstantAnswerClient,
	cache domain.CandidateCache,
	config ResolverConfig,
) *Resolver {
	adapterLimit := config.AdapterLimit
	if adapterLimit <= 0 {
		adapterLimit = 4
	}

	combinedCap := config.CombinedCap
	if combinedCap < adapterLimit {
		combinedCap = 2 * adapterLimit
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	return &Resolver{
		marketplaces: marketplaces,
		instant:      instant,
		cache:        cache,
		adapterLimit: adapterLimit,
		combinedCap:  combinedCap,
		cacheTTL:     cacheTTL,
	}
}

// Resolve returns candidates for the query from the first source tier that
// produces any. Only live-source results (marketplace, instant answer) are
// cached; the synthesized tiers are cheap and never cached so a degraded
// answer does not stick around.
func (r *Resolver) Resolve(ctx context.Context, query string) []domain.Candidate {
	cacheKey := "resolve:" + normalizeForCacheKey(query)

	if r.cache != nil {
		if cached, err := r.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			log.Printf("[RESOLVE] Cache hit for query %q (%d candidates)", query, len(cached))
			return cached
		} else if err != nil && !errors.Is(err, domain.ErrCacheMiss) {
			log.Printf("[RESOLVE] Cache error: %v", err)
		}
	}

	// Tier 1: live marketplace listings
	if candidates := r.fromMarketplaces(ctx, query); len(candidates) > 0 {
		r.store(ctx, cacheKey, candidates)
		return candidates
	}

	// Tier 2: instant-answer topics
	if r.instant != nil {
		if candidates := r.instant.Lookup(ctx, query, instantAnswerCap); len(candidates) > 0 {
			log.Printf("[RESOLVE] Instant answer produced %d candidates for %q", len(candidates), query)
			r.store(ctx, cacheKey, candidates)
			return candidates
		}
	}

	// Tier 3: curated templates, always non-empty
	if candidates := curatedCandidates(query); len(candidates) > 0 {
		log.Printf("[RESOLVE] Curated templates produced %d candidates for %q", len(candidates), query)
		return candidates
	}

	// Tier 4: absolute safety net
	log.Printf("[RESOLVE] Falling back to generic candidates for %q", query)
	return fallbackCandidates(query)
}

// fromMarketplaces fetches each marketplace sequentially, concatenates,
// deduplicates by (name, source), and synthesizes any missing
// cross-marketplace search links
func (r *Resolver) fromMarketplaces(ctx context.Context, query string) []domain.Candidate {
	var combined []domain.Candidate
	seen := make(map[string]bool)

	for _, client := range r.marketplaces {
		for _, candidate := range client.Search(ctx, query, r.adapterLimit) {
			if seen[candidate.Key()] {
				continue
			}
			seen[candidate.Key()] = true

			if candidate.FlipkartLink == "" {
				candidate.FlipkartLink = marketplace.FlipkartSearchURL(candidate.Name)
			}
			if candidate.AmazonLink == "" {
				candidate.AmazonLink = marketplace.AmazonSearchURL(candidate.Name)
			}

			combined = append(combined, candidate)
			if len(combined) >= r.combinedCap {
				log.Printf("[RESOLVE] Marketplaces produced %d candidates for %q (capped)", len(combined), query)
				return combined
			}
		}
	}

	if len(combined) > 0 {
		log.Printf("[RESOLVE] Marketplaces produced %d candidates for %q", len(combined), query)
	}
	return combined
}

func (r *Resolver) store(ctx context.Context, key string, candidates []domain.Candidate) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, key, candidates, r.cacheTTL); err != nil {
		log.Printf("[RESOLVE] Failed to cache candidates: %v", err)
	}
}

// normalizeForCacheKey normalizes a query for use as a cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
