package domain

import "errors"

var (
	// ErrMarketplaceUnavailable is returned when a marketplace fetch fails
	ErrMarketplaceUnavailable = errors.New("marketplace request failed")

	// ErrQuotaExceeded is returned when the generation provider reports a quota limit
	ErrQuotaExceeded = errors.New("generation quota exceeded")

	// ErrAuthFailure is returned when the generation provider rejects the API key
	ErrAuthFailure = errors.New("generation auth failure")

	// ErrGenerationFailed is returned when the provider returns no usable text
	ErrGenerationFailed = errors.New("text generation failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
