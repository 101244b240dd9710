package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/shopchat/backend/config"
	httpDelivery "github.com/shopchat/backend/internal/delivery/http"
	"github.com/shopchat/backend/internal/domain"
	"github.com/shopchat/backend/internal/infrastructure/cache"
	"github.com/shopchat/backend/internal/infrastructure/genai"
	"github.com/shopchat/backend/internal/infrastructure/instantanswer"
	"github.com/shopchat/backend/internal/infrastructure/marketplace"
	"github.com/shopchat/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopChat Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	flipkart := marketplace.NewFlipkartClient(cfg.Search.FlipkartBaseURL, cfg.Search.FetchTimeout)
	amazon := marketplace.NewAmazonClient(cfg.Search.AmazonBaseURL, cfg.Search.FetchTimeout)
	instant := instantanswer.NewClient(cfg.Search.InstantAnswerURL, cfg.Search.FetchTimeout)

	generator, err := genai.NewClient(context.Background(), cfg.GenAI)
	if err != nil {
		log.Fatalf("Failed to initialize text-generation provider: %v", err)
	}
	if generator != nil {
		log.Printf("Text generation: provider=%s model=%s", cfg.GenAI.Provider, cfg.GenAI.Model)
	} else {
		log.Printf("Text generation: not configured, template responses only")
	}

	// Initialize usecase layer
	resolver := usecase.NewResolver(
		[]domain.MarketplaceClient{flipkart, amazon},
		instant,
		memoryCache,
		usecase.ResolverConfig{
			AdapterLimit: cfg.Search.AdapterLimit,
			CombinedCap:  cfg.Search.CombinedCap,
			CacheTTL:     cfg.Cache.TTL,
		},
	)

	composer := usecase.NewComposer(generator, cfg.GenAI.Timeout)
	catalogSearch := usecase.NewCatalogSearch(usecase.DefaultCatalog(), cfg.Search.INRPerUSD)

	log.Printf("Search: adapter_limit=%d combined_cap=%d inr_per_usd=%.0f",
		cfg.Search.AdapterLimit, cfg.Search.CombinedCap, cfg.Search.INRPerUSD)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(resolver, composer, catalogSearch)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
