package http

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/shopchat/backend/internal/domain"
	"github.com/shopchat/backend/internal/usecase"
)

// responseCandidateCap bounds the candidate list on the chat wire response
const responseCandidateCap = 5

// User-facing messages for classified failures. The chat endpoint never
// surfaces a failure as a non-200 response.
const (
	quotaUserMessage = "⚠️ API Quota Exceeded: You have reached the free tier limit. " +
		"Please wait a few minutes and try again, or use a different API key with higher limits."
	apiKeyUserMessage  = "⚠️ API Key Error: Please check the configured API key for the text-generation provider."
	genericUserMessage = "Sorry, I could not process your request. Error: "
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	resolver *usecase.Resolver
	composer *usecase.Composer
	catalog  *usecase.CatalogSearch
}

// NewHandler creates a new HTTP handler
func NewHandler(resolver *usecase.Resolver, composer *usecase.Composer, catalog *usecase.CatalogSearch) *Handler {
	return &Handler{
		resolver: resolver,
		composer: composer,
		catalog:  catalog,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shopchat-backend",
		"version": "1.0.0",
	})
}

// SearchProducts handles GET /api/products?q=<query>.
// An empty query returns an empty list without any outbound calls.
func (h *Handler) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"products": []domain.Candidate{}})
		return
	}

	products := h.resolver.Resolve(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// SearchCatalog handles GET /api/catalog?q=<query> against the legacy static
// catalog. This surface is independent of the marketplace resolver and the
// two are deliberately never merged.
func (h *Handler) SearchCatalog(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"products": []domain.CatalogEntry{}})
		return
	}

	entries := h.catalog.Search(query)
	if entries == nil {
		entries = []domain.CatalogEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"products": entries})
}

// Chat handles POST /api/chat. Failures are classified and returned as
// structured still-200 envelopes; the endpoint is always available and its
// worst case is the deterministic template reply.
func (h *Handler) Chat(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[CHAT] Recovered from panic: %v", r)
			c.JSON(http.StatusOK, gin.H{
				"response": genericUserMessage + "internal error",
				"error":    "generic_error",
				"products": []domain.Candidate{},
			})
		}
	}()

	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"response": genericUserMessage + truncateMessage(err.Error(), 100),
			"error":    "generic_error",
			"products": []domain.Candidate{},
		})
		return
	}

	message := strings.TrimSpace(req.Message)
	log.Printf("[CHAT] User query: %q", message)

	// Off-topic messages short-circuit the whole pipeline: fixed redirect,
	// no candidates, no outbound calls
	if h.composer.IsOffTopic(message) {
		text, _, _ := h.composer.Compose(c.Request.Context(), message, nil)
		c.JSON(http.StatusOK, gin.H{
			"response": text,
			"products": []domain.Candidate{},
		})
		return
	}

	found := h.resolver.Resolve(c.Request.Context(), message)
	log.Printf("[CHAT] Resolved %d candidates", len(found))

	responseText, products, err := h.composer.Compose(c.Request.Context(), message, found)
	if err != nil {
		code, userMessage := classifyError(err)
		log.Printf("[CHAT] Composition error (%s): %v", code, err)
		c.JSON(http.StatusOK, gin.H{
			"response": userMessage,
			"error":    code,
			"products": []domain.Candidate{},
		})
		return
	}

	if len(products) > responseCandidateCap {
		products = products[:responseCandidateCap]
	}
	if products == nil {
		products = []domain.Candidate{}
	}

	c.JSON(http.StatusOK, gin.H{
		"response": responseText,
		"products": products,
	})
}

// classifyError maps an escaped failure onto the wire error taxonomy
func classifyError(err error) (code, userMessage string) {
	switch {
	case errors.Is(err, domain.ErrQuotaExceeded):
		return "quota_exceeded", quotaUserMessage
	case errors.Is(err, domain.ErrAuthFailure):
		return "api_key_error", apiKeyUserMessage
	default:
		return "generic_error", genericUserMessage + truncateMessage(err.Error(), 100)
	}
}

// truncateMessage cuts s to max characters on a rune boundary so the JSON
// encoder never sees a split UTF-8 sequence.
func truncateMessage(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
