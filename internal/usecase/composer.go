package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopchat/backend/internal/domain"
)

// systemPrompt fixes the assistant's persona and scope to shopping assistance
const systemPrompt = `You are a professional e-commerce customer service assistant. Your role is to:

1. Help customers find products they're looking for on e-commerce platforms (Flipkart, Amazon, etc.)
2. Provide detailed product information (features, specifications, pricing)
3. Answer questions about products, shipping, returns, and policies
4. Assist with product recommendations based on customer needs
5. Handle customer inquiries professionally

IMPORTANT:
- Focus ONLY on e-commerce products and shopping assistance
- When products are found, provide helpful information about them
- Always be friendly, helpful, and professional
- If asked about non-e-commerce topics, politely redirect to product-related questions`

// offTopicRedirect is the fixed reply for non-shopping questions
const offTopicRedirect = "I'm here to help you find products on e-commerce platforms like Flipkart and Amazon. How can I assist you with finding products today?"

// offTopicKeywords trigger the redirect via case-insensitive substring match
var offTopicKeywords = []string{
	"weather", "news", "sports", "politics", "general knowledge", "history", "science",
}

// promptCandidateCap bounds how many candidates are embedded in the prompt
const promptCandidateCap = 5

// templateCandidateCap bounds how many candidates the template reply lists
const templateCandidateCap = 3

// Composer turns a candidate list and the user's message into reply text.
// With a generator configured it delegates to the external provider and
// falls back to the deterministic template on any failure; without one it
// is template-only.
type Composer struct {
	generator  domain.TextGenerator
	genTimeout time.Duration
}

// NewComposer creates a composer. A nil generator means template-only mode.
func NewComposer(generator domain.TextGenerator, genTimeout time.Duration) *Composer {
	if genTimeout <= 0 {
		genTimeout = 30 * time.Second
	}

	return &Composer{
		generator:  generator,
		genTimeout: genTimeout,
	}
}

// IsOffTopic reports whether the message asks about something outside
// shopping assistance
func (c *Composer) IsOffTopic(message string) bool {
	messageLower := strings.ToLower(message)
	for _, keyword := range offTopicKeywords {
		if strings.Contains(messageLower, keyword) {
			return true
		}
	}
	return false
}

// Compose produces the reply text for a message and its resolved candidates.
//
// Off-topic messages short-circuit to the fixed redirect with no candidates
// and no generation call. Otherwise the external generator is tried first
// when configured; the returned text is never an error message — on any
// generation failure the deterministic template text is returned instead.
// The error return is advisory: it carries the classified provider failure
// (quota, auth) for the delivery layer while text stays user-facing.
func (c *Composer) Compose(ctx context.Context, message string, candidates []domain.Candidate) (string, []domain.Candidate, error) {
	if c.IsOffTopic(message) {
		return offTopicRedirect, nil, nil
	}

	if c.generator != nil {
		genCtx, cancel := context.WithTimeout(ctx, c.genTimeout)
		defer cancel()

		text, err := c.generator.Generate(genCtx, c.buildPrompt(message, candidates))
		if err == nil && strings.TrimSpace(text) != "" {
			return text, candidates, nil
		}

		log.Printf("[COMPOSE] Generation failed, using template response: %v", err)
		if errors.Is(err, domain.ErrQuotaExceeded) || errors.Is(err, domain.ErrAuthFailure) {
			return c.TemplateResponse(message, candidates), candidates, err
		}
	}

	return c.TemplateResponse(message, candidates), candidates, nil
}

// buildPrompt embeds the persona, the formatted candidate block, and the
// user's question into a single generation prompt
func (c *Composer) buildPrompt(message string, candidates []domain.Candidate) string {
	var b strings.Builder
	b.WriteString(systemPrompt)

	if len(candidates) > 0 {
		b.WriteString("\n\nFound Products:\n")
		for i, candidate := range candidates {
			if i >= promptCandidateCap {
				break
			}
			fmt.Fprintf(&b, "%d. %s - %s\n", i+1, candidate.Name, candidate.Price)
			fmt.Fprintf(&b, "   Description: %s\n", candidate.Description)
			fmt.Fprintf(&b, "   Rating: %s\n\n", candidate.Rating)
		}
	}

	fmt.Fprintf(&b, "\nUser Question: %s\n", message)
	b.WriteString(`
Please provide a helpful response about the products. Include:
1. Product recommendations based on the query
2. Key features and benefits
3. Mention that users can click the product links to view on Flipkart or Amazon
4. Be friendly and helpful

Assistant Response:`)

	return b.String()
}

// TemplateResponse is the deterministic composition strategy: identical
// inputs always produce identical output, byte for byte
func (c *Composer) TemplateResponse(message string, candidates []domain.Candidate) string {
	var b strings.Builder

	if len(candidates) == 0 {
		fmt.Fprintf(&b, "I'd be happy to help you find the best '%s' options!\n\n", message)
		b.WriteString("Please try searching with more specific terms, or browse our product categories. ")
		b.WriteString("You can click on the product links to explore options on Flipkart and Amazon.\n\n")
		b.WriteString("How else can I assist you today? 😊")
		return b.String()
	}

	fmt.Fprintf(&b, "Great! I found some excellent options for '%s':\n\n", message)
	for i, candidate := range candidates {
		if i >= templateCandidateCap {
			break
		}
		fmt.Fprintf(&b, "**%s**\n", candidate.Name)
		fmt.Fprintf(&b, "Price: %s\n", candidate.Price)
		fmt.Fprintf(&b, "Rating: %s ⭐\n", candidate.Rating)
		fmt.Fprintf(&b, "%s\n\n", candidate.Description)
	}
	b.WriteString("💡 **Tip:** Click the 'Buy on Flipkart' or 'Buy on Amazon' buttons below each product to view more details, compare prices, and make a purchase!\n\n")
	b.WriteString("All products come with secure payment options and reliable delivery. Happy shopping! 🛍️")

	return b.String()
}
