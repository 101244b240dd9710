package marketplace

import (
	"regexp"
	"strings"
)

// priceCharsRegex keeps digits, separators, and currency glyphs
var priceCharsRegex = regexp.MustCompile(`[^0-9.,₹$]`)

var digitRegex = regexp.MustCompile(`[0-9]`)

// NormalizePrice cleans raw marketplace price text into a display string.
// Prices are informational text, not used for ranking; the only guarantees
// are that the result is never empty and that a ₹ price keeps its glyph.
// Bare numbers get a ₹ prefix — this deployment targets Indian marketplaces
// and the assumption is deliberate, not a general currency rule.
func NormalizePrice(raw string) string {
	cleaned := priceCharsRegex.ReplaceAllString(raw, "")
	if !digitRegex.MatchString(cleaned) {
		return "Check website"
	}

	if strings.Contains(raw, "₹") {
		return "₹" + strings.ReplaceAll(cleaned, "₹", "")
	}
	if strings.Contains(cleaned, "$") {
		return cleaned
	}
	return "₹" + cleaned
}
