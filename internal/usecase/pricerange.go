package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopchat/backend/internal/domain"
)

// Compiled regex patterns for price-hint extraction
var (
	// Matches "20k", "20-25k", "20 25 k"
	thousandRangePattern = regexp.MustCompile(`(\d+)[-\s]*(\d+)?\s*k`)

	// Matches "$200" tokens; one or two occurrences form a range
	dollarPattern = regexp.MustCompile(`\$(\d+)`)
)

// hasThousandMarker reports whether the text uses the "k"/"thousand"
// shorthand. The magnitudes extracted from that form are INR-scale; the
// legacy catalog search uses this to decide whether to apply its currency
// conversion before filtering.
func hasThousandMarker(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "k") || strings.Contains(lower, "thousand")
}

// ExtractPriceRange parses free text for price hints like "20-25k" or
// "$200-$250" and returns a normalized numeric range. The second return is
// false when the text carries no price hint, which disables price filtering.
// The formats are mutually exclusive: a thousand marker claims the text even
// when its pattern then fails to match, so "keyboard $100" yields no range.
func ExtractPriceRange(text string) (domain.PriceRange, bool) {
	lower := strings.ToLower(text)

	if hasThousandMarker(lower) {
		m := thousandRangePattern.FindStringSubmatch(lower)
		if m == nil {
			return domain.PriceRange{}, false
		}

		min, _ := strconv.ParseFloat(m[1], 64)
		min *= 1000

		// A single value widens into a 5k band above it
		max := min + 5000
		if m[2] != "" {
			max, _ = strconv.ParseFloat(m[2], 64)
			max *= 1000
		}

		return domain.PriceRange{Min: min, Max: max}, true
	}

	if strings.Contains(text, "$") {
		matches := dollarPattern.FindAllStringSubmatch(text, 2)
		if len(matches) >= 1 {
			min, _ := strconv.ParseFloat(matches[0][1], 64)

			// A single value widens into a $50 band above it
			max := min + 50
			if len(matches) >= 2 {
				max, _ = strconv.ParseFloat(matches[1][1], 64)
			}

			return domain.PriceRange{Min: min, Max: max}, true
		}
	}

	return domain.PriceRange{}, false
}

// FormatPriceRange renders an extracted range as a display price for
// synthesized candidates, e.g. "₹20,000 - ₹25,000"
func FormatPriceRange(r domain.PriceRange) string {
	return fmt.Sprintf("₹%s - ₹%s", groupDigits(int(r.Min)), groupDigits(int(r.Max)))
}

// groupDigits inserts thousands separators into a non-negative integer
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
