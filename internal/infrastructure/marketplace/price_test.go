package marketplace

import "testing"

func TestNormalizePrice(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "rupee price keeps glyph and separators",
			raw:  "₹1,299",
			want: "₹1,299",
		},
		{
			name: "rupee price with surrounding text",
			raw:  "Deal price ₹18,999 only",
			want: "₹18,999",
		},
		{
			name: "dollar price stays as-is",
			raw:  "$79.99",
			want: "$79.99",
		},
		{
			name: "bare number gets rupee prefix",
			raw:  "1299",
			want: "₹1299",
		},
		{
			name: "empty input",
			raw:  "",
			want: "Check website",
		},
		{
			name: "no digits at all",
			raw:  "Price on request",
			want: "Check website",
		},
		{
			name: "currency glyph without digits",
			raw:  "₹",
			want: "Check website",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePrice(tc.raw); got != tc.want {
				t.Errorf("NormalizePrice(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeImageURL(t *testing.T) {
	if got := normalizeImageURL("//img.example.com/a.jpg"); got != "https://img.example.com/a.jpg" {
		t.Errorf("normalizeImageURL() = %q, want https scheme prepended", got)
	}
	if got := normalizeImageURL("https://img.example.com/a.jpg"); got != "https://img.example.com/a.jpg" {
		t.Errorf("normalizeImageURL() = %q, want absolute URL unchanged", got)
	}
}

func TestResolveLink(t *testing.T) {
	testCases := []struct {
		name    string
		baseURL string
		href    string
		want    string
	}{
		{
			name:    "relative href joined to base",
			baseURL: "https://www.flipkart.com",
			href:    "/product/p/itm123",
			want:    "https://www.flipkart.com/product/p/itm123",
		},
		{
			name:    "absolute href untouched",
			baseURL: "https://www.flipkart.com",
			href:    "https://dl.flipkart.com/x",
			want:    "https://dl.flipkart.com/x",
		},
		{
			name:    "empty href stays empty",
			baseURL: "https://www.flipkart.com",
			href:    "",
			want:    "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveLink(tc.baseURL, tc.href); got != tc.want {
				t.Errorf("resolveLink(%q, %q) = %q, want %q", tc.baseURL, tc.href, got, tc.want)
			}
		})
	}
}

func TestSearchURLBuilders(t *testing.T) {
	if got := FlipkartSearchURL("Seiko 5 Sports"); got != "https://www.flipkart.com/search?q=Seiko+5+Sports" {
		t.Errorf("FlipkartSearchURL() = %q", got)
	}
	if got := AmazonSearchURL("Seiko 5 Sports"); got != "https://www.amazon.in/s?k=Seiko+5+Sports" {
		t.Errorf("AmazonSearchURL() = %q", got)
	}
}
