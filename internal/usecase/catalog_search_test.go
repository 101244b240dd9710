package usecase

import (
	"testing"

	"github.com/shopchat/backend/internal/domain"
)

func TestCatalogSearch(t *testing.T) {
	search := NewCatalogSearch(DefaultCatalog(), 83.0)

	t.Run("finds watch within price range", func(t *testing.T) {
		// 20-25k INR at 83 INR/USD is roughly $241-$301; Smart Watch Pro
		// at $249.99 sits inside the band
		results := search.Search("watch under 20k")

		if len(results) == 0 {
			t.Fatal("Search() returned no results, want at least Smart Watch Pro")
		}

		found := false
		for _, entry := range results {
			if entry.Name == "Smart Watch Pro" {
				found = true
			}
		}
		if !found {
			t.Errorf("Smart Watch Pro missing from results: %v", names(results))
		}
	})

	t.Run("excludes watches outside the tolerance band", func(t *testing.T) {
		// Fitness Watch Elite ($199.99) and Sport Watch Active ($179.99)
		// fall below the ~$235 lower bound even though the name matches
		results := search.Search("watch under 20k")

		for _, entry := range results {
			if entry.Name == "Fitness Watch Elite" || entry.Name == "Sport Watch Active" {
				t.Errorf("entry %q should be excluded by the price filter", entry.Name)
			}
		}
	})

	t.Run("no price hint disables filtering", func(t *testing.T) {
		results := search.Search("watch")

		// All five watch-ish entries should be present
		if len(results) < 4 {
			t.Errorf("Search(\"watch\") returned %d results, want at least 4: %v", len(results), names(results))
		}
	})

	t.Run("synonym matching reaches the canonical term", func(t *testing.T) {
		results := search.Search("smartwatch")

		if len(results) == 0 {
			t.Fatal("Search(\"smartwatch\") returned no results, want watch entries via synonym group")
		}
		for _, entry := range results {
			if entry.Name == "Smart Watch Pro" {
				return
			}
		}
		t.Errorf("Smart Watch Pro missing from synonym results: %v", names(results))
	})

	t.Run("dollar range filters without conversion", func(t *testing.T) {
		// $70-$90 band with tolerance catches the $79.99 headphones
		results := search.Search("headphones $70-$90")

		if len(results) != 1 {
			t.Fatalf("Search() returned %d results, want 1: %v", len(results), names(results))
		}
		if results[0].Name != "Wireless Bluetooth Headphones" {
			t.Errorf("results[0].Name = %q, want Wireless Bluetooth Headphones", results[0].Name)
		}
	})

	t.Run("zero score entries are excluded", func(t *testing.T) {
		results := search.Search("xyzzy")

		if len(results) != 0 {
			t.Errorf("Search(\"xyzzy\") returned %d results, want 0: %v", len(results), names(results))
		}
	})

	t.Run("higher scores sort first with stable ties", func(t *testing.T) {
		// "wireless mouse" matches Wireless Mouse exactly (substring +
		// synonym + tokens); other wireless entries trail on token score
		results := search.Search("wireless mouse")

		if len(results) == 0 {
			t.Fatal("Search() returned no results")
		}
		if results[0].Name != "Wireless Mouse" {
			t.Errorf("results[0].Name = %q, want Wireless Mouse", results[0].Name)
		}
	})

	t.Run("results never expose an internal score", func(t *testing.T) {
		results := search.Search("watch")

		for _, entry := range results {
			// CatalogEntry has no score field; assert output matches the
			// immutable catalog data
			for _, original := range DefaultCatalog() {
				if original.ID == entry.ID && original != entry {
					t.Errorf("entry %d mutated by search: %+v != %+v", entry.ID, entry, original)
				}
			}
		}
	})
}

func names(entries []domain.CatalogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
