package catalog

import "testing"

func TestBuildIndex(t *testing.T) {
	c := newCatalog([]string{
		"Journal of Theoretical Biology",
		"Physical Review Letters",
	})
	idx := BuildIndex(c)

	// Every canonical normalized title is a key.
	for _, e := range c.Entries {
		entry, ok := idx.Lookup(e.Normalized)
		if !ok {
			t.Errorf("canonical key %q missing", e.Normalized)
			continue
		}
		if entry.Title != e.Title {
			t.Errorf("key %q maps to %q, want %q", e.Normalized, entry.Title, e.Title)
		}
	}

	// Abbreviated variation resolves to its entry.
	if entry, ok := idx.Lookup("phys rev lett"); !ok || entry.Title != "Physical Review Letters" {
		t.Errorf("variation lookup = %v, %v", entry, ok)
	}
}

func TestBuildIndexVariationCap(t *testing.T) {
	c := newCatalog([]string{"Journal of Theoretical Biology"})
	idx := BuildIndex(c)

	// canonical + at most MaxIndexedVariations keys for a single entry
	max := 1 + MaxIndexedVariations
	if len(idx) > max {
		t.Errorf("index has %d keys, cap is %d", len(idx), max)
	}
}

func TestBuildIndexFirstWriterWins(t *testing.T) {
	// Duplicate titles collide on every key; the earlier entry keeps them.
	c := newCatalog([]string{
		"Physical Review Letters",
		"Physical Review Letters",
	})
	idx := BuildIndex(c)

	entry, ok := idx.Lookup("physical review letters")
	if !ok {
		t.Fatal("canonical key missing")
	}
	if entry != &c.Entries[0] {
		t.Error("collision should keep the first entry")
	}
}

func TestBuildIndexNilCatalog(t *testing.T) {
	idx := BuildIndex(nil)
	if len(idx) != 0 {
		t.Errorf("nil catalog index should be empty, got %d keys", len(idx))
	}
}
