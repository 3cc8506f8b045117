package catalog

import (
	"strings"
	"testing"
)

func TestVariations(t *testing.T) {
	tests := []struct {
		name string
		norm string
		want []string // must all be present
	}{
		{
			name: "journal of theoretical biology",
			norm: "journal of theoretical biology",
			want: []string{"j of theor biol", "journal theoretical biology"},
		},
		{
			name: "physical review letters",
			norm: "physical review letters",
			want: []string{"phys rev lett", "phys rev let"},
		},
		{
			name: "leading article dropped",
			norm: "the lancet",
			want: []string{"lancet"},
		},
		{
			name: "no substitutable words",
			norm: "cell",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variations(tt.norm)
			if len(got) > MaxVariations {
				t.Fatalf("got %d variations, cap is %d", len(got), MaxVariations)
			}
			for _, w := range tt.want {
				if !contains(got, w) {
					t.Errorf("Variations(%q) = %v, missing %q", tt.norm, got, w)
				}
			}
			if contains(got, tt.norm) {
				t.Errorf("Variations(%q) repeats the canonical form", tt.norm)
			}
		})
	}
}

func TestNewCatalogSharedSets(t *testing.T) {
	c := newCatalog([]string{
		"Journal of Theoretical Biology",
		"Physical Review Letters",
		"",
	})

	if len(c.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(c.Entries))
	}
	for _, kw := range []string{"theoretical", "biology", "physical", "review", "letters"} {
		if _, ok := c.Keywords[kw]; !ok {
			t.Errorf("keyword %q missing", kw)
		}
	}
	if _, ok := c.Keywords["of"]; ok {
		t.Error("stop word 'of' should not be a keyword")
	}
	if !containsStr(c.Patterns, "journal of") {
		t.Errorf("patterns = %v, missing 'journal of'", c.Patterns)
	}
}

func TestLooksLikeJournal(t *testing.T) {
	c := newCatalog([]string{"Journal of Theoretical Biology"})

	tests := []struct {
		in   string
		want bool
	}{
		{"International Journal of Robotics", true},
		{"Theoretical Biology Forum", true}, // two known keywords
		{"A random paragraph about nothing", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := c.LooksLikeJournal(tt.in); got != tt.want {
			t.Errorf("LooksLikeJournal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLooksLikeJournalEmptyCatalog(t *testing.T) {
	c := newCatalog(nil)
	if !c.LooksLikeJournal("Journal of Nowhere Studies") {
		t.Error("static structural markers should still apply with an empty catalog")
	}
	if c.LooksLikeJournal("completely unrelated prose") {
		t.Error("plain prose should not look like a journal")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsStr(list []string, s string) bool {
	return contains(list, s)
}

func TestVariationsDeterministic(t *testing.T) {
	a := Variations("journal of applied physics")
	b := Variations("journal of applied physics")
	if strings.Join(a, "|") != strings.Join(b, "|") {
		t.Errorf("variations not deterministic: %v vs %v", a, b)
	}
}
