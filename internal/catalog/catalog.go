// Package catalog loads the reference journal catalog and builds the
// exact-lookup index used by journal resolution.
package catalog

import (
	"strings"

	"github.com/holdon1221/ScholarSite/internal/textproc"
)

// MaxVariations caps how many generated name variations an entry keeps.
// Variations trade completeness for bounded index size.
const MaxVariations = 6

// Entry is one journal title from the reference catalog, immutable once
// constructed.
type Entry struct {
	Title      string   // canonical title as it appears in the catalog
	Normalized string   // lowercased, punctuation-stripped form
	Variations []string // generated abbreviation/substitution forms
}

// Catalog is the loaded reference catalog plus the shared keyword and
// structural-pattern sets derived from it. It is built once per process
// and read-only afterward, so concurrent readers need no locking.
type Catalog struct {
	Entries  []Entry
	Keywords map[string]struct{} // significant title words (len > 3, non-stop)
	Patterns []string            // structural markers seen in titles
}

// stopWords are skipped when deriving keywords and variations.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "in": true, "on": true,
	"for": true, "and": true, "or": true, "to": true, "de": true, "der": true,
	"und": true, "et": true, "its": true, "with": true,
}

// abbreviationRules maps full title words to their standard abbreviations.
// Order matters: the first rule whose word matches wins for the primary
// abbreviated variation.
var abbreviationRules = []struct {
	Word  string
	Abbrs []string
}{
	{"journal", []string{"j"}},
	{"letters", []string{"lett", "let"}},
	{"review", []string{"rev"}},
	{"reviews", []string{"rev"}},
	{"physical", []string{"phys"}},
	{"physics", []string{"phys"}},
	{"chemistry", []string{"chem"}},
	{"chemical", []string{"chem"}},
	{"biology", []string{"biol"}},
	{"biological", []string{"biol"}},
	{"theoretical", []string{"theor"}},
	{"mathematics", []string{"math"}},
	{"mathematical", []string{"math"}},
	{"proceedings", []string{"proc"}},
	{"transactions", []string{"trans"}},
	{"communications", []string{"commun"}},
	{"international", []string{"int"}},
	{"national", []string{"natl"}},
	{"american", []string{"am"}},
	{"european", []string{"eur"}},
	{"society", []string{"soc"}},
	{"association", []string{"assoc"}},
	{"applied", []string{"appl"}},
	{"science", []string{"sci"}},
	{"sciences", []string{"sci"}},
	{"research", []string{"res"}},
	{"annual", []string{"annu"}},
	{"annals", []string{"ann"}},
	{"medicine", []string{"med"}},
	{"medical", []string{"med"}},
	{"engineering", []string{"eng"}},
	{"environmental", []string{"environ"}},
	{"molecular", []string{"mol"}},
	{"clinical", []string{"clin"}},
	{"quarterly", []string{"q"}},
}

// structuralMarkers are phrases whose presence in a title marks it as
// journal-shaped. The set observed across the catalog feeds the
// looks-like-a-journal fallback when no index hit is available.
var structuralMarkers = []string{
	"journal of", "journal", "letters", "review", "reviews", "proceedings",
	"transactions", "communications", "annals", "archives", "bulletin",
	"reports", "advances",
}

// newCatalog builds the Catalog from parsed titles, deriving per-entry
// normalized forms and variations plus the shared keyword/pattern sets.
func newCatalog(titles []string) *Catalog {
	c := &Catalog{
		Entries:  make([]Entry, 0, len(titles)),
		Keywords: make(map[string]struct{}),
	}
	patterns := make(map[string]struct{})

	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		norm := textproc.Normalize(title)
		if norm == "" {
			continue
		}
		c.Entries = append(c.Entries, Entry{
			Title:      title,
			Normalized: norm,
			Variations: Variations(norm),
		})

		for _, w := range strings.Fields(norm) {
			if len(w) > 3 && !stopWords[w] {
				c.Keywords[w] = struct{}{}
			}
		}
		for _, marker := range structuralMarkers {
			if strings.Contains(norm, marker) {
				patterns[marker] = struct{}{}
			}
		}
	}

	for _, marker := range structuralMarkers {
		if _, ok := patterns[marker]; ok {
			c.Patterns = append(c.Patterns, marker)
		}
	}
	return c
}

// Empty reports whether the catalog holds no entries, the degraded state
// after a failed load.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.Entries) == 0
}

// LooksLikeJournal reports whether a text span resembles a journal name
// according to the structural patterns and keywords observed across the
// catalog. With an empty catalog it falls back to the static marker list,
// so the check still works when loading degraded.
func (c *Catalog) LooksLikeJournal(s string) bool {
	norm := textproc.Normalize(s)
	if norm == "" {
		return false
	}
	markers := structuralMarkers
	if c != nil && len(c.Patterns) > 0 {
		markers = c.Patterns
	}
	for _, marker := range markers {
		if strings.Contains(norm, marker) {
			return true
		}
	}
	if c == nil || len(c.Keywords) == 0 {
		return false
	}
	hits := 0
	for _, w := range strings.Fields(norm) {
		if _, ok := c.Keywords[w]; ok {
			hits++
			if hits >= 2 {
				return true
			}
		}
	}
	return false
}

// Variations generates abbreviation and substitution forms for a
// normalized title, capped at MaxVariations. The canonical normalized
// form itself is not repeated in the result.
func Variations(norm string) []string {
	words := strings.Fields(norm)
	if len(words) == 0 {
		return nil
	}

	seen := map[string]bool{norm: true}
	var out []string
	add := func(v string) {
		if v == "" || seen[v] || len(out) >= MaxVariations {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	// Fully abbreviated form, primary abbreviation per word.
	add(substituteWords(words, 0))
	// Secondary abbreviations ("lett" vs "let").
	add(substituteWords(words, 1))

	// Stop-word-free form: "journal of biology" -> "journal biology".
	var significant []string
	for _, w := range words {
		if !stopWords[w] {
			significant = append(significant, w)
		}
	}
	if len(significant) > 0 && len(significant) < len(words) {
		add(strings.Join(significant, " "))
		abbrSig := strings.Fields(substituteWords(significant, 0))
		add(strings.Join(abbrSig, " "))
	}

	// Single-word substitutions catch partially abbreviated references.
	for i, w := range words {
		for _, rule := range abbreviationRules {
			if rule.Word != w {
				continue
			}
			sub := make([]string, len(words))
			copy(sub, words)
			sub[i] = rule.Abbrs[0]
			add(strings.Join(sub, " "))
			break
		}
	}

	return out
}

// substituteWords replaces every word covered by an abbreviation rule,
// preferring the rule's abbreviation at the given alternative index
// (falling back to the primary when the alternative doesn't exist).
// Returns "" when no word changed.
func substituteWords(words []string, alt int) string {
	out := make([]string, len(words))
	changed := false
	for i, w := range words {
		out[i] = w
		for _, rule := range abbreviationRules {
			if rule.Word != w {
				continue
			}
			idx := alt
			if idx >= len(rule.Abbrs) {
				idx = 0
			}
			out[i] = rule.Abbrs[idx]
			changed = changed || out[i] != w
			break
		}
	}
	if !changed {
		return ""
	}
	return strings.Join(out, " ")
}
