// Package match resolves journal-name candidates against the catalog
// index with a three-tier exact/containment/fuzzy strategy.
package match

// MatchType classifies how a result was found. Stronger evidence sorts
// earlier.
type MatchType int

const (
	MatchNone MatchType = iota
	MatchExact
	MatchContains
	MatchSubstring
	MatchFuzzy
)

// String returns the wire/storage name of the match type.
func (t MatchType) String() string {
	switch t {
	case MatchExact:
		return "exact"
	case MatchContains:
		return "contains"
	case MatchSubstring:
		return "substring"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Result is the outcome of resolving one candidate against the catalog.
// Score is in [0,100]: exact matches score 100, containment tops out at
// 85, fuzzy at 90 times similarity.
type Result struct {
	Journal   string    `json:"journal"`
	Candidate string    `json:"candidate"`
	Score     float64   `json:"score"`
	Type      MatchType `json:"-"`
}

// strongerType reports whether a beats b on evidence strength when
// scores tie: exact and variation hits outrank fuzzy.
func strongerType(a, b MatchType) bool {
	rank := func(t MatchType) int {
		switch t {
		case MatchExact:
			return 4
		case MatchContains:
			return 3
		case MatchSubstring:
			return 2
		case MatchFuzzy:
			return 1
		default:
			return 0
		}
	}
	return rank(a) > rank(b)
}
