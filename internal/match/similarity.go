package match

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// Composite similarity weights. Edit distance dominates, word overlap
// rescues reorderings, character overlap rescues heavy OCR noise; the
// blend keeps near-identical strings above threshold even when no single
// metric clears it alone.
const (
	levenshteinWeight = 0.5
	jaccardWeight     = 0.3
	charOverlapWeight = 0.2
)

// Similarity returns the composite similarity of two normalized strings
// in [0,1].
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	return levenshteinWeight*levenshteinSimilarity(a, b) +
		jaccardWeight*wordJaccard(a, b) +
		charOverlapWeight*charOverlap(a, b)
}

// levenshteinSimilarity is 1 - dist/maxLen.
func levenshteinSimilarity(a, b string) float64 {
	dist := edlib.LevenshteinDistance(a, b)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(dist)/float64(maxLen)
}

// wordJaccard is the Jaccard similarity of the two word sets.
func wordJaccard(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	for w := range setA {
		if setB[w] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

// charOverlap is the Jaccard similarity of the two character sets,
// whitespace excluded.
func charOverlap(a, b string) float64 {
	setA := charSet(a)
	setB := charSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	for r := range setA {
		if setB[r] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func charSet(s string) map[rune]bool {
	set := make(map[rune]bool)
	for _, r := range s {
		if r != ' ' {
			set[r] = true
		}
	}
	return set
}
