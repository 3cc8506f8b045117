package extract

import (
	"strings"
	"unicode"
)

// Candidate length bounds. Journal names shorter than 8 characters are
// indistinguishable from noise; longer than 100 they have swallowed a
// sentence.
const (
	minCandidateLen = 8
	maxCandidateLen = 100
)

// cleanCandidate strips citation plumbing off a raw extracted span:
// volume/issue/page/ISSN/DOI suffixes, leading articles, trailing
// parentheticals, and stray punctuation.
func cleanCandidate(raw string) string {
	text := strings.TrimSpace(raw)
	text = reTrailingParen.ReplaceAllString(text, "")
	text = reTrailingCitation.ReplaceAllString(text, "")
	text = reTrailingParen.ReplaceAllString(text, "")
	text = reLeadingArticle.ReplaceAllString(text, "")
	text = reLeadingJunk.ReplaceAllString(text, "")
	// Keep a trailing period on abbreviation shapes ("Phys. Rev. Lett.")
	// but drop other trailing punctuation.
	if !reAbbrevShape.MatchString(text) {
		text = reTrailingJunk.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

// validCandidate applies the structural filters: length bounds,
// majority-alphabetic content, at least two words (or a dotted
// abbreviation shape), and no deny-listed boilerplate.
func validCandidate(text string) bool {
	if len(text) < minCandidateLen || len(text) > maxCandidateLen {
		return false
	}
	if !majorityAlphabetic(text) {
		return false
	}
	if len(strings.Fields(text)) < 2 && !reAbbrevShape.MatchString(text) {
		return false
	}
	for _, deny := range denyList {
		if deny.MatchString(text) {
			return false
		}
	}
	return true
}

// majorityAlphabetic reports whether more than half the non-space runes
// are letters.
func majorityAlphabetic(s string) bool {
	letters, total := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return total > 0 && letters*2 > total
}

// Heuristic scoring vocabulary. Structural journal words raise a
// candidate; affiliation words sink it.
var (
	boostWords = []string{
		"journal", "review", "reviews", "letters", "proceedings",
		"transactions", "communications", "nature", "science", "annals",
		"bulletin", "archives", "reports",
	}
	penaltyWords = []string{
		"university", "department", "institute", "faculty", "school",
		"laboratory", "center", "centre",
	}
)

// scoreCandidate estimates candidate quality. The score only prioritizes
// the pool; match scoring against the catalog is separate.
func scoreCandidate(text string) int {
	lower := strings.ToLower(text)
	score := 0
	for _, w := range boostWords {
		if strings.Contains(lower, w) {
			score += 3
		}
	}
	for _, w := range penaltyWords {
		if strings.Contains(lower, w) {
			score -= 2
		}
	}
	if n := len(text); n >= 15 && n <= 60 {
		score += 2
	}
	if reAbbrevShape.MatchString(text) {
		score += 2
	}
	if r := []rune(text); len(r) > 0 && unicode.IsUpper(r[0]) {
		score++
	}
	return score
}
