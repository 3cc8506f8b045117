// Package title guesses the paper title from the first page of extracted
// text. Purely heuristic: no catalog is involved.
package title

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/holdon1221/ScholarSite/internal/textproc"
)

const (
	// scanLines is how deep the resolver looks; titles live on page one.
	scanLines = 30

	// Hard candidate length bounds.
	minTitleLen = 20
	maxTitleLen = 200

	// Preferred title length window, rewarded during scoring.
	preferredMinLen = 50
	preferredMaxLen = 150

	minTitleWords = 4

	// Scoring weights.
	positionWeight   = 1  // per line of earliness
	lengthBonus      = 15 // inside the preferred window
	vocabularyBonus  = 5  // per domain word, capped
	vocabularyCap    = 15
	boilerplateHit   = -50
	journalWordHit   = -20
	markerFollowBump = 10
)

// boilerplatePatterns mark lines that are never titles: publisher
// banners, citation metadata, author/affiliation lines, contact info.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)contents\s+lists?\s+available|sciencedirect|springerlink|downloaded from`),
	regexp.MustCompile(`(?i)\b(?:doi|issn|isbn)\b|https?://|www\.|@`),
	regexp.MustCompile(`(?i)\b(?:vol\.?|volume|issue|no\.)\s*\d|\bpp\.?\s*\d|^page\s+\d`),
	regexp.MustCompile(`(?i)\b(?:received|accepted|revised|published online|available online)\b`),
	regexp.MustCompile(`(?i)\b(?:university|department|institute|faculty|school of|college of|hospital)\b`),
	regexp.MustCompile(`(?i)^\s*(?:abstract|keywords?|introduction|highlights)\b`),
	regexp.MustCompile(`(?i)©|\bcopyright\b|\ball rights reserved\b|\belsevier\b|\bwiley\b`),
	regexp.MustCompile(`(?i)^(?:open access|research article|original article|review article|short communication|case report|article)\s*$`),
	// Author lists: initials followed by surnames, comma separated.
	regexp.MustCompile(`^(?:[A-Z][a-z]*\.\s*)+[A-Z][a-z]+(?:\s*,|\s+and\b|$)`),
	regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z]\.(?:\s*[A-Z]\.)*\s*(?:,|and\b)`),
}

// sectionMarkers are headings whose following line is usually the title.
var sectionMarkers = regexp.MustCompile(`(?i)^\s*(?:research article|original article|original research|review article|short communication|case report|rapid communication)\s*$`)

// domainVocabulary rewards methodological and scientific title words.
var domainVocabulary = []string{
	"effect", "effects", "analysis", "model", "modeling", "modelling",
	"study", "evaluation", "impact", "method", "methods", "dynamics",
	"transmission", "treatment", "novel", "assessment", "estimation",
	"approach", "characterization", "mechanism", "response", "role",
	"evidence", "association", "prediction", "simulation", "optimization",
	"vaccination", "epidemic", "disease", "clinical", "experimental",
}

// Resolver scores title candidates from the first page. Stateless
// between documents.
type Resolver struct {
	cleaner *textproc.Cleaner
	log     zerolog.Logger
}

// NewResolver creates a title Resolver.
func NewResolver(logger zerolog.Logger) *Resolver {
	return &Resolver{cleaner: textproc.NewCleaner(), log: logger}
}

type candidate struct {
	text  string
	pos   int
	bonus int
}

// Resolve returns the best-guess paper title, or "" when nothing on the
// first page looks like one.
func (r *Resolver) Resolve(text string, lines []string) string {
	if len(lines) == 0 {
		if strings.TrimSpace(text) == "" {
			return ""
		}
		lines = textproc.SplitLines(text)
	}

	limit := len(lines)
	if limit > scanLines {
		limit = scanLines
	}

	var candidates []candidate
	for i := 0; i < limit; i++ {
		line := r.cleaner.CleanLine(lines[i])
		if line == "" {
			continue
		}

		if qualifies(line, minTitleWords) && !isBoilerplate(line) {
			candidates = append(candidates, candidate{text: line, pos: i})
		}

		// Titles wrap: two consecutive qualifying lines joined.
		if i+1 < limit {
			next := r.cleaner.CleanLine(lines[i+1])
			if next != "" && !isBoilerplate(line) && !isBoilerplate(next) &&
				qualifies(line, 2) && qualifies(next, 2) {
				joined := line + " " + next
				if len(joined) <= maxTitleLen && qualifies(joined, minTitleWords) {
					candidates = append(candidates, candidate{text: joined, pos: i})
				}
			}
		}

		// Line right after a "Research Article"-style marker.
		if sectionMarkers.MatchString(lines[i]) && i+1 < len(lines) {
			next := r.cleaner.CleanLine(lines[i+1])
			if next != "" && qualifies(next, 3) && !isBoilerplate(next) {
				candidates = append(candidates, candidate{text: next, pos: i + 1, bonus: markerFollowBump})
			}
		}
	}

	if len(candidates) == 0 {
		return ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return score(candidates[i]) > score(candidates[j])
	})
	best := candidates[0]
	r.log.Debug().Str("title", best.text).Int("line", best.pos).Msg("title resolved")
	return r.cleaner.CleanTitle(best.text)
}

// qualifies applies the structural line heuristics: length bounds, word
// count, starts with an uppercase letter or digit, majority letters.
func qualifies(line string, minWords int) bool {
	if len(line) < minTitleLen || len(line) > maxTitleLen {
		return false
	}
	if len(strings.Fields(line)) < minWords {
		return false
	}
	first := []rune(line)[0]
	if !unicode.IsUpper(first) && !unicode.IsDigit(first) {
		return false
	}
	letters, total := 0, 0
	for _, c := range line {
		if unicode.IsSpace(c) {
			continue
		}
		total++
		if unicode.IsLetter(c) {
			letters++
		}
	}
	return total > 0 && letters*2 > total
}

func isBoilerplate(line string) bool {
	for _, re := range boilerplatePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// score ranks a candidate: earlier is better, the preferred length
// window and domain vocabulary add, journal-ish wording subtracts.
func score(c candidate) int {
	s := c.bonus + positionWeight*(scanLines-c.pos)
	if n := len(c.text); n >= preferredMinLen && n <= preferredMaxLen {
		s += lengthBonus
	}
	lower := strings.ToLower(c.text)
	vocab := 0
	for _, w := range domainVocabulary {
		if containsWord(lower, w) {
			vocab += vocabularyBonus
			if vocab >= vocabularyCap {
				break
			}
		}
	}
	s += vocab
	if strings.Contains(lower, "journal") || strings.Contains(lower, "proceedings") {
		s += journalWordHit
	}
	if isBoilerplate(c.text) {
		s += boilerplateHit
	}
	return s
}

func containsWord(haystack, word string) bool {
	for _, w := range strings.Fields(haystack) {
		if strings.Trim(w, ".,;:()") == word {
			return true
		}
	}
	return false
}
