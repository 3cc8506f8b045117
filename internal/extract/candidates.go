// Package extract scans cleaned OCR text for journal-name candidates.
// Many heuristics vote into a single deduplicating pool; the pool caps
// and ranks what downstream matching has to pay for.
package extract

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/holdon1221/ScholarSite/internal/textproc"
)

const (
	// MaxCandidates bounds the set handed to the match scorer.
	MaxCandidates = 30

	// headerWindowLines is how deep into the document the multi-line
	// header scan reaches. Journal names live near the top.
	headerWindowLines = 15

	// headerSufficient is the candidate count past which the noisy
	// references section only contributes a small supplement.
	headerSufficient = 10

	// referenceSupplement is that small supplement.
	referenceSupplement = 3

	// referenceScanLines bounds how far into a references section the
	// scan walks.
	referenceScanLines = 60
)

// Candidate is a possible journal-name span with a heuristic quality
// score. The score only orders and caps the candidate set; it never
// ranks catalog matches.
type Candidate struct {
	Text  string
	Score int
}

// Extractor runs the ordered extraction stages over one document.
// Stateless between documents; safe to share.
type Extractor struct {
	cleaner *textproc.Cleaner
	log     zerolog.Logger
}

// NewExtractor creates an Extractor logging through the given logger.
func NewExtractor(logger zerolog.Logger) *Extractor {
	return &Extractor{
		cleaner: textproc.NewCleaner(),
		log:     logger,
	}
}

// Candidates produces the deduplicated, ranked candidate set for a
// document, capped at MaxCandidates. Empty input yields an empty set.
func (e *Extractor) Candidates(text string, lines []string) []Candidate {
	if strings.TrimSpace(text) == "" && len(lines) == 0 {
		return nil
	}
	if len(lines) == 0 {
		lines = textproc.SplitLines(text)
	}

	pre := e.cleaner.Preprocess(text)
	pool := newPool(e.cleaner)

	e.applyPatternRules(pre, pool)
	e.scanHeaderWindows(lines, pool)
	e.scanCopyrightLines(lines, pool)

	refBudget := -1 // unbounded
	if pool.size() >= headerSufficient {
		refBudget = referenceSupplement
	}
	e.scanReferencesSection(lines, pool, refBudget)

	candidates := pool.ranked()
	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}
	e.log.Debug().Int("candidates", len(candidates)).Msg("candidate extraction complete")
	return candidates
}

// applyPatternRules runs the fixed ordered rule table over the
// preprocessed text.
func (e *Extractor) applyPatternRules(text string, pool *candidatePool) {
	for _, rule := range patternRules {
		matches := rule.Re.FindAllStringSubmatch(text, -1)
		for _, m := range matches {
			if pool.add(m[1]) {
				e.log.Debug().Str("rule", rule.Name).Str("span", m[1]).Msg("pattern candidate")
			}
		}
	}
}

// scanHeaderWindows joins 2-4 consecutive lines near the top of the
// document, where headers often wrap journal names, and also takes any
// single header line that a volume/year marker immediately follows.
func (e *Extractor) scanHeaderWindows(lines []string, pool *candidatePool) {
	limit := len(lines)
	if limit > headerWindowLines {
		limit = headerWindowLines
	}
	for i := 0; i < limit; i++ {
		line := e.cleaner.CleanLine(lines[i])
		if line == "" {
			continue
		}

		// Header line with the volume marker on the next line.
		if i+1 < len(lines) && reVolumeMarker.MatchString(lines[i+1]) && !reVolumeMarker.MatchString(line) {
			pool.add(line)
		}

		for span := 2; span <= 4 && i+span <= limit; span++ {
			parts := make([]string, 0, span)
			for j := i; j < i+span; j++ {
				l := e.cleaner.CleanLine(lines[j])
				if l == "" {
					parts = nil
					break
				}
				parts = append(parts, l)
			}
			if len(parts) == span {
				pool.add(strings.Join(parts, " "))
			}
		}
	}
}

// scanCopyrightLines mines publisher/copyright metadata lines, which
// usually carry the journal name next to the publisher.
func (e *Extractor) scanCopyrightLines(lines []string, pool *candidatePool) {
	for _, raw := range lines {
		line := e.cleaner.CleanLine(raw)
		if line == "" || !reCopyrightLine.MatchString(line) {
			continue
		}
		for _, rule := range patternRules[:2] {
			for _, m := range rule.Re.FindAllStringSubmatch(line, -1) {
				pool.add(m[1])
			}
		}
	}
}

// scanReferencesSection locates a references/bibliography heading and
// mines abbreviated journal names from the entries that follow. budget
// < 0 means unbounded; otherwise at most budget new candidates are
// accepted, keeping bibliography noise from diluting header candidates.
func (e *Extractor) scanReferencesSection(lines []string, pool *candidatePool, budget int) {
	start := -1
	for i, raw := range lines {
		if reReferencesHead.MatchString(raw) {
			start = i + 1
			break
		}
	}
	if start < 0 || budget == 0 {
		return
	}

	added := 0
	end := start + referenceScanLines
	if end > len(lines) {
		end = len(lines)
	}
	for _, raw := range lines[start:end] {
		line := e.cleaner.CleanLine(raw)
		if line == "" {
			continue
		}
		for _, m := range reRefEntryAbbrev.FindAllString(line, -1) {
			if pool.add(m) {
				added++
				if budget >= 0 && added >= budget {
					return
				}
			}
		}
	}
}

// candidatePool deduplicates candidates on their normalized cleaned form.
// Cleaning and validation happen at insertion so the pool never holds
// junk; insertion order is preserved for deterministic tie-breaks.
type candidatePool struct {
	cleaner *textproc.Cleaner
	seen    map[string]bool
	ordered []Candidate
}

func newPool(cleaner *textproc.Cleaner) *candidatePool {
	return &candidatePool{
		cleaner: cleaner,
		seen:    make(map[string]bool),
	}
}

// add cleans, validates, scores, and stores a raw span. Reports whether
// the span survived as a new candidate.
func (p *candidatePool) add(raw string) bool {
	text := cleanCandidate(raw)
	if !validCandidate(text) {
		return false
	}
	key := textproc.Normalize(text)
	if key == "" || p.seen[key] {
		return false
	}
	p.seen[key] = true
	p.ordered = append(p.ordered, Candidate{Text: text, Score: scoreCandidate(text)})
	return true
}

func (p *candidatePool) size() int {
	return len(p.ordered)
}

// ranked returns candidates sorted by score descending, insertion order
// on ties.
func (p *candidatePool) ranked() []Candidate {
	out := make([]Candidate, len(p.ordered))
	copy(out, p.ordered)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
