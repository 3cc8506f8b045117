// Package resolve wires candidate extraction, catalog matching, and
// title scoring into the document-level resolution API.
package resolve

import (
	"github.com/rs/zerolog"

	"github.com/holdon1221/ScholarSite/internal/catalog"
	"github.com/holdon1221/ScholarSite/internal/extract"
	"github.com/holdon1221/ScholarSite/internal/match"
	"github.com/holdon1221/ScholarSite/internal/title"
)

// UnknownJournal is the sentinel returned when no journal can be
// resolved. Absence is a normal outcome, never an error.
const UnknownJournal = "Unknown Journal"

// Resolver resolves journals and titles for one document at a time.
// The catalog and index are built once at construction and shared
// read-only; concurrent callers may use the same Resolver.
type Resolver struct {
	cat       *catalog.Catalog
	scorer    *match.Scorer
	extractor *extract.Extractor
	titles    *title.Resolver
	log       zerolog.Logger
}

// New builds a Resolver over a loaded catalog. A nil or empty catalog is
// valid: matching degrades to the heuristic fallback.
func New(cat *catalog.Catalog, cfg match.Config, logger zerolog.Logger) *Resolver {
	idx := catalog.BuildIndex(cat)
	return &Resolver{
		cat:       cat,
		scorer:    match.NewScorer(cat, idx, cfg, logger),
		extractor: extract.NewExtractor(logger),
		titles:    title.NewResolver(logger),
		log:       logger,
	}
}

// ResolveJournal returns the catalog title best matching the document,
// or UnknownJournal.
func (r *Resolver) ResolveJournal(text string, lines []string) string {
	result, ok := r.ResolveJournalMatch(text, lines)
	if !ok {
		return UnknownJournal
	}
	return result.Journal
}

// ResolveJournalMatch is ResolveJournal with the full match evidence.
func (r *Resolver) ResolveJournalMatch(text string, lines []string) (match.Result, bool) {
	candidates := r.extractor.Candidates(text, lines)
	if len(candidates) == 0 {
		r.log.Debug().Msg("no journal candidates extracted")
		return match.Result{}, false
	}

	if r.scorer.Empty() {
		// Degraded mode: no catalog to match against. Take the best
		// heuristic candidate that still looks journal-shaped.
		for _, c := range candidates {
			if r.cat.LooksLikeJournal(c.Text) {
				r.log.Debug().Str("candidate", c.Text).Msg("empty index, heuristic fallback")
				return match.Result{Journal: c.Text, Candidate: c.Text, Score: 0, Type: match.MatchNone}, true
			}
		}
		return match.Result{}, false
	}

	return r.scorer.Best(candidates)
}

// ResolveTitle returns the best-guess paper title, or "".
func (r *Resolver) ResolveTitle(text string, lines []string) string {
	return r.titles.Resolve(text, lines)
}
