package match

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/holdon1221/ScholarSite/internal/catalog"
	"github.com/holdon1221/ScholarSite/internal/extract"
	"github.com/holdon1221/ScholarSite/internal/textproc"
)

// Tuning defaults. The thresholds and the scan budget are empirically
// chosen; they are plain Config fields so callers can override them
// without re-deriving the intended behavior.
const (
	// DefaultFuzzyAccept is the composite similarity above which a fuzzy
	// hit is accepted.
	DefaultFuzzyAccept = 0.7

	// DefaultPriorityFuzzyAccept is the stricter threshold for the
	// priority-family pass, which accepts the first entry it clears.
	DefaultPriorityFuzzyAccept = 0.75

	// DefaultStrongFuzzyAccept ends the full-catalog scan early: a hit
	// this similar won't be beaten by anything worth the remaining budget.
	DefaultStrongFuzzyAccept = 0.8

	// DefaultFuzzyTrigger is the score below which tiers 1-2 are
	// considered misses and the fuzzy tier runs.
	DefaultFuzzyTrigger = 60

	// DefaultMaxFuzzyComparisons bounds the full-catalog fuzzy scan per
	// candidate. A true best match beyond the budget is missed on
	// purpose: processing time stays flat regardless of catalog size.
	DefaultMaxFuzzyComparisons = 200

	// DefaultMinContainmentLen is the minimum length either side of a
	// containment check must have; shorter strings contain each other by
	// accident.
	DefaultMinContainmentLen = 8

	// DefaultMaxPriorityEntries caps the curated priority subset scanned
	// before the budgeted full-catalog pass.
	DefaultMaxPriorityEntries = 50

	// Containment score caps.
	containsCap  = 85
	substringCap = 80
	fuzzyCap     = 90
)

// Config carries the scorer's tunable thresholds.
type Config struct {
	FuzzyAccept         float64 `yaml:"fuzzy_accept"`
	PriorityFuzzyAccept float64 `yaml:"priority_fuzzy_accept"`
	StrongFuzzyAccept   float64 `yaml:"strong_fuzzy_accept"`
	FuzzyTrigger        float64 `yaml:"fuzzy_trigger"`
	MaxFuzzyComparisons int     `yaml:"max_fuzzy_comparisons"`
	MinContainmentLen   int     `yaml:"min_containment_len"`
	MaxPriorityEntries  int     `yaml:"max_priority_entries"`
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		FuzzyAccept:         DefaultFuzzyAccept,
		PriorityFuzzyAccept: DefaultPriorityFuzzyAccept,
		StrongFuzzyAccept:   DefaultStrongFuzzyAccept,
		FuzzyTrigger:        DefaultFuzzyTrigger,
		MaxFuzzyComparisons: DefaultMaxFuzzyComparisons,
		MinContainmentLen:   DefaultMinContainmentLen,
		MaxPriorityEntries:  DefaultMaxPriorityEntries,
	}
}

// priorityFamilies name well-known high-frequency journal families.
// Catalog entries containing one of these are checked first in the fuzzy
// tier, before any budgeted full scan.
var priorityFamilies = []string{
	"nature",
	"science",
	"cell",
	"lancet",
	"physical review",
	"journal of the american chemical society",
	"proceedings of the national academy",
	"new england journal of medicine",
	"plos",
	"bmj",
	"ieee",
	"angewandte",
}

// Scorer resolves candidates against a catalog index. Built once next to
// the index and shared read-only; it holds no per-document state.
type Scorer struct {
	cat      *catalog.Catalog
	idx      catalog.Index
	keys     []string // index keys in sorted order, for deterministic scans
	priority []*catalog.Entry
	cfg      Config
	log      zerolog.Logger
}

// NewScorer builds a Scorer over a catalog and its index.
func NewScorer(cat *catalog.Catalog, idx catalog.Index, cfg Config, logger zerolog.Logger) *Scorer {
	s := &Scorer{cat: cat, idx: idx, cfg: cfg, log: logger}

	s.keys = make([]string, 0, len(idx))
	for k := range idx {
		s.keys = append(s.keys, k)
	}
	sort.Strings(s.keys)

	if cat != nil {
		for i := range cat.Entries {
			if len(s.priority) >= cfg.MaxPriorityEntries {
				break
			}
			for _, fam := range priorityFamilies {
				if strings.Contains(cat.Entries[i].Normalized, fam) {
					s.priority = append(s.priority, &cat.Entries[i])
					break
				}
			}
		}
	}
	return s
}

// Empty reports whether the scorer has nothing to match against.
func (s *Scorer) Empty() bool {
	return len(s.idx) == 0
}

// Best resolves the candidate set and returns the globally strongest
// result. The second return is false when no candidate matched at all.
func (s *Scorer) Best(candidates []extract.Candidate) (Result, bool) {
	var best Result
	found := false

	better := func(r Result) bool {
		if !found {
			return true
		}
		if r.Score != best.Score {
			return r.Score > best.Score
		}
		return strongerType(r.Type, best.Type)
	}

	for _, cand := range candidates {
		norm := textproc.Normalize(cand.Text)
		if norm == "" {
			continue
		}

		// Tier 1: exact index hit, accepted immediately for this
		// candidate. Nothing can outscore it globally either.
		if entry, ok := s.idx.Lookup(norm); ok {
			s.log.Debug().Str("candidate", cand.Text).Str("journal", entry.Title).Msg("exact match")
			return Result{Journal: entry.Title, Candidate: cand.Text, Score: 100, Type: MatchExact}, true
		}

		// Tier 2: containment over index keys.
		result, ok := s.bestContainment(norm, cand.Text)
		if ok && better(result) {
			best, found = result, true
		}

		// Tier 3: bounded fuzzy, only when tiers 1-2 stayed weak.
		if !ok || result.Score <= s.cfg.FuzzyTrigger {
			fuzzy, _, hit := s.bestFuzzy(norm, cand.Text)
			if hit && better(fuzzy) {
				best, found = fuzzy, true
			}
		}
	}

	if found {
		s.log.Debug().
			Str("journal", best.Journal).
			Str("type", best.Type.String()).
			Float64("score", best.Score).
			Msg("best match selected")
	}
	return best, found
}

// bestContainment scans index keys for substring relations with the
// candidate. Keys are visited in sorted order so equal-scoring matches
// resolve the same way on every run.
func (s *Scorer) bestContainment(norm, candText string) (Result, bool) {
	var best Result
	found := false
	for _, key := range s.keys {
		var score float64
		var mt MatchType
		switch {
		case len(key) > s.cfg.MinContainmentLen && strings.Contains(norm, key):
			ratio := float64(len(key)) / float64(len(norm))
			score = containsCap * ratio
			if score > containsCap {
				score = containsCap
			}
			mt = MatchContains
		case len(norm) > s.cfg.MinContainmentLen && strings.Contains(key, norm):
			ratio := float64(len(norm)) / float64(len(key))
			score = substringCap * ratio
			if score > substringCap {
				score = substringCap
			}
			mt = MatchSubstring
		default:
			continue
		}
		if !found || score > best.Score {
			best = Result{Journal: s.idx[key].Title, Candidate: candText, Score: score, Type: mt}
			found = true
		}
	}
	return best, found
}

// bestFuzzy runs the two-stage fuzzy tier: the curated priority subset
// first, then a full-catalog scan aborted after MaxFuzzyComparisons.
// Returns the number of similarity computations performed.
func (s *Scorer) bestFuzzy(norm, candText string) (Result, int, bool) {
	comparisons := 0
	if s.cat == nil {
		return Result{}, 0, false
	}

	// Priority subset: well-known families matched with composite
	// similarity, accepted on the first entry above the threshold.
	for _, entry := range s.priority {
		sim := Similarity(norm, entry.Normalized)
		comparisons++
		if sim > s.cfg.PriorityFuzzyAccept {
			return Result{
				Journal:   entry.Title,
				Candidate: candText,
				Score:     fuzzyCap * sim,
				Type:      MatchFuzzy,
			}, comparisons, true
		}
	}

	// Full catalog, scan-abort after the comparison budget.
	var bestEntry *catalog.Entry
	bestSim := 0.0
	scanned := 0
	for i := range s.cat.Entries {
		if scanned >= s.cfg.MaxFuzzyComparisons {
			break
		}
		entry := &s.cat.Entries[i]
		sim := Similarity(norm, entry.Normalized)
		scanned++
		comparisons++
		if sim > bestSim {
			bestSim = sim
			bestEntry = entry
			if bestSim >= s.cfg.StrongFuzzyAccept {
				break
			}
		}
	}

	if bestEntry == nil || bestSim <= s.cfg.FuzzyAccept {
		return Result{}, comparisons, false
	}
	return Result{
		Journal:   bestEntry.Title,
		Candidate: candText,
		Score:     fuzzyCap * bestSim,
		Type:      MatchFuzzy,
	}, comparisons, true
}
