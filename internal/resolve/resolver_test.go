package resolve

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/holdon1221/ScholarSite/internal/catalog"
	"github.com/holdon1221/ScholarSite/internal/match"
	"github.com/holdon1221/ScholarSite/internal/textproc"
)

func newTestResolver(t *testing.T, titles []string) *Resolver {
	t.Helper()
	csv := "title\n"
	for _, title := range titles {
		csv += "\"" + title + "\"\n"
	}
	cat, err := catalog.Parse(strings.NewReader(csv))
	if err != nil && len(titles) > 0 {
		t.Fatalf("building catalog: %v", err)
	}
	return New(cat, match.DefaultConfig(), zerolog.Nop())
}

func TestResolveJournalExact(t *testing.T) {
	r := newTestResolver(t, []string{"Journal of Theoretical Biology", "Physical Review Letters"})

	text := "Journal of Theoretical Biology, Vol. 450, 2024"
	got := r.ResolveJournal(text, textproc.SplitLines(text))
	if got != "Journal of Theoretical Biology" {
		t.Errorf("ResolveJournal = %q, want Journal of Theoretical Biology", got)
	}

	res, ok := r.ResolveJournalMatch(text, textproc.SplitLines(text))
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Type != match.MatchExact {
		t.Errorf("type = %v, want exact", res.Type)
	}
	if res.Score != 100 {
		t.Errorf("score = %v, want 100", res.Score)
	}
}

func TestResolveJournalAbbreviation(t *testing.T) {
	r := newTestResolver(t, []string{"Physical Review Letters"})

	text := "see Phys. Rev. Lett. 89, 210601 (2002) for details"
	res, ok := r.ResolveJournalMatch(text, textproc.SplitLines(text))
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Journal != "Physical Review Letters" {
		t.Errorf("journal = %q, want Physical Review Letters", res.Journal)
	}
	if res.Score <= 60 {
		t.Errorf("score = %v, want > 60", res.Score)
	}
}

func TestResolveJournalNoMatch(t *testing.T) {
	r := newTestResolver(t, []string{"Journal of Theoretical Biology"})

	text := "It was a bright cold day in April, and the clocks were striking thirteen.\n" +
		"Winston Smith slipped quickly through the glass doors of Victory Mansions."
	if got := r.ResolveJournal(text, textproc.SplitLines(text)); got != UnknownJournal {
		t.Errorf("ResolveJournal = %q, want %q", got, UnknownJournal)
	}
}

func TestResolveJournalEmptyInput(t *testing.T) {
	r := newTestResolver(t, []string{"Journal of Theoretical Biology"})

	if got := r.ResolveJournal("", nil); got != UnknownJournal {
		t.Errorf("empty text = %q, want %q", got, UnknownJournal)
	}
}

func TestResolveJournalEmptyCatalog(t *testing.T) {
	r := newTestResolver(t, nil)

	// Arbitrary non-journal prose must come back as the sentinel.
	text := "Nothing in this paragraph resembles anything academic at all.\n" +
		"It rambles about weather, trains, and breakfast instead."
	if got := r.ResolveJournal(text, textproc.SplitLines(text)); got != UnknownJournal {
		t.Errorf("empty catalog = %q, want %q", got, UnknownJournal)
	}
}

func TestResolveJournalEmptyCatalogHeuristicFallback(t *testing.T) {
	r := newTestResolver(t, nil)

	// With no catalog to match against, a clearly journal-shaped span is
	// still surfaced instead of the sentinel.
	text := "published in Journal of Improbable Results, Vol. 3, 2019"
	res, ok := r.ResolveJournalMatch(text, textproc.SplitLines(text))
	if !ok {
		t.Fatal("expected the heuristic fallback to produce a result")
	}
	if res.Type != match.MatchNone {
		t.Errorf("type = %v, want none", res.Type)
	}
	if !strings.Contains(res.Journal, "Journal of Improbable Results") {
		t.Errorf("journal = %q", res.Journal)
	}
}

func TestResolveJournalDeterministic(t *testing.T) {
	r := newTestResolver(t, []string{"Journal of Applied Physics", "Journal of Applied Mechanics"})

	text := "header line\nJournal of Applied Physcs, Vol. 12, 2020\nmore text"
	lines := textproc.SplitLines(text)
	first := r.ResolveJournal(text, lines)
	second := r.ResolveJournal(text, lines)
	if first != second {
		t.Errorf("not deterministic: %q vs %q", first, second)
	}
}

func TestResolveTitle(t *testing.T) {
	r := newTestResolver(t, nil)

	lines := []string{
		"Contents lists available at ScienceDirect",
		"Effect of Vaccination on COVID-19 Transmission in South Korea",
		"A. Smith, B. Lee",
	}
	got := r.ResolveTitle(strings.Join(lines, "\n"), lines)
	want := "Effect of Vaccination on COVID-19 Transmission in South Korea"
	if got != want {
		t.Errorf("ResolveTitle = %q, want %q", got, want)
	}
}

func TestResolveTitleEmpty(t *testing.T) {
	r := newTestResolver(t, nil)
	if got := r.ResolveTitle("", nil); got != "" {
		t.Errorf("empty input = %q, want empty", got)
	}
}
