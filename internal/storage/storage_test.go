package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleResolution(path string) Resolution {
	return Resolution{
		Path:       path,
		Journal:    "Journal of Theoretical Biology",
		Title:      "Effect of Vaccination on Transmission",
		Candidate:  "Journal of Theoretical Biology",
		MatchType:  "exact",
		Score:      100,
		DOI:        "10.1016/j.jtbi.2024.01.001",
		ResolvedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndGet(t *testing.T) {
	db := openTestDB(t)

	want := sampleResolution("papers/a.txt")
	if err := db.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := db.Get("papers/a.txt")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected a stored resolution")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestGetMissing(t *testing.T) {
	db := openTestDB(t)

	_, ok, err := db.Get("nope.txt")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected no result for unknown path")
	}
}

func TestSaveUpsert(t *testing.T) {
	db := openTestDB(t)

	r := sampleResolution("papers/a.txt")
	if err := db.Save(r); err != nil {
		t.Fatal(err)
	}
	r.Journal = "Physical Review Letters"
	r.MatchType = "fuzzy"
	r.Score = 72.5
	if err := db.Save(r); err != nil {
		t.Fatal(err)
	}

	results, err := db.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d rows, want 1 after upsert", len(results))
	}
	if results[0].Journal != "Physical Review Letters" {
		t.Errorf("journal = %q, upsert did not overwrite", results[0].Journal)
	}
}

func TestListOrdered(t *testing.T) {
	db := openTestDB(t)

	for _, p := range []string{"c.txt", "a.txt", "b.txt"} {
		if err := db.Save(sampleResolution(p)); err != nil {
			t.Fatal(err)
		}
	}
	results, err := db.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d rows, want 3", len(results))
	}
	for i, want := range []string{"a.txt", "b.txt", "c.txt"} {
		if results[i].Path != want {
			t.Errorf("row %d = %q, want %q", i, results[i].Path, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	db := openTestDB(t)

	exact := sampleResolution("a.txt")
	fuzzy := sampleResolution("b.txt")
	fuzzy.MatchType = "fuzzy"
	fuzzy.Score = 75
	unknown := sampleResolution("c.txt")
	unknown.Journal = "Unknown Journal"
	unknown.MatchType = "none"
	unknown.Score = 0

	for _, r := range []Resolution{exact, fuzzy, unknown} {
		if err := db.Save(r); err != nil {
			t.Fatal(err)
		}
	}

	s, err := db.Summarize("Unknown Journal")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.Total != 3 {
		t.Errorf("total = %d, want 3", s.Total)
	}
	if s.Unknown != 1 {
		t.Errorf("unknown = %d, want 1", s.Unknown)
	}
	if s.ByMatchType["exact"] != 1 || s.ByMatchType["fuzzy"] != 1 || s.ByMatchType["none"] != 1 {
		t.Errorf("by match type = %v", s.ByMatchType)
	}
}
