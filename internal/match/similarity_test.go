package match

import "testing"

func TestSimilarityBounds(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"identical", "journal of theoretical biology", "journal of theoretical biology"},
		{"disjoint", "qqqq zzzz", "journal of physics"},
		{"ocr noise", "journal of theoretlcal biology", "journal of theoretical biology"},
		{"reordered", "letters review physical", "physical review letters"},
		{"empty left", "", "journal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if got < 0 || got > 1 {
				t.Errorf("Similarity(%q, %q) = %v, out of [0,1]", tt.a, tt.b, got)
			}
		})
	}
}

func TestSimilarityIdentical(t *testing.T) {
	if got := Similarity("physical review letters", "physical review letters"); got != 1 {
		t.Errorf("identical strings = %v, want 1", got)
	}
}

func TestSimilarityEmpty(t *testing.T) {
	if got := Similarity("", "anything"); got != 0 {
		t.Errorf("empty string = %v, want 0", got)
	}
}

// A single-character OCR error should stay close to 1 even though the
// word-level Jaccard drops: the blend rescues it.
func TestSimilarityOCRNoise(t *testing.T) {
	got := Similarity("journal of theoretlcal biology", "journal of theoretical biology")
	if got <= 0.7 {
		t.Errorf("near-identical strings = %v, want > 0.7", got)
	}
}

// Word reordering keeps Jaccard and char overlap at 1; the composite
// must stay well above what edit distance alone would give.
func TestSimilarityReordering(t *testing.T) {
	reordered := Similarity("review letters physical", "physical review letters")
	if reordered <= 0.5 {
		t.Errorf("reordered words = %v, want > 0.5", reordered)
	}
}

func TestSimilarityDisjoint(t *testing.T) {
	got := Similarity("qqqq zzzz xxxx", "journal of theoretical biology")
	if got >= 0.5 {
		t.Errorf("unrelated strings = %v, want < 0.5", got)
	}
}
