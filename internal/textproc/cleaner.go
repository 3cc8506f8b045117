// Package textproc repairs common OCR and PDF-extraction artifacts in
// scanned-paper text before any matching is attempted.
package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

// Cleaner holds precompiled patterns for OCR artifact repair.
// A single Cleaner is safe for concurrent use; it has no mutable state.
type Cleaner struct {
	reHyphenBreak  *regexp.Regexp
	reCamelRun     *regexp.Regexp
	reStrayChar    *regexp.Regexp
	reMultiSpace   *regexp.Regexp
	reSpacedLetter *regexp.Regexp
}

// NewCleaner creates a Cleaner with all patterns precompiled.
func NewCleaner() *Cleaner {
	return &Cleaner{
		// Rejoin words split across lines: "infor-\n mation" -> "information"
		reHyphenBreak: regexp.MustCompile(`([a-z])-\s*\n\s*([a-z])`),

		// Stuck-together words from lost whitespace: "JournalOf" -> "Journal Of"
		reCamelRun: regexp.MustCompile(`([a-z])([A-Z])`),

		// Stray single lowercase letters next to a capitalized word are a
		// common OCR misread of specks and ligature fragments. "a" and "i"
		// are real words and are kept.
		reStrayChar: regexp.MustCompile(`(^|\s)[b-hj-z]\s+([A-Z])`),

		reMultiSpace: regexp.MustCompile(`[ \t]{2,}`),

		// Runs of single letters separated by single spaces,
		// e.g. "E f f e c t" from letter-spaced headings.
		reSpacedLetter: regexp.MustCompile(`\b(?:[A-Za-z] ){2,}[A-Za-z]\b`),
	}
}

// Preprocess repairs extraction artifacts in a block of raw text.
// The output keeps line structure but normalizes intra-line whitespace.
func (c *Cleaner) Preprocess(text string) string {
	if text == "" {
		return ""
	}
	out := c.reHyphenBreak.ReplaceAllString(text, "$1$2")
	out = c.reCamelRun.ReplaceAllString(out, "$1 $2")
	out = c.reStrayChar.ReplaceAllString(out, "$1$2")
	out = strings.ReplaceAll(out, " ", " ")
	out = c.reMultiSpace.ReplaceAllString(out, " ")
	return out
}

// CleanLine normalizes a single line: trims, collapses whitespace, and
// drops control runes left over from extraction.
func (c *Cleaner) CleanLine(line string) string {
	line = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, line)
	line = c.reMultiSpace.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}

// CleanTitle applies the title-specific repair pass: de-spacing of
// letter-spaced headings, doubled-word removal, and whitespace collapse.
func (c *Cleaner) CleanTitle(title string) string {
	out := c.reSpacedLetter.ReplaceAllStringFunc(title, func(run string) string {
		return strings.ReplaceAll(run, " ", "")
	})
	out = dropConsecutiveDuplicates(out)
	out = c.reMultiSpace.ReplaceAllString(out, " ")
	out = strings.TrimSpace(out)
	return NormalizeTitleCase(out)
}

// dropConsecutiveDuplicates removes immediately repeated words
// (case-insensitive), a signature of overlapping OCR regions.
func dropConsecutiveDuplicates(s string) string {
	words := strings.Fields(s)
	if len(words) < 2 {
		return s
	}
	out := words[:1]
	for _, w := range words[1:] {
		if !strings.EqualFold(w, out[len(out)-1]) {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}

// NormalizeTitleCase converts shouting-case titles to title case and
// leaves mixed-case titles untouched.
func NormalizeTitleCase(s string) string {
	letters, uppers := 0, 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
	}
	if letters == 0 || float64(uppers)/float64(letters) < 0.8 {
		return s
	}
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if i > 0 && isMinorWord(w) {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// minorWords are not capitalized in title case unless leading.
var minorWords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "and": true, "or": true, "by": true,
	"with": true, "from": true, "as": true,
}

func isMinorWord(w string) bool {
	return minorWords[strings.Trim(w, ".,:;")]
}

// Normalize lowercases a string, strips surrounding punctuation from each
// word, and collapses whitespace. Both catalog entries and candidates go
// through this before any lookup so that index keys compare cleanly.
func Normalize(s string) string {
	words := strings.Fields(strings.ToLower(s))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, ".,;:()[]{}\"'`!?")
		if w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}

// SplitLines splits text into cleaned, possibly empty lines. Callers that
// already have a line view of the document skip this.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return lines
}
