// Package pdfio extracts text and identifiers from born-digital PDFs so
// documents with a real text layer skip the external OCR step.
package pdfio

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxPages bounds extraction: journal and title evidence lives on
// the first pages, and references near the front matter of each.
const DefaultMaxPages = 5

// doiPattern: 10.<registrant>/<suffix>, trailing punctuation trimmed later.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// ExtractText pulls plain text from the first maxPages pages of a PDF.
// maxPages <= 0 means DefaultMaxPages.
func ExtractText(path string, maxPages int) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if maxPages > r.NumPage() {
		maxPages = r.NumPage()
	}

	var b strings.Builder
	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // a bad page doesn't spoil the document
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// FindDOI returns the first plausible DOI in a block of text, or "".
func FindDOI(text string) string {
	for _, m := range doiPattern.FindAllString(text, -1) {
		m = strings.TrimRight(m, ".,;:)")
		if validDOI(m) {
			return m
		}
	}
	return ""
}

func validDOI(doi string) bool {
	if len(doi) < 10 || !strings.HasPrefix(doi, "10.") {
		return false
	}
	slash := strings.Index(doi, "/")
	return slash > 0 && slash < len(doi)-1
}
