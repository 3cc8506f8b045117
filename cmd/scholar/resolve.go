package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/holdon1221/ScholarSite/internal/config"
	"github.com/holdon1221/ScholarSite/internal/pdfio"
	"github.com/holdon1221/ScholarSite/internal/resolve"
	"github.com/holdon1221/ScholarSite/internal/storage"
	"github.com/holdon1221/ScholarSite/internal/textproc"
)

var resolvePages int

func init() {
	resolveCmd.Flags().IntVar(&resolvePages, "pages", pdfio.DefaultMaxPages, "Pages to read from PDF input")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Short: "Resolve the journal and title for one document",
	Long: `Resolve the journal and paper title for one document.

The input is either a .txt file produced by the extraction pipeline or a
born-digital .pdf read directly.

Examples:
  scholar resolve paper.txt
  scholar resolve paper.pdf --pages 3
  scholar resolve paper.txt --human`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	logger := newLogger(cfg)
	resolver := buildResolver(cfg, logger)

	res, err := resolveDocument(resolver, args[0])
	if err != nil {
		exitWithError(ExitDataError, "resolving %s: %v", args[0], err)
	}

	if humanOutput {
		outputHuman("Journal:   %s\n", res.Journal)
		outputHuman("Title:     %s\n", res.Title)
		outputHuman("Match:     %s (score %.1f)\n", res.MatchType, res.Score)
		if res.DOI != "" {
			outputHuman("DOI:       %s\n", res.DOI)
		}
		return nil
	}
	return outputJSON(res)
}

// readDocument loads text from a .txt or .pdf path.
func readDocument(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return pdfio.ExtractText(path, resolvePages)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	return string(data), nil
}

// resolveDocument runs the full per-document pipeline and packages the
// result for output or storage.
func resolveDocument(resolver *resolve.Resolver, path string) (storage.Resolution, error) {
	text, err := readDocument(path)
	if err != nil {
		return storage.Resolution{}, err
	}
	lines := textproc.SplitLines(text)

	res := storage.Resolution{
		Path:       path,
		Journal:    resolve.UnknownJournal,
		MatchType:  "none",
		DOI:        pdfio.FindDOI(text),
		ResolvedAt: time.Now().UTC(),
	}
	if m, ok := resolver.ResolveJournalMatch(text, lines); ok {
		res.Journal = m.Journal
		res.Candidate = m.Candidate
		res.MatchType = m.Type.String()
		res.Score = m.Score
	}
	res.Title = resolver.ResolveTitle(text, lines)
	return res, nil
}
