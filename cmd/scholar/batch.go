package main

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/holdon1221/ScholarSite/internal/config"
	"github.com/holdon1221/ScholarSite/internal/resolve"
	"github.com/holdon1221/ScholarSite/internal/storage"
)

func init() {
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Resolve every .txt/.pdf under a directory into the results store",
	Long: `Resolve every .txt and .pdf document under a directory.

Results are upserted into the SQLite store (store_path in the config,
SCHOLAR_STORE to override) keyed by document path, so re-running a batch
refreshes rather than duplicates.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

type batchOutput struct {
	Processed int             `json:"processed"`
	Failed    int             `json:"failed"`
	Summary   storage.Summary `json:"summary"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	logger := newLogger(cfg)
	resolver := buildResolver(cfg, logger)

	db, err := storage.Open(cfg.StorePath)
	if err != nil {
		exitWithError(ExitDataError, "opening results store: %v", err)
	}
	defer db.Close()

	var out batchOutput
	walkErr := filepath.WalkDir(args[0], func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".txt" && ext != ".pdf" {
			return nil
		}

		res, rerr := resolveDocument(resolver, path)
		if rerr != nil {
			logger.Warn().Err(rerr).Str("path", path).Msg("document failed")
			out.Failed++
			return nil
		}
		if serr := db.Save(res); serr != nil {
			return serr
		}
		out.Processed++
		if humanOutput {
			outputHuman("%-10s %s -> %s\n", res.MatchType, path, res.Journal)
		}
		return nil
	})
	if walkErr != nil {
		exitWithError(ExitDataError, "walking %s: %v", args[0], walkErr)
	}

	summary, err := db.Summarize(resolve.UnknownJournal)
	if err != nil {
		exitWithError(ExitDataError, "summarizing results: %v", err)
	}
	out.Summary = summary

	if humanOutput {
		outputHuman("processed %d, failed %d, stored %d (%d unknown)\n",
			out.Processed, out.Failed, summary.Total, summary.Unknown)
		return nil
	}
	return outputJSON(out)
}
