package main

import (
	"github.com/spf13/cobra"

	"github.com/holdon1221/ScholarSite/internal/config"
	"github.com/holdon1221/ScholarSite/internal/storage"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored batch resolution results",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	db, err := storage.Open(cfg.StorePath)
	if err != nil {
		exitWithError(ExitDataError, "opening results store: %v", err)
	}
	defer db.Close()

	results, err := db.List()
	if err != nil {
		exitWithError(ExitDataError, "listing results: %v", err)
	}

	if humanOutput {
		for _, r := range results {
			outputHuman("%-10s %5.1f  %s\n           %s\n", r.MatchType, r.Score, r.Journal, r.Path)
		}
		outputHuman("%d results\n", len(results))
		return nil
	}
	return outputJSON(results)
}
