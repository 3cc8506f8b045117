package main

import (
	"github.com/spf13/cobra"

	"github.com/holdon1221/ScholarSite/internal/catalog"
	"github.com/holdon1221/ScholarSite/internal/config"
)

func init() {
	catalogCmd.AddCommand(catalogInfoCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the reference journal catalog",
}

var catalogInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show catalog and index statistics",
	Args:  cobra.NoArgs,
	RunE:  runCatalogInfo,
}

type catalogInfo struct {
	Path      string   `json:"path"`
	Entries   int      `json:"entries"`
	IndexKeys int      `json:"index_keys"`
	Keywords  int      `json:"keywords"`
	Patterns  []string `json:"patterns"`
	LoadError string   `json:"load_error,omitempty"`
}

func runCatalogInfo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	cat, loadErr := catalog.Load(cfg.CatalogPath)
	idx := catalog.BuildIndex(cat)

	info := catalogInfo{
		Path:      cfg.CatalogPath,
		Entries:   len(cat.Entries),
		IndexKeys: len(idx),
		Keywords:  len(cat.Keywords),
		Patterns:  cat.Patterns,
	}
	if loadErr != nil {
		info.LoadError = loadErr.Error()
	}

	if humanOutput {
		outputHuman("catalog:    %s\n", info.Path)
		outputHuman("entries:    %d\n", info.Entries)
		outputHuman("index keys: %d\n", info.IndexKeys)
		outputHuman("keywords:   %d\n", info.Keywords)
		if info.LoadError != "" {
			outputHuman("load error: %s\n", info.LoadError)
		}
		return nil
	}
	return outputJSON(info)
}
