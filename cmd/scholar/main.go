// Package main provides the scholar CLI entry point.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/holdon1221/ScholarSite/internal/catalog"
	"github.com/holdon1221/ScholarSite/internal/config"
	"github.com/holdon1221/ScholarSite/internal/resolve"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// verbose raises the log level to debug
var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scholar",
	Short: "Resolve journal and paper titles from noisy extracted text",
	Long: `scholar resolves which journal (from a reference catalog) and what
paper title a block of OCR-extracted text corresponds to.

It ingests plain text produced by the extraction pipeline, or reads
born-digital PDFs directly, and outputs JSON by default for easy
integration with the surrounding tooling.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Version = Version
}

// newLogger builds the CLI logger honoring the configured level and the
// --verbose flag.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// buildResolver loads the catalog named by the config and constructs the
// shared Resolver. A failed catalog load is logged and degrades to an
// empty catalog rather than aborting.
func buildResolver(cfg *config.Config, logger zerolog.Logger) *resolve.Resolver {
	var cat *catalog.Catalog
	if cfg.CatalogPath == "" {
		logger.Warn().Msg("no catalog configured, journal matching degraded to heuristics")
		cat, _ = catalog.Load("")
	} else {
		var err error
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.CatalogPath).Msg("catalog load failed, continuing degraded")
		}
	}
	return resolve.New(cat, cfg.Match, logger)
}
