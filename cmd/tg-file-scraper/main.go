package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tgscan/tg-file-scraper/internal/config"
	"github.com/tgscan/tg-file-scraper/internal/export"
	"github.com/tgscan/tg-file-scraper/internal/logger"
	"github.com/tgscan/tg-file-scraper/internal/scraper"
	"github.com/tgscan/tg-file-scraper/internal/session"
	"github.com/tgscan/tg-file-scraper/internal/summary"
)

var cfgFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "tg-file-scraper",
		Short: "Scrape file attachments from a Telegram group",
		Long: `Scans a Telegram group or channel for messages carrying file attachments,
filters them by extension and writes the matches to a CSV (optionally JSON)
report with a printed summary.

Credentials come from config.yaml or TGSCRAPER_* environment variables; get
them from https://my.telegram.org/apps.`,
		Example: `  tg-file-scraper --group mtforexeafree --limit 10000
  tg-file-scraper --group https://t.me/mygroup --output files.csv
  tg-file-scraper --group mygroup --types .ex4,.ex5,.zip --json`,
		PersistentPreRun: setupLogging,
		RunE:             runScrape,
		SilenceUsage:     true,
		SilenceErrors:    true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")

	// Logging flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose debugging output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Required flags
	rootCmd.Flags().StringP("group", "g", "", "group username, ID or URL (required)")
	rootCmd.MarkFlagRequired("group")

	// Optional flags
	rootCmd.Flags().IntP("limit", "l", 10000, "max messages to scan")
	rootCmd.Flags().StringP("output", "o", "scraped_files.csv", "output CSV file")
	rootCmd.Flags().StringSliceP("types", "t", nil, "file extensions to look for (default: built-in list)")
	rootCmd.Flags().Bool("json", false, "also export to JSON")
	rootCmd.Flags().String("session", "scraper.session", "telegram session file")

	// Execute
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("Error: %v", err)
		os.Exit(1)
	}
}

// setupLogging configures the logger based on command line flags
func setupLogging(cmd *cobra.Command, args []string) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logger.LevelDebug)
		logger.Debugf("Debug logging enabled")
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor {
		logger.DisableColors()
	}
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := parseConfig(cmd)
	if err != nil {
		return err
	}

	client, err := session.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The session is scoped to Run: connect and disconnect happen on every
	// exit path, so the collector is exported only after a clean walk.
	s := scraper.New(client)
	if err := client.Run(ctx, func(ctx context.Context) error {
		return s.Scrape(ctx, cfg.Group, cfg.Limit, cfg.FileTypes)
	}); err != nil {
		return err
	}
	logger.Infof("Disconnected")

	records := s.Records()
	if err := export.WriteCSV(records, cfg.OutputFile); err != nil {
		return err
	}
	if cfg.ExportJSON {
		if err := export.WriteJSON(records, jsonPath(cfg.OutputFile)); err != nil {
			return err
		}
	}

	summary.Print(os.Stdout, records)
	return nil
}

func parseConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}

	// Command line flags fill the per-run settings
	cfg.Group, _ = cmd.Flags().GetString("group")
	cfg.Limit, _ = cmd.Flags().GetInt("limit")
	cfg.OutputFile, _ = cmd.Flags().GetString("output")
	cfg.FileTypes, _ = cmd.Flags().GetStringSlice("types")
	cfg.ExportJSON, _ = cmd.Flags().GetBool("json")
	cfg.SessionFile, _ = cmd.Flags().GetString("session")
	return cfg, nil
}

// jsonPath swaps the CSV extension for .json, keeping the same base name.
func jsonPath(csvPath string) string {
	return strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".json"
}
