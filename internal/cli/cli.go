package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/pfrederiksen/county-brands/internal/browser"
	"github.com/pfrederiksen/county-brands/internal/logger"
	"github.com/pfrederiksen/county-brands/internal/record"
	"github.com/pfrederiksen/county-brands/internal/scraper"
	"github.com/pfrederiksen/county-brands/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitInterrupted = 130
)

var (
	flagCSVPath   string
	flagJSONLPath string
	flagInputFile string
	flagHeadless  bool
	flagVerbose   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "county-brands",
		Short: "Scrape BRAND document records from the Fort Bend County clerk site",
		Long: `Drives the Fort Bend County real estate records search, filters for BRAND
documents, and saves the results table to CSV and JSONL files.
Both output files are overwritten on every run.`,
		RunE: runScrape,
	}

	// Define flags
	cmd.Flags().StringVar(&flagCSVPath, "csv", storage.DefaultCSVPath, "CSV output path")
	cmd.Flags().StringVar(&flagJSONLPath, "jsonl", storage.DefaultJSONLPath, "JSONL output path")
	cmd.Flags().StringVar(&flagInputFile, "input-file", "", "Extract from a saved results HTML file instead of the live site")
	cmd.Flags().BoolVar(&flagHeadless, "headless", true, "Run the browser headless")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		records []*record.Record
		err     error
	)
	if flagInputFile != "" {
		records, err = extractFromFile(flagInputFile)
	} else {
		records, err = scrapeLive(ctx)
	}
	if err != nil {
		return err
	}

	// Persistence failures are per-format and non-fatal: the run already
	// has its records and the other format may have been written.
	store := storage.New(flagCSVPath, flagJSONLPath)
	if saveErr := store.Save(records); saveErr != nil {
		logger.Warn("Some outputs failed to write", logger.Fields{"error": saveErr.Error()})
	}

	fmt.Printf("Scraping complete! Found %d records.\n", len(records))
	return nil
}

// scrapeLive runs the full browser workflow. The browser is closed on every
// exit path, including interrupts.
func scrapeLive(ctx context.Context) ([]*record.Record, error) {
	chromium, err := browser.LaunchChromium(flagHeadless)
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}
	defer func() {
		if closeErr := chromium.Close(); closeErr != nil {
			logger.Warn("Closing browser failed", logger.Fields{"error": closeErr.Error()})
		}
	}()

	page, err := chromium.NewPage()
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	return scraper.New(page, scraper.DefaultConfig()).Run(ctx)
}

// extractFromFile parses a saved results page and runs only the extraction
// step against it.
func extractFromFile(path string) ([]*record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close() // nolint:errcheck

	page, err := browser.NewStaticPage(f, "file://"+path)
	if err != nil {
		return nil, fmt.Errorf("parsing input file: %w", err)
	}

	logger.Info("Extracting from saved page", logger.Fields{"path": path})
	return scraper.New(page, scraper.DefaultConfig()).ExtractRecords(), nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Scraping interrupted by user")
			os.Exit(ExitInterrupted)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
