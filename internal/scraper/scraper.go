package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/pfrederiksen/county-brands/internal/browser"
	"github.com/pfrederiksen/county-brands/internal/logger"
	"github.com/pfrederiksen/county-brands/internal/record"
)

const (
	SearchEntryURL     = "https://ccweb.co.fort-bend.tx.us/RealEstate/SearchEntry.aspx"
	ResultsURLFragment = "SearchResults.aspx"

	// BrandCheckboxSelector is the document-type checkbox for BRAND records
	// on the search entry form.
	BrandCheckboxSelector = "#cphNoMargin_f_dclDocType_14"

	// SearchingIndicatorSelector matches the transient modal shown while the
	// server runs the search.
	SearchingIndicatorSelector = "text=Searching for records"
)

// Config holds the endpoints, selectors, timeouts and settle delays for a
// run. The durations have no semantic meaning beyond matching the source
// site's observed behavior; tune them as needed.
type Config struct {
	EntryURL           string
	ResultsURLFragment string
	CheckboxSelector   string
	IndicatorSelector  string

	CheckboxTimeout           time.Duration
	IndicatorAppearTimeout    time.Duration
	IndicatorDisappearTimeout time.Duration
	TableTimeout              time.Duration

	CheckboxSettleDelay time.Duration
	ResultsSettleDelay  time.Duration
	URLRecheckDelay     time.Duration
}

// DefaultConfig returns the production configuration for the Fort Bend
// County site.
func DefaultConfig() Config {
	return Config{
		EntryURL:           SearchEntryURL,
		ResultsURLFragment: ResultsURLFragment,
		CheckboxSelector:   BrandCheckboxSelector,
		IndicatorSelector:  SearchingIndicatorSelector,

		CheckboxTimeout:           10 * time.Second,
		IndicatorAppearTimeout:    5 * time.Second,
		IndicatorDisappearTimeout: 60 * time.Second,
		TableTimeout:              10 * time.Second,

		CheckboxSettleDelay: 2 * time.Second,
		ResultsSettleDelay:  3 * time.Second,
		URLRecheckDelay:     5 * time.Second,
	}
}

// Scraper runs the search workflow against a single page.
type Scraper struct {
	page browser.Page
	cfg  Config
}

// New creates a Scraper bound to page.
func New(page browser.Page, cfg Config) *Scraper {
	return &Scraper{page: page, cfg: cfg}
}

// Run executes the full workflow: navigate, select the BRAND filter, submit
// the search, wait for results, extract records. Persistence is the
// caller's job. A context cancellation between steps aborts the run with the
// context's error; a missing form control aborts with ErrControlNotFound.
// Not reaching the results page is a warning only: extraction still runs
// against whatever page is current.
func (s *Scraper) Run(ctx context.Context) ([]*record.Record, error) {
	start := time.Now()

	logger.Info("Navigating to search page", logger.Fields{"url": s.cfg.EntryURL})
	if err := s.page.Goto(s.cfg.EntryURL); err != nil {
		return nil, fmt.Errorf("navigating to search page: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.SelectBrandFilter()
	if err != nil {
		return nil, fmt.Errorf("selecting BRAND filter: %w", err)
	}
	if result.Status == StatusSkipped {
		logger.Warn("BRAND selection may not have registered", logger.Fields{"reason": result.Reason})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.SubmitSearch(); err != nil {
		return nil, fmt.Errorf("submitting search: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !s.WaitForResults() {
		logger.Warn("Results page not confirmed, extracting from current page", logger.Fields{
			"url": s.page.URL(),
		})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := s.ExtractRecords()

	logger.RecordTiming("scrape.run", time.Since(start))
	logger.Info("Scrape complete", logger.Fields{"records": len(records)})
	return records, nil
}
