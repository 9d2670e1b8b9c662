package scraper

import (
	"fmt"
	"time"

	"github.com/pfrederiksen/county-brands/internal/browser"
	"github.com/pfrederiksen/county-brands/internal/logger"
)

// submitStrategy is one candidate way to locate the search submit control.
// Strategies are tried in priority order; the first whose selector matches
// anything on the page wins.
type submitStrategy struct {
	name     string
	selector string
}

// The site's markup is not under our control, so no single selector is
// guaranteed present. Keyboard Enter is the fallback when none match.
var submitStrategies = []submitStrategy{
	{"submit input", `input[type='submit'][value*='Search']`},
	{"button text", `button:has-text("Search")`},
	{"button input", `input[type='button'][value*='Search']`},
	{"exact value", `input[value='Search']`},
}

// SelectBrandFilter ensures the BRAND document-type checkbox is checked.
// A checkbox that never attaches is fatal (ErrControlNotFound). An already
// checked box returns immediately. After clicking, the checked state is
// re-read once the settle delay has passed; if it still reads unchecked the
// selection may register later on the site's own scripts, so the step
// reports StatusSkipped rather than failing the run.
func (s *Scraper) SelectBrandFilter() (StepResult, error) {
	checkbox, err := s.page.WaitForSelector(s.cfg.CheckboxSelector, s.cfg.CheckboxTimeout, browser.StateAttached)
	if err != nil || checkbox == nil {
		return fatal("checkbox not found"), fmt.Errorf("%w: %s", ErrControlNotFound, s.cfg.CheckboxSelector)
	}

	checked, err := checkbox.IsChecked()
	if err != nil {
		return fatal("checkbox state unreadable"), fmt.Errorf("reading checkbox state: %w", err)
	}
	if checked {
		logger.Info("BRAND already selected", nil)
		return ok(), nil
	}

	if err := checkbox.Click(); err != nil {
		return fatal("checkbox click failed"), fmt.Errorf("clicking checkbox: %w", err)
	}
	logger.Info("BRAND selected", nil)

	// The form runs async postback scripts after the click; give them a
	// moment before verifying.
	time.Sleep(s.cfg.CheckboxSettleDelay)

	checked, err = checkbox.IsChecked()
	if err != nil {
		return skipped("checkbox state unreadable after click"), nil
	}
	if !checked {
		return skipped("checkbox still unchecked after settle delay"), nil
	}
	return ok(), nil
}

// SubmitSearch submits the search form, trying each submit strategy in
// order and falling back to a keyboard Enter when no selector matches.
func (s *Scraper) SubmitSearch() error {
	for _, strat := range submitStrategies {
		elements, err := s.page.QueryAll(strat.selector)
		if err != nil || len(elements) == 0 {
			continue
		}
		if err := s.page.Click(strat.selector); err != nil {
			return fmt.Errorf("clicking search button (%s): %w", strat.name, err)
		}
		logger.Info("Search submitted", logger.Fields{"strategy": strat.name})
		return nil
	}

	if err := s.page.PressKey("Enter"); err != nil {
		return fmt.Errorf("submitting via Enter key: %w", err)
	}
	logger.Info("Search submitted", logger.Fields{"strategy": "enter key"})
	return nil
}
