package scraper

import (
	"strings"
	"time"

	"github.com/pfrederiksen/county-brands/internal/browser"
	"github.com/pfrederiksen/county-brands/internal/logger"
)

// WaitForResults brackets the server-side search by waiting for the
// "Searching for records" indicator to appear then disappear, lets the
// client-side render settle, and confirms arrival by URL. A first miss gets
// one more bounded wait and re-check. The return value is purely "did we
// arrive": wait failures (indicator never shown, page closed mid-wait) are
// logged and the URL check decides, since arrival is still derivable from
// the URL alone.
func (s *Scraper) WaitForResults() bool {
	if _, err := s.page.WaitForSelector(s.cfg.IndicatorSelector, s.cfg.IndicatorAppearTimeout, browser.StateVisible); err != nil {
		logger.Debug("Search indicator never appeared", logger.Fields{"error": err.Error()})
	} else if _, err := s.page.WaitForSelector(s.cfg.IndicatorSelector, s.cfg.IndicatorDisappearTimeout, browser.StateHidden); err != nil {
		logger.Debug("Search indicator did not clear", logger.Fields{"error": err.Error()})
	}

	time.Sleep(s.cfg.ResultsSettleDelay)
	if s.onResultsPage() {
		logger.Info("Reached results page", logger.Fields{"url": s.page.URL()})
		return true
	}

	time.Sleep(s.cfg.URLRecheckDelay)
	if s.onResultsPage() {
		logger.Info("Reached results page after additional wait", logger.Fields{"url": s.page.URL()})
		return true
	}

	return false
}

func (s *Scraper) onResultsPage() bool {
	return strings.Contains(s.page.URL(), s.cfg.ResultsURLFragment)
}
