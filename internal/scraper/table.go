package scraper

import (
	"strings"

	"github.com/pfrederiksen/county-brands/internal/browser"
	"github.com/pfrederiksen/county-brands/internal/logger"
	"github.com/pfrederiksen/county-brands/internal/record"
)

// headerKeywords mark a first row as a header rather than data.
var headerKeywords = []string{"Instrument", "Date", "Doc Type"}

// ExtractRecords locates the results table on the current page and maps its
// data rows into records. Finding no table is an empty result, not an
// error; a row that can't be read is logged and skipped without disturbing
// the rows after it.
func (s *Scraper) ExtractRecords() []*record.Record {
	if _, err := s.page.WaitForSelector("table", s.cfg.TableTimeout, browser.StateAttached); err != nil {
		logger.Warn("No tables appeared on page", logger.Fields{"url": s.page.URL()})
		return nil
	}

	tables, err := s.page.QueryAll("table")
	if err != nil {
		logger.Error("Enumerating tables failed", logger.Fields{"url": s.page.URL()}, err)
		return nil
	}

	table, index := findResultsTable(tables)
	if table == nil {
		logger.Info("No results table found", logger.Fields{"tables_scanned": len(tables)})
		return nil
	}

	rows, err := table.QueryAll("tr")
	if err != nil {
		logger.Error("Enumerating rows failed", logger.Fields{"table_index": index}, err)
		return nil
	}

	start := 0
	if len(rows) > 0 {
		if text, err := rows[0].InnerText(); err == nil && HasHeaderRow(text) {
			start = 1
		}
	}

	logger.Info("Parsing results table", logger.Fields{
		"table_index": index,
		"rows":        len(rows),
		"data_rows":   len(rows) - start,
	})

	records := make([]*record.Record, 0, len(rows)-start)
	for i := start; i < len(rows); i++ {
		cells, err := rowCells(rows[i])
		if err != nil {
			logger.Warn("Skipping unreadable row", logger.Fields{"row": i + 1, "error": err.Error()})
			logger.IncrCounter("rows.skipped")
			continue
		}
		if len(cells) < record.MinCells {
			// Decorative or spanning row, not data.
			logger.IncrCounter("rows.skipped")
			continue
		}
		records = append(records, record.FromCells(i+1, cells))
		logger.IncrCounter("records.parsed")
	}

	return records
}

// findResultsTable scans tables in document order for the first one that
// looks like a data grid: more than one row, a first row at least three
// cells wide, and real text somewhere in its first two data rows. Tables
// failing any check are layout or decoration and are passed over. Returns
// the table and its index, or (nil, -1).
func findResultsTable(tables []browser.Element) (browser.Element, int) {
	for i, table := range tables {
		rows, err := table.QueryAll("tr")
		if err != nil || len(rows) <= 1 {
			continue
		}

		firstRowCells, err := rows[0].QueryAll("td, th")
		if err != nil || len(firstRowCells) < record.MinCells {
			continue
		}

		sample := rows[1:]
		if len(sample) > 2 {
			sample = sample[:2]
		}
		for _, row := range sample {
			cells, err := row.QueryAll("td")
			if err != nil {
				continue
			}
			for _, cell := range cells {
				text, err := cell.InnerText()
				if err != nil {
					continue
				}
				if record.NormalizeCell(text) != "" {
					return table, i
				}
			}
		}
	}
	return nil, -1
}

// HasHeaderRow reports whether a first row's text marks it as a header to
// skip. Pure function of the text: re-running it on the same input always
// yields the same decision.
func HasHeaderRow(firstRowText string) bool {
	for _, keyword := range headerKeywords {
		if strings.Contains(firstRowText, keyword) {
			return true
		}
	}
	return false
}

// rowCells collects a row's td texts, normalized. A single unreadable cell
// degrades to "" rather than failing the row.
func rowCells(row browser.Element) ([]string, error) {
	cells, err := row.QueryAll("td")
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(cells))
	for _, cell := range cells {
		text, err := cell.InnerText()
		if err != nil {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, record.NormalizeCell(text))
	}
	return texts, nil
}
