package scraper

import (
	"os"
	"testing"

	"github.com/pfrederiksen/county-brands/internal/browser"
)

// TestExtractRecordsFixture runs extraction over a saved results page, the
// same path the offline mode uses.
func TestExtractRecordsFixture(t *testing.T) {
	f, err := os.Open("../../testdata/fixtures/search_results.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	defer f.Close() // nolint:errcheck

	page, err := browser.NewStaticPage(f, testResultsURL)
	if err != nil {
		t.Fatal(err)
	}

	s := New(page, testConfig())
	records := s.ExtractRecords()

	if len(records) != 3 {
		t.Fatalf("expected 3 records from fixture, got %d", len(records))
	}

	// The pager row (index 3, one cell) is dropped; survivors keep their
	// table positions.
	wantRows := []int{2, 3, 5}
	for i, want := range wantRows {
		if records[i].RowNumber != want {
			t.Errorf("record %d: expected row number %d, got %d", i, want, records[i].RowNumber)
		}
	}

	first := records[0]
	if first.InstrumentNumber != "2024-012345" || first.DocType != "BRAND" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.Grantee != "" {
		t.Errorf("nbsp grantee should normalize to empty, got %q", first.Grantee)
	}

	for _, r := range records {
		if len(r.RawData) != 6 {
			t.Errorf("row %d: expected 6 raw cells, got %d", r.RowNumber, len(r.RawData))
		}
	}
}
