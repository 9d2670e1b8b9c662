package cli

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pfrederiksen/county-brands/internal/record"
)

const fixturePath = "../../testdata/fixtures/search_results.html"

func TestRootCmdFlags(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"csv", "jsonl", "input-file", "headless", "verbose"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s to be defined", name)
		}
	}

	if cmd.Flags().Lookup("headless").DefValue != "true" {
		t.Error("headless should default to true")
	}
}

func TestOfflineExtraction(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "brands.csv")
	jsonlPath := filepath.Join(dir, "brands.jsonl")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{
		"--input-file", fixturePath,
		"--csv", csvPath,
		"--jsonl", jsonlPath,
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("offline extraction failed: %v", err)
	}

	f, err := os.Open(jsonlPath)
	if err != nil {
		t.Fatalf("JSONL output not written: %v", err)
	}
	defer f.Close() // nolint:errcheck

	var records []*record.Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var r record.Record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			t.Fatalf("invalid JSONL line: %v", err)
		}
		records = append(records, &r)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records from fixture, got %d", len(records))
	}
	if records[0].DocType != "BRAND" {
		t.Errorf("unexpected record: %+v", records[0])
	}

	if _, err := os.Stat(csvPath); err != nil {
		t.Errorf("CSV output not written: %v", err)
	}
}

func TestOfflineExtractionMissingFile(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--input-file", filepath.Join(t.TempDir(), "nope.html")})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}
