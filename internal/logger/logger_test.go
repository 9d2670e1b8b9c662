package logger

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"
)

func TestLogger_Log(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "log-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) // nolint:errcheck
	defer tmpFile.Close()           // nolint:errcheck

	logger := New(LevelInfo, tmpFile)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "test message",
			fields:  Fields{"key": "value"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false, // won't log (below INFO)
		},
		{
			name:    "warn message",
			level:   LevelWarn,
			message: "soft failure",
			fields:  Fields{"row": 3},
			want:    true,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "error occurred",
			err:     errors.New("test error"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := tmpFile.Seek(0, 2)

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			after, _ := tmpFile.Seek(0, 2)
			logged := after > before

			if logged != tt.want {
				t.Errorf("logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "log-json-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) // nolint:errcheck
	defer tmpFile.Close()           // nolint:errcheck

	logger := New(LevelInfo, tmpFile)
	logger.Error("scrape failed", Fields{"url": "https://example.com"}, errors.New("boom"))

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		t.Fatal(err)
	}

	var entry LogEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}

	if entry.Level != string(LevelError) {
		t.Errorf("expected level ERROR, got %s", entry.Level)
	}
	if entry.Message != "scrape failed" {
		t.Errorf("unexpected message: %q", entry.Message)
	}
	if entry.Error != "boom" {
		t.Errorf("unexpected error field: %q", entry.Error)
	}
	if entry.Fields["url"] != "https://example.com" {
		t.Errorf("unexpected fields: %v", entry.Fields)
	}
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("records.parsed")
	m.IncrCounter("records.parsed")
	m.IncrCounter("rows.skipped")

	snapshot := m.GetSnapshot()
	counters := snapshot["counters"].(map[string]int64)

	if counters["records.parsed"] != 2 {
		t.Errorf("expected records.parsed = 2, got %d", counters["records.parsed"])
	}
	if counters["rows.skipped"] != 1 {
		t.Errorf("expected rows.skipped = 1, got %d", counters["rows.skipped"])
	}
}

func TestMetrics_Timings(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("scrape.run", 100*time.Millisecond)
	m.RecordTiming("scrape.run", 300*time.Millisecond)

	snapshot := m.GetSnapshot()
	timings := snapshot["timings"].(map[string]map[string]interface{})

	stats, ok := timings["scrape.run"]
	if !ok {
		t.Fatal("expected scrape.run timing stats")
	}
	if stats["count"] != 2 {
		t.Errorf("expected count 2, got %v", stats["count"])
	}
	if stats["min"] != "100ms" {
		t.Errorf("expected min 100ms, got %v", stats["min"])
	}
	if stats["max"] != "300ms" {
		t.Errorf("expected max 300ms, got %v", stats["max"])
	}
	if stats["average"] != "200ms" {
		t.Errorf("expected average 200ms, got %v", stats["average"])
	}
}
