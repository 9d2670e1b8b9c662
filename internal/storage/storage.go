package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pfrederiksen/county-brands/internal/logger"
	"github.com/pfrederiksen/county-brands/internal/record"
)

// Default output paths, relative to the working directory.
const (
	DefaultCSVPath   = "fort_bend_brands.csv"
	DefaultJSONLPath = "fort_bend_brands.jsonl"
)

// Storage writes records to a CSV file and a JSONL file.
type Storage struct {
	csvPath   string
	jsonlPath string
}

// New creates a Storage writing to the given paths. Empty paths fall back
// to the defaults.
func New(csvPath, jsonlPath string) *Storage {
	if csvPath == "" {
		csvPath = DefaultCSVPath
	}
	if jsonlPath == "" {
		jsonlPath = DefaultJSONLPath
	}
	return &Storage{
		csvPath:   csvPath,
		jsonlPath: jsonlPath,
	}
}

// Save writes records to both output formats. An empty record list is a
// logged no-op. Each format's write failure is logged and folded into the
// returned error, but never blocks the other format; callers treat a
// non-nil return as a warning, not a run failure.
func (s *Storage) Save(records []*record.Record) error {
	if len(records) == 0 {
		logger.Info("No records to save", nil)
		return nil
	}

	logger.Info("Saving records", logger.Fields{"count": len(records)})

	var errs []error

	if err := s.writeCSV(records); err != nil {
		logger.Error("Saving CSV failed", logger.Fields{"path": s.csvPath}, err)
		errs = append(errs, fmt.Errorf("writing CSV: %w", err))
	} else {
		logger.Info("Saved CSV", logger.Fields{"path": s.csvPath})
	}

	if err := s.writeJSONL(records); err != nil {
		logger.Error("Saving JSONL failed", logger.Fields{"path": s.jsonlPath}, err)
		errs = append(errs, fmt.Errorf("writing JSONL: %w", err))
	} else {
		logger.Info("Saved JSONL", logger.Fields{"path": s.jsonlPath})
	}

	return errors.Join(errs...)
}

// writeCSV writes the row-oriented table. The header is the record's field
// names in declared order; raw_data is serialized as a JSON array string in
// its cell so it survives the round trip through a single CSV field.
func (s *Storage) writeCSV(records []*record.Record) error {
	f, err := os.Create(s.csvPath)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close() // nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.Write(record.FieldNames()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range records {
		row, err := csvRow(r)
		if err != nil {
			return fmt.Errorf("encoding row %d: %w", r.RowNumber, err)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", r.RowNumber, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing: %w", err)
	}
	return f.Close()
}

// writeJSONL writes one JSON object per record per line.
func (s *Storage) writeJSONL(records []*record.Record) error {
	f, err := os.Create(s.jsonlPath)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close() // nolint:errcheck

	enc := json.NewEncoder(f)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding record %d: %w", r.RowNumber, err)
		}
	}
	return f.Close()
}

// csvRow converts a record to CSV cells in FieldNames order.
func csvRow(r *record.Record) ([]string, error) {
	raw, err := json.Marshal(r.RawData)
	if err != nil {
		return nil, err
	}
	return []string{
		strconv.Itoa(r.RowNumber),
		r.InstrumentNumber,
		r.Date,
		r.DocType,
		r.Grantor,
		r.Grantee,
		r.LegalDescription,
		string(raw),
	}, nil
}
