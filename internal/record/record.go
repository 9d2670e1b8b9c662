package record

import "strings"

// Named field positions within a results-table row.
const (
	colInstrumentNumber = 0
	colDate             = 1
	colDocType          = 2
	colGrantor          = 3
	colGrantee          = 4
	colLegalDescription = 5
)

// MinCells is the smallest number of cells a row can have and still be
// treated as a data row. Narrower rows are decorative and are dropped.
const MinCells = 3

// Record represents one row of the county results table.
type Record struct {
	RowNumber        int      `json:"row_number"`
	InstrumentNumber string   `json:"instrument_number"`
	Date             string   `json:"date"`
	DocType          string   `json:"doc_type"`
	Grantor          string   `json:"grantor"`
	Grantee          string   `json:"grantee"`
	LegalDescription string   `json:"legal_description"`
	RawData          []string `json:"raw_data"`
}

// FieldNames returns the record's field names in their fixed output order.
// The CSV header and any column-oriented rendering must use this order.
func FieldNames() []string {
	return []string{
		"row_number",
		"instrument_number",
		"date",
		"doc_type",
		"grantor",
		"grantee",
		"legal_description",
		"raw_data",
	}
}

var cellReplacer = strings.NewReplacer("&nbsp;", " ", " ", " ")

// NormalizeCell converts the "&nbsp;" placeholder the site uses for blank
// cells into a space, then trims surrounding whitespace. Both the literal
// entity text and the decoded non-breaking-space rune are handled, since
// text extraction may yield either.
func NormalizeCell(text string) string {
	return strings.TrimSpace(cellReplacer.Replace(text))
}

// FromCells builds a Record from the already-normalized cell texts of a row.
// rowNumber is the row's 1-based position in the source table, counting any
// header row. Named fields are filled positionally; cells past the sixth are
// kept only in RawData.
func FromCells(rowNumber int, cells []string) *Record {
	r := &Record{
		RowNumber: rowNumber,
		RawData:   cells,
	}
	if len(cells) > colInstrumentNumber {
		r.InstrumentNumber = cells[colInstrumentNumber]
	}
	if len(cells) > colDate {
		r.Date = cells[colDate]
	}
	if len(cells) > colDocType {
		r.DocType = cells[colDocType]
	}
	if len(cells) > colGrantor {
		r.Grantor = cells[colGrantor]
	}
	if len(cells) > colGrantee {
		r.Grantee = cells[colGrantee]
	}
	if len(cells) > colLegalDescription {
		r.LegalDescription = cells[colLegalDescription]
	}
	return r
}

// Fields returns the record's values keyed exactly like FieldNames, with
// RowNumber as an int and RawData as the cell slice.
func (r *Record) Fields() map[string]interface{} {
	return map[string]interface{}{
		"row_number":        r.RowNumber,
		"instrument_number": r.InstrumentNumber,
		"date":              r.Date,
		"doc_type":          r.DocType,
		"grantor":           r.Grantor,
		"grantee":           r.Grantee,
		"legal_description": r.LegalDescription,
		"raw_data":          r.RawData,
	}
}
