// Package record defines the brand record entity extracted from the county
// results table.
//
// A record is built positionally from a table row's cells: the first six
// cells map to named fields (instrument number, date, doc type, grantor,
// grantee, legal description) and every cell is retained in raw_data as an
// audit trail for rows whose shape doesn't match the expected grid.
package record
