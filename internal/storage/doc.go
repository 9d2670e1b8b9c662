// Package storage persists scraped brand records to the two output formats:
// a CSV table and a newline-delimited JSON file.
//
// The formats are written independently: a failure on one is logged and
// does not prevent the other from being attempted. Output files are
// overwritten on every run.
package storage
