// Package cli implements the county-brands command line interface.
//
// The default invocation launches a browser, runs the full search workflow
// against the Fort Bend County site, and writes the extracted records to a
// CSV file and a JSONL file. With --input-file a saved results page is
// parsed instead, skipping the browser entirely.
package cli
