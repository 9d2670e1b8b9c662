// Package scraper drives the Fort Bend County real estate search site to
// pull BRAND document records.
//
// A run is a fixed sequence against one browser page: navigate to the search
// entry form, tick the BRAND document-type checkbox, submit the search, wait
// out the server-side "Searching for records" indicator, then locate the
// results table among the page's tables and map its rows into records. The
// table discovery is heuristic: layout and navigation tables are filtered
// out by row count, first-row width, and whether the first data rows carry
// any real text.
package scraper
