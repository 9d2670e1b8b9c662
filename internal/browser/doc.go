// Package browser abstracts the browser-automation capability the scraping
// workflow runs against.
//
// The workflow only ever talks to the Page and Element interfaces: navigate,
// wait for a selector to reach a state, click, enumerate matching elements,
// read text and checked state, dispatch a key. Two implementations exist: a
// live one driving Chromium through Playwright, and a static one over a
// parsed HTML document used for offline extraction and tests.
package browser
