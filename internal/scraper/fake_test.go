package scraper

import (
	"time"

	"github.com/pfrederiksen/county-brands/internal/browser"
)

// fakePage is a scriptable browser.Page for step tests. Unset functions
// behave as harmless defaults; pages that need DOM content delegate to a
// browser.StaticPage instead.
type fakePage struct {
	gotoFn  func(url string) error
	waitFn  func(selector string, timeout time.Duration, state browser.WaitState) (browser.Element, error)
	clickFn func(selector string) error
	queryFn func(selector string) ([]browser.Element, error)
	pressFn func(key string) error
	urlFn   func() string

	clicked []string
	pressed []string
}

func (p *fakePage) Goto(url string) error {
	if p.gotoFn != nil {
		return p.gotoFn(url)
	}
	return nil
}

func (p *fakePage) WaitForSelector(selector string, timeout time.Duration, state browser.WaitState) (browser.Element, error) {
	if p.waitFn != nil {
		return p.waitFn(selector, timeout, state)
	}
	return nil, browser.ErrNoMatch
}

func (p *fakePage) Click(selector string) error {
	p.clicked = append(p.clicked, selector)
	if p.clickFn != nil {
		return p.clickFn(selector)
	}
	return nil
}

func (p *fakePage) QueryAll(selector string) ([]browser.Element, error) {
	if p.queryFn != nil {
		return p.queryFn(selector)
	}
	return nil, nil
}

func (p *fakePage) PressKey(key string) error {
	p.pressed = append(p.pressed, key)
	if p.pressFn != nil {
		return p.pressFn(key)
	}
	return nil
}

func (p *fakePage) URL() string {
	if p.urlFn != nil {
		return p.urlFn()
	}
	return ""
}

// fakeCheckbox simulates a checkbox whose checked state is read once per
// observation. states is consumed in order; the last state repeats.
type fakeCheckbox struct {
	states   []bool
	reads    int
	clicks   int
	clickErr error
	checkErr error
}

func (c *fakeCheckbox) InnerText() (string, error) { return "", nil }

func (c *fakeCheckbox) IsChecked() (bool, error) {
	if c.checkErr != nil {
		return false, c.checkErr
	}
	i := c.reads
	if i >= len(c.states) {
		i = len(c.states) - 1
	}
	c.reads++
	return c.states[i], nil
}

func (c *fakeCheckbox) QueryAll(selector string) ([]browser.Element, error) {
	return nil, nil
}

func (c *fakeCheckbox) Click() error {
	c.clicks++
	return c.clickErr
}

// testConfig returns the default config with all waits shrunk so tests
// don't sleep.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.CheckboxTimeout = time.Millisecond
	cfg.IndicatorAppearTimeout = time.Millisecond
	cfg.IndicatorDisappearTimeout = time.Millisecond
	cfg.TableTimeout = time.Millisecond
	cfg.CheckboxSettleDelay = time.Microsecond
	cfg.ResultsSettleDelay = time.Microsecond
	cfg.URLRecheckDelay = time.Microsecond
	return cfg
}
