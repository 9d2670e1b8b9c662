package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Chromium owns a Playwright runtime and a launched Chromium instance.
// Close releases both.
type Chromium struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// LaunchChromium starts Playwright and launches a Chromium browser. The
// Playwright driver and browser binaries are installed on first use.
func LaunchChromium(headless bool) (*Chromium, error) {
	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
		return nil, fmt.Errorf("installing playwright: %w", err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launching chromium: %w", err)
	}

	return &Chromium{pw: pw, browser: b}, nil
}

// NewPage opens a fresh page in a new browser context.
func (c *Chromium) NewPage() (Page, error) {
	page, err := c.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	return &playwrightPage{page: page}, nil
}

// Close closes the browser and stops the Playwright runtime. Safe to call
// even if launch only partially succeeded.
func (c *Chromium) Close() error {
	var firstErr error
	if c.browser != nil {
		if err := c.browser.Close(); err != nil {
			firstErr = fmt.Errorf("closing browser: %w", err)
		}
	}
	if c.pw != nil {
		if err := c.pw.Stop(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("stopping playwright: %w", err)
		}
	}
	return firstErr
}

type playwrightPage struct {
	page playwright.Page
}

func (p *playwrightPage) Goto(url string) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	return err
}

func (p *playwrightPage) WaitForSelector(selector string, timeout time.Duration, state WaitState) (Element, error) {
	handle, err := p.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
		State:   waitForSelectorState(state),
	})
	if err != nil {
		return nil, err
	}
	if handle == nil {
		// Hidden waits resolve without a handle.
		return nil, nil
	}
	return &playwrightElement{handle: handle}, nil
}

func (p *playwrightPage) Click(selector string) error {
	return p.page.Click(selector)
}

func (p *playwrightPage) QueryAll(selector string) ([]Element, error) {
	handles, err := p.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	return wrapHandles(handles), nil
}

func (p *playwrightPage) PressKey(key string) error {
	return p.page.Keyboard().Press(key)
}

func (p *playwrightPage) URL() string {
	return p.page.URL()
}

type playwrightElement struct {
	handle playwright.ElementHandle
}

func (e *playwrightElement) InnerText() (string, error) {
	return e.handle.InnerText()
}

func (e *playwrightElement) IsChecked() (bool, error) {
	return e.handle.IsChecked()
}

func (e *playwrightElement) QueryAll(selector string) ([]Element, error) {
	handles, err := e.handle.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	return wrapHandles(handles), nil
}

func (e *playwrightElement) Click() error {
	return e.handle.Click()
}

func wrapHandles(handles []playwright.ElementHandle) []Element {
	elements := make([]Element, 0, len(handles))
	for _, h := range handles {
		elements = append(elements, &playwrightElement{handle: h})
	}
	return elements
}

func waitForSelectorState(state WaitState) *playwright.WaitForSelectorState {
	switch state {
	case StateVisible:
		return playwright.WaitForSelectorStateVisible
	case StateHidden:
		return playwright.WaitForSelectorStateHidden
	default:
		return playwright.WaitForSelectorStateAttached
	}
}
