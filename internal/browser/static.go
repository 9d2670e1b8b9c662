package browser

import (
	"fmt"
	"io"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// StaticPage implements Page over an already-parsed HTML document. It backs
// the offline extraction mode (scraping a saved results page) and the
// extractor tests. Navigation, clicks and key presses are no-ops: a static
// document has no behavior to drive.
type StaticPage struct {
	doc *goquery.Document
	url string
}

// NewStaticPage parses HTML from r. url is reported as the page's current
// URL.
func NewStaticPage(r io.Reader, url string) (*StaticPage, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &StaticPage{doc: doc, url: url}, nil
}

// Goto is a no-op; a static page is already "loaded".
func (p *StaticPage) Goto(url string) error {
	p.url = url
	return nil
}

// WaitForSelector resolves immediately against the parsed document: a match
// satisfies attached/visible, absence satisfies hidden.
func (p *StaticPage) WaitForSelector(selector string, timeout time.Duration, state WaitState) (Element, error) {
	sel := p.doc.Find(selector)
	if state == StateHidden {
		if sel.Length() == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("waiting for %q to become hidden: %w", selector, ErrNoMatch)
	}
	if sel.Length() == 0 {
		return nil, fmt.Errorf("waiting for %q: %w", selector, ErrNoMatch)
	}
	return &staticElement{sel: sel.First()}, nil
}

func (p *StaticPage) Click(selector string) error {
	if p.doc.Find(selector).Length() == 0 {
		return fmt.Errorf("clicking %q: %w", selector, ErrNoMatch)
	}
	return nil
}

func (p *StaticPage) QueryAll(selector string) ([]Element, error) {
	sel := p.doc.Find(selector)
	elements := make([]Element, 0, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		elements = append(elements, &staticElement{sel: s})
	})
	return elements, nil
}

func (p *StaticPage) PressKey(key string) error {
	return nil
}

func (p *StaticPage) URL() string {
	return p.url
}

type staticElement struct {
	sel *goquery.Selection
}

func (e *staticElement) InnerText() (string, error) {
	return e.sel.Text(), nil
}

func (e *staticElement) IsChecked() (bool, error) {
	_, checked := e.sel.Attr("checked")
	return checked, nil
}

func (e *staticElement) QueryAll(selector string) ([]Element, error) {
	sel := e.sel.Find(selector)
	elements := make([]Element, 0, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		elements = append(elements, &staticElement{sel: s})
	})
	return elements, nil
}

func (e *staticElement) Click() error {
	return nil
}
