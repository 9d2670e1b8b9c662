package browser

import (
	"errors"
	"time"
)

// WaitState is the element state a WaitForSelector call waits for.
type WaitState string

const (
	// StateAttached waits for the element to be present in the DOM.
	StateAttached WaitState = "attached"
	// StateVisible waits for the element to be present and visible.
	StateVisible WaitState = "visible"
	// StateHidden waits for the element to be detached or invisible.
	StateHidden WaitState = "hidden"
)

// ErrNoMatch is returned when a selector matches nothing within its wait
// window.
var ErrNoMatch = errors.New("no element matches selector")

// Element is a handle to a single DOM element.
type Element interface {
	// InnerText returns the element's rendered text.
	InnerText() (string, error)
	// IsChecked reports whether a checkbox or radio element is checked.
	IsChecked() (bool, error)
	// QueryAll returns all descendant elements matching the selector.
	QueryAll(selector string) ([]Element, error)
	// Click clicks the element.
	Click() error
}

// Page is a handle to a single browser page. All workflow steps run against
// one Page for the lifetime of a run.
type Page interface {
	// Goto navigates the page to url and waits for the DOM to load.
	Goto(url string) error
	// WaitForSelector waits up to timeout for an element matching selector
	// to reach state. For StateHidden the returned element is nil.
	WaitForSelector(selector string, timeout time.Duration, state WaitState) (Element, error)
	// Click clicks the first element matching selector.
	Click(selector string) error
	// QueryAll returns all elements currently matching selector.
	QueryAll(selector string) ([]Element, error)
	// PressKey dispatches a keyboard key press to the page.
	PressKey(key string) error
	// URL returns the page's current URL.
	URL() string
}
