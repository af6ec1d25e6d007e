// Package webdrivertest provides test doubles for selenium.WebDriver,
// selenium.WebElement and the driver service.
package webdrivertest

import (
	"fmt"
	"sync"
	"time"

	"github.com/tebeka/selenium"
)

// NewError creates the error a remote end reports for a failed command.
func NewError(kind, message string) error {
	return &selenium.Error{Err: kind, Message: message}
}

// FakeElement is an in-memory selenium.WebElement. Methods that are not
// overridden panic through the nil embedded interface.
type FakeElement struct {
	selenium.WebElement

	mu        sync.Mutex
	text      string
	displayed bool
	enabled   bool
	err       error

	Clicks  int
	OnClick func() error
}

// NewFakeElement creates a displayed, enabled element with the given text.
func NewFakeElement(text string) *FakeElement {
	return &FakeElement{text: text, displayed: true, enabled: true}
}

// SetText changes the visible text.
func (e *FakeElement) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
}

// SetDisplayed changes the visibility.
func (e *FakeElement) SetDisplayed(displayed bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.displayed = displayed
}

// SetEnabled changes whether the element is enabled.
func (e *FakeElement) SetEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = enabled
}

// SetError makes every state query return err, e.g. a stale reference.
func (e *FakeElement) SetError(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = err
}

func (e *FakeElement) Text() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text, e.err
}

func (e *FakeElement) IsDisplayed() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.displayed, e.err
}

func (e *FakeElement) IsEnabled() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled, e.err
}

func (e *FakeElement) Click() error {
	e.mu.Lock()
	e.Clicks++
	onClick := e.OnClick
	err := e.err
	e.mu.Unlock()
	if err != nil {
		return err
	}
	if onClick != nil {
		return onClick()
	}
	return nil
}

// FakeDriver is an in-memory selenium.WebDriver. Waits run against a virtual
// clock: each poll advances it by the interval instead of sleeping.
type FakeDriver struct {
	selenium.WebDriver

	mu       sync.Mutex
	elements map[string]*FakeElement
	title    string
	url      string
	alert    *string

	// FindHook, when set, replaces element lookup.
	FindHook func(by, value string) (selenium.WebElement, error)

	// GetHook, when set, runs on navigation.
	GetHook func(url string) error

	// BeforePoll, when set, runs before each condition evaluation with the
	// zero-based poll number.
	BeforePoll func(poll int)

	Polls        int
	Finds        int
	ImplicitWait time.Duration
	PageLoad     time.Duration
	Script       time.Duration
	Maximized    bool
	Quits        int
	QuitErr      error
}

// NewFakeDriver creates an empty fake driver.
func NewFakeDriver() *FakeDriver {
	return &FakeDriver{elements: map[string]*FakeElement{}}
}

func key(by, value string) string {
	return by + "=" + value
}

// AddElement registers elem under the locator (by, value).
func (d *FakeDriver) AddElement(by, value string, elem *FakeElement) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elements[key(by, value)] = elem
}

// RemoveElement unregisters the locator (by, value).
func (d *FakeDriver) RemoveElement(by, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.elements, key(by, value))
}

// SetTitle changes the page title.
func (d *FakeDriver) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = title
}

// OpenAlert opens a user prompt with the given text.
func (d *FakeDriver) OpenAlert(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alert = &text
}

func (d *FakeDriver) Get(url string) error {
	d.mu.Lock()
	d.url = url
	hook := d.GetHook
	d.mu.Unlock()
	if hook != nil {
		return hook(url)
	}
	return nil
}

func (d *FakeDriver) CurrentURL() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.url, nil
}

func (d *FakeDriver) Title() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title, nil
}

func (d *FakeDriver) FindElement(by, value string) (selenium.WebElement, error) {
	d.mu.Lock()
	d.Finds++
	hook := d.FindHook
	elem, ok := d.elements[key(by, value)]
	d.mu.Unlock()
	if hook != nil {
		return hook(by, value)
	}
	if !ok {
		return nil, NewError("no such element", fmt.Sprintf("Unable to locate element: %s", key(by, value)))
	}
	return elem, nil
}

func (d *FakeDriver) AlertText() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.alert == nil {
		return "", NewError("no such alert", "no such alert")
	}
	return *d.alert, nil
}

func (d *FakeDriver) MaximizeWindow(name string) error {
	d.Maximized = true
	return nil
}

func (d *FakeDriver) SetImplicitWaitTimeout(timeout time.Duration) error {
	d.ImplicitWait = timeout
	return nil
}

func (d *FakeDriver) SetPageLoadTimeout(timeout time.Duration) error {
	d.PageLoad = timeout
	return nil
}

func (d *FakeDriver) SetAsyncScriptTimeout(timeout time.Duration) error {
	d.Script = timeout
	return nil
}

func (d *FakeDriver) Screenshot() ([]byte, error) {
	return []byte("\x89PNG\r\n\x1a\n"), nil
}

func (d *FakeDriver) Quit() error {
	d.Quits++
	return d.QuitErr
}

// WaitWithTimeoutAndInterval follows the remote implementation: a condition
// error ends the wait, and the timeout is checked after each failed poll.
func (d *FakeDriver) WaitWithTimeoutAndInterval(condition selenium.Condition, timeout, interval time.Duration) error {
	var elapsed time.Duration
	for {
		if d.BeforePoll != nil {
			d.BeforePoll(d.Polls)
		}
		d.Polls++
		done, err := condition(d)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if elapsed >= timeout {
			return fmt.Errorf("timeout after %v", elapsed)
		}
		elapsed += interval
	}
}
