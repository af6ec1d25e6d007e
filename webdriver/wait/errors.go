package wait

import (
	"errors"
	"fmt"
	"time"

	"github.com/tebeka/selenium"
)

// WebDriver error codes, as reported in the "error" field of a failed
// command response.
const (
	KindNoSuchElement           = "no such element"
	KindStaleElementReference   = "stale element reference"
	KindNoSuchAlert             = "no such alert"
	KindTimeout                 = "timeout"
	KindScriptTimeout           = "script timeout"
	KindElementNotInteractable  = "element not interactable"
	KindElementClickIntercepted = "element click intercepted"
)

var knownKinds = []string{
	KindNoSuchElement,
	KindStaleElementReference,
	KindNoSuchAlert,
	KindTimeout,
	KindScriptTimeout,
	KindElementNotInteractable,
	KindElementClickIntercepted,
}

// IsKnownKind reports whether kind is one of the Kind* error codes.
func IsKnownKind(kind string) bool {
	for _, k := range knownKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ErrTimeout is matched by every *TimeoutError via errors.Is.
var ErrTimeout = errors.New("wait timed out")

// ErrorKind returns the WebDriver error code carried by err, or "" when err
// is not (and does not wrap) a *selenium.Error.
func ErrorKind(err error) string {
	var se *selenium.Error
	if errors.As(err, &se) {
		return se.Err
	}
	return ""
}

// IsKind reports whether err carries one of the given WebDriver error codes.
func IsKind(err error, kinds ...string) bool {
	kind := ErrorKind(err)
	if kind == "" {
		return false
	}
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// TimeoutError is returned by FluentWait.Until when the condition did not
// hold before the timeout elapsed.
type TimeoutError struct {
	// Message is the custom failure message, if one was configured.
	Message string

	Condition string
	Timeout   time.Duration
	Interval  time.Duration

	// Last is the most recent ignored error seen while polling, if any.
	Last error
}

func (e *TimeoutError) Error() string {
	what := e.Message
	if what == "" {
		what = "waiting for " + e.Condition
	}
	msg := fmt.Sprintf("Expected condition failed: %s (tried for %v with %v interval)",
		what, e.Timeout, e.Interval)
	if e.Last != nil {
		msg += ": " + e.Last.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrTimeout) hold.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// Unwrap returns the last ignored error.
func (e *TimeoutError) Unwrap() error {
	return e.Last
}
