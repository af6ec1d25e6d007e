// Package wait provides explicit waits on top of selenium.WebDriver.
//
// Polling itself is done by WebDriver.WaitWithTimeoutAndInterval. FluentWait
// only decides which errors count as "not ready yet", and how a timeout is
// reported.
package wait

import (
	"context"
	"fmt"
	"time"

	"github.com/aqacourses/selenium-waits/shared"
	mapset "github.com/deckarep/golang-set"
	"github.com/tebeka/selenium"
)

// DefaultPolling is the interval used when PollingEvery is not called.
const DefaultPolling = 500 * time.Millisecond

// FluentWait is an explicit wait with a timeout, a polling interval, an
// optional failure message and a set of ignored WebDriver error kinds.
// "no such element" is always ignored.
type FluentWait struct {
	wd       selenium.WebDriver
	timeout  time.Duration
	interval time.Duration
	message  string
	ignored  mapset.Set
}

// NewFluentWait creates a wait for wd that gives up after timeout.
func NewFluentWait(wd selenium.WebDriver, timeout time.Duration) *FluentWait {
	return &FluentWait{
		wd:       wd,
		timeout:  timeout,
		interval: DefaultPolling,
		ignored:  shared.NewStringSet(KindNoSuchElement),
	}
}

// PollingEvery sets how long to sleep between evaluations.
func (w *FluentWait) PollingEvery(interval time.Duration) *FluentWait {
	w.interval = interval
	return w
}

// WithTimeout replaces the timeout given to NewFluentWait.
func (w *FluentWait) WithTimeout(timeout time.Duration) *FluentWait {
	w.timeout = timeout
	return w
}

// WithMessage sets the message reported on timeout in place of the
// condition description.
func (w *FluentWait) WithMessage(message string) *FluentWait {
	w.message = message
	return w
}

// Ignoring adds WebDriver error kinds (e.g. KindTimeout) that are treated as
// "condition not met yet" while polling.
func (w *FluentWait) Ignoring(kinds ...string) *FluentWait {
	for _, k := range kinds {
		w.ignored.Add(k)
	}
	return w
}

// Timeout returns the configured timeout.
func (w *FluentWait) Timeout() time.Duration {
	return w.timeout
}

// Interval returns the configured polling interval.
func (w *FluentWait) Interval() time.Duration {
	return w.interval
}

// IgnoredKinds returns the ignored error kinds, sorted.
func (w *FluentWait) IgnoredKinds() []string {
	return shared.SortedStrings(w.ignored)
}

func (w *FluentWait) ignores(err error) bool {
	kind := ErrorKind(err)
	return kind != "" && w.ignored.Contains(kind)
}

// Until blocks until cond holds, the timeout elapses, cond fails with an
// error that is not ignored, or ctx is done.
func (w *FluentWait) Until(ctx context.Context, cond Condition) error {
	logger := shared.GetLogger(ctx)
	var last, fatal error
	attempts := 0
	check := func(wd selenium.WebDriver) (bool, error) {
		if err := ctx.Err(); err != nil {
			fatal = err
			return false, err
		}
		attempts++
		ok, err := cond.Check(wd)
		if err == nil {
			return ok, nil
		}
		if w.ignores(err) {
			logger.Debugf("Ignoring %q while waiting for %s (attempt %d)", ErrorKind(err), cond, attempts)
			last = err
			return false, nil
		}
		fatal = fmt.Errorf("%s: %w", cond, err)
		return false, fatal
	}

	err := w.wd.WaitWithTimeoutAndInterval(check, w.timeout, w.interval)
	if err == nil {
		logger.Debugf("Condition met after %d attempt(s): %s", attempts, cond)
		return nil
	}
	if fatal != nil {
		return fatal
	}
	logger.Warningf("Gave up on %s after %d attempt(s): %v", cond, attempts, err)
	return &TimeoutError{
		Message:   w.message,
		Condition: cond.String(),
		Timeout:   w.timeout,
		Interval:  w.interval,
		Last:      last,
	}
}
