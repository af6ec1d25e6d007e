//go:generate mockgen -destination ../webdriver/webdrivertest/browser_mock.go -package webdrivertest github.com/aqacourses/selenium-waits/scenario Browser

package scenario

import (
	"context"

	"github.com/aqacourses/selenium-waits/shared"
	"github.com/aqacourses/selenium-waits/webdriver"
	"github.com/aqacourses/selenium-waits/webdriver/wait"
	"github.com/tebeka/selenium"
)

// Browser is the part of a webdriver.Session that Run uses.
type Browser interface {
	WebDriver() selenium.WebDriver
	NewWait() *wait.FluentWait
	SaveScreenshot(name string) (string, error)
	Close() error
}

// Opener acquires a Browser.
type Opener func(ctx context.Context) (Browser, error)

// SessionOpener opens a webdriver.Session for cfg.
func SessionOpener(cfg webdriver.Config) Opener {
	return func(ctx context.Context) (Browser, error) {
		session, err := webdriver.NewSession(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return session, nil
	}
}

// Run opens a browser, runs OpenSiteWithWaits and verifies the report. The
// browser is always closed; on failure a screenshot named after name is
// saved first. Close errors are merged into the returned error.
func Run(ctx context.Context, open Opener, opts Options, name string) (report Report, err error) {
	logger := shared.GetLogger(ctx)
	browser, err := open(ctx)
	if err != nil {
		return report, err
	}
	defer func() {
		if err != nil {
			if path, shotErr := browser.SaveScreenshot(name); shotErr != nil {
				logger.Warningf("Unable to save screenshot: %v", shotErr)
			} else if path != "" {
				logger.Infof("Screenshot of the failure: %s", path)
			}
		}
		if closeErr := browser.Close(); closeErr != nil {
			err = shared.NewMultiError([]error{err, closeErr}, "running "+name)
		}
	}()

	if opts.Wait == nil {
		opts.Wait = browser.NewWait()
	}
	if report, err = OpenSiteWithWaits(ctx, browser.WebDriver(), opts); err != nil {
		return report, err
	}
	return report, report.Verify(opts.LinkText, opts.ExpectedTitle)
}
