// Package scenario implements the "open site with waits" browser test case:
// open the course website, wait for the PYTHON navigation link in several
// ways, click it, and check the resulting page.
package scenario

import (
	"context"
	"fmt"

	"github.com/aqacourses/selenium-waits/shared"
	"github.com/aqacourses/selenium-waits/webdriver/wait"
	"github.com/tebeka/selenium"
)

// Fixed inputs of the test case.
const (
	SiteURL         = "http://www.seleniumframework.com/"
	PythonLinkXPath = "//ul[@id='main-nav']//span[.='PYTHON']/.."
	PythonLinkText  = "PYTHON"
	ExpectedTitle   = "Selenium Framework | Python Course"
)

// Options parameterize OpenSiteWithWaits.
type Options struct {
	URL           string
	LinkXPath     string
	LinkText      string
	ExpectedTitle string

	// Wait is the explicit wait. Run fills it from the browser session when
	// nil; OpenSiteWithWaits requires it.
	Wait *wait.FluentWait
}

// DefaultOptions targets url with the fixed locator and expectations.
func DefaultOptions(url string) Options {
	return Options{
		URL:           url,
		LinkXPath:     PythonLinkXPath,
		LinkText:      PythonLinkText,
		ExpectedTitle: ExpectedTitle,
	}
}

// Report is what the scenario observed after clicking the link.
type Report struct {
	LinkText string
	Title    string
	URL      string
}

// Verify compares the report against the expected link text and title.
func (r Report) Verify(linkText, title string) error {
	var errs []error
	if r.LinkText != linkText {
		errs = append(errs, fmt.Errorf("Link text is not as expected: want %q, got %q", linkText, r.LinkText))
	}
	if r.Title != title {
		errs = append(errs, fmt.Errorf("Title is not as expected: want %q, got %q", title, r.Title))
	}
	return shared.NewMultiError(errs, "verifying "+r.URL)
}

// OpenSiteWithWaits navigates to opts.URL and waits for the link, checks no
// alert is open, clicks the link once visible and re-reads its text and the
// page title. Wait failures are returned as-is; nothing is retried beyond the
// explicit wait's polling.
func OpenSiteWithWaits(ctx context.Context, wd selenium.WebDriver, opts Options) (Report, error) {
	logger := shared.GetLogger(ctx)
	w := opts.Wait
	var report Report

	logger.Infof("Opening %s", opts.URL)
	if err := wd.Get(opts.URL); err != nil {
		return report, fmt.Errorf("opening %s: %w", opts.URL, err)
	}

	logger.Infof("Waiting for %s to be clickable with text %q", opts.LinkXPath, opts.LinkText)
	if err := w.Until(ctx, wait.And(
		wait.ElementToBeClickable(selenium.ByXPATH, opts.LinkXPath),
		wait.TextToBe(selenium.ByXPATH, opts.LinkXPath, opts.LinkText),
	)); err != nil {
		return report, err
	}

	logger.Infof("Waiting for no alert")
	if err := w.Until(ctx, wait.Not(wait.AlertIsPresent())); err != nil {
		return report, err
	}

	// Lookups honour the session's implicit wait.
	link, err := wd.FindElement(selenium.ByXPATH, opts.LinkXPath)
	if err != nil {
		return report, fmt.Errorf("finding %s: %w", opts.LinkXPath, err)
	}
	if err := w.Until(ctx, wait.VisibilityOf(link)); err != nil {
		return report, err
	}
	logger.Infof("Clicking %s", opts.LinkXPath)
	if err := link.Click(); err != nil {
		return report, fmt.Errorf("clicking %s: %w", opts.LinkXPath, err)
	}

	// Lookup errors go back to the wait so it can tell "not there yet" from a
	// broken session.
	isTextInTheElement := wait.New(fmt.Sprintf("text of %s to equal %q", opts.LinkXPath, opts.LinkText),
		func(wd selenium.WebDriver) (bool, error) {
			e, err := wd.FindElement(selenium.ByXPATH, opts.LinkXPath)
			if err != nil {
				return false, err
			}
			text, err := e.Text()
			if err != nil {
				if wait.IsKind(err, wait.KindStaleElementReference) {
					return false, nil
				}
				return false, err
			}
			report.LinkText = text
			return text == opts.LinkText, nil
		})
	if err := w.Until(ctx, isTextInTheElement); err != nil {
		return report, err
	}

	if report.Title, err = wd.Title(); err != nil {
		return report, fmt.Errorf("reading title: %w", err)
	}
	if report.URL, err = wd.CurrentURL(); err != nil {
		return report, fmt.Errorf("reading current URL: %w", err)
	}
	logger.Infof("Landed on %s (%q)", report.URL, report.Title)
	return report, nil
}
