//go:build small

package scenario_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aqacourses/selenium-waits/scenario"
	"github.com/aqacourses/selenium-waits/shared/sharedtest"
	"github.com/aqacourses/selenium-waits/webdriver/webdrivertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func openerFor(b scenario.Browser) scenario.Opener {
	return func(context.Context) (scenario.Browser, error) {
		return b, nil
	}
}

func TestRun_success(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	wd := webdrivertest.NewFakeDriver()
	fakeSite(wd)
	browser := webdrivertest.NewMockBrowser(mockCtrl)
	browser.EXPECT().WebDriver().Return(wd)
	browser.EXPECT().NewWait().Return(testOptions(wd).Wait)
	browser.EXPECT().Close().Return(nil)

	opts := scenario.DefaultOptions(scenario.SiteURL)
	report, err := scenario.Run(sharedtest.NewTestContext(), openerFor(browser), opts, t.Name())
	require.NoError(t, err)
	assert.Equal(t, scenario.ExpectedTitle, report.Title)
}

func TestRun_failureClosesBrowser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	wd := webdrivertest.NewFakeDriver()
	browser := webdrivertest.NewMockBrowser(mockCtrl)
	browser.EXPECT().WebDriver().Return(wd)
	gomock.InOrder(
		browser.EXPECT().SaveScreenshot(t.Name()).Return("/tmp/shot.png", nil),
		browser.EXPECT().Close().Return(nil),
	)

	opts := testOptions(wd)
	_, err := scenario.Run(sharedtest.NewTestContext(), openerFor(browser), opts, t.Name())
	assert.Error(t, err)
}

func TestRun_titleMismatchClosesBrowser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	wd := webdrivertest.NewFakeDriver()
	link := fakeSite(wd)
	link.OnClick = func() error {
		wd.SetTitle("Selenium Framework | Ruby Course")
		return nil
	}
	browser := webdrivertest.NewMockBrowser(mockCtrl)
	browser.EXPECT().WebDriver().Return(wd)
	browser.EXPECT().SaveScreenshot(gomock.Any()).Return("", errors.New("no session"))
	browser.EXPECT().Close().Return(errors.New("chromedriver gone"))

	_, err := scenario.Run(sharedtest.NewTestContext(), openerFor(browser), testOptions(wd), t.Name())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title is not as expected")
	assert.Contains(t, err.Error(), "chromedriver gone")
}

func TestRun_openFailure(t *testing.T) {
	open := func(context.Context) (scenario.Browser, error) {
		return nil, errors.New("chromedriver not found")
	}
	_, err := scenario.Run(sharedtest.NewTestContext(), open, scenario.DefaultOptions(scenario.SiteURL), t.Name())
	assert.EqualError(t, err, "chromedriver not found")
}
