package webdriver

import (
	"fmt"
	"path/filepath"

	"github.com/aqacourses/selenium-waits/shared"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/firefox"
)

// FirefoxCapabilities builds the capabilities for a Firefox session.
func FirefoxCapabilities(cfg Config) (selenium.Capabilities, error) {
	seleniumCapabilities := selenium.Capabilities{
		"browserName": shared.FirefoxBrowser,
	}

	firefoxCapabilities := firefox.Capabilities{}
	if cfg.BrowserPath != "" {
		firefoxAbsPath, err := filepath.Abs(cfg.BrowserPath)
		if err != nil {
			return nil, err
		}
		firefoxCapabilities.Binary = firefoxAbsPath
	}
	if cfg.Headless {
		firefoxCapabilities.Args = append(firefoxCapabilities.Args, "-headless")
	}
	seleniumCapabilities.AddFirefox(firefoxCapabilities)
	return seleniumCapabilities, nil
}

// Capabilities dispatches on cfg.Browser.
func Capabilities(cfg Config) (selenium.Capabilities, error) {
	switch cfg.Browser {
	case shared.ChromeBrowser:
		return ChromeCapabilities(cfg)
	case shared.FirefoxBrowser:
		return FirefoxCapabilities(cfg)
	}
	return nil, fmt.Errorf("unsupported browser %q", cfg.Browser)
}
