package webdriver

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/aqacourses/selenium-waits/shared"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// chromeOptionsKey is the W3C capability name of chromedriver's options.
const chromeOptionsKey = "goog:chromeOptions"

// ChromeCapabilities builds the capabilities for a Chrome session. The
// "Chrome is being controlled by automated test software" infobar is
// suppressed by excluding the enable-automation switch and disabling the
// automation extension.
func ChromeCapabilities(cfg Config) (selenium.Capabilities, error) {
	chromeCaps := chrome.Capabilities{
		ExcludeSwitches: []string{"enable-automation"},
		W3C:             true,
	}
	if cfg.BrowserPath != "" {
		chromeAbsPath, err := filepath.Abs(cfg.BrowserPath)
		if err != nil {
			return nil, err
		}
		chromeCaps.Path = chromeAbsPath
	}
	if cfg.Headless {
		chromeCaps.Args = append(chromeCaps.Args, "--headless", "--no-sandbox")
	}

	options, err := experimentalOptions(chromeCaps, map[string]interface{}{
		"useAutomationExtension": false,
	})
	if err != nil {
		return nil, err
	}
	return selenium.Capabilities{
		"browserName":    shared.ChromeBrowser,
		chromeOptionsKey: options,
	}, nil
}

// experimentalOptions merges options that chrome.Capabilities has no field
// for into its JSON form.
func experimentalOptions(chromeCaps chrome.Capabilities, extra map[string]interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(chromeCaps)
	if err != nil {
		return nil, fmt.Errorf("encoding chrome options: %w", err)
	}
	options := map[string]interface{}{}
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, fmt.Errorf("decoding chrome options: %w", err)
	}
	for k, v := range extra {
		options[k] = v
	}
	return options, nil
}
