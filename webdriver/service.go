//go:generate mockgen -destination webdrivertest/service_mock.go -package webdrivertest github.com/aqacourses/selenium-waits/webdriver Service

package webdriver

import (
	"fmt"
	"os"

	"github.com/aqacourses/selenium-waits/shared"
	"github.com/phayes/freeport"
	"github.com/tebeka/selenium"
)

// Service is a running driver process (chromedriver, geckodriver or a
// selenium standalone server). *selenium.Service implements it.
type Service interface {
	Stop() error
}

// startService launches the local driver process described by cfg and
// returns it with the URL prefix to pass to selenium.NewRemote.
// It is a variable so that tests can avoid spawning processes.
var startService = func(cfg Config) (Service, string, error) {
	port := cfg.Port
	if port == 0 {
		var err error
		if port, err = freeport.GetFreePort(); err != nil {
			return nil, "", fmt.Errorf("picking a port for the driver: %w", err)
		}
	}

	var options []selenium.ServiceOption
	// Start an X frame buffer for the browser to run in.
	if cfg.FrameBuffer {
		options = append(options, selenium.StartFrameBuffer())
	}
	// Output debug information to STDERR.
	if cfg.Debug {
		options = append(options, selenium.Output(os.Stderr))
	}

	var service *selenium.Service
	var err error
	prefix := fmt.Sprintf("http://%s:%d", cfg.Host, port)
	switch {
	case cfg.SeleniumPath != "" && cfg.Browser == shared.FirefoxBrowser:
		options = append(options, selenium.GeckoDriver(cfg.DriverPath))
		service, err = selenium.NewSeleniumService(cfg.SeleniumPath, port, options...)
		prefix += "/wd/hub"
	case cfg.SeleniumPath != "":
		options = append(options, selenium.ChromeDriver(cfg.DriverPath))
		service, err = selenium.NewSeleniumService(cfg.SeleniumPath, port, options...)
		prefix += "/wd/hub"
	case cfg.Browser == shared.FirefoxBrowser:
		service, err = selenium.NewGeckoDriverService(cfg.DriverPath, port, options...)
	default:
		service, err = selenium.NewChromeDriverService(cfg.DriverPath, port, options...)
	}
	if err != nil {
		return nil, "", fmt.Errorf("starting %s driver service: %w", cfg.Browser, err)
	}
	return service, prefix, nil
}
