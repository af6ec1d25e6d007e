package webdriver

import (
	"flag"
	"time"

	"github.com/aqacourses/selenium-waits/shared"
)

type flagValues struct {
	configPath       *string
	browser          *string
	startFrameBuffer *bool
	headless         *bool
	debug            *bool
	seleniumPath     *string
	seleniumHost     *string
	seleniumPort     *int
	remoteURL        *string
	chromeDriverPath *string
	chromePath       *string
	geckoDriverPath  *string
	firefoxPath      *string
	implicitWait     *time.Duration
	pageLoadTimeout  *time.Duration
	scriptTimeout    *time.Duration
	waitTimeout      *time.Duration
	waitPolling      *time.Duration
	waitMessage      *string
	artifactsDir     *string
}

func registerFlags(fs *flag.FlagSet) *flagValues {
	d := DefaultConfig()
	return &flagValues{
		configPath:       fs.String("config", "", "Path to a YAML webdriver config; explicitly set flags take precedence"),
		browser:          fs.String("browser", d.Browser, "Which browser to run the tests with"),
		startFrameBuffer: fs.Bool("frame_buffer", d.FrameBuffer, "Whether to use a frame buffer"),
		headless:         fs.Bool("headless", d.Headless, "Whether to run the browser headless"),
		debug:            fs.Bool("debug", d.Debug, "Whether to log selenium wire traffic and debug messages"),
		seleniumPath:     fs.String("selenium_path", "", "Path to the selenium standalone binary; empty launches the driver directly"),
		seleniumHost:     fs.String("selenium_host", d.Host, "Host to run selenium on"),
		seleniumPort:     fs.Int("selenium_port", d.Port, "Port to run selenium on; 0 picks a free port"),
		remoteURL:        fs.String("remote_url", "", "URL of an already running WebDriver endpoint"),
		chromeDriverPath: fs.String("chromedriver_path", "", "Path to the chromedriver binary"),
		chromePath:       fs.String("chrome_path", "", "Path to the chrome binary"),
		geckoDriverPath:  fs.String("geckodriver_path", "", "Path to the geckodriver binary"),
		firefoxPath:      fs.String("firefox_path", "", "Path to the firefox binary"),
		implicitWait:     fs.Duration("implicit_wait", d.Timeouts.ImplicitWait, "Implicit wait applied to every element lookup"),
		pageLoadTimeout:  fs.Duration("page_load_timeout", d.Timeouts.PageLoad, "Page load timeout"),
		scriptTimeout:    fs.Duration("script_timeout", d.Timeouts.Script, "Asynchronous script timeout"),
		waitTimeout:      fs.Duration("wait_timeout", d.Wait.Timeout, "Explicit wait timeout"),
		waitPolling:      fs.Duration("wait_polling", d.Wait.Polling, "Explicit wait polling interval"),
		waitMessage:      fs.String("wait_message", d.Wait.Message, "Message reported when an explicit wait times out"),
		artifactsDir:     fs.String("artifacts_dir", "", "Directory for screenshots of failed runs"),
	}
}

var flags = registerFlags(flag.CommandLine)

// FlagConfig builds a Config from DefaultConfig, the --config file (if any)
// and the command-line flags that were explicitly set, in that order.
func FlagConfig() (Config, error) {
	return flags.config(flag.CommandLine)
}

func (f *flagValues) config(fs *flag.FlagSet) (Config, error) {
	cfg := DefaultConfig()
	if *f.configPath != "" {
		var err error
		if cfg, err = LoadConfigFile(cfg, *f.configPath); err != nil {
			return cfg, err
		}
	}

	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["browser"] {
		cfg.Browser = *f.browser
	}
	if set["frame_buffer"] {
		cfg.FrameBuffer = *f.startFrameBuffer
	}
	if set["headless"] {
		cfg.Headless = *f.headless
	}
	if set["debug"] {
		cfg.Debug = *f.debug
	}
	if set["selenium_path"] {
		cfg.SeleniumPath = *f.seleniumPath
	}
	if set["selenium_host"] {
		cfg.Host = *f.seleniumHost
	}
	if set["selenium_port"] {
		cfg.Port = *f.seleniumPort
	}
	if set["remote_url"] {
		cfg.RemoteURL = *f.remoteURL
	}
	switch cfg.Browser {
	case shared.ChromeBrowser:
		if set["chromedriver_path"] {
			cfg.DriverPath = *f.chromeDriverPath
		}
		if set["chrome_path"] {
			cfg.BrowserPath = *f.chromePath
		}
	case shared.FirefoxBrowser:
		if set["geckodriver_path"] {
			cfg.DriverPath = *f.geckoDriverPath
		}
		if set["firefox_path"] {
			cfg.BrowserPath = *f.firefoxPath
		}
	}
	if set["implicit_wait"] {
		cfg.Timeouts.ImplicitWait = *f.implicitWait
	}
	if set["page_load_timeout"] {
		cfg.Timeouts.PageLoad = *f.pageLoadTimeout
	}
	if set["script_timeout"] {
		cfg.Timeouts.Script = *f.scriptTimeout
	}
	if set["wait_timeout"] {
		cfg.Wait.Timeout = *f.waitTimeout
	}
	if set["wait_polling"] {
		cfg.Wait.Polling = *f.waitPolling
	}
	if set["wait_message"] {
		cfg.Wait.Message = *f.waitMessage
	}
	if set["artifacts_dir"] {
		cfg.ArtifactsDir = *f.artifactsDir
	}
	return cfg, nil
}
