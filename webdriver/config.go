package webdriver

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aqacourses/selenium-waits/shared"
	"github.com/aqacourses/selenium-waits/webdriver/wait"
	"gopkg.in/yaml.v3"
)

// DefaultTimeout is used for the implicit wait, the page load and script
// timeouts, and the explicit wait.
const DefaultTimeout = 10 * time.Second

// DefaultPolling is the explicit wait's polling interval.
const DefaultPolling = 2 * time.Second

// Timeouts are the session-wide timeouts applied right after connecting.
type Timeouts struct {
	ImplicitWait time.Duration `yaml:"implicit_wait"`
	PageLoad     time.Duration `yaml:"page_load"`
	Script       time.Duration `yaml:"script"`
}

// WaitConfig configures the explicit wait used by scenarios.
type WaitConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	Polling time.Duration `yaml:"polling"`
	Message string        `yaml:"message"`

	// Ignoring lists WebDriver error codes treated as "not ready yet".
	Ignoring []string `yaml:"ignoring"`
}

// Config describes how to launch and configure a browser session.
type Config struct {
	Browser     string `yaml:"browser"`
	DriverPath  string `yaml:"driver_path"`
	BrowserPath string `yaml:"browser_path"`

	// SeleniumPath is an optional selenium-server standalone jar. When set,
	// the driver is launched through it instead of directly.
	SeleniumPath string `yaml:"selenium_path"`

	// RemoteURL connects to an already running WebDriver endpoint; no local
	// service is started.
	RemoteURL string `yaml:"remote_url"`

	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	FrameBuffer bool   `yaml:"frame_buffer"`
	Headless    bool   `yaml:"headless"`
	Debug       bool   `yaml:"debug"`

	Timeouts Timeouts   `yaml:"timeouts"`
	Wait     WaitConfig `yaml:"wait"`

	// ArtifactsDir receives screenshots of failed runs. Empty disables them.
	ArtifactsDir string `yaml:"artifacts_dir"`
}

// DefaultConfig returns the configuration used when neither a file nor
// flags override anything.
func DefaultConfig() Config {
	return Config{
		Browser: shared.ChromeBrowser,
		Host:    "localhost",
		Timeouts: Timeouts{
			ImplicitWait: DefaultTimeout,
			PageLoad:     DefaultTimeout,
			Script:       DefaultTimeout,
		},
		Wait: WaitConfig{
			Timeout:  DefaultTimeout,
			Polling:  DefaultPolling,
			Message:  "OMG Where the element?1",
			Ignoring: []string{"timeout"},
		},
	}
}

// LoadConfigFile overlays the YAML file at path onto base. Keys absent from
// the file keep their value from base.
func LoadConfigFile(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(base, data)
}

// ParseConfig overlays YAML data onto base.
func ParseConfig(base Config, data []byte) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can start a session.
func (c Config) Validate() error {
	var errs []error
	if !shared.IsBrowserName(c.Browser) {
		errs = append(errs, fmt.Errorf("unsupported browser %q (want one of %s)",
			c.Browser, strings.Join(shared.GetBrowserNames(), ", ")))
	}
	if c.RemoteURL == "" && c.DriverPath == "" {
		errs = append(errs, errors.New("driver_path is required unless remote_url is set"))
	}
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}
	for name, d := range map[string]time.Duration{
		"timeouts.implicit_wait": c.Timeouts.ImplicitWait,
		"timeouts.page_load":     c.Timeouts.PageLoad,
		"timeouts.script":        c.Timeouts.Script,
		"wait.timeout":           c.Wait.Timeout,
		"wait.polling":           c.Wait.Polling,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, d))
		}
	}
	if c.Wait.Polling > c.Wait.Timeout {
		errs = append(errs, fmt.Errorf("wait.polling (%v) exceeds wait.timeout (%v)", c.Wait.Polling, c.Wait.Timeout))
	}
	for _, kind := range c.Wait.Ignoring {
		if !wait.IsKnownKind(kind) {
			errs = append(errs, fmt.Errorf("wait.ignoring: unknown error kind %q", kind))
		}
	}
	return shared.NewMultiError(errs, "validating webdriver config")
}
