//go:build small

package webdriver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "chrome", cfg.Browser)
	assert.Equal(t, 10*time.Second, cfg.Timeouts.ImplicitWait)
	assert.Equal(t, 10*time.Second, cfg.Timeouts.PageLoad)
	assert.Equal(t, 10*time.Second, cfg.Timeouts.Script)
	assert.Equal(t, 10*time.Second, cfg.Wait.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Wait.Polling)
	assert.Equal(t, []string{"timeout"}, cfg.Wait.Ignoring)
	assert.NotEmpty(t, cfg.Wait.Message)
}

func TestParseConfig_overlay(t *testing.T) {
	data := []byte(`
browser: firefox
driver_path: /usr/bin/geckodriver
port: 4444
timeouts:
  page_load: 30s
wait:
  polling: 250ms
  message: still loading
  ignoring: [timeout, stale element reference]
`)
	cfg, err := ParseConfig(DefaultConfig(), data)
	require.NoError(t, err)
	assert.Equal(t, "firefox", cfg.Browser)
	assert.Equal(t, "/usr/bin/geckodriver", cfg.DriverPath)
	assert.Equal(t, 4444, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.Timeouts.PageLoad)
	// Keys missing from the file keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Timeouts.ImplicitWait)
	assert.Equal(t, 10*time.Second, cfg.Wait.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Wait.Polling)
	assert.Equal(t, "still loading", cfg.Wait.Message)
	assert.Equal(t, []string{"timeout", "stale element reference"}, cfg.Wait.Ignoring)
}

func TestParseConfig_invalid(t *testing.T) {
	base := DefaultConfig()
	cfg, err := ParseConfig(base, []byte("timeouts: [not, a, map]"))
	assert.Error(t, err)
	assert.Equal(t, base, cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webdriver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("headless: true\n"), 0o600))

	cfg, err := LoadConfigFile(DefaultConfig(), path)
	require.NoError(t, err)
	assert.True(t, cfg.Headless)

	_, err = LoadConfigFile(DefaultConfig(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.DriverPath = "/usr/bin/chromedriver"
	assert.NoError(t, valid.Validate())

	remote := DefaultConfig()
	remote.RemoteURL = "http://localhost:4444/wd/hub"
	assert.NoError(t, remote.Validate())

	bad := valid
	bad.Browser = "netscape"
	bad.Port = -1
	bad.Timeouts.Script = 0
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported browser "netscape"`)
	assert.Contains(t, err.Error(), "invalid port -1")
	assert.Contains(t, err.Error(), "timeouts.script must be positive")

	noDriver := DefaultConfig()
	err = noDriver.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver_path is required")

	slowPolling := valid
	slowPolling.Wait.Polling = time.Minute
	err = slowPolling.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds wait.timeout")

	typo := valid
	typo.Wait.Ignoring = []string{"timout", "stale element reference"}
	err = typo.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown error kind "timout"`)
	assert.NotContains(t, err.Error(), "stale element reference")
}

func TestDefaultConfig_waitMessage(t *testing.T) {
	assert.Equal(t, "OMG Where the element?1", DefaultConfig().Wait.Message)
}
