package webdriver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aqacourses/selenium-waits/shared"
	"github.com/aqacourses/selenium-waits/webdriver/wait"
	"github.com/google/uuid"
	"github.com/tebeka/selenium"
)

// newRemote connects to a WebDriver endpoint. Replaced in tests.
var newRemote = selenium.NewRemote

// Session is a configured browser session together with the driver service
// that backs it. Make sure to close it on every path, e.g.
//
//	session, err := NewSession(ctx, cfg)
//	if err != nil {
//	  return err
//	}
//	defer session.Close()
type Session struct {
	cfg     Config
	service Service
	wd      selenium.WebDriver
	logger  shared.Logger

	mu     sync.Mutex
	closed bool
}

// NewSession validates cfg, starts the driver service unless cfg.RemoteURL
// is set, connects, maximizes the window and applies the session timeouts.
// If any step fails, whatever was already acquired is released.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := shared.GetLogger(ctx)

	caps, err := Capabilities(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{cfg: cfg, logger: logger}
	urlPrefix := cfg.RemoteURL
	if urlPrefix == "" {
		service, prefix, err := startService(cfg)
		if err != nil {
			return nil, err
		}
		s.service = service
		urlPrefix = prefix
		logger.Infof("Started %s driver service at %s", cfg.Browser, urlPrefix)
	}

	selenium.SetDebug(cfg.Debug)
	wd, err := newRemote(caps, urlPrefix)
	if err != nil {
		err = fmt.Errorf("connecting to %s: %w", urlPrefix, err)
		if closeErr := s.Close(); closeErr != nil {
			return nil, shared.NewMultiError([]error{err, closeErr}, "starting browser session")
		}
		return nil, err
	}
	s.wd = wd

	if err := s.configure(); err != nil {
		if closeErr := s.Close(); closeErr != nil {
			return nil, shared.NewMultiError([]error{err, closeErr}, "starting browser session")
		}
		return nil, err
	}
	return s, nil
}

func (s *Session) configure() error {
	// Headless browsers may refuse to maximize; that is not fatal.
	if err := s.wd.MaximizeWindow(""); err != nil {
		s.logger.Warningf("Unable to maximize window: %v", err)
	}
	t := s.cfg.Timeouts
	if err := s.wd.SetImplicitWaitTimeout(t.ImplicitWait); err != nil {
		return fmt.Errorf("setting implicit wait: %w", err)
	}
	if err := s.wd.SetPageLoadTimeout(t.PageLoad); err != nil {
		return fmt.Errorf("setting page load timeout: %w", err)
	}
	if err := s.wd.SetAsyncScriptTimeout(t.Script); err != nil {
		return fmt.Errorf("setting script timeout: %w", err)
	}
	s.logger.Debugf("Session timeouts: implicit=%v page_load=%v script=%v",
		t.ImplicitWait, t.PageLoad, t.Script)
	return nil
}

// WebDriver returns the underlying driver.
func (s *Session) WebDriver() selenium.WebDriver {
	return s.wd
}

// NewWait creates an explicit wait configured from the session's WaitConfig.
func (s *Session) NewWait() *wait.FluentWait {
	w := s.cfg.Wait
	return wait.NewFluentWait(s.wd, w.Timeout).
		PollingEvery(w.Polling).
		WithMessage(w.Message).
		Ignoring(w.Ignoring...)
}

// SaveScreenshot writes a PNG of the current page into the artifacts
// directory and returns its path. It does nothing when no directory is
// configured.
func (s *Session) SaveScreenshot(name string) (string, error) {
	if s.cfg.ArtifactsDir == "" || s.wd == nil {
		return "", nil
	}
	png, err := s.wd.Screenshot()
	if err != nil {
		return "", fmt.Errorf("taking screenshot: %w", err)
	}
	if err := os.MkdirAll(s.cfg.ArtifactsDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.cfg.ArtifactsDir,
		fmt.Sprintf("%s-%s.png", sanitizeName(name), uuid.NewString()))
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", err
	}
	s.logger.Infof("Saved screenshot %s", path)
	return path, nil
}

func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}

// Close quits the browser and stops the driver service. Both are attempted
// even if the first fails. Calling Close more than once is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.wd != nil {
		if err := s.wd.Quit(); err != nil {
			errs = append(errs, fmt.Errorf("quitting webdriver: %w", err))
		}
	}
	if s.service != nil {
		if err := s.service.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stopping driver service: %w", err))
		}
	}
	err := shared.NewMultiError(errs, "closing browser session")
	if err != nil {
		s.logger.Warningf("%v", err)
	}
	return err
}
