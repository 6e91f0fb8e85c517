// Package rod implements the browser side of the crawl using Chrome
// automation: a single page session and the in-page link and heading readers.
package rod

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/docqa"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Defaults for a Session.
const (
	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 980

	// DefaultIdleWindow is how long the page must go without network
	// requests before a navigation counts as settled.
	DefaultIdleWindow = 500 * time.Millisecond
)

// Ensure Session implements docqa.PageSession at compile time.
var _ docqa.PageSession = (*Session)(nil)

// Session drives one headless Chrome page for the whole crawl.
// Session is not safe for concurrent navigation; callers visit pages one at
// a time.
type Session struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page

	width   int
	height  int
	idle    time.Duration
	timeout time.Duration

	closeOnce sync.Once
	closeErr  error
}

// Option configures a Session.
type Option func(*Session)

// WithViewport sets the page viewport size in CSS pixels.
func WithViewport(width, height int) Option {
	return func(s *Session) {
		s.width = width
		s.height = height
	}
}

// WithIdleWindow sets the network quiescence window used by Navigate.
func WithIdleWindow(d time.Duration) Option {
	return func(s *Session) {
		s.idle = d
	}
}

// WithTimeout bounds each navigation. Zero, the default, leaves navigations
// unbounded.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		s.timeout = d
	}
}

// NewSession launches a headless Chrome browser and opens a single page.
// Close must be called when the Session is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{
		width:  DefaultViewportWidth,
		height: DefaultViewportHeight,
		idle:   DefaultIdleWindow,
	}
	for _, opt := range opts {
		opt(s)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             s.width,
		Height:            s.height,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("setting viewport: %w", err)
	}

	s.launcher = l
	s.browser = browser
	s.page = page
	return s, nil
}

// Navigate loads url and waits until no requests have been in flight for the
// idle window.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	page := s.page.Context(ctx)
	if s.timeout > 0 {
		page = page.Timeout(s.timeout)
		defer page.CancelTimeout()
	}

	// Register the idle watcher before navigating so early requests count.
	waitIdle := page.WaitRequestIdle(s.idle, nil, nil, nil)

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	waitIdle()

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("loading %s: %w", url, err)
	}
	return nil
}

// Evaluate runs js in the current page and decodes the result into out.
func (s *Session) Evaluate(ctx context.Context, js string, out interface{}, args ...interface{}) error {
	res, err := s.page.Context(ctx).Eval(js, args...)
	if err != nil {
		return fmt.Errorf("evaluating script: %w", err)
	}

	raw, err := json.Marshal(res.Value)
	if err != nil {
		return fmt.Errorf("encoding script result: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding script result: %w", err)
	}
	return nil
}

// Close closes the browser and kills the launched process.
// Close is safe to call multiple times.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.browser.Close()
		s.launcher.Kill()
	})
	return s.closeErr
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (s *Session) LauncherPID() int {
	return s.launcher.PID()
}
