// ABOUTME: Rod-based rendering sessions for script-populated search pages
// ABOUTME: Scoped acquisition guarantees browser teardown on every exit path

package rod

import (
	"context"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	coreerrors "realify-news-api/core/errors"
	"realify-news-api/core/interfaces"
	"realify-news-api/infrastructure/http/standard"
)

// settleDelay gives client-side scripting a beat to populate search results
// after the load event.
const settleDelay = 3 * time.Second

// fallbackBinNames are tried on PATH when no browser could be resolved any
// other way.
var fallbackBinNames = []string{"chromium", "chromium-browser", "google-chrome", "chrome"}

// Process-wide browser binary cache: resolved once under lock, immutable
// afterwards.
var (
	resolveMu   sync.Mutex
	resolvedBin string
)

// resolveBrowserBin resolves the browser executable with a three-tier
// fallback: a configured local path, the launcher's managed download, then a
// bare name on PATH. Whichever resolves first is cached for the process
// lifetime; the bare-name tier never fails here, it fails at launch time for
// that one search.
func resolveBrowserBin(configured string, logger interfaces.Logger) string {
	resolveMu.Lock()
	defer resolveMu.Unlock()

	if resolvedBin != "" {
		return resolvedBin
	}

	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			logger.Info("Using configured browser binary", map[string]interface{}{
				"path": configured,
			})
			resolvedBin = configured
			return resolvedBin
		}
		logger.Warn("Configured browser binary not found", map[string]interface{}{
			"path": configured,
		})
	}

	if path, err := launcher.NewBrowser().Get(); err == nil {
		logger.Info("Using managed browser binary", map[string]interface{}{
			"path": path,
		})
		resolvedBin = path
		return resolvedBin
	} else {
		logger.Error("Managed browser download failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	for _, name := range fallbackBinNames {
		if path, err := exec.LookPath(name); err == nil {
			logger.Info("Using browser binary from PATH", map[string]interface{}{
				"path": path,
			})
			resolvedBin = path
			return resolvedBin
		}
	}

	logger.Warn("No browser binary resolved, falling back to bare name", map[string]interface{}{
		"name": fallbackBinNames[0],
	})
	resolvedBin = fallbackBinNames[0]
	return resolvedBin
}

// Renderer creates one headless browser session per render call.
type Renderer struct {
	configuredBin string
	timeout       time.Duration
	logger        interfaces.Logger
}

// NewRenderer creates a renderer. configuredBin may be empty; timeout bounds
// each page load.
func NewRenderer(configuredBin string, timeout time.Duration, logger interfaces.Logger) *Renderer {
	return &Renderer{
		configuredBin: configuredBin,
		timeout:       timeout,
		logger:        logger,
	}
}

// Session wraps one live browser instance. It is owned by exactly one
// WithSession call and never shared.
type Session struct {
	browser *rod.Browser
	timeout time.Duration
}

// WithSession launches a headless, sandboxless browser with automation
// signatures suppressed, runs fn, and tears the browser down before
// returning, whatever fn does. Teardown failures are swallowed and logged.
func (r *Renderer) WithSession(ctx context.Context, fn func(*Session) error) error {
	bin := resolveBrowserBin(r.configuredBin, r.logger)

	l := launcher.New().
		Bin(bin).
		Headless(true).
		NoSandbox(true).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("disable-blink-features", "AutomationControlled").
		Set("user-agent", standard.UserAgent)

	controlURL, err := l.Launch()
	if err != nil {
		return coreerrors.WrapError(err, "launch browser")
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return coreerrors.WrapError(err, "connect to browser")
	}

	defer func() {
		if cerr := browser.Close(); cerr != nil {
			r.logger.Warn("Browser teardown failed", map[string]interface{}{
				"error": cerr.Error(),
			})
		}
		l.Cleanup()
	}()

	return fn(&Session{browser: browser, timeout: r.timeout})
}

// RenderHTML navigates to url and returns the fully-loaded document. A
// navigation timeout is an error for this call only, never fatal to the
// process.
func (s *Session) RenderHTML(url string) (string, error) {
	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", coreerrors.WrapError(err, "open page")
	}

	if err := page.Timeout(s.timeout).Navigate(url); err != nil {
		return "", coreerrors.WrapError(err, "navigate")
	}
	if err := page.Timeout(s.timeout).WaitLoad(); err != nil {
		return "", coreerrors.WrapError(err, "wait for load")
	}

	time.Sleep(settleDelay)

	html, err := page.HTML()
	if err != nil {
		return "", coreerrors.WrapError(err, "read page html")
	}
	return html, nil
}

// RenderHTML implements interfaces.PageRenderer with a session scoped to this
// one call.
func (r *Renderer) RenderHTML(ctx context.Context, url string) (string, error) {
	var html string
	err := r.WithSession(ctx, func(s *Session) error {
		out, err := s.RenderHTML(url)
		if err != nil {
			return err
		}
		html = out
		return nil
	})
	return html, err
}
