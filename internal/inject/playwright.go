// Package inject provides script-injection backends for the browser
// extraction pass.
package inject

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"

	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
)

// defaultScriptTimeout bounds one Execute call. Expiry is reported as an
// error and handled as a soft failure by the extractor.
const defaultScriptTimeout = 15 * time.Second

// PlaywrightInjector evaluates scripts against an already-running Chromium
// attached over CDP. It is the reference ScriptInjector for hosts where
// AppleScript-style injection is unavailable.
type PlaywrightInjector struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	timeout time.Duration
	logger  zerolog.Logger
}

// NewPlaywrightInjector attaches to the browser exposing a CDP endpoint,
// e.g. "http://127.0.0.1:9222".
func NewPlaywrightInjector(endpoint string, logger zerolog.Logger) (*PlaywrightInjector, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	browser, err := pw.Chromium.ConnectOverCDP(endpoint)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("connect over cdp %s: %w", endpoint, err)
	}
	return &PlaywrightInjector{
		pw:      pw,
		browser: browser,
		timeout: defaultScriptTimeout,
		logger:  logger,
	}, nil
}

func (i *PlaywrightInjector) Close() error {
	if i.browser != nil {
		_ = i.browser.Close()
	}
	if i.pw != nil {
		return i.pw.Stop()
	}
	return nil
}

// Execute runs the script on the foreground page and returns its string
// result. The call is bounded by the injector timeout and by ctx.
func (i *PlaywrightInjector) Execute(ctx context.Context, target ax.Target, script string) (string, error) {
	page, err := i.foregroundPage()
	if err != nil {
		return "", err
	}

	type evalResult struct {
		val interface{}
		err error
	}
	done := make(chan evalResult, 1)
	go func() {
		val, evalErr := page.Evaluate(script)
		done <- evalResult{val: val, err: evalErr}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(i.timeout):
		return "", fmt.Errorf("script evaluation timed out after %v", i.timeout)
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("evaluate in %s: %w", target.Name, res.err)
		}
		str, ok := res.val.(string)
		if !ok {
			return "", fmt.Errorf("script returned %T, want string", res.val)
		}
		return str, nil
	}
}

// foregroundPage approximates the browser's frontmost tab with the most
// recently opened page of the first context. CDP does not expose window
// ordering.
func (i *PlaywrightInjector) foregroundPage() (playwright.Page, error) {
	contexts := i.browser.Contexts()
	if len(contexts) == 0 {
		return nil, fmt.Errorf("attached browser has no contexts")
	}
	pages := contexts[0].Pages()
	if len(pages) == 0 {
		return nil, fmt.Errorf("attached browser has no open pages")
	}
	return pages[len(pages)-1], nil
}
