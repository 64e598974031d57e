package traversal

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
	"github.com/RishaanDevz/MacosUseSDK/internal/browser"
)

// Engine runs one-shot accessibility traversals. It is stateless between
// calls; every invocation builds its own guard, filter, dedup set and
// counters.
type Engine struct {
	provider  ax.Provider
	gate      PermissionGate
	extractor ContentExtractor
	logger    zerolog.Logger
}

// NewEngine wires the engine's collaborators. extractor may be nil when no
// browser extraction backend is available; recognised browsers then simply
// skip the secondary pass.
func NewEngine(provider ax.Provider, gate PermissionGate, extractor ContentExtractor, logger zerolog.Logger) *Engine {
	return &Engine{provider: provider, gate: gate, extractor: extractor, logger: logger}
}

// Traverse walks the UI graph rooted at root and returns the caller-owned
// response. Only permission denial and an unresolvable target abort; the
// browser extraction pass degrades to partial data on any failure.
func (e *Engine) Traverse(ctx context.Context, target ax.Target, root ax.Node, opts Options) (*ResponseData, error) {
	if e.gate != nil && !e.gate.Granted() {
		return nil, ax.ErrPermissionDenied
	}
	if root == nil {
		return nil, fmt.Errorf("%w: %q", ax.ErrTargetNotFound, target.Name)
	}

	started := time.Now()
	w := newWalker(e.provider, opts.VisibleOnly, e.logger)
	w.walk(root, 0)

	var pageData *browser.PageData
	isBrowser := e.extractor != nil && e.extractor.Recognizes(target)
	if isBrowser {
		pageData = e.extractor.Extract(ctx, target, root)
		if pageData != nil {
			w.stats.setBrowserElements(len(pageData.Elements))
		}
	}

	resp := assemble(target.Name, w.elements, w.stats, started)
	resp.IsBrowser = isBrowser
	resp.BrowserData = pageData

	e.logger.Info().
		Str("app", target.Name).
		Int("elements", len(resp.Elements)).
		Int("visited_roles", len(resp.Stats.RoleCounts)).
		Bool("is_browser", resp.IsBrowser).
		Str("took_s", resp.ProcessingTimeSeconds).
		Msg("traversal finished")
	return resp, nil
}
