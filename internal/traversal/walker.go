package traversal

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
)

// walker performs the recursive descent for one traversal. It owns all
// per-invocation state; nothing survives the call.
type walker struct {
	provider ax.Provider
	guard    *visitGuard
	filter   *filterPolicy
	dedup    *deduplicator
	stats    *collector
	logger   zerolog.Logger
	elements []ElementData
}

func newWalker(p ax.Provider, visibleOnly bool, logger zerolog.Logger) *walker {
	stats := newCollector()
	return &walker{
		provider: p,
		guard:    newVisitGuard(),
		filter:   &filterPolicy{visibleOnly: visibleOnly, stats: stats},
		dedup:    newDeduplicator(stats),
		stats:    stats,
		logger:   logger,
	}
}

// walk visits n and then, in order, its window collection, its main window
// and its ordinary children. The three sources may overlap; the guard keeps
// any handle from being processed twice. Malformed nodes are not errors:
// missing attributes read as absent and the role defaults to "Unknown".
func (w *walker) walk(n ax.Node, depth int) {
	if n == nil || !w.guard.shouldVisit(n, depth) {
		return
	}

	role := ax.RoleUnknown
	if r, ok := w.provider.Role(n); ok && strings.TrimSpace(r) != "" {
		role = r
	}
	text, hasText := aggregateText(w.provider, n)
	pos, hasPos := w.provider.Position(n)
	size, hasSize := w.provider.Size(n)
	fr, visible := resolveFrame(pos, hasPos, size, hasSize)

	w.stats.recordRole(role)
	if visible {
		w.stats.recordVisible()
	}

	if w.filter.shouldCollect(role, hasText, visible) {
		rec := ElementData{Role: displayRole(w.provider, n, role)}
		if hasText {
			rec.Text = strPtr(text)
		}
		if visible {
			rec.X = f64Ptr(fr.x)
			rec.Y = f64Ptr(fr.y)
			rec.Width = f64Ptr(fr.width)
			rec.Height = f64Ptr(fr.height)
		}
		if w.dedup.insert(rec) {
			w.elements = append(w.elements, rec)
		}
	} else {
		// Informational only; the numeric exclusion counters were already
		// updated by the filter.
		w.logger.Debug().
			Str("role", role).
			Bool("has_text", hasText).
			Bool("visible", visible).
			Msg("element excluded")
	}

	for _, win := range w.provider.Windows(n) {
		w.walk(win, depth+1)
	}
	if mw, ok := w.provider.MainWindow(n); ok {
		w.walk(mw, depth+1)
	}
	for _, child := range w.provider.Children(n) {
		w.walk(child, depth+1)
	}
}

// displayRole appends the provider's role description as a parenthetical
// suffix when it says more than the bare role name.
func displayRole(p ax.Provider, n ax.Node, role string) string {
	desc, ok := p.Attribute(n, ax.RoleDescriptionAttribute)
	if !ok {
		return role
	}
	desc = strings.TrimSpace(desc)
	if desc == "" || strings.EqualFold(desc, role) {
		return role
	}
	return role + " (" + desc + ")"
}
