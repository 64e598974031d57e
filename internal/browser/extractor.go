package browser

import (
	"context"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"

	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
)

// Injector runs a script against the foreground document of the target
// application and returns its serialized result. Implementations decide the
// wait policy; expiry must surface as an error.
type Injector interface {
	Execute(ctx context.Context, target ax.Target, script string) (string, error)
}

// knownBrowserBundles is the static allow-list of host applications the
// extractor understands. Read-only after initialization.
var knownBrowserBundles = []string{
	"com.apple.Safari",
	"com.google.Chrome",
	"com.google.Chrome.canary",
	"com.microsoft.edgemac",
	"company.thebrowser.Browser",
	"org.mozilla.firefox",
	"com.brave.Browser",
	"com.operasoftware.Opera",
	"com.vivaldi.Vivaldi",
}

// descendantScanBudget caps how many nodes the URL fallback search will
// touch inside a single window.
const descendantScanBudget = 2000

// Config extends the static policy lists. Zero value means defaults only.
type Config struct {
	ExtraBundleIDs []string
	ExtraKeywords  []string
}

// Extractor performs the secondary content pass against recognised
// browsers: URL/title lookup through the accessibility graph plus DOM-level
// element extraction through script injection.
type Extractor struct {
	provider ax.Provider
	injector Injector
	bundles  mapset.Set[string]
	keywords []string
	logger   zerolog.Logger
}

func NewExtractor(provider ax.Provider, injector Injector, cfg Config, logger zerolog.Logger) *Extractor {
	bundles := mapset.NewThreadUnsafeSet[string]()
	for _, id := range knownBrowserBundles {
		bundles.Add(strings.ToLower(id))
	}
	for _, id := range cfg.ExtraBundleIDs {
		if id = strings.TrimSpace(id); id != "" {
			bundles.Add(strings.ToLower(id))
		}
	}
	keywords := append([]string{}, defaultActionKeywords...)
	for _, kw := range cfg.ExtraKeywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return &Extractor{
		provider: provider,
		injector: injector,
		bundles:  bundles,
		keywords: keywords,
		logger:   logger,
	}
}

// Recognizes reports whether the target is on the browser allow-list.
func (e *Extractor) Recognizes(target ax.Target) bool {
	return e.bundles.Contains(strings.ToLower(target.BundleID))
}

// Extract gathers page data for a recognised browser. It never fails hard:
// every error on the way is logged and leaves the result partially filled.
func (e *Extractor) Extract(ctx context.Context, target ax.Target, root ax.Node) *PageData {
	data := &PageData{URL: unknownValue, Title: unknownValue, Elements: []Element{}}

	// Accessibility-based lookup first; it survives even when injection
	// fails entirely.
	if url, title, ok := e.lookupPageInfo(root); ok {
		if url != "" {
			data.URL = url
		}
		if title != "" {
			data.Title = title
		}
	}

	if e.injector == nil {
		return data
	}

	raw, err := e.injector.Execute(ctx, target, extractionScript(e.keywords))
	if err != nil {
		serr := &ax.ScriptError{Err: err}
		e.logger.Error().Err(serr).Str("app", target.Name).Msg("browser extraction soft-failed")
		return data
	}

	result, perr := parsePageResult(raw)
	if perr != nil {
		e.logger.Error().Err(perr).Str("app", target.Name).Msg("browser extraction result unusable")
		return data
	}
	if result.Error != "" {
		// The script itself failed inside the page; keep url/title, drop
		// the content fields.
		e.logger.Error().Str("script_error", result.Error).Str("app", target.Name).Msg("injected script reported failure")
		return data
	}

	data.HTML = result.HTML
	data.ExtractedText = result.Text
	data.Elements = make([]Element, 0, len(result.Elements))
	for _, re := range result.Elements {
		data.Elements = append(data.Elements, re.toElement())
	}

	if result.URL != "" {
		data.URL = result.URL
	}
	if result.Title != "" {
		data.Title = result.Title
	}
	// Script gave nothing for url/title: one more accessibility round trip,
	// the page may have settled since the first read.
	if data.URL == unknownValue || data.Title == unknownValue {
		if url, title, ok := e.lookupPageInfo(root); ok {
			if data.URL == unknownValue && url != "" {
				data.URL = url
			}
			if data.Title == unknownValue && title != "" {
				data.Title = title
			}
		}
	}

	e.logger.Debug().
		Str("url", data.URL).
		Int("elements", len(data.Elements)).
		Int("html_bytes", len(data.HTML)).
		Msg("browser extraction done")
	return data
}

// lookupPageInfo resolves URL and title through the accessibility graph: a
// document attribute on the main window when present, otherwise the value
// of a text field inside a toolbar (the address bar). Title comes from the
// window title.
func (e *Extractor) lookupPageInfo(root ax.Node) (url, title string, ok bool) {
	mw, hasMW := e.provider.MainWindow(root)
	if !hasMW {
		return "", "", false
	}
	if t, has := e.provider.Attribute(mw, ax.TitleAttribute); has {
		title = strings.TrimSpace(t)
	}
	if doc, has := e.provider.Attribute(mw, ax.DocumentAttribute); has && strings.TrimSpace(doc) != "" {
		return strings.TrimSpace(doc), title, true
	}
	if toolbar, found := e.findDescendant(mw, ax.RoleToolbar); found {
		if field, foundField := e.findDescendant(toolbar, ax.RoleTextField); foundField {
			if v, has := e.provider.Attribute(field, ax.ValueAttribute); has && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v), title, true
			}
		}
	}
	return "", title, title != ""
}

// findDescendant breadth-first searches the subtree under root for the
// first node with the given role, within a fixed node budget.
func (e *Extractor) findDescendant(root ax.Node, role string) (ax.Node, bool) {
	seen := mapset.NewThreadUnsafeSet[ax.Node]()
	queue := []ax.Node{root}
	budget := descendantScanBudget
	for len(queue) > 0 && budget > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil || !seen.Add(n) {
			continue
		}
		budget--
		if r, has := e.provider.Role(n); has && r == role && n != root {
			return n, true
		}
		queue = append(queue, e.provider.Children(n)...)
	}
	return nil, false
}
