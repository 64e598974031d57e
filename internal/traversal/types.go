package traversal

import (
	"context"

	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
	"github.com/RishaanDevz/MacosUseSDK/internal/browser"
)

// ElementData is one collected element of the accessibility tree. Optional
// fields marshal as absent rather than zero. Two records are the same element
// iff every field is equal; that full structural equality drives
// deduplication and diffing.
type ElementData struct {
	Role   string   `json:"role"`
	Text   *string  `json:"text,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// HasText reports whether the record carries non-empty aggregated text.
func (e ElementData) HasText() bool {
	return e.Text != nil && *e.Text != ""
}

// Statistics aggregates counters over one traversal. Counters only ever go
// up during a walk; Count is set once at assembly time.
type Statistics struct {
	Count                   int            `json:"count"`
	ExcludedCount           int            `json:"excluded_count"`
	ExcludedNonInteractable int            `json:"excluded_non_interactable"`
	ExcludedNoText          int            `json:"excluded_no_text"`
	WithTextCount           int            `json:"with_text_count"`
	WithoutTextCount        int            `json:"without_text_count"`
	VisibleElementsCount    int            `json:"visible_elements_count"`
	RoleCounts              map[string]int `json:"role_counts"`
	BrowserElementsCount    int            `json:"browser_elements_count"`
}

// ResponseData is the result of one traversal. The engine holds no reference
// to it after returning.
type ResponseData struct {
	AppName               string            `json:"app_name"`
	Elements              []ElementData     `json:"elements"`
	Stats                 Statistics        `json:"stats"`
	ProcessingTimeSeconds string            `json:"processing_time_seconds"`
	IsBrowser             bool              `json:"is_browser"`
	BrowserData           *browser.PageData `json:"browser_data,omitempty"`
}

// Options tune one traversal invocation.
type Options struct {
	// VisibleOnly drops elements without resolvable geometry from the
	// collected set. Statistics that depend only on geometry are unaffected.
	VisibleOnly bool
}

// PermissionGate is checked once before any node is visited.
type PermissionGate interface {
	Granted() bool
}

// ContentExtractor runs the secondary browser extraction pass for recognised
// host applications. Extract never fails hard; it returns whatever page data
// it managed to gather.
type ContentExtractor interface {
	Recognizes(target ax.Target) bool
	Extract(ctx context.Context, target ax.Target, root ax.Node) *browser.PageData
}

func strPtr(s string) *string { return &s }

func f64Ptr(v float64) *float64 { return &v }
