package browser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// unknownValue is the sentinel for page fields no lookup could resolve.
const unknownValue = "unknown"

// Element is one DOM-level interactive element returned by the injected
// extraction script.
type Element struct {
	TagName     string   `json:"tagName"`
	ID          string   `json:"id,omitempty"`
	ClassName   string   `json:"className,omitempty"`
	Text        string   `json:"text,omitempty"`
	Value       string   `json:"value,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	AriaLabel   string   `json:"ariaLabel,omitempty"`
	Role        string   `json:"role,omitempty"`
	Href        string   `json:"href,omitempty"`
	Src         string   `json:"src,omitempty"`
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
}

// Summary renders a compact markup-like view of the element for diagnostics.
// Purely derived; it carries no identity of its own.
func (e Element) Summary() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.TagName)
	if e.ID != "" {
		fmt.Fprintf(&b, " id=%q", e.ID)
	}
	if e.Role != "" {
		fmt.Fprintf(&b, " role=%q", e.Role)
	}
	if e.AriaLabel != "" {
		fmt.Fprintf(&b, " aria-label=%q", e.AriaLabel)
	}
	if e.Placeholder != "" {
		fmt.Fprintf(&b, " placeholder=%q", e.Placeholder)
	}
	if e.Href != "" {
		fmt.Fprintf(&b, " href=%q", e.Href)
	}
	b.WriteString(">")
	if e.Text != "" {
		b.WriteString(truncate(e.Text, 80))
	}
	b.WriteString("</")
	b.WriteString(e.TagName)
	b.WriteString(">")
	return b.String()
}

// PageData is the best-effort result of the browser extraction pass. Any
// field may hold its sentinel or zero value when extraction partially
// failed.
type PageData struct {
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	HTML          string    `json:"html"`
	ExtractedText string    `json:"extractedText"`
	Elements      []Element `json:"elements"`
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Back up to a rune start so the cut never splits a multi-byte rune.
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "…"
}
