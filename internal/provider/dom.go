// Package provider contains Provider bindings for the traversal engine. The
// native macOS accessibility binding lives outside this module; the DOM
// provider here serves hosts where a Chromium page stands in for the UI
// graph.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
)

// Executor runs a script against the target's foreground document. Satisfied
// by inject.PlaywrightInjector.
type Executor interface {
	Execute(ctx context.Context, target ax.Target, script string) (string, error)
}

// snapshotScript serializes the page's element tree with accessibility-style
// roles. One evaluation per capture keeps node identity stable on the Go
// side.
const snapshotScript = `(() => {
	const roleFor = (el) => {
		const explicit = (el.getAttribute("role") || "").toLowerCase();
		const byRole = {
			button: "AXButton", link: "AXLink", heading: "AXHeading",
			textbox: "AXTextField", searchbox: "AXTextField",
			checkbox: "AXCheckBox", radio: "AXRadioButton",
			list: "AXList", listitem: "AXStaticText", toolbar: "AXToolbar",
			navigation: "AXGroup", img: "AXImage", separator: "AXSeparator"
		};
		if (explicit && byRole[explicit]) return byRole[explicit];
		const byTag = {
			button: "AXButton", a: "AXLink", input: "AXTextField",
			textarea: "AXTextArea", select: "AXPopUpButton", img: "AXImage",
			h1: "AXHeading", h2: "AXHeading", h3: "AXHeading",
			h4: "AXHeading", h5: "AXHeading", h6: "AXHeading",
			p: "AXStaticText", span: "AXStaticText", label: "AXStaticText",
			li: "AXStaticText", hr: "AXSeparator", ul: "AXList", ol: "AXList",
			table: "AXTable", nav: "AXGroup", header: "AXGroup",
			footer: "AXGroup", section: "AXGroup", article: "AXGroup",
			form: "AXGroup", main: "AXGroup", div: "AXGroup"
		};
		return byTag[el.tagName.toLowerCase()] || "AXGroup";
	};
	const leafText = (el) => {
		let t = "";
		for (const child of el.childNodes) {
			if (child.nodeType === Node.TEXT_NODE) t += child.textContent;
		}
		return t.trim().slice(0, 200);
	};
	const toNode = (el, depth) => {
		const rect = el.getBoundingClientRect();
		const node = {
			role: roleFor(el),
			title: el.getAttribute("title") || "",
			value: el.value !== undefined && el.value !== null ? String(el.value) : leafText(el),
			description: el.getAttribute("aria-label") || "",
			placeholder: el.getAttribute("placeholder") || "",
			x: rect.x, y: rect.y, width: rect.width, height: rect.height,
			children: []
		};
		if (depth < 90) {
			for (const c of el.children) node.children.push(toNode(c, depth + 1));
		}
		return node;
	};
	const rootEl = document.body || document.documentElement;
	return JSON.stringify({
		url: window.location.href,
		title: document.title,
		root: rootEl ? toNode(rootEl, 0) : null
	});
})()`

type rawNode struct {
	Role        string    `json:"role"`
	Title       string    `json:"title"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	Placeholder string    `json:"placeholder"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	Children    []rawNode `json:"children"`
}

type rawSnapshot struct {
	URL   string   `json:"url"`
	Title string   `json:"title"`
	Root  *rawNode `json:"root"`
}

// node is one snapshot element. Handle identity is pointer identity.
type node struct {
	role     string
	attrs    map[string]string
	pos      ax.Point
	size     ax.Size
	hasFrame bool
	parent   *node
	children []*node
}

// DOMProvider serves Provider calls from an immutable DOM snapshot. The
// synthetic application node carries one window wrapping the document tree,
// so the walker's windows / main-window / children descent works unchanged.
type DOMProvider struct {
	app *node
	win *node
}

// Capture takes one snapshot of the target's foreground page and wraps it
// as a Provider.
func Capture(ctx context.Context, exec Executor, target ax.Target) (*DOMProvider, error) {
	raw, err := exec.Execute(ctx, target, snapshotScript)
	if err != nil {
		return nil, fmt.Errorf("capture dom snapshot: %w", err)
	}
	var snap rawSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("decode dom snapshot: %w", err)
	}
	if snap.Root == nil {
		return nil, fmt.Errorf("dom snapshot has no document root")
	}

	win := &node{
		role: ax.RoleWindow,
		attrs: map[string]string{
			ax.TitleAttribute:    snap.Title,
			ax.DocumentAttribute: snap.URL,
		},
	}
	win.children = []*node{buildNode(snap.Root, win)}

	app := &node{
		role:     "AXApplication",
		attrs:    map[string]string{ax.TitleAttribute: target.Name},
		children: []*node{win},
	}
	win.parent = app
	return &DOMProvider{app: app, win: win}, nil
}

func buildNode(raw *rawNode, parent *node) *node {
	n := &node{
		role:     raw.Role,
		attrs:    map[string]string{},
		pos:      ax.Point{X: raw.X, Y: raw.Y},
		size:     ax.Size{Width: raw.Width, Height: raw.Height},
		hasFrame: true,
		parent:   parent,
	}
	if v := strings.TrimSpace(raw.Value); v != "" {
		n.attrs[ax.ValueAttribute] = v
	}
	if v := strings.TrimSpace(raw.Title); v != "" {
		n.attrs[ax.TitleAttribute] = v
	}
	if v := strings.TrimSpace(raw.Description); v != "" {
		n.attrs[ax.DescriptionAttribute] = v
	}
	if v := strings.TrimSpace(raw.Placeholder); v != "" {
		n.attrs[ax.PlaceholderAttribute] = v
	}
	for i := range raw.Children {
		n.children = append(n.children, buildNode(&raw.Children[i], n))
	}
	return n
}

// Root returns the synthetic application node for the walker.
func (p *DOMProvider) Root() ax.Node { return p.app }

func (p *DOMProvider) Role(h ax.Node) (string, bool) {
	n, ok := h.(*node)
	if !ok {
		return "", false
	}
	return n.role, true
}

func (p *DOMProvider) Attribute(h ax.Node, kind string) (string, bool) {
	n, ok := h.(*node)
	if !ok {
		return "", false
	}
	v, has := n.attrs[kind]
	return v, has
}

func (p *DOMProvider) Position(h ax.Node) (ax.Point, bool) {
	n, ok := h.(*node)
	if !ok || !n.hasFrame {
		return ax.Point{}, false
	}
	return n.pos, true
}

func (p *DOMProvider) Size(h ax.Node) (ax.Size, bool) {
	n, ok := h.(*node)
	if !ok || !n.hasFrame {
		return ax.Size{}, false
	}
	return n.size, true
}

func (p *DOMProvider) Children(h ax.Node) []ax.Node {
	n, ok := h.(*node)
	if !ok {
		return nil
	}
	out := make([]ax.Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	return out
}

func (p *DOMProvider) Windows(h ax.Node) []ax.Node {
	if h == ax.Node(p.app) {
		return []ax.Node{p.win}
	}
	return nil
}

func (p *DOMProvider) MainWindow(h ax.Node) (ax.Node, bool) {
	if h == ax.Node(p.app) {
		return p.win, true
	}
	return nil, false
}

func (p *DOMProvider) Parent(h ax.Node) (ax.Node, bool) {
	n, ok := h.(*node)
	if !ok || n.parent == nil {
		return nil, false
	}
	return n.parent, true
}
