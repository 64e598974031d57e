package traversal

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
)

// fakeNode is an in-memory UI graph node. Pointer identity is handle
// identity, so diamonds and cycles are expressed directly.
type fakeNode struct {
	role     string
	roleDesc string
	attrs    map[string]string
	pos      *ax.Point
	size     *ax.Size
	children []*fakeNode
	windows  []*fakeNode
	main     *fakeNode
}

type fakeProvider struct{}

func (fakeProvider) Role(n ax.Node) (string, bool) {
	fn := n.(*fakeNode)
	if fn.role == "" {
		return "", false
	}
	return fn.role, true
}

func (fakeProvider) Attribute(n ax.Node, kind string) (string, bool) {
	fn := n.(*fakeNode)
	if kind == ax.RoleDescriptionAttribute {
		if fn.roleDesc == "" {
			return "", false
		}
		return fn.roleDesc, true
	}
	v, ok := fn.attrs[kind]
	return v, ok
}

func (fakeProvider) Position(n ax.Node) (ax.Point, bool) {
	fn := n.(*fakeNode)
	if fn.pos == nil {
		return ax.Point{}, false
	}
	return *fn.pos, true
}

func (fakeProvider) Size(n ax.Node) (ax.Size, bool) {
	fn := n.(*fakeNode)
	if fn.size == nil {
		return ax.Size{}, false
	}
	return *fn.size, true
}

func (fakeProvider) Children(n ax.Node) []ax.Node {
	return toNodes(n.(*fakeNode).children)
}

func (fakeProvider) Windows(n ax.Node) []ax.Node {
	return toNodes(n.(*fakeNode).windows)
}

func (fakeProvider) MainWindow(n ax.Node) (ax.Node, bool) {
	fn := n.(*fakeNode)
	if fn.main == nil {
		return nil, false
	}
	return fn.main, true
}

func (fakeProvider) Parent(n ax.Node) (ax.Node, bool) {
	return nil, false
}

func toNodes(ns []*fakeNode) []ax.Node {
	out := make([]ax.Node, 0, len(ns))
	for _, n := range ns {
		out = append(out, n)
	}
	return out
}

func textNode(role, text string) *fakeNode {
	return &fakeNode{role: role, attrs: map[string]string{ax.TitleAttribute: text}}
}

func positioned(n *fakeNode, x, y, w, h float64) *fakeNode {
	n.pos = &ax.Point{X: x, Y: y}
	n.size = &ax.Size{Width: w, Height: h}
	return n
}

func runWalk(t *testing.T, root *fakeNode, visibleOnly bool) *walker {
	t.Helper()
	w := newWalker(fakeProvider{}, visibleOnly, zerolog.Nop())
	w.walk(root, 0)
	return w
}

func visitedTotal(w *walker) int {
	total := 0
	for _, c := range w.stats.stats.RoleCounts {
		total += c
	}
	return total
}

func TestWalkVisitsEachHandleOnce(t *testing.T) {
	// Diamond: two groups share one button, and the button points back at
	// the root to close a cycle.
	shared := textNode("AXButton", "OK")
	left := &fakeNode{role: "AXGroup", children: []*fakeNode{shared}}
	right := &fakeNode{role: "AXGroup", children: []*fakeNode{shared}}
	root := &fakeNode{role: "AXGroup", children: []*fakeNode{left, right}}
	shared.children = []*fakeNode{root}

	w := runWalk(t, root, false)

	if got := w.stats.stats.RoleCounts["AXButton"]; got != 1 {
		t.Fatalf("shared button visited %d times, want 1", got)
	}
	if got := visitedTotal(w); got != 4 {
		t.Fatalf("visited %d nodes, want 4", got)
	}
}

func TestWalkDepthCap(t *testing.T) {
	root := &fakeNode{role: "AXGroup"}
	cur := root
	for i := 0; i < 150; i++ {
		next := &fakeNode{role: "AXGroup"}
		cur.children = []*fakeNode{next}
		cur = next
	}

	w := runWalk(t, root, false)

	// Depths 0 through 100 inclusive.
	if got := visitedTotal(w); got != 101 {
		t.Fatalf("visited %d nodes, want 101", got)
	}
}

func TestWalkTraversesWindowsMainWindowAndChildren(t *testing.T) {
	winChild := textNode("AXButton", "In Window")
	win := &fakeNode{role: "AXWindow", children: []*fakeNode{winChild}}
	child := textNode("AXButton", "Direct")
	root := &fakeNode{
		role:     "AXApplication",
		windows:  []*fakeNode{win},
		main:     win, // overlaps the window collection; must not double count
		children: []*fakeNode{child},
	}

	w := runWalk(t, root, false)

	if got := w.stats.stats.RoleCounts["AXWindow"]; got != 1 {
		t.Fatalf("window visited %d times, want 1", got)
	}
	// Application, window and both buttons all pass the filter.
	if got := len(w.elements); got != 4 {
		t.Fatalf("collected %d elements, want 4", got)
	}
}

func TestRoleCountsIncludeFilteredNodes(t *testing.T) {
	root := &fakeNode{role: "AXGroup"}
	for i := 0; i < 5; i++ {
		n := &fakeNode{role: "AXStaticText"}
		if i < 3 {
			n.attrs = map[string]string{ax.ValueAttribute: "text"}
		}
		root.children = append(root.children, n)
	}

	w := runWalk(t, root, false)

	if got := w.stats.stats.RoleCounts["AXStaticText"]; got != 5 {
		t.Fatalf("role_counts[AXStaticText] = %d, want 5", got)
	}
	if got := len(w.elements); got != 1 {
		// Three text nodes carry identical records; dedup keeps one.
		t.Fatalf("collected %d elements, want 1", got)
	}
}

func TestDedupAcrossDistinctHandles(t *testing.T) {
	a := textNode("AXButton", "Save")
	b := textNode("AXButton", "Save")
	root := &fakeNode{role: "AXGroup", children: []*fakeNode{a, b}}

	w := runWalk(t, root, false)

	if got := visitedTotal(w); got != 3 {
		t.Fatalf("visited %d nodes, want 3 (both handles count)", got)
	}
	if got := len(w.elements); got != 1 {
		t.Fatalf("collected %d elements, want 1 after dedup", got)
	}
	if got := w.stats.stats.WithTextCount; got != 1 {
		t.Fatalf("with_text_count = %d, want 1", got)
	}
}

func TestVisibleOnlyMode(t *testing.T) {
	build := func() *fakeNode {
		invisible := textNode("AXButton", "No Frame")
		visible := positioned(textNode("AXButton", "Framed"), 10, 20, 100, 30)
		return &fakeNode{role: "AXGroup", children: []*fakeNode{invisible, visible}}
	}

	normal := runWalk(t, build(), false)
	if got := len(normal.elements); got != 2 {
		t.Fatalf("normal mode collected %d, want 2", got)
	}

	vo := runWalk(t, build(), true)
	if got := len(vo.elements); got != 1 {
		t.Fatalf("visible-only collected %d, want 1", got)
	}
	if normal.stats.stats.VisibleElementsCount != vo.stats.stats.VisibleElementsCount {
		t.Fatalf("visible_elements_count differs across modes: %d vs %d",
			normal.stats.stats.VisibleElementsCount, vo.stats.stats.VisibleElementsCount)
	}
}

func TestRoleDescriptionSuffix(t *testing.T) {
	n := textNode("AXButton", "Send")
	n.roleDesc = "toggle button"
	root := &fakeNode{role: "AXGroup", children: []*fakeNode{n}}

	w := runWalk(t, root, false)

	if len(w.elements) != 1 {
		t.Fatalf("collected %d elements, want 1", len(w.elements))
	}
	if got := w.elements[0].Role; got != "AXButton (toggle button)" {
		t.Fatalf("display role = %q", got)
	}
	if got := w.stats.stats.RoleCounts["AXButton"]; got != 1 {
		t.Fatalf("role_counts keyed by display role, want bare role")
	}
}

func TestUnknownRoleDefault(t *testing.T) {
	root := &fakeNode{children: []*fakeNode{{}}}

	w := runWalk(t, root, false)

	if got := w.stats.stats.RoleCounts[ax.RoleUnknown]; got != 2 {
		t.Fatalf("role_counts[Unknown] = %d, want 2", got)
	}
}
