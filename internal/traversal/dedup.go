package traversal

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// elementKey is the comparable projection of an ElementData used for set
// membership. The walker produces all-or-nothing geometry (see resolveFrame),
// but Diff accepts caller-built data, so a partially specified frame is
// treated as no frame rather than dereferenced.
type elementKey struct {
	role     string
	text     string
	hasText  bool
	x, y     float64
	w, h     float64
	hasFrame bool
}

func hasFullFrame(e ElementData) bool {
	return e.X != nil && e.Y != nil && e.Width != nil && e.Height != nil
}

func keyOf(e ElementData) elementKey {
	k := elementKey{role: e.Role}
	if e.Text != nil {
		k.text = *e.Text
		k.hasText = true
	}
	if hasFullFrame(e) {
		k.x, k.y, k.w, k.h = *e.X, *e.Y, *e.Width, *e.Height
		k.hasFrame = true
	}
	return k
}

// deduplicator keeps one copy of each structurally identical element. A
// successful first insertion also settles the with/without-text counters;
// duplicates never touch them.
type deduplicator struct {
	seen  mapset.Set[elementKey]
	stats *collector
}

func newDeduplicator(stats *collector) *deduplicator {
	return &deduplicator{seen: mapset.NewThreadUnsafeSet[elementKey](), stats: stats}
}

func (d *deduplicator) insert(e ElementData) bool {
	if !d.seen.Add(keyOf(e)) {
		return false
	}
	d.stats.recordKept(e.HasText())
	return true
}
