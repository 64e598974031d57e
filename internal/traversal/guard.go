package traversal

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
)

// maxTraversalDepth bounds recursion through pathological or cyclic graphs.
// A branch past the cap is silently truncated, never reported as an error.
const maxTraversalDepth = 100

// visitGuard tracks visited node handles for one traversal. Identity is the
// provider's handle equality; value-equal elements behind distinct handles
// are both visited and left to the deduplicator.
type visitGuard struct {
	visited mapset.Set[ax.Node]
}

func newVisitGuard() *visitGuard {
	return &visitGuard{visited: mapset.NewThreadUnsafeSet[ax.Node]()}
}

// shouldVisit marks n visited and returns true unless n was already seen or
// depth is past the cap. Rejection has no side effects.
func (g *visitGuard) shouldVisit(n ax.Node, depth int) bool {
	if depth > maxTraversalDepth {
		return false
	}
	if g.visited.Contains(n) {
		return false
	}
	g.visited.Add(n)
	return true
}
