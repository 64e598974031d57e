package traversal

import (
	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
)

// frame is a fully resolved element rectangle.
type frame struct {
	x, y          float64
	width, height float64
}

// resolveFrame combines optional position and size into a frame. Both must
// be present and at least one dimension strictly positive; a zero-height
// divider with nonzero width still resolves, a fully zero-sized or
// unpositioned node does not. Geometric visibility is exactly "frame
// resolved".
func resolveFrame(pos ax.Point, hasPos bool, size ax.Size, hasSize bool) (frame, bool) {
	if !hasPos || !hasSize {
		return frame{}, false
	}
	if size.Width <= 0 && size.Height <= 0 {
		return frame{}, false
	}
	return frame{x: pos.X, y: pos.Y, width: size.Width, height: size.Height}, true
}
