package layout

import (
	"fmt"

	"github.com/npillmayer/boxtree/geom"
	"github.com/npillmayer/boxtree/style"
)

// Bounds holds the resolved geometry of a box. Sizes are produced by passes
// 1 and 2, rectangles by pass 3. Bounds are derived only and updated in place.
type Bounds struct {
	ContentSize geom.Size
	PaddingSize geom.Size
	MarginSize  geom.Size // outer size
	ContentRect geom.Rect
	PaddingRect geom.Rect
	MarginRect  geom.Rect
	intrinsic   geom.Size  // content size of pass 1, before stretching
	origin      geom.Point // origin of the last placement
	placedSize  geom.Size  // outer size at the last placement
	placed      bool
}

func (b *Bounds) String() string {
	return fmt.Sprintf("margin=%v padding=%v content=%v", b.MarginRect, b.PaddingRect, b.ContentRect)
}

// Placed is true if pass 3 has positioned the box at least once.
func (b *Bounds) Placed() bool {
	return b.placed
}

// setContent sets the content size and derives padding and margin size from it.
func (b *Bounds) setContent(content geom.Size, cs *style.ComputedStyle) {
	b.ContentSize = geom.Sz(max(content.W, 0), max(content.H, 0))
	b.PaddingSize = b.ContentSize.Grow(cs.Padding)
	b.MarginSize = b.PaddingSize.Grow(cs.Margin)
}

// intrinsicOuter is the outer size of pass 1. Parents aggregate children by
// this size, which keeps repeated reflows from feeding stretched sizes back
// into auto-sizing.
func (b *Bounds) intrinsicOuter(cs *style.ComputedStyle) geom.Size {
	return b.intrinsic.Grow(cs.Padding).Grow(cs.Margin)
}
