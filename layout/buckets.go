package layout

import (
	"github.com/npillmayer/boxtree/geom"
	"github.com/npillmayer/boxtree/style"
	"github.com/npillmayer/boxtree/tree"
)

// bucket is a group of sibling boxes sharing an anchor point, in list order.
type bucket[T Box] struct {
	anchor style.Anchor
	boxes  []*tree.Node[T]
}

// buckets partitions children by anchor. Buckets are returned in order of
// discovery. Children anchored to none are returned separately.
func buckets[T Box](children []*tree.Node[T]) (bs []*bucket[T], loose []*tree.Node[T]) {
	for _, ch := range children {
		a := ch.Payload.LayoutStyle().Anchor
		if a == style.AnchorNone {
			loose = append(loose, ch)
			continue
		}
		var bk *bucket[T]
		for _, b := range bs {
			if b.anchor == a {
				bk = b
				break
			}
		}
		if bk == nil {
			bk = &bucket[T]{anchor: a}
			bs = append(bs, bk)
		}
		bk.boxes = append(bk.boxes, ch)
	}
	return
}

// extent is the size of a bucket: along the flow axis the sum of the outer
// sizes plus gaps, across the flow axis the maximum outer size.
func (bk *bucket[T]) extent(flow style.Flow, gap float32, outer func(T) geom.Size) geom.Size {
	var along, across float32
	for i, n := range bk.boxes {
		sz := outer(n.Payload)
		along += mainAxis(sz, flow)
		if i > 0 {
			along += gap
		}
		across = max(across, crossAxis(sz, flow))
	}
	return oriented(along, across, flow)
}

// aggregate is the element-wise maximum of all bucket extents, using the
// outer sizes of pass 1.
func aggregate[T Box](children []*tree.Node[T], flow style.Flow, gap float32) geom.Size {
	bs, _ := buckets(children)
	var agg geom.Size
	for _, bk := range bs {
		agg = agg.Max(bk.extent(flow, gap, intrinsicOuterOf[T]))
	}
	return agg
}

func intrinsicOuterOf[T Box](box T) geom.Size {
	return box.LayoutBounds().intrinsicOuter(box.LayoutStyle())
}

func outerOf[T Box](box T) geom.Size {
	return box.LayoutBounds().MarginSize
}

// --- Axis helpers ----------------------------------------------------------

func mainAxis(sz geom.Size, flow style.Flow) float32 {
	if flow == style.Vertical {
		return sz.H
	}
	return sz.W
}

func crossAxis(sz geom.Size, flow style.Flow) float32 {
	if flow == style.Vertical {
		return sz.W
	}
	return sz.H
}

func oriented(along, across float32, flow style.Flow) geom.Size {
	if flow == style.Vertical {
		return geom.Sz(across, along)
	}
	return geom.Sz(along, across)
}

func orientedPoint(along, across float32, flow style.Flow) geom.Point {
	if flow == style.Vertical {
		return geom.Pt(across, along)
	}
	return geom.Pt(along, across)
}

func splitPoint(p geom.Point, flow style.Flow) (along, across float32) {
	if flow == style.Vertical {
		return p.Y, p.X
	}
	return p.X, p.Y
}

// alignments returns the alignment of an anchor along and across the flow.
func alignments(a style.Anchor, flow style.Flow) (along, across style.Align) {
	if flow == style.Vertical {
		return a.Vertical(), a.Horizontal()
	}
	return a.Horizontal(), a.Vertical()
}
