package layout

import (
	"fmt"

	"github.com/npillmayer/boxtree/geom"
	"github.com/npillmayer/boxtree/style"
	"github.com/npillmayer/boxtree/tree"
)

// Box is the constraint for payloads of trees which can be laid out.
//
// NeedsReflow reports whether a box has to be re-measured. Clients keep this
// flag set for every ancestor of a dirty box. ReflowDone is called by pass 3
// after a box has been positioned.
type Box interface {
	comparable
	LayoutStyle() *style.ComputedStyle
	LayoutBounds() *Bounds
	Text() string
	NeedsReflow() bool
	ReflowDone()
}

// Reflow lays out the tree rooted at root, with the outer (margin) rectangle
// of root starting at origin. Bounds of all boxes are updated in place.
//
// Reflow fails with ErrInvalidFlow if a box carries an unknown flow direction.
// Text measurement failures are not reported.
func Reflow[T Box](root *tree.Node[T], origin geom.Point, m Measurer) error {
	if root == nil {
		return nil
	}
	tracer().Debugf("reflow pass 1: intrinsic sizes")
	if err := intrinsicSizes(root, m); err != nil {
		return err
	}
	tracer().Debugf("reflow pass 2: stretch")
	dirty := root.Payload.NeedsReflow()
	for _, ch := range root.Children() {
		stretch(ch, root, dirty)
	}
	tracer().Debugf("reflow pass 3: positions")
	return place(root, origin)
}

// --- Pass 1 ----------------------------------------------------------------

func intrinsicSizes[T Box](node *tree.Node[T], m Measurer) error {
	box := node.Payload
	if !box.NeedsReflow() {
		return nil
	}
	for _, ch := range node.Children() {
		if err := intrinsicSizes(ch, m); err != nil {
			return err
		}
	}
	cs := box.LayoutStyle()
	if !cs.Flow.Valid() {
		err := fmt.Errorf("%w: %v at box %v", ErrInvalidFlow, cs.Flow, box)
		tracer().Errorf(err.Error())
		return err
	}
	var content geom.Size
	if fixed := cs.Size; fixed.W > 0 && fixed.H > 0 {
		content = fixed
	} else {
		content = measure(m, box.Text(), cs)
		content = content.Max(aggregate(node.Children(), cs.Flow, cs.Gap))
		if fixed.W > 0 {
			content.W = fixed.W
		}
		if fixed.H > 0 {
			content.H = fixed.H
		}
	}
	b := box.LayoutBounds()
	b.intrinsic = content
	b.setContent(content, cs)
	return nil
}

// --- Pass 2 ----------------------------------------------------------------

// stretch visits boxes which are dirty or have a dirty parent. A stretched
// box takes the pass 1 content size of its parent across the parent's flow,
// less its own padding.
func stretch[T Box](node, parent *tree.Node[T], parentDirty bool) {
	box := node.Payload
	dirty := box.NeedsReflow()
	if !dirty && !parentDirty {
		return
	}
	for _, ch := range node.Children() {
		stretch(ch, node, dirty)
	}
	cs := box.LayoutStyle()
	if !cs.Stretch {
		return
	}
	b := box.LayoutBounds()
	pb := parent.Payload.LayoutBounds()
	content := b.intrinsic
	if parent.Payload.LayoutStyle().Flow == style.Vertical {
		content.W = pb.intrinsic.W - cs.Padding.Horizontal()
	} else {
		content.H = pb.intrinsic.H - cs.Padding.Vertical()
	}
	b.setContent(content, cs)
}

// --- Pass 3 ----------------------------------------------------------------

func place[T Box](node *tree.Node[T], origin geom.Point) error {
	box := node.Payload
	b := box.LayoutBounds()
	if !box.NeedsReflow() && b.placed && b.origin == origin && b.placedSize == b.MarginSize {
		return nil
	}
	cs := box.LayoutStyle()
	b.MarginRect = geom.RectAt(origin.Add(cs.Offset), b.MarginSize)
	b.PaddingRect = b.MarginRect.Inset(cs.Margin)
	b.ContentRect = b.PaddingRect.Inset(cs.Padding)
	b.origin, b.placedSize, b.placed = origin, b.MarginSize, true
	if err := placeChildren(node, cs, b.ContentRect); err != nil {
		return err
	}
	box.ReflowDone()
	return nil
}

// placeChildren positions the buckets of a container within its content
// rectangle. Along the flow axis boxes are placed one after another,
// backwards for end-aligned buckets. Across the flow axis the bucket is
// aligned as a whole and each box is aligned within the bucket.
func placeChildren[T Box](node *tree.Node[T], cs *style.ComputedStyle, content geom.Rect) error {
	if node.ChildCount() == 0 {
		return nil
	}
	flow := cs.Flow
	if !flow.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidFlow, flow)
	}
	bs, loose := buckets(node.Children())
	for _, ch := range loose {
		if err := place(ch, content.Min()); err != nil {
			return err
		}
	}
	m0, c0 := splitPoint(content.Min(), flow)
	lm, lc := mainAxis(content.Size(), flow), crossAxis(content.Size(), flow)
	for _, bk := range bs {
		ext := bk.extent(flow, cs.Gap, outerOf[T])
		em, ec := mainAxis(ext, flow), crossAxis(ext, flow)
		along, across := alignments(bk.anchor, flow)
		cursor, backward := m0, false
		switch along {
		case style.AlignMiddle:
			cursor = m0 + (lm-em)/2
		case style.AlignEnd:
			cursor, backward = m0+lm, true
		}
		for _, ch := range bk.boxes {
			sz := ch.Payload.LayoutBounds().MarginSize
			chm, chc := mainAxis(sz, flow), crossAxis(sz, flow)
			var x float32
			switch across {
			case style.AlignStart:
				x = c0
			case style.AlignMiddle:
				x = c0 + (lc-ec)/2 + (ec-chc)/2
			case style.AlignEnd:
				x = c0 + lc - chc
			}
			if backward {
				cursor -= chm
			}
			if err := place(ch, orientedPoint(cursor, x, flow)); err != nil {
				return err
			}
			if backward {
				cursor -= cs.Gap
			} else {
				cursor += chm + cs.Gap
			}
		}
	}
	return nil
}
