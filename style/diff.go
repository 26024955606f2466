package style

// Change classifies the difference between two cascade results of a box.
// Bit 0 signals a layout-affecting change, bit 1 a paint-affecting one.
type Change uint8

// Change bits.
const (
	NoChange      Change = 0
	LayoutChanged Change = 1 << 0
	PaintChanged  Change = 1 << 1
)

// Layout is true if the layout bit is set.
func (c Change) Layout() bool {
	return c&LayoutChanged != 0
}

// Paint is true if the paint bit is set.
func (c Change) Paint() bool {
	return c&PaintChanged != 0
}

func (c Change) String() string {
	switch c {
	case NoChange:
		return "none"
	case LayoutChanged:
		return "layout"
	case PaintChanged:
		return "paint"
	}
	return "layout+paint"
}

// Diff compares the snapshots of two cascade runs field by field.
func Diff(prev, next Snapshot) Change {
	c := NoChange
	if prev.Layout != next.Layout {
		c |= LayoutChanged
	}
	if prev.Paint != next.Paint {
		c |= PaintChanged
	}
	return c
}
