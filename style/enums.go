package style

import (
	"fmt"
	"strings"
)

// Flow is the primary axis along which a container arranges its children.
type Flow uint8

// Values for Flow. Any other value is a configuration defect which will be
// reported by layout.
const (
	Horizontal Flow = iota
	Vertical
)

// Valid is true for the known flow directions.
func (f Flow) Valid() bool {
	return f == Horizontal || f == Vertical
}

func (f Flow) String() string {
	switch f {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("flow(%d)", uint8(f))
}

// ParseFlow converts a flow name.
func ParseFlow(s string) (Flow, bool) {
	switch strings.ToLower(s) {
	case "horizontal", "row":
		return Horizontal, true
	case "vertical", "column":
		return Vertical, true
	}
	return Horizontal, false
}

// Align is a position along one axis.
type Align uint8

// Alignments along an axis.
const (
	AlignStart Align = iota
	AlignMiddle
	AlignEnd
)

// Anchor is one of nine reference positions within a container, or none.
// Children are grouped by anchor for auto-sizing and positioning.
type Anchor uint8

// Anchor values. AnchorNone excludes a box from bucketed layout.
const (
	AnchorNone Anchor = iota
	TopLeft
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

var anchorNames = [...]string{
	"none", "top-left", "top-center", "top-right",
	"middle-left", "middle-center", "middle-right",
	"bottom-left", "bottom-center", "bottom-right",
}

func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("anchor(%d)", uint8(a))
}

// ParseAnchor converts an anchor name. "center" is accepted for middle-center.
func ParseAnchor(s string) (Anchor, bool) {
	s = strings.ToLower(s)
	if s == "center" {
		return MiddleCenter, true
	}
	for i, name := range anchorNames {
		if name == s {
			return Anchor(i), true
		}
	}
	return AnchorNone, false
}

// Horizontal returns the alignment of the anchor along the x-axis.
func (a Anchor) Horizontal() Align {
	switch a {
	case TopCenter, MiddleCenter, BottomCenter:
		return AlignMiddle
	case TopRight, MiddleRight, BottomRight:
		return AlignEnd
	}
	return AlignStart
}

// Vertical returns the alignment of the anchor along the y-axis.
func (a Anchor) Vertical() Align {
	switch a {
	case MiddleLeft, MiddleCenter, MiddleRight:
		return AlignMiddle
	case BottomLeft, BottomCenter, BottomRight:
		return AlignEnd
	}
	return AlignStart
}
