package style

import (
	"image/color"

	"github.com/npillmayer/boxtree/geom"
	"github.com/npillmayer/boxtree/maybe"
)

// Style is a sparse set of style properties. A property which is not set
// does not take part in the cascade. The zero value sets nothing.
//
// Styles are values; they are copied into boxes and stylesheets and never
// observed for mutation.
type Style struct {
	// layout
	Flow    maybe.Maybe[Flow]
	Anchor  maybe.Maybe[Anchor]
	Stretch maybe.Maybe[bool]
	Width   maybe.Maybe[float32] // > 0 is a fixed content width, otherwise auto
	Height  maybe.Maybe[float32] // > 0 is a fixed content height, otherwise auto
	Padding EdgeValues
	Margin  EdgeValues
	Gap     maybe.Maybe[float32] // space between children along the flow axis
	OffsetX maybe.Maybe[float32]
	OffsetY maybe.Maybe[float32]
	// text
	Font          maybe.Maybe[string]
	FontSize      maybe.Maybe[float32]
	LineHeight    maybe.Maybe[float32] // factor of the font size
	OutlineSize   maybe.Maybe[float32]
	WordWrap      maybe.Maybe[bool]
	AllowOverflow maybe.Maybe[bool]
	// paint
	Visible      maybe.Maybe[bool]
	Opacity      maybe.Maybe[float32]
	Color        maybe.Maybe[color.RGBA]
	Background   maybe.Maybe[color.RGBA]
	BorderColor  maybe.Maybe[color.RGBA]
	BorderWidth  maybe.Maybe[float32]
	BorderRadius maybe.Maybe[float32]
	OutlineColor maybe.Maybe[color.RGBA]
}

// EdgeValues holds optional values for the four sides of a box.
type EdgeValues struct {
	Top, Right, Bottom, Left maybe.Maybe[float32]
}

// AllEdges sets all four sides to v.
func AllEdges(v float32) EdgeValues {
	m := maybe.Just(v)
	return EdgeValues{Top: m, Right: m, Bottom: m, Left: m}
}

// EdgesTRBL sets the four sides in CSS order.
func EdgesTRBL(t, r, b, l float32) EdgeValues {
	return EdgeValues{Top: maybe.Just(t), Right: maybe.Just(r), Bottom: maybe.Just(b), Left: maybe.Just(l)}
}

func (e EdgeValues) assignTo(dst *geom.Edges) {
	e.Top.AssignTo(&dst.Top)
	e.Right.AssignTo(&dst.Right)
	e.Bottom.AssignTo(&dst.Bottom)
	e.Left.AssignTo(&dst.Left)
}

func (e EdgeValues) overlay(o EdgeValues) EdgeValues {
	return EdgeValues{
		Top:    o.Top.Or(e.Top),
		Right:  o.Right.Or(e.Right),
		Bottom: o.Bottom.Or(e.Bottom),
		Left:   o.Left.Or(e.Left),
	}
}

// Size sets a fixed content size.
func (s Style) Size(w, h float32) Style {
	s.Width = maybe.Just(w)
	s.Height = maybe.Just(h)
	return s
}

// IsEmpty is true if no property is set.
func (s Style) IsEmpty() bool {
	return s == Style{}
}

// Overlay returns s with every property set in o replacing the one in s.
func (s Style) Overlay(o Style) Style {
	return Style{
		Flow:          o.Flow.Or(s.Flow),
		Anchor:        o.Anchor.Or(s.Anchor),
		Stretch:       o.Stretch.Or(s.Stretch),
		Width:         o.Width.Or(s.Width),
		Height:        o.Height.Or(s.Height),
		Padding:       s.Padding.overlay(o.Padding),
		Margin:        s.Margin.overlay(o.Margin),
		Gap:           o.Gap.Or(s.Gap),
		OffsetX:       o.OffsetX.Or(s.OffsetX),
		OffsetY:       o.OffsetY.Or(s.OffsetY),
		Font:          o.Font.Or(s.Font),
		FontSize:      o.FontSize.Or(s.FontSize),
		LineHeight:    o.LineHeight.Or(s.LineHeight),
		OutlineSize:   o.OutlineSize.Or(s.OutlineSize),
		WordWrap:      o.WordWrap.Or(s.WordWrap),
		AllowOverflow: o.AllowOverflow.Or(s.AllowOverflow),
		Visible:       o.Visible.Or(s.Visible),
		Opacity:       o.Opacity.Or(s.Opacity),
		Color:         o.Color.Or(s.Color),
		Background:    o.Background.Or(s.Background),
		BorderColor:   o.BorderColor.Or(s.BorderColor),
		BorderWidth:   o.BorderWidth.Or(s.BorderWidth),
		BorderRadius:  o.BorderRadius.Or(s.BorderRadius),
		OutlineColor:  o.OutlineColor.Or(s.OutlineColor),
	}
}
