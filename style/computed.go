package style

import (
	"image/color"

	"github.com/npillmayer/boxtree/geom"
)

// ComputedStyle is the fully resolved style of a box, produced once per box
// per cascade run. It is updated in place.
type ComputedStyle struct {
	Flow          Flow
	Anchor        Anchor
	Stretch       bool
	Size          geom.Size // fixed content size per axis if > 0
	Padding       geom.Edges
	Margin        geom.Edges
	Gap           float32
	Offset        geom.Point
	Font          string
	FontSize      float32
	LineHeight    float32
	OutlineSize   float32
	WordWrap      bool
	AllowOverflow bool
	Visible       bool
	Opacity       float32
	Color         color.RGBA
	Background    color.RGBA
	BorderColor   color.RGBA
	BorderWidth   float32
	BorderRadius  float32
	OutlineColor  color.RGBA
}

// Default values of the global default layer.
const (
	DefaultFontSize   float32 = 16
	DefaultLineHeight float32 = 1.2
)

var (
	black       = color.RGBA{A: 0xff}
	transparent = color.RGBA{}
)

// Defaults returns the global default layer of the cascade.
func Defaults() ComputedStyle {
	return ComputedStyle{
		Flow:         Horizontal,
		Anchor:       TopLeft,
		Visible:      true,
		Opacity:      1,
		FontSize:     DefaultFontSize,
		LineHeight:   DefaultLineHeight,
		Color:        black,
		Background:   transparent,
		BorderColor:  black,
		OutlineColor: black,
	}
}

// Apply overwrites every property of cs which s sets.
func (cs *ComputedStyle) Apply(s *Style) {
	s.Flow.AssignTo(&cs.Flow)
	s.Anchor.AssignTo(&cs.Anchor)
	s.Stretch.AssignTo(&cs.Stretch)
	s.Width.AssignTo(&cs.Size.W)
	s.Height.AssignTo(&cs.Size.H)
	s.Padding.assignTo(&cs.Padding)
	s.Margin.assignTo(&cs.Margin)
	s.Gap.AssignTo(&cs.Gap)
	s.OffsetX.AssignTo(&cs.Offset.X)
	s.OffsetY.AssignTo(&cs.Offset.Y)
	s.Font.AssignTo(&cs.Font)
	s.FontSize.AssignTo(&cs.FontSize)
	s.LineHeight.AssignTo(&cs.LineHeight)
	s.OutlineSize.AssignTo(&cs.OutlineSize)
	s.WordWrap.AssignTo(&cs.WordWrap)
	s.AllowOverflow.AssignTo(&cs.AllowOverflow)
	s.Visible.AssignTo(&cs.Visible)
	s.Opacity.AssignTo(&cs.Opacity)
	s.Color.AssignTo(&cs.Color)
	s.Background.AssignTo(&cs.Background)
	s.BorderColor.AssignTo(&cs.BorderColor)
	s.BorderWidth.AssignTo(&cs.BorderWidth)
	s.BorderRadius.AssignTo(&cs.BorderRadius)
	s.OutlineColor.AssignTo(&cs.OutlineColor)
}

// Scale multiplies all geometric properties by f. Font size is not geometric
// in this sense and is left alone.
func (cs *ComputedStyle) Scale(f float32) {
	if f == 1 {
		return
	}
	cs.Size = cs.Size.Scale(f)
	cs.Padding = cs.Padding.Scale(f)
	cs.Margin = cs.Margin.Scale(f)
	cs.Gap *= f
	cs.Offset = cs.Offset.Scale(f)
	cs.BorderWidth *= f
	cs.BorderRadius *= f
	cs.OutlineSize *= f
}

// --- Snapshots -------------------------------------------------------------

// LayoutSnapshot holds the properties which affect sizing or positioning.
type LayoutSnapshot struct {
	Flow          Flow
	Anchor        Anchor
	Stretch       bool
	Size          geom.Size
	Padding       geom.Edges
	Margin        geom.Edges
	Gap           float32
	Offset        geom.Point
	Font          string
	FontSize      float32
	LineHeight    float32
	OutlineSize   float32
	WordWrap      bool
	AllowOverflow bool
}

// PaintSnapshot holds the properties which affect appearance only.
type PaintSnapshot struct {
	Visible      bool
	Opacity      float32
	Color        color.RGBA
	Background   color.RGBA
	BorderColor  color.RGBA
	BorderWidth  float32
	BorderRadius float32
	OutlineColor color.RGBA
	OutlineSize  float32
}

// Snapshot is the pair of snapshots committed per box and cascade run.
type Snapshot struct {
	Layout LayoutSnapshot
	Paint  PaintSnapshot
}

// Snapshot derives both snapshots from cs.
func (cs *ComputedStyle) Snapshot() Snapshot {
	return Snapshot{
		Layout: LayoutSnapshot{
			Flow:          cs.Flow,
			Anchor:        cs.Anchor,
			Stretch:       cs.Stretch,
			Size:          cs.Size,
			Padding:       cs.Padding,
			Margin:        cs.Margin,
			Gap:           cs.Gap,
			Offset:        cs.Offset,
			Font:          cs.Font,
			FontSize:      cs.FontSize,
			LineHeight:    cs.LineHeight,
			OutlineSize:   cs.OutlineSize,
			WordWrap:      cs.WordWrap,
			AllowOverflow: cs.AllowOverflow,
		},
		Paint: PaintSnapshot{
			Visible:      cs.Visible,
			Opacity:      cs.Opacity,
			Color:        cs.Color,
			Background:   cs.Background,
			BorderColor:  cs.BorderColor,
			BorderWidth:  cs.BorderWidth,
			BorderRadius: cs.BorderRadius,
			OutlineColor: cs.OutlineColor,
			OutlineSize:  cs.OutlineSize,
		},
	}
}
