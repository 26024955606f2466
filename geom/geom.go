/*
Package geom holds the plain geometry value types of the box model.

All coordinates are float32 in device-independent units. Y grows downwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package geom

import "fmt"

// Point is a position.
type Point struct {
	X, Y float32
}

// Pt is a shortcut for Point{x, y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float32) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Size is an extent.
type Size struct {
	W, H float32
}

// Sz is a shortcut for Size{w, h}.
func Sz(w, h float32) Size {
	return Size{W: w, H: h}
}

// Max returns the element-wise maximum of two sizes.
func (s Size) Max(o Size) Size {
	return Size{W: max(s.W, o.W), H: max(s.H, o.H)}
}

// Grow adds the edges of e to s.
func (s Size) Grow(e Edges) Size {
	return Size{W: s.W + e.Horizontal(), H: s.H + e.Vertical()}
}

// Scale multiplies both dimensions by f.
func (s Size) Scale(f float32) Size {
	return Size{W: s.W * f, H: s.H * f}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.W, s.H)
}

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// RectAt creates a rectangle of size s with its top-left corner at p.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.W, Height: s.H}
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the extent of r.
func (r Rect) Size() Size {
	return Size{W: r.Width, H: r.Height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// Inset shrinks r by the given edges.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Left - e.Right,
		Height: r.Height - e.Top - e.Bottom,
	}
}

// Translate moves r by p.
func (r Rect) Translate(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, Width: r.Width, Height: r.Height}
}

// Contains is true if (x, y) lies inside r. Right and bottom edges are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.Width, r.Height)
}

// Edges holds values for the four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float32
}

// EdgeAll creates edges with the same value on all sides.
func EdgeAll(n float32) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL creates edges in CSS order.
func EdgeTRBL(t, r, b, l float32) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns Left+Right.
func (e Edges) Horizontal() float32 {
	return e.Left + e.Right
}

// Vertical returns Top+Bottom.
func (e Edges) Vertical() float32 {
	return e.Top + e.Bottom
}

// Scale multiplies every side by f.
func (e Edges) Scale(f float32) Edges {
	return Edges{Top: e.Top * f, Right: e.Right * f, Bottom: e.Bottom * f, Left: e.Left * f}
}

// IsZero is true if all sides are zero.
func (e Edges) IsZero() bool {
	return e == Edges{}
}
