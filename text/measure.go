/*
Package text measures texts for layout.

Measurer sizes text with golang.org/x/image font faces. Faces are registered
by name; the unnamed default is the 7×13 basic bitmap face. Face metrics are
scaled linearly from the face's nominal height to the requested font size,
which is good enough to size boxes, though not for typesetting.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/boxtree/geom"
	"github.com/npillmayer/boxtree/layout"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'boxtree.text'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.text")
}

// ErrUnknownFont is returned for a font name which has not been registered.
var ErrUnknownFont = errors.New("unknown font")

// Measurer implements layout.Measurer.
type Measurer struct {
	faces map[string]font.Face
}

var _ layout.Measurer = (*Measurer)(nil)

// NewMeasurer creates a measurer with the basic face registered as default,
// and as "basic" and "monospace".
func NewMeasurer() *Measurer {
	m := &Measurer{faces: make(map[string]font.Face)}
	m.Register("", basicfont.Face7x13)
	m.Register("basic", basicfont.Face7x13)
	m.Register("monospace", basicfont.Face7x13)
	return m
}

// Register makes a face available under a name. Names are case-insensitive.
func (m *Measurer) Register(name string, face font.Face) {
	m.faces[strings.ToLower(name)] = face
}

// Measure sizes req.Text. Lines are broken at newlines and, if word wrap is
// on and a maximum width is given, between words. Without AllowOverflow the
// resulting width never exceeds the maximum width.
func (m *Measurer) Measure(req layout.TextRequest) (layout.TextMetrics, error) {
	face, ok := m.faces[strings.ToLower(req.Font)]
	if !ok {
		return layout.TextMetrics{}, fmt.Errorf("%w: %q", ErrUnknownFont, req.Font)
	}
	nominal := toFloat(face.Metrics().Height)
	if nominal <= 0 || req.FontSize <= 0 {
		return layout.TextMetrics{}, nil
	}
	scale := req.FontSize / nominal
	width := func(s string) float32 {
		return toFloat(font.MeasureString(face, s)) * scale
	}
	maxw, limited := req.MaxWidth.Get()
	var lines []string
	for _, para := range strings.Split(req.Text, "\n") {
		if req.WordWrap && limited {
			lines = append(lines, wrap(para, maxw, width)...)
		} else {
			lines = append(lines, para)
		}
	}
	var w float32
	for _, l := range lines {
		w = max(w, width(l))
	}
	if limited && !req.AllowOverflow {
		w = min(w, maxw)
	}
	lineHeight := req.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1
	}
	h := float32(len(lines)) * req.FontSize * lineHeight
	outline := 2 * req.OutlineSize
	tracer().Debugf("measured %d line(s) of %q: %gx%g", len(lines), req.Text, w, h)
	return layout.TextMetrics{
		Size:      geom.Sz(w+outline, h+outline),
		LineCount: len(lines),
		Lines:     lines,
	}, nil
}

// wrap breaks a paragraph greedily between words. A single word wider than
// maxw gets a line of its own.
func wrap(para string, maxw float32, width func(string) float32) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if width(candidate) > maxw {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

func toFloat(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
