package style

import (
	"github.com/npillmayer/boxtree/selector"
)

// Source is what the cascade needs to know about a box.
type Source interface {
	selector.Element
	Classes() []string        // class list, in order
	Tags() []string           // state tags, in order
	ClassStyle(string) *Style // class-keyed style of the box, or nil
	TagStyle(string) *Style   // tag-keyed style of the box, or nil
	InlineStyle() *Style      // authored style of the box, or nil
}

// Cascade resolves the style of src into dst, overwriting dst completely.
// sheets are applied in the given order (global first, then stylesheets of
// enclosing subtrees from the outermost inwards). scale is applied to the
// geometric properties of the result.
//
// Cascade is a pure function of its inputs: running it twice without a change
// yields an identical result.
func Cascade(dst *ComputedStyle, src Source, sheets []*Stylesheet, scale float32) {
	*dst = Defaults()
	matched := 0
	for _, ss := range sheets {
		matched += ss.ApplyTo(dst, src)
	}
	for _, c := range src.Classes() {
		if s := src.ClassStyle(c); s != nil {
			dst.Apply(s)
		}
	}
	for _, t := range src.Tags() {
		if s := src.TagStyle(t); s != nil {
			dst.Apply(s)
		}
	}
	if s := src.InlineStyle(); s != nil {
		dst.Apply(s)
	}
	dst.Scale(scale)
	tracer().Debugf("cascade for #%s: %d rules matched", src.ID(), matched)
}
