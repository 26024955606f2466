package style

import (
	"errors"
	"image/color"
	"testing"

	"github.com/npillmayer/boxtree/geom"
	"github.com/npillmayer/boxtree/maybe"
	"github.com/npillmayer/boxtree/selector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct {
	id          string
	classes     []string
	tags        []string
	classStyles map[string]Style
	tagStyles   map[string]Style
	inline      *Style
}

func (b *box) ID() string { return b.id }

func (b *box) HasClass(c string) bool { return contains(b.classes, c) }
func (b *box) HasTag(t string) bool   { return contains(b.tags, t) }
func (b *box) Classes() []string      { return b.classes }
func (b *box) Tags() []string         { return b.tags }
func (b *box) InlineStyle() *Style    { return b.inline }

func (b *box) ClassStyle(c string) *Style {
	if s, ok := b.classStyles[c]; ok {
		return &s
	}
	return nil
}

func (b *box) TagStyle(t string) *Style {
	if s, ok := b.tagStyles[t]; ok {
		return &s
	}
	return nil
}

func contains(l []string, s string) bool {
	for _, x := range l {
		if x == s {
			return true
		}
	}
	return false
}

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	var cs ComputedStyle
	Cascade(&cs, &box{id: "a"}, nil, 1)
	assert.Equal(t, Defaults(), cs)
	assert.Equal(t, TopLeft, cs.Anchor)
	assert.True(t, cs.Visible)
	assert.Equal(t, float32(1), cs.Opacity)
}

func TestCascadePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	global := NewStylesheet()
	global.MustAddRule(".item", Style{Gap: maybe.Just[float32](1), FontSize: maybe.Just[float32](10)})
	global.MustAddRule("#a", Style{Gap: maybe.Just[float32](2)})
	scoped := NewStylesheet()
	scoped.MustAddRule(".item", Style{Gap: maybe.Just[float32](3), OutlineSize: maybe.Just[float32](1)})
	b := &box{
		id:      "a",
		classes: []string{"item", "big"},
		tags:    []string{"hover"},
		classStyles: map[string]Style{
			"item": {Gap: maybe.Just[float32](4), Opacity: maybe.Just[float32](0.5)},
			"big":  {Gap: maybe.Just[float32](5)},
		},
		tagStyles: map[string]Style{
			"hover": {Opacity: maybe.Just[float32](0.8)},
		},
	}
	var cs ComputedStyle
	Cascade(&cs, b, []*Stylesheet{global, scoped}, 1)
	assert.Equal(t, float32(5), cs.Gap, "later class style wins")
	assert.Equal(t, float32(10), cs.FontSize, "untouched global value survives")
	assert.Equal(t, float32(1), cs.OutlineSize)
	assert.Equal(t, float32(0.8), cs.Opacity, "tag style beats class style")
	//
	b.inline = &Style{Gap: maybe.Just[float32](9)}
	Cascade(&cs, b, []*Stylesheet{global, scoped}, 1)
	assert.Equal(t, float32(9), cs.Gap, "inline style wins")
}

func TestCascadeIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	ss := NewStylesheet().MustAddRule("#a", Style{Padding: AllEdges(2)}.Size(10, 20))
	b := &box{id: "a", inline: &Style{Background: maybe.Just(color.RGBA{R: 255, A: 255})}}
	var cs1, cs2 ComputedStyle
	Cascade(&cs1, b, []*Stylesheet{ss}, 2)
	snap := cs1.Snapshot()
	Cascade(&cs1, b, []*Stylesheet{ss}, 2)
	Cascade(&cs2, b, []*Stylesheet{ss}, 2)
	assert.Equal(t, cs1, cs2)
	assert.Equal(t, NoChange, Diff(snap, cs1.Snapshot()))
}

func TestScale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	b := &box{id: "a", inline: &Style{
		Width:       maybe.Just[float32](10),
		Padding:     EdgesTRBL(1, 2, 3, 4),
		Gap:         maybe.Just[float32](5),
		OffsetX:     maybe.Just[float32](3),
		FontSize:    maybe.Just[float32](12),
		BorderWidth: maybe.Just[float32](1),
	}}
	var cs ComputedStyle
	Cascade(&cs, b, nil, 2)
	assert.Equal(t, geom.Sz(20, 0), cs.Size)
	assert.Equal(t, geom.EdgeTRBL(2, 4, 6, 8), cs.Padding)
	assert.Equal(t, float32(10), cs.Gap)
	assert.Equal(t, geom.Pt(6, 0), cs.Offset)
	assert.Equal(t, float32(2), cs.BorderWidth)
	assert.Equal(t, float32(12), cs.FontSize, "font size is not scaled")
}

func TestDiff(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	cs := Defaults()
	prev := cs.Snapshot()
	cs.Color = color.RGBA{G: 255, A: 255}
	assert.Equal(t, PaintChanged, Diff(prev, cs.Snapshot()))
	cs.Gap = 3
	c := Diff(prev, cs.Snapshot())
	assert.True(t, c.Layout())
	assert.True(t, c.Paint())
	assert.Equal(t, "layout+paint", c.String())
	cs = Defaults()
	cs.OutlineSize = 2
	assert.Equal(t, LayoutChanged|PaintChanged, Diff(prev, cs.Snapshot()), "outline size is in both snapshots")
	cs = Defaults()
	cs.Visible = false
	assert.Equal(t, PaintChanged, Diff(prev, cs.Snapshot()))
}

func TestStylesheetRejectsNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	ss := NewStylesheet()
	err := ss.AddRule("#a > .b", Style{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNestedSelector))
	err = ss.AddRule(".a, #b .c", Style{})
	assert.True(t, errors.Is(err, ErrNestedSelector))
	err = ss.AddRule("#", Style{})
	assert.True(t, errors.Is(err, selector.ErrSyntax))
	assert.True(t, ss.Empty())
	assert.Equal(t, uint64(0), ss.Generation())
	require.NoError(t, ss.AddRule(".a, .b:hover", Style{}))
	assert.Equal(t, 1, len(ss.Rules()))
	assert.Equal(t, uint64(1), ss.Generation())
}

func TestNilStylesheet(t *testing.T) {
	var ss *Stylesheet
	cs := Defaults()
	assert.Equal(t, 0, ss.ApplyTo(&cs, &box{id: "x"}))
	assert.True(t, ss.Empty())
	assert.Nil(t, ss.Rules())
}

func TestOverlay(t *testing.T) {
	a := Style{Gap: maybe.Just[float32](1), Padding: AllEdges(1)}
	b := Style{Gap: maybe.Just[float32](2), Padding: EdgeValues{Left: maybe.Just[float32](7)}}
	o := a.Overlay(b)
	assert.Equal(t, float32(2), o.Gap.WithDefault(0))
	assert.Equal(t, float32(7), o.Padding.Left.WithDefault(0))
	assert.Equal(t, float32(1), o.Padding.Top.WithDefault(0))
	assert.True(t, Style{}.IsEmpty())
	assert.False(t, o.IsEmpty())
}

func TestAnchorAlignment(t *testing.T) {
	h, v := BottomRight.Horizontal(), BottomRight.Vertical()
	assert.Equal(t, AlignEnd, h)
	assert.Equal(t, AlignEnd, v)
	a, ok := ParseAnchor("center")
	require.True(t, ok)
	assert.Equal(t, MiddleCenter, a)
}
