package cssom

import (
	"errors"
	"image/color"
	"testing"

	"github.com/npillmayer/boxtree/maybe"
	"github.com/npillmayer/boxtree/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.cssom")
	defer teardown()
	//
	l, err := ParseLength("12")
	require.NoError(t, err)
	assert.Equal(t, float32(12), l.Px())
	l, err = ParseLength("12px")
	require.NoError(t, err)
	assert.Equal(t, float32(12), l.Px())
	var du dimen.DU
	require.NotNil(t, l.Match().Just(&du))
	assert.Equal(t, 12*dimen.BP, du)
	l, err = ParseLength("1in")
	require.NoError(t, err)
	assert.InDelta(t, 72.0, l.Px(), 0.01)
	l, err = ParseLength("auto")
	require.NoError(t, err)
	assert.NotNil(t, l.Match().Auto())
	assert.Equal(t, float32(0), l.Px())
	assert.Equal(t, "auto", l.String())
	_, err = ParseLength("12furlong")
	assert.True(t, errors.Is(err, ErrValue))
}

func TestColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.cssom")
	defer teardown()
	//
	tests := []struct {
		in  string
		out color.RGBA
	}{
		{"#f00", color.RGBA{R: 0xff, A: 0xff}},
		{"#00ff00", color.RGBA{G: 0xff, A: 0xff}},
		{"#0000ff80", color.RGBA{B: 0xff, A: 0x80}},
		{"Navy", color.RGBA{B: 0x80, A: 0xff}},
		{"transparent", color.RGBA{}},
	}
	for _, tc := range tests {
		c, err := ParseColor(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.out, c, tc.in)
	}
	_, err := ParseColor("#12")
	assert.True(t, errors.Is(err, ErrValue))
	_, err = ParseColor("no-such-color")
	assert.True(t, errors.Is(err, ErrValue))
}

func TestEdgeShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.cssom")
	defer teardown()
	//
	s, err := ParseDeclarations("padding: 1 2 3")
	require.NoError(t, err)
	assert.Equal(t, style.EdgesTRBL(1, 2, 3, 2), s.Padding)
	s, err = ParseDeclarations("margin: 5 6")
	require.NoError(t, err)
	assert.Equal(t, style.EdgesTRBL(5, 6, 5, 6), s.Margin)
	_, err = ParseDeclarations("margin: 1 2 3 4 5")
	assert.True(t, errors.Is(err, ErrValue))
}

func TestShorthandBeforeLonghand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.cssom")
	defer teardown()
	//
	s, err := ParseDeclarations("padding-left: 9; padding: 2")
	require.NoError(t, err)
	assert.Equal(t, style.EdgesTRBL(2, 2, 2, 9), s.Padding)
	s, err = ParseDeclarations("width: 50 !important; width: 20; size: 10 30")
	require.NoError(t, err)
	assert.Equal(t, maybe.Just(float32(50)), s.Width)
	assert.Equal(t, maybe.Just(float32(30)), s.Height)
}

func TestDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.cssom")
	defer teardown()
	//
	s, err := ParseDeclarations(`flow: vertical; anchor: bottom-right; stretch: true;
		gap: 3; offset: 4 5; font: "basic"; font-size: 13; line-height: 1.5;
		word-wrap: break-word; overflow: hidden; visibility: hidden; opacity: 0.5;
		background: #fff; border: 1 solid red; outline: 2 blue`)
	require.NoError(t, err)
	assert.Equal(t, maybe.Just(style.Vertical), s.Flow)
	a, _ := style.ParseAnchor("bottom-right")
	assert.Equal(t, maybe.Just(a), s.Anchor)
	assert.Equal(t, maybe.Just(true), s.Stretch)
	assert.Equal(t, maybe.Just(float32(3)), s.Gap)
	assert.Equal(t, maybe.Just(float32(4)), s.OffsetX)
	assert.Equal(t, maybe.Just(float32(5)), s.OffsetY)
	assert.Equal(t, maybe.Just("basic"), s.Font)
	assert.Equal(t, maybe.Just(float32(13)), s.FontSize)
	assert.Equal(t, maybe.Just(float32(1.5)), s.LineHeight)
	assert.Equal(t, maybe.Just(true), s.WordWrap)
	assert.Equal(t, maybe.Just(false), s.AllowOverflow)
	assert.Equal(t, maybe.Just(false), s.Visible)
	assert.Equal(t, maybe.Just(float32(0.5)), s.Opacity)
	assert.Equal(t, maybe.Just(color.RGBA{0xff, 0xff, 0xff, 0xff}), s.Background)
	assert.Equal(t, maybe.Just(float32(1)), s.BorderWidth)
	assert.Equal(t, maybe.Just(color.RGBA{R: 0xff, A: 0xff}), s.BorderColor)
	assert.Equal(t, maybe.Just(float32(2)), s.OutlineSize)
	assert.Equal(t, maybe.Just(color.RGBA{B: 0xff, A: 0xff}), s.OutlineColor)
	assert.False(t, s.Color.IsJust())
}

func TestUnknownProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.cssom")
	defer teardown()
	//
	_, err := ParseDeclarations("float: left")
	assert.True(t, errors.Is(err, ErrUnknownProperty))
	assert.False(t, IsKnownProperty("float"))
	assert.True(t, IsKnownProperty("Padding-Left"))
	_, err = ParseDeclarations("anchor: somewhere")
	assert.True(t, errors.Is(err, ErrValue))
}

func TestParseStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.cssom")
	defer teardown()
	//
	ss, err := Parse(`
		@media print { .x { width: 1 } }
		.item { width: 40 }
		#main, .item:active { background: navy; padding: 2 }
	`)
	require.NoError(t, err)
	require.Len(t, ss.Rules(), 2)
	assert.Equal(t, maybe.Just(float32(40)), ss.Rules()[0].Style.Width)
	assert.Len(t, ss.Rules()[1].Selector.Alternatives, 2)
	//
	_, err = Parse(".a .b { width: 1 }")
	assert.True(t, errors.Is(err, style.ErrNestedSelector))
	_, err = Parse(".a { width: wide }")
	assert.True(t, errors.Is(err, ErrValue))
	assert.Panics(t, func() { MustParse(".a > .b { width: 1 }") })
}
