package markup

import (
	"errors"
	"image/color"
	"testing"

	"github.com/npillmayer/boxtree/cssom"
	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/geom"
	"github.com/npillmayer/boxtree/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `
<style> .item { padding: 2 } #root { flow: vertical; gap: 4 } </style>
<box id="root">
  <box id="title" class="item" tags="active" data-tag-active="background: red">
    Hello    world
  </box>
  <box id="panel" style="width: 50; height: 20">
    <style> .item { padding: 1 } </style>
    <box id="inner" class="item"></box>
  </box>
</box>
`

func fixedWidth() dom.Option {
	return dom.WithMeasurer(layout.MeasurerFunc(func(req layout.TextRequest) (layout.TextMetrics, error) {
		return layout.TextMetrics{Size: geom.Sz(float32(len(req.Text))*6, 12), LineCount: 1}, nil
	}))
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.markup")
	defer teardown()
	//
	tree, err := LoadString(page, fixedWidth())
	require.NoError(t, err)
	root := tree.Root()
	assert.Equal(t, "root", root.ID())
	require.Equal(t, 2, root.ChildCount())
	assert.False(t, tree.Stylesheet().Empty())
	//
	title := root.FindByID("title")
	require.NotNil(t, title)
	assert.Equal(t, "Hello world", title.Text())
	assert.True(t, title.HasClass("item"))
	assert.True(t, title.HasTag("active"))
	require.NotNil(t, title.TagStyle("active"))
	//
	panel := root.FindByID("panel")
	require.NotNil(t, panel)
	require.NotNil(t, panel.Stylesheet())
	assert.Len(t, panel.Stylesheet().Rules(), 1)
	//
	require.NoError(t, tree.Render(geom.Pt(0, 0)))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, title.ComputedStyle().Background)
	assert.Equal(t, geom.EdgeAll(2), title.ComputedStyle().Padding)
	assert.Equal(t, geom.Sz(66, 12), title.Bounds().ContentSize)
	assert.Equal(t, geom.Sz(70, 16), title.Bounds().MarginSize)
	inner := root.FindByID("inner")
	require.NotNil(t, inner)
	assert.Equal(t, geom.EdgeAll(1), inner.ComputedStyle().Padding)
	assert.Equal(t, geom.Sz(50, 20), panel.Bounds().ContentSize)
	assert.Equal(t, geom.Sz(70, 40), root.Bounds().ContentSize)
	assert.Equal(t, geom.Pt(0, 20), panel.Bounds().MarginRect.Min())
}

func TestAnonymousRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.markup")
	defer teardown()
	//
	tree, err := LoadString(`<box id="a"></box><box id="b"></box>`)
	require.NoError(t, err)
	assert.Equal(t, "", tree.Root().ID())
	assert.Equal(t, 2, tree.Root().ChildCount())
	assert.Equal(t, "b", tree.Root().Child(1).ID())
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.markup")
	defer teardown()
	//
	_, err := LoadString(`<box id="a" style="float: left"></box>`)
	assert.True(t, errors.Is(err, cssom.ErrUnknownProperty))
	_, err = LoadString(`<box id="1a"></box>`)
	assert.True(t, errors.Is(err, dom.ErrInvalidID))
	_, err = LoadString(`<style> .a > .b { width: 1 } </style><box></box>`)
	assert.Error(t, err)
}

func TestPresentationalAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.markup")
	defer teardown()
	//
	tree, err := LoadString(`<box id="a" width="30" height="10" padding="2" style="height: 20"
		data-note="ignored"></box>`)
	require.NoError(t, err)
	require.NoError(t, tree.Render(geom.Pt(0, 0)))
	a := tree.Root()
	assert.Equal(t, geom.Sz(30, 20), a.Bounds().ContentSize, "style attribute wins")
	assert.Equal(t, geom.EdgeAll(2), a.ComputedStyle().Padding)
	//
	_, err = LoadString(`<box id="a" width="wide"></box>`)
	assert.True(t, errors.Is(err, cssom.ErrValue))
}
