package domdbg

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/geom"
	"github.com/npillmayer/boxtree/maybe"
	"github.com/npillmayer/boxtree/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.dom")
	defer teardown()
	//
	root := dom.MustNode("root")
	root.SetStyle(style.Style{Padding: style.AllEdges(2), Flow: maybe.Just(style.Vertical)})
	label := dom.MustNode("label")
	label.AddClass("caption")
	label.SetText("a rather long caption")
	require.NoError(t, root.Append(label, dom.MustNode("")))
	tree := dom.NewTree(root)
	require.NoError(t, tree.Render(geom.Pt(0, 0)))
	//
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(root, &buf, nil))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `"#label.caption"`)
	assert.Contains(t, out, `"(anonymous)"`)
	assert.Contains(t, out, "node00001 -> node00002")
	assert.Contains(t, out, `a␣rather␣l...`)
	assert.Contains(t, out, ">Spacing<")
	assert.NotContains(t, out, ">Paint<")
	//
	buf.Reset()
	require.NoError(t, ToGraphViz(root, &buf, []string{GroupPaint, "unknown"}))
	assert.Contains(t, buf.String(), ">Paint<")
	assert.NotContains(t, buf.String(), ">Box<")
}

func TestDotty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.dom")
	defer teardown()
	//
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("GraphViz dot not installed")
	}
	root := dom.MustNode("root")
	require.NoError(t, root.Append(dom.MustNode("a"), dom.MustNode("b")))
	require.NoError(t, dom.NewTree(root).Render(geom.Pt(0, 0)))
	Dotty(root, t)
}
