package text

import (
	"errors"
	"testing"

	"github.com/npillmayer/boxtree/layout"
	"github.com/npillmayer/boxtree/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureSingleLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.text")
	defer teardown()
	//
	m := NewMeasurer()
	metrics, err := m.Measure(layout.TextRequest{Text: "Hello", FontSize: 13, LineHeight: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.LineCount)
	assert.Equal(t, float32(35), metrics.Size.W) // 5 × 7
	assert.Equal(t, float32(13), metrics.Size.H)
}

func TestMeasureScalesWithFontSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.text")
	defer teardown()
	//
	m := NewMeasurer()
	metrics, err := m.Measure(layout.TextRequest{Text: "ab", FontSize: 26, LineHeight: 1.5, OutlineSize: 1})
	require.NoError(t, err)
	assert.Equal(t, float32(28+2), metrics.Size.W)
	assert.Equal(t, float32(39+2), metrics.Size.H)
}

func TestWordWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.text")
	defer teardown()
	//
	m := NewMeasurer()
	req := layout.TextRequest{
		Text:       "aaa bbb ccc",
		FontSize:   13,
		LineHeight: 1,
		WordWrap:   true,
		MaxWidth:   maybe.Just[float32](40),
	}
	metrics, err := m.Measure(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, metrics.Lines)
	assert.Equal(t, float32(39), metrics.Size.H)
	//
	req.MaxWidth = maybe.Just[float32](60) // "aaa bbb" is 49 wide
	metrics, err = m.Measure(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa bbb", "ccc"}, metrics.Lines)
}

func TestOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.text")
	defer teardown()
	//
	m := NewMeasurer()
	req := layout.TextRequest{Text: "abcdefghij", FontSize: 13, MaxWidth: maybe.Just[float32](20)}
	metrics, err := m.Measure(req)
	require.NoError(t, err)
	assert.Equal(t, float32(20), metrics.Size.W)
	req.AllowOverflow = true
	metrics, err = m.Measure(req)
	require.NoError(t, err)
	assert.Equal(t, float32(70), metrics.Size.W)
}

func TestUnknownFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.text")
	defer teardown()
	//
	_, err := NewMeasurer().Measure(layout.TextRequest{Text: "x", Font: "Garamond", FontSize: 12})
	assert.True(t, errors.Is(err, ErrUnknownFont))
}
