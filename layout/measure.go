package layout

import (
	"github.com/npillmayer/boxtree/geom"
	"github.com/npillmayer/boxtree/maybe"
	"github.com/npillmayer/boxtree/style"
)

// TextRequest carries everything a measurer needs to size a text.
type TextRequest struct {
	Text          string
	Font          string
	FontSize      float32
	OutlineSize   float32
	MaxWidth      maybe.Maybe[float32] // set if the box has a fixed width
	WordWrap      bool
	AllowOverflow bool
	LineHeight    float32 // factor of FontSize
}

// TextMetrics is the result of measuring a text.
type TextMetrics struct {
	Size      geom.Size
	LineCount int
	Lines     []string
}

// Measurer is the external text measurement service. Implementations must
// be synchronous.
type Measurer interface {
	Measure(TextRequest) (TextMetrics, error)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(TextRequest) (TextMetrics, error)

// Measure calls f(req).
func (f MeasurerFunc) Measure(req TextRequest) (TextMetrics, error) {
	return f(req)
}

func textRequest(text string, cs *style.ComputedStyle) TextRequest {
	req := TextRequest{
		Text:          text,
		Font:          cs.Font,
		FontSize:      cs.FontSize,
		OutlineSize:   cs.OutlineSize,
		WordWrap:      cs.WordWrap,
		AllowOverflow: cs.AllowOverflow,
		LineHeight:    cs.LineHeight,
	}
	if cs.Size.W > 0 {
		req.MaxWidth = maybe.Just(cs.Size.W)
	}
	return req
}

// measure never fails: a missing measurer or a measurement error yields a
// zero size.
func measure(m Measurer, text string, cs *style.ComputedStyle) geom.Size {
	if m == nil || text == "" {
		return geom.Size{}
	}
	metrics, err := m.Measure(textRequest(text, cs))
	if err != nil {
		tracer().Infof("text measurement failed, using zero size: %v", err)
		return geom.Size{}
	}
	return metrics.Size
}
