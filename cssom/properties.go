package cssom

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/boxtree/maybe"
	"github.com/npillmayer/boxtree/style"
)

// Handlers for shorthand properties run before handlers for longhands.
const (
	shorthand = iota
	longhand
	important = 10 // added for '!important' declarations
)

// handler converts the value of a property and stores it in a style.
type handler struct {
	priority int
	apply    func(s *style.Style, key, value string) error
}

// handlers is the static registration table of supported properties.
var handlers = map[string]handler{
	"flow":           {longhand, setFlow},
	"flex-direction": {longhand, setFlow},
	"anchor":         {longhand, setAnchor},
	"stretch":        boolInto(func(s *style.Style) *maybe.Maybe[bool] { return &s.Stretch }),
	"width":          lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.Width }),
	"height":         lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.Height }),
	"size":           {shorthand, setSize},
	"padding":        edgesInto(func(s *style.Style) *style.EdgeValues { return &s.Padding }),
	"padding-top":    lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.Padding.Top }),
	"padding-right":  lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.Padding.Right }),
	"padding-bottom": lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.Padding.Bottom }),
	"padding-left":   lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.Padding.Left }),
	"margin":         edgesInto(func(s *style.Style) *style.EdgeValues { return &s.Margin }),
	"margin-top":     lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.Margin.Top }),
	"margin-right":   lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.Margin.Right }),
	"margin-bottom":  lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.Margin.Bottom }),
	"margin-left":    lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.Margin.Left }),
	"gap":            lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.Gap }),
	"offset":         {shorthand, setOffset},
	"offset-x":       lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.OffsetX }),
	"offset-y":       lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.OffsetY }),
	"font":           {longhand, setFont},
	"font-family":    {longhand, setFont},
	"font-size":      lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.FontSize }),
	"line-height":    numberInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.LineHeight }),
	"word-wrap":      {longhand, setWordWrap},
	"overflow":       {longhand, setOverflow},
	"visibility":     {longhand, setVisibility},
	"visible":        boolInto(func(s *style.Style) *maybe.Maybe[bool] { return &s.Visible }),
	"opacity":        numberInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.Opacity }),
	"color":          colorInto(func(s *style.Style) *maybe.Maybe[color.RGBA] { return &s.Color }),
	"background":     colorInto(func(s *style.Style) *maybe.Maybe[color.RGBA] { return &s.Background }),
	"background-color": colorInto(func(s *style.Style) *maybe.Maybe[color.RGBA] {
		return &s.Background
	}),
	"border":        {shorthand, setBorder},
	"border-color":  colorInto(func(s *style.Style) *maybe.Maybe[color.RGBA] { return &s.BorderColor }),
	"border-width":  lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.BorderWidth }),
	"border-radius": lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.BorderRadius }),
	"outline":       {shorthand, setOutline},
	"outline-size":  lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.OutlineSize }),
	"outline-width": lengthInto(func(s *style.Style) *maybe.Maybe[float32] { return &s.OutlineSize }),
	"outline-color": colorInto(func(s *style.Style) *maybe.Maybe[color.RGBA] { return &s.OutlineColor }),
}

// IsKnownProperty is true for property names with a registered handler.
func IsKnownProperty(key string) bool {
	_, ok := handlers[strings.ToLower(key)]
	return ok
}

type declaration struct {
	key, value string
	rank       int
	h          handler
}

// toStyle converts a declaration block into a style.
func toStyle(decls []*css.Declaration) (style.Style, error) {
	var s style.Style
	sorted := make([]declaration, 0, len(decls))
	for _, d := range decls {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		h, ok := handlers[key]
		if !ok {
			err := fmt.Errorf("%w: %q", ErrUnknownProperty, d.Property)
			tracer().Errorf(err.Error())
			return s, err
		}
		rank := h.priority
		if d.Important {
			rank += important
		}
		sorted = append(sorted, declaration{key: key, value: strings.TrimSpace(d.Value), rank: rank, h: h})
	}
	slices.SortStableFunc(sorted, func(a, b declaration) int {
		return a.rank - b.rank
	})
	for _, d := range sorted {
		if err := d.h.apply(&s, d.key, d.value); err != nil {
			tracer().Errorf("property %s: %v", d.key, err)
			return style.Style{}, fmt.Errorf("property %s: %w", d.key, err)
		}
	}
	return s, nil
}

// --- Handler constructors --------------------------------------------------

func lengthInto(field func(*style.Style) *maybe.Maybe[float32]) handler {
	return handler{longhand, func(s *style.Style, _, value string) error {
		px, err := parsePx(value)
		if err != nil {
			return err
		}
		*field(s) = maybe.Just(px)
		return nil
	}}
}

func numberInto(field func(*style.Style) *maybe.Maybe[float32]) handler {
	return handler{longhand, func(s *style.Style, _, value string) error {
		x, err := parseNumber(value)
		if err != nil {
			return err
		}
		*field(s) = maybe.Just(x)
		return nil
	}}
}

func boolInto(field func(*style.Style) *maybe.Maybe[bool]) handler {
	return handler{longhand, func(s *style.Style, _, value string) error {
		b, err := ParseBool(value)
		if err != nil {
			return err
		}
		*field(s) = maybe.Just(b)
		return nil
	}}
}

func colorInto(field func(*style.Style) *maybe.Maybe[color.RGBA]) handler {
	return handler{longhand, func(s *style.Style, _, value string) error {
		c, err := ParseColor(value)
		if err != nil {
			return err
		}
		*field(s) = maybe.Just(c)
		return nil
	}}
}

func edgesInto(field func(*style.Style) *style.EdgeValues) handler {
	return handler{shorthand, func(s *style.Style, key, value string) error {
		parts, err := splitEdges(key, value)
		if err != nil {
			return err
		}
		var px [4]float32
		for i, p := range parts {
			if px[i], err = parsePx(p); err != nil {
				return err
			}
		}
		*field(s) = style.EdgesTRBL(px[0], px[1], px[2], px[3])
		return nil
	}}
}

// --- Individual handlers ---------------------------------------------------

func setFlow(s *style.Style, _, value string) error {
	f, ok := style.ParseFlow(value)
	if !ok {
		return fmt.Errorf("%w: flow %q", ErrValue, value)
	}
	s.Flow = maybe.Just(f)
	return nil
}

func setAnchor(s *style.Style, _, value string) error {
	a, ok := style.ParseAnchor(value)
	if !ok {
		return fmt.Errorf("%w: anchor %q", ErrValue, value)
	}
	s.Anchor = maybe.Just(a)
	return nil
}

func setFont(s *style.Style, _, value string) error {
	s.Font = maybe.Just(strings.Trim(value, `"'`))
	return nil
}

// setSize reads "w h" or a single value for both.
func setSize(s *style.Style, key, value string) error {
	w, h, err := pair(key, value)
	if err == nil {
		s.Width, s.Height = maybe.Just(w), maybe.Just(h)
	}
	return err
}

func setOffset(s *style.Style, key, value string) error {
	x, y, err := pair(key, value)
	if err == nil {
		s.OffsetX, s.OffsetY = maybe.Just(x), maybe.Just(y)
	}
	return err
}

func pair(key, value string) (a, b float32, err error) {
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 2 {
		return 0, 0, fmt.Errorf("%w: expecting 1 or 2 values for %s", ErrValue, key)
	}
	if a, err = parsePx(fields[0]); err != nil {
		return
	}
	b = a
	if len(fields) == 2 {
		b, err = parsePx(fields[1])
	}
	return
}

func setWordWrap(s *style.Style, _, value string) error {
	switch strings.ToLower(value) {
	case "normal":
		s.WordWrap = maybe.Just(false)
	case "break-word", "anywhere":
		s.WordWrap = maybe.Just(true)
	default:
		b, err := ParseBool(value)
		if err != nil {
			return err
		}
		s.WordWrap = maybe.Just(b)
	}
	return nil
}

func setOverflow(s *style.Style, _, value string) error {
	switch strings.ToLower(value) {
	case "visible":
		s.AllowOverflow = maybe.Just(true)
	case "hidden", "clip":
		s.AllowOverflow = maybe.Just(false)
	default:
		return fmt.Errorf("%w: overflow %q", ErrValue, value)
	}
	return nil
}

func setVisibility(s *style.Style, _, value string) error {
	switch strings.ToLower(value) {
	case "visible":
		s.Visible = maybe.Just(true)
	case "hidden", "collapse":
		s.Visible = maybe.Just(false)
	default:
		return fmt.Errorf("%w: visibility %q", ErrValue, value)
	}
	return nil
}

var borderStyles = map[string]bool{
	"none": true, "solid": true, "dashed": true, "dotted": true, "double": true,
}

// setBorder reads "width [style] [color]" in any order. Border styles are
// accepted and ignored.
func setBorder(s *style.Style, key, value string) error {
	for _, f := range strings.Fields(value) {
		if borderStyles[strings.ToLower(f)] {
			continue
		}
		if px, err := parsePx(f); err == nil {
			s.BorderWidth = maybe.Just(px)
			continue
		}
		c, err := ParseColor(f)
		if err != nil {
			return fmt.Errorf("%w: %s component %q", ErrValue, key, f)
		}
		s.BorderColor = maybe.Just(c)
	}
	return nil
}

// setOutline reads "size [color]" in any order.
func setOutline(s *style.Style, key, value string) error {
	for _, f := range strings.Fields(value) {
		if px, err := parsePx(f); err == nil {
			s.OutlineSize = maybe.Just(px)
			continue
		}
		c, err := ParseColor(f)
		if err != nil {
			return fmt.Errorf("%w: %s component %q", ErrValue, key, f)
		}
		s.OutlineColor = maybe.Just(c)
	}
	return nil
}
