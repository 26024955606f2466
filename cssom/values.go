package cssom

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor reads a color: "#rgb", "#rrggbb", "#rrggbbaa", "transparent"
// or an SVG color name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return color.RGBA{}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("%w: color %q", ErrValue, s)
	}
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	b, err := hex.DecodeString(h)
	if err != nil || len(b) != 4 {
		return color.RGBA{}, fmt.Errorf("%w: color %q", ErrValue, s)
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// ParseBool reads true/false, yes/no, on/off or 1/0.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: boolean %q", ErrValue, s)
}

func parseNumber(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", ErrValue, s)
	}
	return float32(f), nil
}

func parsePx(s string) (float32, error) {
	l, err := ParseLength(s)
	if err != nil {
		return 0, err
	}
	return l.Px(), nil
}

// splitEdges distributes the values of a four-sided shorthand to
// top, right, bottom and left, following the CSS logic:
//
//	a        → a a a a
//	a b      → a b a b
//	a b c    → a b c b
//	a b c d  → a b c d
func splitEdges(key string, value string) ([4]string, error) {
	fields := strings.Fields(value)
	var r [4]string
	switch len(fields) {
	case 1:
		r = [4]string{fields[0], fields[0], fields[0], fields[0]}
	case 2:
		r = [4]string{fields[0], fields[1], fields[0], fields[1]}
	case 3:
		r = [4]string{fields[0], fields[1], fields[2], fields[1]}
	case 4:
		r = [4]string{fields[0], fields[1], fields[2], fields[3]}
	default:
		return r, fmt.Errorf("%w: expecting 1-4 values for %s", ErrValue, key)
	}
	return r, nil
}
