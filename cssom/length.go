package cssom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	lengthNone     uint8 = 0
	lengthAbsolute uint8 = 0x01
	lengthAuto     uint8 = 0x02
)

// Length is an option type for CSS lengths.
type Length struct {
	d     dimen.DU
	flags uint8
}

/*
type Length
	= Auto
	| JustLength dimen
*/

// Auto creates a length of value `auto`.
func Auto() Length {
	return Length{flags: lengthAuto}
}

// JustLength creates a length with a fixed value of x.
func JustLength(x dimen.DU) Length {
	return Length{d: x, flags: lengthAbsolute}
}

// Pixels creates a fixed length from a pixel value.
func Pixels(px float64) Length {
	return JustLength(dimen.DU(math.Round(px * float64(dimen.BP))))
}

var units = map[string]dimen.DU{
	"px": dimen.BP,
	"bp": dimen.BP,
	"pt": dimen.PT,
	"mm": dimen.MM,
	"cm": dimen.CM,
	"in": dimen.IN,
}

// ParseLength reads a length like "12", "12px", "3.5mm" or "auto".
func ParseLength(s string) (Length, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "auto" {
		return Auto(), nil
	}
	num, unit := s, "px"
	for u := range units {
		if strings.HasSuffix(s, u) {
			num, unit = strings.TrimSuffix(s, u), u
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("%w: length %q", ErrValue, s)
	}
	return JustLength(dimen.DU(math.Round(f * float64(units[unit])))), nil
}

// Px returns a length in pixels. Auto and unset lengths are 0, which is
// how the box model denotes an automatic size.
func (l Length) Px() float32 {
	var du dimen.DU
	if l.Match().Just(&du) != nil {
		return float32(float64(du) / float64(dimen.BP))
	}
	return 0
}

func (l Length) String() string {
	switch {
	case l.flags&lengthAuto > 0:
		return "auto"
	case l.flags&lengthAbsolute > 0:
		return fmt.Sprintf("%gpx", l.Px())
	}
	return "none"
}

// ---------------------------------------------------------------------------

// Match starts a match expression on a length.
func (l Length) Match() *Matcher {
	return &Matcher{length: l}
}

// Matcher matches kinds of lengths.
type Matcher struct {
	length Length
}

// IsKind matches if l is of the same kind as the matched length.
func (m *Matcher) IsKind(l Length) *Matcher {
	if m.length.flags == l.flags {
		return m
	}
	return nil
}

// Just matches fixed lengths and extracts the value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.length.flags&lengthAbsolute > 0 {
		if du != nil {
			*du = m.length.d
		}
		return m
	}
	return nil
}

// Auto matches automatic lengths.
func (m *Matcher) Auto() *Matcher {
	if m.length.flags&lengthAuto > 0 {
		return m
	}
	return nil
}
