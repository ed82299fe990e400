package style

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Value is a resolved value for a CSS property. It is a closed sum type:
//
//     type Value
//         = Keyword string
//         | Length  float Unit
//         | Color   r g b a
//
// Clients dispatch on it with a type switch; there are no other variants.
type Value interface {
	fmt.Stringer
	isValue()
}

// Keyword is an identifier value, e.g. "auto" or "block".
type Keyword string

// Length is a dimension with a unit.
type Length struct {
	Amount float64
	Unit   Unit
}

// Color is an RGBA color value.
type Color struct {
	R, G, B, A uint8
}

func (Keyword) isValue() {}
func (Length) isValue()  {}
func (Color) isValue()   {}

func (k Keyword) String() string {
	return string(k)
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Amount, 'f', -1, 64) + l.Unit.String()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Unit is the unit of a Length.
type Unit uint8

// Units we know of. Em and Rem are recognized, but never resolved.
const (
	Px Unit = iota
	Em
	Rem
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	case Em:
		return "em"
	case Rem:
		return "rem"
	}
	return "?"
}

// Auto is the keyword 'auto'.
const Auto = Keyword("auto")

// Pixels creates a length of n pixels.
func Pixels(n float64) Length {
	return Length{Amount: n, Unit: Px}
}

// Zero is a length of 0 pixels, the default for most edge properties.
var Zero Value = Pixels(0)

// ToPx returns the pixel amount of a value. Only lengths in px have one;
// every other value, including lengths in relative units, converts to 0.
func ToPx(v Value) float64 {
	switch x := v.(type) {
	case Length:
		if x.Unit == Px {
			return x.Amount
		}
	case Keyword, Color, nil:
	}
	return 0
}

// IsAuto is a predicate for the keyword 'auto'.
func IsAuto(v Value) bool {
	k, ok := v.(Keyword)
	return ok && k == Auto
}

// --- Parsing ---------------------------------------------------------------

// ParseValue converts the textual form of a single CSS value into a Value.
// It understands hex colors (#rgb, #rrggbb, #rrggbbaa), the SVG 1.1 color
// keywords, lengths in px, em and rem, and a bare 0. Everything else is a
// keyword. Keywords are lower-cased.
//
// An error is returned for malformed numbers and hex colors only.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty CSS value")
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	low := strings.ToLower(s)
	if c, ok := namedColor(low); ok {
		return c, nil
	}
	if low == "0" {
		return Zero, nil
	}
	for _, u := range []Unit{Rem, Em, Px} { // rem before em
		if strings.HasSuffix(low, u.String()) {
			num := strings.TrimSuffix(low, u.String())
			if num == "" || !startsNumeric(num) {
				break
			}
			f, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return nil, fmt.Errorf("malformed length %q: %w", s, err)
			}
			return Length{Amount: f, Unit: u}, nil
		}
	}
	return Keyword(low), nil
}

func startsNumeric(s string) bool {
	c := s[0]
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+'
}

func parseHexColor(hex string) (Value, error) {
	if len(hex) == 3 || len(hex) == 4 {
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("malformed hex color #%s", hex)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("malformed hex color #%s: %w", hex, err)
	}
	return Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

func namedColor(name string) (Color, bool) {
	if name == "transparent" {
		return Color{}, true
	}
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, true
}
