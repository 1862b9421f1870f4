package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color. The zero value means "terminal default".
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Predefined colors used by the engine and the default palette.
var (
	ColorDefault = Color{}
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(255, 255, 255)
	ColorRed     = RGB(255, 0, 0)
	ColorGreen   = RGB(0, 255, 0)
	ColorYellow  = RGB(255, 255, 0)
	ColorPurple  = RGB(128, 0, 128)
	ColorGray    = RGB(169, 169, 169)
	ColorCyan    = RGB(0, 255, 255)
	ColorOrange  = RGB(255, 165, 0)
)

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if !c.Set {
		return "default"
	}
	return c.Hex()
}

// Lerp blends from c towards o by t in [0,1].
func (c Color) Lerp(o Color, t float64) Color {
	t = ClampF(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return RGB(mix(c.R, o.R), mix(c.G, o.G), mix(c.B, o.B))
}

// Scale darkens the color by factor f in [0,1].
func (c Color) Scale(f float64) Color {
	return ColorBlack.Lerp(c, f)
}

// ParseColor parses "#rrggbb" (the leading '#' is optional).
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" || s == "default" {
		return ColorDefault, nil
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("core: invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Set {
		return []byte("default"), nil
	}
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
