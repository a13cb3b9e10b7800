package style

import (
	"fmt"
)

// ColorKind identifies which colour representation a Color value carries.
type ColorKind int

const (
	ColorDefault ColorKind = iota
	ColorBasic
	ColorBright
	ColorIndexed
	ColorRGB
)

// Basic 3-bit colour names, used with ColorBasic/ColorBright.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Color is a flat value describing a terminal colour in any of the four
// representations ECMA-48/xterm terminals understand.
type Color struct {
	Kind  ColorKind
	Basic int // 0-7, valid for ColorBasic/ColorBright
	Index int // 0-255, valid for ColorIndexed
	R, G, B uint8
}

// Default is the "no colour set" value.
var Default = Color{Kind: ColorDefault}

// Basic3 builds a base (30-37/40-47) colour.
func Basic3(n int) Color { return Color{Kind: ColorBasic, Basic: n} }

// Bright builds a bright (90-97/100-107) colour.
func Bright(n int) Color { return Color{Kind: ColorBright, Basic: n} }

// Indexed builds a 256-palette colour.
func Indexed(n int) Color { return Color{Kind: ColorIndexed, Index: n} }

// RGB builds a 24-bit truecolor.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// IsSet reports whether the colour carries anything other than the default.
func (c Color) IsSet() bool { return c.Kind != ColorDefault }

// FgCode returns the SGR parameter(s) for this colour as a foreground.
func (c Color) FgCode() string {
	switch c.Kind {
	case ColorBasic:
		return fmt.Sprintf("%d", 30+c.Basic)
	case ColorBright:
		return fmt.Sprintf("%d", 90+c.Basic)
	case ColorIndexed:
		return fmt.Sprintf("38;5;%d", c.Index)
	case ColorRGB:
		return fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B)
	default:
		return ""
	}
}

// BgCode returns the SGR parameter(s) for this colour as a background.
func (c Color) BgCode() string {
	switch c.Kind {
	case ColorBasic:
		return fmt.Sprintf("%d", 40+c.Basic)
	case ColorBright:
		return fmt.Sprintf("%d", 100+c.Basic)
	case ColorIndexed:
		return fmt.Sprintf("48;5;%d", c.Index)
	case ColorRGB:
		return fmt.Sprintf("48;2;%d;%d;%d", c.R, c.G, c.B)
	default:
		return ""
	}
}
