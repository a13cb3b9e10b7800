package markup

import "canopy/style"

// namedColor resolves a color name used in a #name(...) inline token to a
// style.Color. Unknown names resolve to style.Default and ok=false, so the
// caller can fall back to leaving the token unstyled.
func namedColor(name string) (style.Color, bool) {
	switch name {
	case "black":
		return style.Basic3(style.Black), true
	case "red":
		return style.Basic3(style.Red), true
	case "green":
		return style.Basic3(style.Green), true
	case "yellow":
		return style.Basic3(style.Yellow), true
	case "blue":
		return style.Basic3(style.Blue), true
	case "magenta":
		return style.Basic3(style.Magenta), true
	case "cyan":
		return style.Basic3(style.Cyan), true
	case "white":
		return style.Basic3(style.White), true
	case "grey", "gray":
		return style.Bright(style.Black), true
	default:
		return style.Default, false
	}
}
