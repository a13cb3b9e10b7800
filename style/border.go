package style

// BorderStyle selects one of the seven fixed glyph tuples, or no border.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRound
	BorderBold
	BorderSingleDouble
	BorderDoubleSingle
	BorderClassic
)

// BorderGlyphs is the six-glyph tuple a BorderStyle maps to:
// top-left, top-right, bottom-left, bottom-right, horizontal, vertical.
type BorderGlyphs struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

var borderGlyphTable = map[BorderStyle]BorderGlyphs{
	BorderSingle:       {'┌', '┐', '└', '┘', '─', '│'},
	BorderDouble:       {'╔', '╗', '╚', '╝', '═', '║'},
	BorderRound:        {'╭', '╮', '╰', '╯', '─', '│'},
	BorderBold:         {'┏', '┓', '┗', '┛', '━', '┃'},
	BorderSingleDouble: {'╓', '╖', '╙', '╜', '─', '║'},
	BorderDoubleSingle: {'╒', '╕', '╘', '╛', '═', '│'},
	BorderClassic:      {'+', '+', '+', '+', '-', '|'},
}

// Glyphs returns the glyph tuple for a border style. BorderNone returns
// the zero value; callers must check style != BorderNone before drawing.
func Glyphs(b BorderStyle) BorderGlyphs {
	return borderGlyphTable[b]
}
