// Package style describes the visual and layout properties of an element:
// colour, border, padding, margin, flex participation, sizing, overflow,
// positioning, and text attributes. Style is a flat, comparable value type —
// copying it copies the whole description, and two Styles are interchangeable
// by field comparison (no hidden identity).
package style

// Display controls whether an element participates in layout at all.
type Display int

const (
	DisplayFlex Display = iota
	DisplayNone
)

// Position selects relative (in normal flow) or absolute (offset from the
// nearest containing block, excluded from flex distribution) placement.
type Position int

const (
	PositionRelative Position = iota
	PositionAbsolute
)

// FlexDirection is the main axis and its direction.
type FlexDirection int

const (
	Row FlexDirection = iota
	Column
	RowReverse
	ColumnReverse
)

// IsRow reports whether the main axis runs horizontally.
func (d FlexDirection) IsRow() bool { return d == Row || d == RowReverse }

// IsReverse reports whether children lay out back-to-front on the main axis.
func (d FlexDirection) IsReverse() bool { return d == RowReverse || d == ColumnReverse }

// FlexWrap controls whether overflowing children wrap to a new line.
type FlexWrap int

const (
	NoWrap FlexWrap = iota
	Wrap
)

// AlignItems positions children on the cross axis.
type AlignItems int

const (
	AlignStretch AlignItems = iota
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignBaseline
)

// AlignSelf overrides the parent's AlignItems for one child; AlignSelfAuto
// defers to the parent.
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStretch
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
)

// JustifyContent positions children on the main axis.
type JustifyContent int

const (
	JustifyFlexStart JustifyContent = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// TextWrap controls how a text leaf handles overflowing lines.
type TextWrap int

const (
	TextWrapWrap TextWrap = iota
	TextWrapTruncate
	TextWrapTruncateStart
	TextWrapTruncateMiddle
	TextWrapTruncateEnd
)

// Overflow controls whether content exceeding the content box is clipped.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// Style is the complete, flat set of recognised style fields from the
// specification's data model. Zero value is the all-defaults style:
// flex display, relative position, row direction, no wrap, stretch/flex-start
// alignment, no border, default colours, no text attributes, visible overflow.
type Style struct {
	// Layout
	Display        Display
	Position       Position
	Top, Right, Bottom, Left Length
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	FlexGrow       float64
	FlexShrink     float64 // default 1 — construct via New() or set explicitly
	FlexBasis      Length
	AlignItems     AlignItems
	AlignSelf      AlignSelf
	JustifyContent JustifyContent

	// Box metrics
	Padding Edges
	Margin  Edges
	Gap     int
	RowGap  int // 0 means "use Gap"
	ColGap  int // 0 means "use Gap"
	Width, Height       Length
	MinWidth, MinHeight Length
	MaxWidth, MaxHeight Length

	// Border
	BorderStyle                                     BorderStyle
	BorderColor, BorderTopColor, BorderRightColor    Color
	BorderBottomColor, BorderLeftColor               Color
	BorderDim                                        bool
	BorderTop, BorderRight, BorderBottom, BorderLeft bool

	// Colours
	Color           Color
	BackgroundColor Color

	// Text attributes
	Bold, Italic, Underline, Strikethrough, Dim, Inverse bool
	TextWrap                                             TextWrap

	// Overflow
	OverflowX, OverflowY Overflow

	// Commit marker
	IsStatic bool
}

// New returns a Style with the spec's non-zero defaults applied
// (FlexShrink defaults to 1; every border side defaults to enabled so that
// setting BorderStyle alone draws a complete box).
func New() Style {
	return Style{
		FlexShrink:  1,
		Width:       Auto,
		Height:      Auto,
		MinWidth:    Auto,
		MinHeight:   Auto,
		MaxWidth:    Auto,
		MaxHeight:   Auto,
		FlexBasis:   Auto,
		Top:         Auto,
		Right:       Auto,
		Bottom:      Auto,
		Left:        Auto,
		BorderTop:    true,
		BorderRight:  true,
		BorderBottom: true,
		BorderLeft:   true,
	}
}

// EffectiveRowGap returns RowGap if set, else Gap.
func (s Style) EffectiveRowGap() int {
	if s.RowGap != 0 {
		return s.RowGap
	}
	return s.Gap
}

// EffectiveColGap returns ColGap if set, else Gap.
func (s Style) EffectiveColGap() int {
	if s.ColGap != 0 {
		return s.ColGap
	}
	return s.Gap
}

// HasBorder reports whether a border is drawn at all. Per the specified
// clamp rule: if BorderStyle is BorderNone, no border is drawn regardless
// of per-side enable flags.
func (s Style) HasBorder() bool {
	return s.BorderStyle != BorderNone && (s.BorderTop || s.BorderRight || s.BorderBottom || s.BorderLeft)
}
