// Package layout implements a flex-box solver: given an element tree and a
// viewport, produce a map from element id to a computed rectangle.
// Percentages resolve against the parent content box; intrinsic text
// sizing comes from package measure; absolute-positioned children are
// excluded from flex distribution and placed via top/left offsets from
// their containing block. Supports both flex directions and their
// reverses, six justify-content modes, five align-items/self modes,
// percentage lengths, min/max clamps, gaps, and absolute positioning.
package layout

import (
	"canopy/element"
	"canopy/measure"
	"canopy/style"
)

// Compute lays out root against a viewportW x viewportH viewport and
// returns every visited element's rectangle, keyed by id. The engine never
// fails; a badly specified tree degenerates to zero-size rectangles rather
// than an error.
func Compute(root element.Element, viewportW, viewportH int) map[element.ID]Rect {
	out := make(map[element.ID]Rect)
	w, h := naturalSize(root, float64(viewportW), float64(viewportH))
	// The root always occupies the full viewport along any axis it doesn't
	// explicitly constrain; an explicit Width/Height on the root still wins.
	if root.GetStyle().Width.IsAuto() {
		w = float64(viewportW)
	}
	if root.GetStyle().Height.IsAuto() {
		h = float64(viewportH)
	}
	arrange(root, 0, 0, w, h, out)
	return out
}

func borderThickness(st style.Style) (top, right, bottom, left float64) {
	if !st.HasBorder() {
		return 0, 0, 0, 0
	}
	if st.BorderTop {
		top = 1
	}
	if st.BorderRight {
		right = 1
	}
	if st.BorderBottom {
		bottom = 1
	}
	if st.BorderLeft {
		left = 1
	}
	return
}

func deductions(st style.Style) (w, h float64) {
	bt, br, bb, bl := borderThickness(st)
	w = st.Padding.Horizontal() + br + bl
	h = st.Padding.Vertical() + bt + bb
	return
}

// marginMainCross splits an element's four-sided margin into the sum along
// the main axis and the sum along the cross axis, plus the margin on the
// axis' leading edge (Left for a row main axis / Top for a row cross axis,
// and vice versa for a column), given the parent's flex direction.
func marginMainCross(st style.Style, isRow bool) (marginMain, marginCross, leadMain, leadCross float64) {
	m := st.Margin
	if isRow {
		return m.Left + m.Right, m.Top + m.Bottom, m.Left, m.Top
	}
	return m.Top + m.Bottom, m.Left + m.Right, m.Top, m.Left
}

func clampMinMax(v float64, min, max style.Length, base float64) float64 {
	if !min.IsAuto() {
		mv := min.Resolve(base, 0)
		if v < mv {
			v = mv
		}
	}
	if !max.IsAuto() {
		mxv := max.Resolve(base, v)
		// Min dominates max: re-clamp to min again after applying max so a
		// min > max never loses.
		if v > mxv {
			v = mxv
		}
		if !min.IsAuto() {
			mv := min.Resolve(base, 0)
			if v < mv {
				v = mv
			}
		}
	}
	return clampNonNegative(v)
}

// naturalSize returns el's bottom-up content size (including border and
// padding) given availW/availH as both the measuring constraint and the
// percentage base. It does not write to the result map; arrange is the
// authoritative top-down pass that does.
func naturalSize(el element.Element, availW, availH float64) (w, h float64) {
	st := el.GetStyle()
	if st.Display == style.DisplayNone {
		return 0, 0
	}

	dedW, dedH := deductions(st)
	contentAvailW := clampNonNegative(availW - dedW)
	contentAvailH := clampNonNegative(availH - dedH)

	var contentW, contentH float64

	if el.Kind() == element.KindText {
		contentW, contentH = textNaturalSize(el, st, contentAvailW, contentAvailH)
	} else {
		contentW, contentH = containerNaturalSize(el, st, contentAvailW, contentAvailH)
	}

	w = resolveDim(st.Width, availW, contentW+dedW)
	h = resolveDim(st.Height, availH, contentH+dedH)
	w = clampMinMax(w, st.MinWidth, st.MaxWidth, availW)
	h = clampMinMax(h, st.MinHeight, st.MaxHeight, availH)
	return
}

func resolveDim(l style.Length, base, autoFallback float64) float64 {
	if l.IsAuto() {
		return clampNonNegative(autoFallback)
	}
	return clampNonNegative(l.Resolve(base, autoFallback))
}

func textNaturalSize(el element.Element, st style.Style, availW, availH float64) (w, h float64) {
	content := textContentString(el)
	if st.Width.IsAuto() {
		iw, ih := measure.Intrinsic(content)
		return float64(iw), float64(ih)
	}
	// Width is fixed/constrained: height is the number of wrapped lines.
	fixedW := resolveDim(st.Width, availW, availW)
	lines := measure.WrapLines(content, int(fixedW), st.TextWrap)
	return fixedW, float64(len(lines))
}

func textContentString(el element.Element) string {
	if el.IsSpans() {
		var s string
		for i, line := range el.Lines() {
			if i > 0 {
				s += "\n"
			}
			for _, span := range line {
				s += span.Text
			}
		}
		return s
	}
	return el.Text()
}

func flowChildren(el element.Element) []element.Element {
	var out []element.Element
	for _, c := range el.Children() {
		if c.GetStyle().Display == style.DisplayNone {
			continue
		}
		if c.GetStyle().Position == style.PositionAbsolute {
			continue
		}
		out = append(out, c)
	}
	return out
}

func absoluteChildren(el element.Element) []element.Element {
	var out []element.Element
	for _, c := range el.Children() {
		if c.GetStyle().Display == style.DisplayNone {
			continue
		}
		if c.GetStyle().Position == style.PositionAbsolute {
			out = append(out, c)
		}
	}
	return out
}

func mainCrossGap(st style.Style) (mainGap, crossGap int) {
	if st.FlexDirection.IsRow() {
		return st.EffectiveColGap(), st.EffectiveRowGap()
	}
	return st.EffectiveRowGap(), st.EffectiveColGap()
}

// childBasis returns a child's main-axis basis and cross-axis size, in
// that order, given the parent's content box (used both as the measuring
// constraint and the percentage base).
func childBasis(child element.Element, isRow bool, mainAvail, crossAvail float64) (main, cross float64) {
	cst := child.GetStyle()

	var explicitMain style.Length
	if isRow {
		explicitMain = cst.Width
	} else {
		explicitMain = cst.Height
	}

	switch {
	case !cst.FlexBasis.IsAuto():
		main = clampNonNegative(cst.FlexBasis.Resolve(mainAvail, mainAvail))
	case !explicitMain.IsAuto():
		main = clampNonNegative(explicitMain.Resolve(mainAvail, mainAvail))
	default:
		var w, h float64
		if isRow {
			w, h = naturalSize(child, mainAvail, crossAvail)
		} else {
			w, h = naturalSize(child, crossAvail, mainAvail)
		}
		if isRow {
			main = w
		} else {
			main = h
		}
	}

	var explicitCross style.Length
	if isRow {
		explicitCross = cst.Height
	} else {
		explicitCross = cst.Width
	}
	if !explicitCross.IsAuto() {
		cross = clampNonNegative(explicitCross.Resolve(crossAvail, crossAvail))
	} else {
		var w, h float64
		if isRow {
			w, h = naturalSize(child, mainAvail, crossAvail)
			cross = h
		} else {
			w, h = naturalSize(child, crossAvail, mainAvail)
			cross = w
		}
	}

	main = clampMinMax(main, minLenFor(cst, isRow, true), maxLenFor(cst, isRow, true), mainAvail)
	cross = clampMinMax(cross, minLenFor(cst, isRow, false), maxLenFor(cst, isRow, false), crossAvail)
	return
}

func minLenFor(st style.Style, isRow, main bool) style.Length {
	wantWidth := isRow == main
	if wantWidth {
		return st.MinWidth
	}
	return st.MinHeight
}

func maxLenFor(st style.Style, isRow, main bool) style.Length {
	wantWidth := isRow == main
	if wantWidth {
		return st.MaxWidth
	}
	return st.MaxHeight
}

func containerNaturalSize(el element.Element, st style.Style, availW, availH float64) (w, h float64) {
	children := flowChildren(el)
	if len(children) == 0 {
		return 0, 0
	}
	isRow := st.FlexDirection.IsRow()
	mainAvail, crossAvail := availW, availH
	if !isRow {
		mainAvail, crossAvail = availH, availW
	}
	mainGap, _ := mainCrossGap(st)

	var sumMain, maxCross float64
	for _, c := range children {
		m, cr := childBasis(c, isRow, mainAvail, crossAvail)
		marginMain, marginCross, _, _ := marginMainCross(c.GetStyle(), isRow)
		m += marginMain
		cr += marginCross
		sumMain += m
		if cr > maxCross {
			maxCross = cr
		}
	}
	sumMain += float64(mainGap) * float64(len(children)-1)

	if isRow {
		return sumMain, maxCross
	}
	return maxCross, sumMain
}

// arrange is the authoritative top-down pass: given el's final outer
// rectangle, it records it and recursively positions and sizes el's
// children, redistributing any leftover main-axis space by flex-grow /
// flex-shrink and applying justify-content / align-items.
func arrange(el element.Element, x, y, w, h float64, out map[element.ID]Rect) {
	st := el.GetStyle()
	if st.Display == style.DisplayNone {
		return
	}
	out[el.ID()] = Rect{X: x, Y: y, W: w, H: h}

	if el.Kind() == element.KindText {
		return
	}

	bt, br, bb, bl := borderThickness(st)
	contentX := x + bl + st.Padding.Left
	contentY := y + bt + st.Padding.Top
	contentW := clampNonNegative(w - (bl + br + st.Padding.Horizontal()))
	contentH := clampNonNegative(h - (bt + bb + st.Padding.Vertical()))

	children := flowChildren(el)
	if len(children) > 0 {
		arrangeFlow(el, st, children, contentX, contentY, contentW, contentH, out)
	}

	for _, c := range absoluteChildren(el) {
		arrangeAbsolute(c, contentX, contentY, contentW, contentH, out)
	}
}

func arrangeAbsolute(child element.Element, contentX, contentY, contentW, contentH float64, out map[element.ID]Rect) {
	cst := child.GetStyle()
	w := resolveDim(cst.Width, contentW, func() float64 { nw, _ := naturalSize(child, contentW, contentH); return nw }())
	h := resolveDim(cst.Height, contentH, func() float64 { _, nh := naturalSize(child, contentW, contentH); return nh }())

	offX := cst.Margin.Left
	if !cst.Left.IsAuto() {
		offX += cst.Left.Resolve(contentW, 0)
	}
	offY := cst.Margin.Top
	if !cst.Top.IsAuto() {
		offY += cst.Top.Resolve(contentH, 0)
	}

	arrange(child, contentX+offX, contentY+offY, w, h, out)
}

type flexItem struct {
	el    element.Element
	main  float64
	cross float64
}

func arrangeFlow(parent element.Element, st style.Style, children []element.Element, contentX, contentY, contentW, contentH float64, out map[element.ID]Rect) {
	isRow := st.FlexDirection.IsRow()
	mainContent, crossContent := contentW, contentH
	if !isRow {
		mainContent, crossContent = contentH, contentW
	}
	mainGap, crossGap := mainCrossGap(st)

	items := make([]flexItem, len(children))
	for i, c := range children {
		m, cr := childBasis(c, isRow, mainContent, crossContent)
		items[i] = flexItem{el: c, main: m, cross: cr}
	}

	lines := splitLines(items, st.FlexWrap, mainContent, mainGap)

	crossCursor := 0.0
	for _, line := range lines {
		lineCross := arrangeLine(line, st, isRow, mainContent, crossContent, mainGap,
			contentX, contentY, crossCursor, out)
		crossCursor += lineCross + float64(crossGap)
	}
}

// splitLines groups items into flex lines. Wrap starts a new line whenever
// the next item's basis would overflow mainContent; NoWrap always returns a
// single line.
func splitLines(items []flexItem, wrap style.FlexWrap, mainContent float64, mainGap int) [][]flexItem {
	if wrap != style.Wrap || len(items) == 0 {
		return [][]flexItem{items}
	}
	var lines [][]flexItem
	var cur []flexItem
	var curMain float64
	for _, it := range items {
		next := it.main
		if len(cur) > 0 {
			next += float64(mainGap)
		}
		if len(cur) > 0 && curMain+next > mainContent {
			lines = append(lines, cur)
			cur = nil
			curMain = 0
			next = it.main
		}
		cur = append(cur, it)
		curMain += next
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// arrangeLine resolves grow/shrink, cross-axis stretch, and justify-content
// for a single flex line, recursively arranges each child, and returns the
// line's cross-axis extent.
func arrangeLine(items []flexItem, st style.Style, isRow bool, mainContent, crossContent float64, mainGap int,
	contentX, contentY, crossOrigin float64, out map[element.ID]Rect) float64 {

	var sumBasis float64
	for _, it := range items {
		marginMain, _, _, _ := marginMainCross(it.el.GetStyle(), isRow)
		sumBasis += it.main + marginMain
	}
	sumBasis += float64(mainGap) * float64(len(items)-1)

	remaining := mainContent - sumBasis
	if remaining > 0 {
		growFlex(items, remaining, mainContent, isRow)
	} else if remaining < 0 {
		shrinkFlex(items, -remaining)
	}

	lineCross := 0.0
	for i := range items {
		_, marginCross, _, _ := marginMainCross(items[i].el.GetStyle(), isRow)
		align := effectiveAlign(st.AlignItems, items[i].el.GetStyle().AlignSelf)
		if align == style.AlignStretch && crossIsAuto(items[i].el.GetStyle(), isRow) {
			items[i].cross = clampNonNegative(crossContent - marginCross)
		}
		if total := items[i].cross + marginCross; total > lineCross {
			lineCross = total
		}
	}

	totalMain := 0.0
	for _, it := range items {
		marginMain, _, _, _ := marginMainCross(it.el.GetStyle(), isRow)
		totalMain += it.main + marginMain
	}
	totalMain += float64(mainGap) * float64(len(items)-1)
	free := clampNonNegative(mainContent - totalMain)

	leading, between := justifySpacing(st.JustifyContent, free, len(items))

	order := placementOrder(len(items), st.FlexDirection.IsReverse())

	cur := leading
	for _, idx := range order {
		it := items[idx]
		marginMain, marginCross, leadMain, leadCross := marginMainCross(it.el.GetStyle(), isRow)
		align := effectiveAlign(st.AlignItems, it.el.GetStyle().AlignSelf)
		crossOffset := crossAlignOffset(align, lineCross, it.cross+marginCross)

		cur += leadMain
		var cx, cy, cw, ch float64
		if isRow {
			cx, cy = contentX+cur, contentY+crossOrigin+crossOffset+leadCross
			cw, ch = it.main, it.cross
		} else {
			cx, cy = contentX+crossOrigin+crossOffset+leadCross, contentY+cur
			cw, ch = it.cross, it.main
		}
		arrange(it.el, cx, cy, cw, ch, out)
		trailMain := marginMain - leadMain
		cur += it.main + trailMain + float64(mainGap) + between
	}
	return lineCross
}

func crossIsAuto(st style.Style, isRow bool) bool {
	if isRow {
		return st.Height.IsAuto()
	}
	return st.Width.IsAuto()
}

func effectiveAlign(parent style.AlignItems, self style.AlignSelf) style.AlignItems {
	switch self {
	case style.AlignSelfStretch:
		return style.AlignStretch
	case style.AlignSelfFlexStart:
		return style.AlignFlexStart
	case style.AlignSelfFlexEnd:
		return style.AlignFlexEnd
	case style.AlignSelfCenter:
		return style.AlignCenter
	case style.AlignSelfBaseline:
		return style.AlignBaseline
	default:
		return parent
	}
}

// crossAlignOffset resolves a child's cross-axis offset within the line.
// AlignBaseline has no sub-cell baseline model in a monospace cell grid
// (see DESIGN.md "Open Question decisions"); it behaves like FlexStart.
func crossAlignOffset(align style.AlignItems, crossContent, itemCross float64) float64 {
	switch align {
	case style.AlignFlexEnd:
		return clampNonNegative(crossContent - itemCross)
	case style.AlignCenter:
		return clampNonNegative(crossContent-itemCross) / 2
	default:
		return 0
	}
}

func justifySpacing(j style.JustifyContent, free float64, n int) (leading, between float64) {
	if n == 0 {
		return 0, 0
	}
	switch j {
	case style.JustifyFlexEnd:
		return free, 0
	case style.JustifyCenter:
		return free / 2, 0
	case style.JustifySpaceBetween:
		if n > 1 {
			return 0, free / float64(n-1)
		}
		return 0, 0
	case style.JustifySpaceAround:
		extra := free / float64(n)
		return extra / 2, extra
	case style.JustifySpaceEvenly:
		extra := free / float64(n+1)
		return extra, extra
	default: // JustifyFlexStart
		return 0, 0
	}
}

func placementOrder(n int, reverse bool) []int {
	order := make([]int, n)
	for i := range order {
		if reverse {
			order[i] = n - 1 - i
		} else {
			order[i] = i
		}
	}
	return order
}

func growFlex(items []flexItem, extra, mainContent float64, isRow bool) {
	var sumGrow float64
	for _, it := range items {
		sumGrow += it.el.GetStyle().FlexGrow
	}
	if sumGrow <= 0 {
		return
	}
	for i := range items {
		cst := items[i].el.GetStyle()
		g := cst.FlexGrow
		if g <= 0 {
			continue
		}
		grown := items[i].main + extra*(g/sumGrow)
		items[i].main = clampMinMax(grown, minLenFor(cst, isRow, true), maxLenFor(cst, isRow, true), mainContent)
	}
}

func shrinkFlex(items []flexItem, deficit float64) {
	var sumWeight float64
	weights := make([]float64, len(items))
	for i, it := range items {
		shrink := it.el.GetStyle().FlexShrink
		weights[i] = shrink * it.main
		sumWeight += weights[i]
	}
	if sumWeight <= 0 {
		return
	}
	for i := range items {
		if weights[i] <= 0 {
			continue
		}
		reduction := deficit * (weights[i] / sumWeight)
		items[i].main = clampNonNegative(items[i].main - reduction)
	}
}
