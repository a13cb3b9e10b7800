package markup

import (
	"strings"

	"canopy/element"
	"canopy/style"
)

// Parse renders markup text into element.Lines ready to hand to
// element.Spans. Block elements (headers, lists, quotes, rules, fenced
// code) each become one or more lines; inline styling (bold, italic,
// underline, strikethrough, #color(...)) becomes per-span style on the
// enclosing line.
func Parse(input string) []element.Line {
	root := parse(input)

	var lines []element.Line
	for _, n := range root.children {
		lines = append(lines, renderBlock(n)...)
	}
	return lines
}

func renderBlock(n *node) []element.Line {
	switch n.kind {
	case nodeText:
		return []element.Line{{}}
	case nodeHR:
		return []element.Line{element.PlainLine(strings.Repeat("─", 40), style.New())}
	case nodeCodeBlock:
		var lines []element.Line
		dim := style.New()
		dim.Dim = true
		for _, l := range strings.Split(strings.TrimSuffix(n.content, "\n"), "\n") {
			lines = append(lines, element.PlainLine(l, dim))
		}
		return lines
	case nodeHeader:
		return []element.Line{flattenInline(n.children, n.style)}
	case nodeQuote:
		st := style.New()
		st.Inverse = true
		line := flattenInline(n.children, style.New())
		return []element.Line{append(element.Line{{Text: "> ", Style: st}}, line...)}
	case nodeList:
		var lines []element.Line
		for _, item := range n.children {
			line := flattenInline(item.children, style.New())
			lines = append(lines, append(element.Line{{Text: "• "}}, line...))
		}
		return lines
	case nodeBlock:
		return []element.Line{flattenInline(n.children, style.New())}
	default:
		return nil
	}
}

// flattenInline walks a run of text/style nodes and produces one Line,
// merging nested style deltas onto base as it descends.
func flattenInline(nodes []*node, base style.Style) element.Line {
	var line element.Line
	for _, n := range nodes {
		switch n.kind {
		case nodeText:
			if n.content != "" {
				line = append(line, element.Span{Text: n.content, Style: base})
			}
		case nodeStyle:
			line = append(line, flattenInline(n.children, mergeStyle(base, n.style))...)
		}
	}
	return line
}

// mergeStyle overlays the boolean/color attributes set by a style node
// onto the base style established by its ancestors.
func mergeStyle(base, delta style.Style) style.Style {
	out := base
	out.Bold = out.Bold || delta.Bold
	out.Italic = out.Italic || delta.Italic
	out.Underline = out.Underline || delta.Underline
	out.Strikethrough = out.Strikethrough || delta.Strikethrough
	out.Dim = out.Dim || delta.Dim
	out.Inverse = out.Inverse || delta.Inverse
	if delta.Color.IsSet() {
		out.Color = delta.Color
	}
	if delta.BackgroundColor.IsSet() {
		out.BackgroundColor = delta.BackgroundColor
	}
	return out
}
