// Package highlight turns source code into styled element.Spans using
// Chroma's lexer/style registry, so code can render with real syntax
// colors instead of a flat dim run. The markup package does not call it:
// its fenced code blocks stay dim.
package highlight

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"

	"canopy/element"
	"canopy/style"
)

// Theme is the Chroma style name used to resolve token colors. Monokai
// reads well against both dark and light terminal backgrounds.
const Theme = "monokai"

// Lines highlights code and splits it into one element.Line per source
// line, honoring embedded newlines in the token stream.
func Lines(code, lang string) []element.Line {
	spans := Spans(code, lang)

	var lines []element.Line
	var current element.Line
	flush := func() {
		lines = append(lines, current)
		current = nil
	}

	for _, sp := range spans {
		start := 0
		for i, r := range sp.Text {
			if r == '\n' {
				if i > start {
					current = append(current, element.Span{Text: sp.Text[start:i], Style: sp.Style})
				}
				flush()
				start = i + 1
			}
		}
		if start < len(sp.Text) {
			current = append(current, element.Span{Text: sp.Text[start:], Style: sp.Style})
		}
	}
	if len(current) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// Spans tokenizes code with the lexer for lang (falling back to content
// sniffing, then a plain-text lexer) and maps each token to a styled span.
func Spans(code, lang string) []element.Span {
	lexer := lexerFor(lang, code)
	theme := styles.Get(Theme)
	if theme == nil {
		theme = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		plain := style.New()
		plain.Dim = true
		return []element.Span{{Text: code, Style: plain}}
	}

	var spans []element.Span
	for _, token := range iterator.Tokens() {
		spans = append(spans, element.Span{Text: token.Value, Style: tokenStyle(theme, token.Type)})
	}
	return spans
}

func lexerFor(lang, code string) chroma.Lexer {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

func tokenStyle(theme *chroma.Style, tt chroma.TokenType) style.Style {
	entry := theme.Get(tt)
	st := style.New()
	st.Bold = entry.Bold == chroma.Yes
	st.Italic = entry.Italic == chroma.Yes
	st.Underline = entry.Underline == chroma.Yes

	if entry.Colour.IsSet() {
		st.Color = style.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	if entry.Background.IsSet() {
		st.BackgroundColor = style.RGB(entry.Background.Red(), entry.Background.Green(), entry.Background.Blue())
	}
	return st
}
