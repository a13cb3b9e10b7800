package markup

import (
	"regexp"
	"strings"

	"canopy/style"
)

var (
	headerBlockRe = regexp.MustCompile(`^(\#{1,6})[ \t]+(.+)`)
	hrBlockRe     = regexp.MustCompile(`^(\*{3,}|-{3,}|_{3,})$`)
	listBlockRe   = regexp.MustCompile(`^([ \t]*)([*+-]|\d+\.)[ \t]+(.+)`)
	quoteBlockRe  = regexp.MustCompile(`^>[ \t]*(.+)`)
	codeFenceRe   = regexp.MustCompile("^```(.*)")

	inlineTokenRe = regexp.MustCompile(`(\*\*.+?\*\*)|(\*.+?\*)|(__.+?__)|(~~.+?~~)|(!?#[a-zA-Z]{3,8}\(.+?\))`)
)

// parse turns raw markup text into a block-level AST.
func parse(input string) *node {
	root := newNode(nodeRoot)
	lines := strings.Split(input, "\n")

	var currentList *node
	var inCode bool
	var codeLang string
	var codeContent strings.Builder

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if m := codeFenceRe.FindStringSubmatch(trimmed); m != nil {
			if inCode {
				n := newNode(nodeCodeBlock)
				n.content = codeContent.String()
				n.lang = codeLang
				root.addChild(n)
				codeContent.Reset()
				inCode = false
				codeLang = ""
			} else {
				inCode = true
				codeLang = strings.TrimSpace(m[1])
			}
			continue
		}
		if inCode {
			codeContent.WriteString(line + "\n")
			continue
		}

		if m := listBlockRe.FindStringSubmatch(line); m != nil {
			if currentList == nil {
				currentList = newNode(nodeList)
				root.addChild(currentList)
			}
			item := newNode(nodeListItem)
			item.children = parseInline(m[3])
			currentList.addChild(item)
			continue
		}
		if trimmed != "" {
			currentList = nil
		}

		if m := headerBlockRe.FindStringSubmatch(line); m != nil {
			level := len(m[1])
			st := style.New()
			st.Bold = true
			if level == 1 {
				st.Inverse = true
			} else if level == 2 {
				st.Underline = true
			}
			n := newNode(nodeHeader)
			n.style = st
			n.children = parseInline(m[2])
			root.addChild(n)
			continue
		}

		if hrBlockRe.MatchString(trimmed) {
			root.addChild(newNode(nodeHR))
			continue
		}

		if m := quoteBlockRe.FindStringSubmatch(line); m != nil {
			n := newNode(nodeQuote)
			n.children = parseInline(m[1])
			root.addChild(n)
			continue
		}

		if trimmed == "" {
			root.addChild(newNode(nodeText))
			continue
		}

		n := newNode(nodeBlock)
		n.children = parseInline(line)
		root.addChild(n)
	}

	return root
}

// parseInline splits a line into text and style nodes for bold, italic,
// underline, strikethrough and #color(...) spans.
func parseInline(text string) []*node {
	var nodes []*node
	last := 0

	for _, m := range inlineTokenRe.FindAllStringIndex(text, -1) {
		start, end := m[0], m[1]
		if start > last {
			nodes = append(nodes, &node{kind: nodeText, content: text[last:start]})
		}
		token := text[start:end]

		switch {
		case strings.HasPrefix(token, "**"):
			st := style.New()
			st.Bold = true
			nodes = append(nodes, styleNode(st, token[2:len(token)-2]))
		case strings.HasPrefix(token, "__"):
			st := style.New()
			st.Underline = true
			nodes = append(nodes, styleNode(st, token[2:len(token)-2]))
		case strings.HasPrefix(token, "~~"):
			st := style.New()
			st.Strikethrough = true
			nodes = append(nodes, styleNode(st, token[2:len(token)-2]))
		case strings.HasPrefix(token, "*"):
			st := style.New()
			st.Italic = true
			nodes = append(nodes, styleNode(st, token[1:len(token)-1]))
		case strings.Contains(token, "#"):
			nodes = append(nodes, colorNode(token))
		}

		last = end
	}

	if last < len(text) {
		nodes = append(nodes, &node{kind: nodeText, content: text[last:]})
	}
	return nodes
}

func styleNode(st style.Style, content string) *node {
	n := newNode(nodeStyle)
	n.style = st
	n.children = parseInline(content)
	return n
}

func colorNode(token string) *node {
	isBg := strings.HasPrefix(token, "!")
	startParen := strings.Index(token, "(")
	endParen := strings.LastIndex(token, ")")
	if startParen == -1 || endParen <= startParen {
		return &node{kind: nodeText, content: token}
	}

	nameStart := 1
	if isBg {
		nameStart = 2
	}
	name := token[nameStart:startParen]
	content := token[startParen+1 : endParen]

	st := style.New()
	if c, ok := namedColor(name); ok {
		if isBg {
			st.BackgroundColor = c
		} else {
			st.Color = c
		}
	}
	return styleNode(st, content)
}
