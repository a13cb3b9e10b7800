package render

import (
	"strings"
	"testing"

	"canopy/element"
	"canopy/style"
)

func TestExtractStaticRendersFlaggedSubtreeLines(t *testing.T) {
	staticStyle := style.New()
	staticStyle.IsStatic = true
	static := element.Box(staticStyle,
		element.Text("line 1", style.New()),
		element.Text("line 2", style.New()),
	)
	dynamic := element.Text("> cursor", style.New())
	root := element.NewRoot(static, dynamic)

	lines := ExtractStatic(root, 20)
	if len(lines) != 2 {
		t.Fatalf("expected 2 committed lines, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "line 1") || !strings.Contains(lines[1], "line 2") {
		t.Fatalf("expected committed lines in document order, got %q", lines)
	}
}

func TestExtractStaticSkipsEmptyFlaggedNode(t *testing.T) {
	alreadyCommitted := style.New()
	alreadyCommitted.IsStatic = true
	root := element.NewRoot(element.Box(alreadyCommitted))

	lines := ExtractStatic(root, 20)
	if len(lines) != 0 {
		t.Fatalf("expected no lines from an empty static node, got %q", lines)
	}
}

func TestFilterStaticRemovesFlaggedSubtreesOnly(t *testing.T) {
	staticStyle := style.New()
	staticStyle.IsStatic = true
	static := element.Box(staticStyle, element.Text("line 1", style.New()))
	dynamic := element.Text("> cursor", style.New())
	root := element.NewRoot(static, dynamic)

	filtered := FilterStatic(root)
	if len(filtered.Children()) != 1 {
		t.Fatalf("expected only the dynamic child to remain, got %d children", len(filtered.Children()))
	}
	if filtered.Children()[0].Text() != "> cursor" {
		t.Fatalf("expected the surviving child to be the dynamic text, got %+v", filtered.Children()[0])
	}
}
