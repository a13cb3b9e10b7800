package terminal

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

func newTestDriver(t *testing.T) (*Driver, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	t.Cleanup(func() { w.Close(); r.Close() })

	d := New(Options{Stdout: w})
	d.width, d.height = 80, 24
	return d, r
}

func drainNonBlocking(t *testing.T, r *os.File) string {
	t.Helper()
	buf := make([]byte, 65536)
	if err := r.SetReadDeadline(time.Now().Add(50 * time.Millisecond)); err != nil {
		t.Fatalf("SetReadDeadline: %v", err)
	}
	n, err := r.Read(buf)
	if err != nil && err != io.EOF && !errors.Is(err, os.ErrDeadlineExceeded) {
		t.Fatalf("read: %v", err)
	}
	return string(buf[:n])
}

func TestCursorHelpers(t *testing.T) {
	if got := cursorTo(2, 3); got != "\x1b[3;4H" {
		t.Fatalf("cursorTo(2,3) = %q", got)
	}
	if got := cursorToColumn(0); got != "\x1b[1G" {
		t.Fatalf("cursorToColumn(0) = %q", got)
	}
	if got := cursorUp(0); got != "" {
		t.Fatalf("cursorUp(0) should be empty, got %q", got)
	}
	if got := cursorUp(3); got != "\x1b[3A" {
		t.Fatalf("cursorUp(3) = %q", got)
	}
}

func TestRenderInlineFirstFrameWritesEveryLine(t *testing.T) {
	d, r := newTestDriver(t)
	if err := d.Render("one\ntwo\nthree"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := drainNonBlocking(t, r)
	if !strings.Contains(out, "one") || !strings.Contains(out, "two") || !strings.Contains(out, "three") {
		t.Fatalf("expected all three lines in output, got %q", out)
	}
	if len(d.previousLines) != 3 {
		t.Fatalf("expected 3 previousLines tracked, got %d", len(d.previousLines))
	}
}

func TestRenderInlineSkipsUnchangedLines(t *testing.T) {
	d, r := newTestDriver(t)
	if err := d.Render("alpha\nbeta"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	drainNonBlocking(t, r)

	if err := d.Render("alpha\nBETA"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := drainNonBlocking(t, r)
	if strings.Contains(out, "alpha") {
		t.Fatalf("unchanged line should not be rewritten, got %q", out)
	}
	if !strings.Contains(out, "BETA") {
		t.Fatalf("changed line should be rewritten, got %q", out)
	}
}

func TestRenderFullscreenDiffsAgainstPreviousFrame(t *testing.T) {
	d, r := newTestDriver(t)
	d.mode = ModeAltScreen

	if err := d.Render("a\nb\nc"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	drainNonBlocking(t, r)

	if err := d.Render("a\nB\nc"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := drainNonBlocking(t, r)
	if !strings.Contains(out, "B") {
		t.Fatalf("expected changed row rewritten, got %q", out)
	}
}

func TestModeAndSizeAccessors(t *testing.T) {
	d, _ := newTestDriver(t)
	if d.Mode() != ModeInline {
		t.Fatalf("expected ModeInline by default, got %v", d.Mode())
	}
	w, h := d.Size()
	if w != 80 || h != 24 {
		t.Fatalf("expected (80,24), got (%d,%d)", w, h)
	}
}

func TestInvalidateClearsPreviousLines(t *testing.T) {
	d, r := newTestDriver(t)
	if err := d.Render("x\ny"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	drainNonBlocking(t, r)
	if len(d.previousLines) == 0 {
		t.Fatal("expected previousLines to be populated")
	}
	d.Invalidate()
	if d.previousLines != nil {
		t.Fatal("expected Invalidate to clear previousLines")
	}
}

func TestPrintlnNoopInAltScreen(t *testing.T) {
	d, r := newTestDriver(t)
	d.mode = ModeAltScreen
	if err := d.Println("hello"); err != nil {
		t.Fatalf("Println: %v", err)
	}
	out := drainNonBlocking(t, r)
	if out != "" {
		t.Fatalf("expected no output in alt-screen mode, got %q", out)
	}
}

func TestPrintlnWritesMessageInline(t *testing.T) {
	d, r := newTestDriver(t)
	if err := d.Println("hello world"); err != nil {
		t.Fatalf("Println: %v", err)
	}
	out := drainNonBlocking(t, r)
	if !strings.Contains(out, "hello world") {
		t.Fatalf("expected message in output, got %q", out)
	}
}

func TestEnableDisableMouseTogglesState(t *testing.T) {
	d, r := newTestDriver(t)
	if err := d.EnableMouse(); err != nil {
		t.Fatalf("EnableMouse: %v", err)
	}
	if !d.mouseEnabled {
		t.Fatal("expected mouseEnabled true")
	}
	drainNonBlocking(t, r)

	if err := d.DisableMouse(); err != nil {
		t.Fatalf("DisableMouse: %v", err)
	}
	if d.mouseEnabled {
		t.Fatal("expected mouseEnabled false")
	}
}

func TestSwitchToAltScreenAndBack(t *testing.T) {
	d, r := newTestDriver(t)
	if err := d.SwitchToAltScreen(); err != nil {
		t.Fatalf("SwitchToAltScreen: %v", err)
	}
	if d.Mode() != ModeAltScreen {
		t.Fatalf("expected ModeAltScreen, got %v", d.Mode())
	}
	drainNonBlocking(t, r)

	if err := d.SwitchToInline(); err != nil {
		t.Fatalf("SwitchToInline: %v", err)
	}
	if d.Mode() != ModeInline {
		t.Fatalf("expected ModeInline, got %v", d.Mode())
	}
}
