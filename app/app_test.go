package app

import (
	"testing"

	"canopy/cellbuf"
	"canopy/element"
	"canopy/hooks"
	"canopy/style"
)

func TestDefaultOptionsMatchesSpecDefaults(t *testing.T) {
	opts := DefaultOptions()
	if opts.FPS != 60 {
		t.Fatalf("expected default FPS 60, got %d", opts.FPS)
	}
	if !opts.ExitOnCtrlC {
		t.Fatal("expected ExitOnCtrlC to default true")
	}
	if opts.AltScreen {
		t.Fatal("expected AltScreen to default false (inline)")
	}
}

func TestWithDefaultsFillsZeroFPS(t *testing.T) {
	opts := Options{}.withDefaults()
	if opts.FPS != 60 {
		t.Fatalf("expected zero-value FPS to fall back to 60, got %d", opts.FPS)
	}
}

func TestNewBuildsAppWithoutOpeningTerminal(t *testing.T) {
	renderFn := func(r *hooks.Runtime) element.Element {
		return element.NewRoot(element.Text("hi", style.New()))
	}
	a := New(renderFn, DefaultOptions())
	if a.Runtime() == nil {
		t.Fatal("expected a runtime to be constructed")
	}
	defer a.executor.Close()
}

func TestJoinRowsProducesNewlineJoinedOutput(t *testing.T) {
	buf := cellbuf.New(3, 2)
	buf.Set(0, 0, 'a', style.Style{})
	buf.Set(0, 1, 'b', style.Style{})

	out := joinRows(buf, 2)
	rows := []rune{}
	for _, r := range out {
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		t.Fatal("expected non-empty joined output")
	}
	if out[0] != 'a' {
		t.Fatalf("expected first row to start with 'a', got %q", out)
	}
}

func TestExitIsIdempotent(t *testing.T) {
	a := New(func(r *hooks.Runtime) element.Element {
		return element.NewRoot()
	}, DefaultOptions())
	defer a.executor.Close()

	a.Exit()
	a.Exit() // must not panic on a second call

	select {
	case <-a.exitCh:
	default:
		t.Fatal("expected exitCh to be closed after Exit")
	}
}
