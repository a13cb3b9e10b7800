package terminal

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"
)

func readOneEvent(t *testing.T, input string) Event {
	t.Helper()
	done := make(chan struct{})
	defer close(done)

	ch := startInput(bufio.NewReader(strings.NewReader(input)), done)
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("input channel closed before an event arrived")
		}
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a decoded event")
		return Event{}
	}
}

func TestProcessCharPlainRune(t *testing.T) {
	ev := readOneEvent(t, "a")
	if ev.Key == nil || ev.Key.Key != KeyChar || ev.Key.Rune != 'a' {
		t.Fatalf("expected plain rune 'a', got %+v", ev.Key)
	}
}

func TestProcessCharCtrlC(t *testing.T) {
	ev := readOneEvent(t, string(rune(0x03)))
	if ev.Key == nil || !ev.Key.IsCtrlC() {
		t.Fatalf("expected Ctrl+C, got %+v", ev.Key)
	}
}

func TestProcessCharEnterAndBackspace(t *testing.T) {
	ev := readOneEvent(t, "\r")
	if ev.Key == nil || ev.Key.Key != KeyEnter {
		t.Fatalf("expected Enter, got %+v", ev.Key)
	}
	ev = readOneEvent(t, string(rune(0x7f)))
	if ev.Key == nil || ev.Key.Key != KeyBackspace {
		t.Fatalf("expected Backspace, got %+v", ev.Key)
	}
}

func TestParseCSIArrowKeys(t *testing.T) {
	cases := map[string]Key{
		"\x1b[A": KeyArrowUp,
		"\x1b[B": KeyArrowDown,
		"\x1b[C": KeyArrowRight,
		"\x1b[D": KeyArrowLeft,
		"\x1b[H": KeyHome,
		"\x1b[F": KeyEnd,
	}
	for seq, want := range cases {
		ev := readOneEvent(t, seq)
		if ev.Key == nil || ev.Key.Key != want {
			t.Fatalf("sequence %q: expected key %v, got %+v", seq, want, ev.Key)
		}
	}
}

func TestParseCSITildeKey(t *testing.T) {
	ev := readOneEvent(t, "\x1b[3~")
	if ev.Key == nil || ev.Key.Key != KeyDelete {
		t.Fatalf("expected Delete, got %+v", ev.Key)
	}
}

func TestParseSS3FunctionKey(t *testing.T) {
	ev := readOneEvent(t, "\x1bOP")
	if ev.Key == nil || ev.Key.Key != KeyF1 {
		t.Fatalf("expected F1, got %+v", ev.Key)
	}
}

func TestParseSGRMousePress(t *testing.T) {
	ev := readOneEvent(t, "\x1b[<0;10;5M")
	if ev.Mouse == nil {
		t.Fatalf("expected a mouse event, got %+v", ev)
	}
	if ev.Mouse.X != 9 || ev.Mouse.Y != 4 {
		t.Fatalf("expected 0-based coords (9,4), got (%d,%d)", ev.Mouse.X, ev.Mouse.Y)
	}
	if ev.Mouse.Action != MousePress || ev.Mouse.Button != MouseButtonLeft {
		t.Fatalf("expected a left press, got action=%v button=%v", ev.Mouse.Action, ev.Mouse.Button)
	}
}

func TestParseSGRMouseScroll(t *testing.T) {
	ev := readOneEvent(t, "\x1b[<64;1;1M")
	if ev.Mouse == nil || ev.Mouse.Action != MouseScrollUp {
		t.Fatalf("expected scroll-up, got %+v", ev.Mouse)
	}
}

func TestInputLoopClosesChannelOnDone(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	done := make(chan struct{})
	ch := startInput(bufio.NewReader(r), done)
	close(done)

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected channel to close, got an event instead")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
