package terminal

import "testing"

func TestKeyEventIsCtrlC(t *testing.T) {
	ev := KeyEvent{Key: KeyChar, Rune: 'c', Mod: ModCtrl}
	if !ev.IsCtrlC() {
		t.Fatal("expected Ctrl+C to be recognized")
	}
	if (KeyEvent{Key: KeyChar, Rune: 'c'}).IsCtrlC() {
		t.Fatal("plain 'c' without Ctrl should not be Ctrl+C")
	}
	if (KeyEvent{Key: KeyChar, Rune: 'd', Mod: ModCtrl}).IsCtrlC() {
		t.Fatal("Ctrl+D should not be Ctrl+C")
	}
}

func TestMouseEventScrollDelta(t *testing.T) {
	up := MouseEvent{Action: MouseScrollUp}
	if dx, dy := up.ScrollDelta(); dx != 0 || dy != -1 {
		t.Fatalf("expected scroll-up delta (0,-1), got (%d,%d)", dx, dy)
	}
	down := MouseEvent{Action: MouseScrollDown}
	if dx, dy := down.ScrollDelta(); dx != 0 || dy != 1 {
		t.Fatalf("expected scroll-down delta (0,1), got (%d,%d)", dx, dy)
	}
	press := MouseEvent{Action: MousePress}
	if dx, dy := press.ScrollDelta(); dx != 0 || dy != 0 {
		t.Fatalf("expected zero delta for a non-scroll action, got (%d,%d)", dx, dy)
	}
}
