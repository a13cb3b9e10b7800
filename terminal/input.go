package terminal

import (
	"bufio"
	"strconv"
	"strings"
	"time"
)

// csiTimeout bounds how long the parser waits for the rest of an escape
// sequence before giving up and dropping the partial sequence without
// emitting an event.
const csiTimeout = 50 * time.Millisecond

// startInput reads raw bytes from r on a dedicated goroutine (the sole
// reader, avoiding data races on the buffered reader) and emits decoded
// Events on the returned channel until done is closed. Decodes SGR (1006)
// mouse reports (ESC [ < Cb ; Cx ; Cy M/m) into MouseEvent alongside key
// events.
func startInput(r *bufio.Reader, done <-chan struct{}) <-chan Event {
	ch := make(chan Event)
	go inputLoop(r, ch, done)
	return ch
}

func inputLoop(r *bufio.Reader, ch chan<- Event, done <-chan struct{}) {
	rawCh := make(chan byte, 128)
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(rawCh)
				return
			}
			rawCh <- b
		}
	}()

	for {
		select {
		case <-done:
			close(ch)
			return
		case b, ok := <-rawCh:
			if !ok {
				close(ch)
				return
			}
			if b == 0x1b {
				processEsc(rawCh, ch)
			} else {
				processChar(b, ch)
			}
		}
	}
}

func readByteTimeout(rawCh <-chan byte, timeout time.Duration) (byte, bool) {
	select {
	case b, ok := <-rawCh:
		return b, ok
	case <-time.After(timeout):
		return 0, false
	}
}

func processEsc(rawCh <-chan byte, ch chan<- Event) {
	select {
	case next, ok := <-rawCh:
		if !ok {
			ch <- Event{Key: &KeyEvent{Key: KeyEsc}}
			return
		}
		switch next {
		case '[':
			parseCSI(rawCh, ch)
		case 'O':
			parseSS3(rawCh, ch)
		default:
			ch <- Event{Key: &KeyEvent{Key: KeyChar, Rune: rune(next), Mod: ModAlt}}
		}
	case <-time.After(10 * time.Millisecond):
		ch <- Event{Key: &KeyEvent{Key: KeyEsc}}
	}
}

func processChar(b byte, ch chan<- Event) {
	switch {
	case b <= 0x1f:
		switch b {
		case 0x0d:
			ch <- Event{Key: &KeyEvent{Key: KeyEnter}}
		case 0x09:
			ch <- Event{Key: &KeyEvent{Key: KeyTab}}
		case 0x08:
			ch <- Event{Key: &KeyEvent{Key: KeyBackspace}}
		case 0x03:
			ch <- Event{Key: &KeyEvent{Key: KeyChar, Rune: 'c', Mod: ModCtrl}}
		default:
			ch <- Event{Key: &KeyEvent{Key: KeyChar, Rune: rune(b + 0x60), Mod: ModCtrl}}
		}
	case b == 0x7f:
		ch <- Event{Key: &KeyEvent{Key: KeyBackspace}}
	default:
		ch <- Event{Key: &KeyEvent{Key: KeyChar, Rune: rune(b)}}
	}
}

func parseCSI(rawCh <-chan byte, ch chan<- Event) {
	first, ok := readByteTimeout(rawCh, csiTimeout)
	if !ok {
		return
	}
	if first == '<' {
		parseSGRMouse(rawCh, ch)
		return
	}
	if first >= 0x40 && first <= 0x7e {
		dispatchCSI(nil, first, ch)
		return
	}

	params := []byte{first}
	for {
		b, ok := readByteTimeout(rawCh, csiTimeout)
		if !ok {
			return
		}
		if b >= 0x40 && b <= 0x7e {
			dispatchCSI(params, b, ch)
			return
		}
		params = append(params, b)
	}
}

func dispatchCSI(params []byte, final byte, ch chan<- Event) {
	p := string(params)

	switch final {
	case 'A':
		ch <- Event{Key: &KeyEvent{Key: KeyArrowUp}}
	case 'B':
		ch <- Event{Key: &KeyEvent{Key: KeyArrowDown}}
	case 'C':
		ch <- Event{Key: &KeyEvent{Key: KeyArrowRight}}
	case 'D':
		ch <- Event{Key: &KeyEvent{Key: KeyArrowLeft}}
	case 'H':
		ch <- Event{Key: &KeyEvent{Key: KeyHome}}
	case 'F':
		ch <- Event{Key: &KeyEvent{Key: KeyEnd}}
	case '~':
		key := p
		if i := strings.IndexByte(p, ';'); i >= 0 {
			key = p[:i]
		}
		if k, ok := tildeKeys[key]; ok {
			ch <- Event{Key: &KeyEvent{Key: k}}
		}
	}
}

var tildeKeys = map[string]Key{
	"1": KeyHome, "2": KeyInsert, "3": KeyDelete, "4": KeyEnd,
	"5": KeyPgUp, "6": KeyPgDown,
	"15": KeyF5, "17": KeyF6, "18": KeyF7, "19": KeyF8,
	"20": KeyF9, "21": KeyF10, "23": KeyF11, "24": KeyF12,
}

func parseSS3(rawCh <-chan byte, ch chan<- Event) {
	b, ok := readByteTimeout(rawCh, csiTimeout)
	if !ok {
		return
	}
	switch b {
	case 'A':
		ch <- Event{Key: &KeyEvent{Key: KeyArrowUp}}
	case 'B':
		ch <- Event{Key: &KeyEvent{Key: KeyArrowDown}}
	case 'C':
		ch <- Event{Key: &KeyEvent{Key: KeyArrowRight}}
	case 'D':
		ch <- Event{Key: &KeyEvent{Key: KeyArrowLeft}}
	case 'P':
		ch <- Event{Key: &KeyEvent{Key: KeyF1}}
	case 'Q':
		ch <- Event{Key: &KeyEvent{Key: KeyF2}}
	case 'R':
		ch <- Event{Key: &KeyEvent{Key: KeyF3}}
	case 'S':
		ch <- Event{Key: &KeyEvent{Key: KeyF4}}
	case 'H':
		ch <- Event{Key: &KeyEvent{Key: KeyHome}}
	case 'F':
		ch <- Event{Key: &KeyEvent{Key: KeyEnd}}
	}
}

// parseSGRMouse decodes "Cb;Cx;CyM" or "...m" (we already consumed "ESC [ <").
func parseSGRMouse(rawCh <-chan byte, ch chan<- Event) {
	var buf []byte
	for {
		b, ok := readByteTimeout(rawCh, csiTimeout)
		if !ok {
			return
		}
		if b == 'M' || b == 'm' {
			fields := strings.Split(string(buf), ";")
			if len(fields) != 3 {
				return
			}
			cb, err1 := strconv.Atoi(fields[0])
			cx, err2 := strconv.Atoi(fields[1])
			cy, err3 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil || err3 != nil {
				return
			}
			ch <- Event{Mouse: decodeSGRMouse(cb, cx, cy, b == 'm')}
			return
		}
		buf = append(buf, b)
	}
}

func decodeSGRMouse(cb, cx, cy int, release bool) *MouseEvent {
	ev := &MouseEvent{
		X: cx - 1, Y: cy - 1,
		Ctrl:  cb&16 != 0,
		Shift: cb&4 != 0,
		Alt:   cb&8 != 0,
	}

	switch {
	case cb&64 != 0:
		if cb&1 != 0 {
			ev.Action = MouseScrollDown
		} else {
			ev.Action = MouseScrollUp
		}
		return ev
	case cb&32 != 0:
		ev.Action = MouseDrag
		ev.Button = buttonFromCb(cb)
		return ev
	}

	btn := cb & 0x3
	if btn == 3 {
		ev.Action = MouseMove
		return ev
	}
	ev.Button = buttonFromCb(cb)
	if release {
		ev.Action = MouseRelease
	} else {
		ev.Action = MousePress
	}
	return ev
}

func buttonFromCb(cb int) MouseButton {
	switch cb & 0x3 {
	case 0:
		return MouseButtonLeft
	case 1:
		return MouseButtonMiddle
	case 2:
		return MouseButtonRight
	default:
		return MouseButtonNone
	}
}
