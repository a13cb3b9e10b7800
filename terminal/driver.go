// Package terminal drives the actual terminal: raw mode, cursor and mouse
// capture, the inline/alternate-screen presentation modes, and the
// low-level input byte stream. The row-level diff clears and rewrites
// whole changed lines rather than diffing per cell.
package terminal

import (
	"bufio"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Mode selects how the driver presents output.
type Mode int

const (
	// ModeInline renders at the current cursor position; output persists
	// in terminal scroll-back once the app exits.
	ModeInline Mode = iota
	// ModeAltScreen uses the terminal's alternate screen buffer; output is
	// discarded on exit, like vim or less.
	ModeAltScreen
)

// Options configures a Driver. The zero value is ModeInline against the
// process's stdin/stdout.
type Options struct {
	Stdout    *os.File
	Stdin     *os.File
	AltScreen bool
}

// Driver owns the terminal while the app is running: it puts the tty into
// raw mode, hides the cursor, optionally enters the alternate screen, and
// renders frames via a row-level diff against the previous frame.
type Driver struct {
	mu sync.Mutex

	outFile *os.File
	out     *bufio.Writer
	inFile  *os.File

	mode         Mode
	rawState     *term.State
	cursorHidden bool
	mouseEnabled bool
	raw          bool

	previousLines []string

	width, height int

	resizeCh chan os.Signal
	doneCh   chan struct{}
	onResize func(w, h int)
	events   <-chan Event
}

// New constructs a Driver without opening the terminal; call Open to take
// it over.
func New(opts Options) *Driver {
	outFile := opts.Stdout
	if outFile == nil {
		outFile = os.Stdout
	}
	inFile := opts.Stdin
	if inFile == nil {
		inFile = os.Stdin
	}
	mode := ModeInline
	if opts.AltScreen {
		mode = ModeAltScreen
	}
	return &Driver{
		outFile: outFile,
		out:     bufio.NewWriterSize(outFile, 64*1024),
		inFile:  inFile,
		mode:    mode,
	}
}

// Open enables raw mode, hides the cursor, enters the configured
// presentation mode, and starts the input and resize-signal loops.
func (d *Driver) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, h, err := term.GetSize(int(d.outFile.Fd()))
	if err != nil {
		w, h = 80, 24
	}
	d.width, d.height = w, h

	state, err := term.MakeRaw(int(d.inFile.Fd()))
	if err != nil {
		return errors.Wrap(err, "terminal: enable raw mode")
	}
	d.rawState = state
	d.raw = true

	d.writeString(hideCursor)
	d.cursorHidden = true
	if d.mode == ModeAltScreen {
		d.writeString(enterAltScreen)
		d.writeString(eraseScreen)
		d.writeString(cursorHome)
	}
	d.flush()

	d.doneCh = make(chan struct{})
	d.events = startInput(bufio.NewReader(d.inFile), d.doneCh)

	d.resizeCh = make(chan os.Signal, 1)
	signal.Notify(d.resizeCh, syscall.SIGWINCH)
	go d.watchResize()

	return nil
}

// Close restores the terminal to its pre-Open state: shows the cursor,
// disables mouse capture, leaves the alternate screen if entered, and
// restores the original tty mode. Safe to call once after Open.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.resizeCh != nil {
		signal.Stop(d.resizeCh)
	}
	if d.doneCh != nil {
		close(d.doneCh)
	}

	if d.mouseEnabled {
		d.writeString(disableMouse)
		d.mouseEnabled = false
	}
	if d.mode == ModeAltScreen {
		d.writeString(showCursor)
		d.writeString(leaveAltScreen)
		d.cursorHidden = false
	} else {
		if d.cursorHidden {
			d.writeString(showCursor)
			d.cursorHidden = false
		}
		if len(d.previousLines) > 0 {
			d.writeString("\r\n")
		}
	}
	d.flush()

	if d.raw && d.rawState != nil {
		if err := term.Restore(int(d.inFile.Fd()), d.rawState); err != nil {
			return errors.Wrap(err, "terminal: restore mode")
		}
		d.raw = false
	}
	return nil
}

// Events returns the channel of decoded key/mouse input, populated from
// Open until Close.
func (d *Driver) Events() <-chan Event { return d.events }

// Size returns the last known terminal dimensions.
func (d *Driver) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.width, d.height
}

// Mode reports the driver's current presentation mode.
func (d *Driver) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// OnResize registers fn to be called, off the signal goroutine, whenever
// SIGWINCH changes the terminal's dimensions.
func (d *Driver) OnResize(fn func(w, h int)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onResize = fn
}

func (d *Driver) watchResize() {
	for {
		select {
		case <-d.doneCh:
			return
		case <-d.resizeCh:
			w, h, err := term.GetSize(int(d.outFile.Fd()))
			if err != nil {
				continue
			}
			d.mu.Lock()
			d.width, d.height = w, h
			fn := d.onResize
			d.mu.Unlock()
			if fn != nil {
				fn(w, h)
			}
		}
	}
}

// EnableMouse turns on SGR mouse reporting.
func (d *Driver) EnableMouse() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mouseEnabled {
		return nil
	}
	d.writeString(enableMouse)
	d.mouseEnabled = true
	return d.flushErr()
}

// DisableMouse turns off SGR mouse reporting.
func (d *Driver) DisableMouse() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.mouseEnabled {
		return nil
	}
	d.writeString(disableMouse)
	d.mouseEnabled = false
	return d.flushErr()
}

// SwitchToAltScreen switches a running inline-mode driver to the alternate
// screen at runtime, like Bubbletea's EnterAltScreen command.
func (d *Driver) SwitchToAltScreen() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode == ModeAltScreen {
		return nil
	}
	d.clearInlineLocked()
	d.writeString(enterAltScreen)
	d.writeString(eraseScreen)
	d.writeString(cursorHome)
	if !d.cursorHidden {
		d.writeString(hideCursor)
		d.cursorHidden = true
	}
	d.mode = ModeAltScreen
	d.previousLines = nil
	return d.flushErr()
}

// SwitchToInline switches a running alternate-screen driver back to inline
// mode at runtime, like Bubbletea's ExitAltScreen command.
func (d *Driver) SwitchToInline() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode == ModeInline {
		return nil
	}
	d.writeString(leaveAltScreen)
	d.writeString(showCursor)
	d.cursorHidden = false
	d.mode = ModeInline
	d.previousLines = nil
	d.writeString(hideCursor)
	d.cursorHidden = true
	return d.flushErr()
}

// Println writes a line of output above the dynamic UI, like Bubbletea's
// Println: it clears the current inline frame, writes the message so it
// becomes part of terminal scroll-back, and leaves the next Render call to
// redraw the UI below it. A no-op in alternate-screen mode.
func (d *Driver) Println(message string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode == ModeAltScreen {
		return nil
	}
	d.clearInlineLocked()
	for _, line := range strings.Split(message, "\n") {
		d.writeString(line)
		d.writeString(eraseEndOfLine)
		d.writeString("\r\n")
	}
	return d.flushErr()
}

// Render draws output (one already-styled line per row, newline-joined) to
// the terminal using a row-level diff against the previous frame.
func (d *Driver) Render(output string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode == ModeAltScreen {
		d.renderFullscreenLocked(output)
	} else {
		d.renderInlineLocked(output)
	}
	return d.flushErr()
}

func (d *Driver) renderFullscreenLocked(output string) {
	newLines := strings.Split(output, "\n")
	d.writeString(cursorTo(0, 0))
	for i, line := range newLines {
		if i < len(d.previousLines) && d.previousLines[i] == line {
			continue
		}
		d.writeString(cursorTo(i, 0))
		d.writeString(eraseLine)
		d.writeString(line)
	}
	for i := len(newLines); i < len(d.previousLines); i++ {
		d.writeString(cursorTo(i, 0))
		d.writeString(eraseLine)
	}
	d.previousLines = newLines
}

func (d *Driver) renderInlineLocked(output string) {
	newLines := strings.Split(output, "\n")
	prevCount := len(d.previousLines)
	newCount := len(newLines)

	if prevCount == 0 {
		for i, line := range newLines {
			d.writeString(cursorToColumn(0))
			d.writeString(eraseLine)
			d.writeString(line)
			if i < newCount-1 {
				d.writeString("\r\n")
			}
		}
		d.previousLines = newLines
		return
	}

	if prevCount > 1 {
		d.writeString(cursorUp(prevCount - 1))
	}
	for i, line := range newLines {
		old := ""
		changed := true
		if i < prevCount {
			old = d.previousLines[i]
			changed = old != line
		}
		if changed {
			d.writeString(cursorToColumn(0))
			d.writeString(eraseLine)
			d.writeString(line)
		}
		if i < newCount-1 {
			d.writeString("\r\n")
		} else {
			d.writeString(cursorToColumn(0))
		}
	}
	if newCount < prevCount {
		for i := newCount; i < prevCount; i++ {
			_ = i
			d.writeString("\r\n")
			d.writeString(cursorToColumn(0))
			d.writeString(eraseLine)
		}
		d.writeString(cursorUp(prevCount - newCount))
	}
	d.previousLines = newLines
}

// Clear erases the current frame from the terminal without drawing a new
// one, leaving the cursor where the next Render will start from.
func (d *Driver) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode == ModeAltScreen {
		d.writeString(cursorTo(0, 0))
		for i := range d.previousLines {
			d.writeString(cursorTo(i, 0))
			d.writeString(eraseLine)
		}
	} else {
		d.clearInlineLocked()
	}
	d.previousLines = nil
	return d.flushErr()
}

func (d *Driver) clearInlineLocked() {
	n := len(d.previousLines)
	if n == 0 {
		return
	}
	if n > 1 {
		d.writeString(cursorUp(n - 1))
	}
	d.writeString(cursorToColumn(0))
	for i := 0; i < n; i++ {
		d.writeString(eraseLine)
		if i < n-1 {
			d.writeString("\r\n")
		}
	}
	if n > 1 {
		d.writeString(cursorUp(n - 1))
	}
	d.writeString(cursorToColumn(0))
	d.previousLines = nil
}

// Invalidate forces the next Render to redraw every line, as if this were
// the first frame — used after an out-of-band terminal write.
func (d *Driver) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.previousLines = nil
}

func (d *Driver) writeString(s string) { d.out.WriteString(s) }

func (d *Driver) flush() { d.out.Flush() }

func (d *Driver) flushErr() error {
	if err := d.out.Flush(); err != nil {
		return errors.Wrap(err, "terminal: flush")
	}
	return nil
}

const (
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	eraseLine      = "\x1b[2K"
	eraseEndOfLine = "\x1b[K"
	eraseScreen    = "\x1b[2J"
	cursorHome     = "\x1b[H"
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	enableMouse    = "\x1b[?1000h\x1b[?1006h"
	disableMouse   = "\x1b[?1006l\x1b[?1000l"
)

func cursorTo(row, col int) string {
	var b strings.Builder
	b.WriteString("\x1b[")
	b.WriteString(strconv.Itoa(row + 1))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(col + 1))
	b.WriteByte('H')
	return b.String()
}

func cursorToColumn(col int) string {
	return "\x1b[" + strconv.Itoa(col+1) + "G"
}

func cursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return "\x1b[" + strconv.Itoa(n) + "A"
}
