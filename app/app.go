// Package app wires together the element tree, the hook runtime, the
// layout solver, the cell-buffer renderer, the terminal driver, and the
// command executor into a single render loop: a single-threaded,
// cooperative render thread driven by a render-request channel and an
// FPS-bounded ticker, fed by the terminal driver's own input goroutine.
package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"canopy/cellbuf"
	"canopy/command"
	"canopy/element"
	"canopy/hooks"
	"canopy/internal/telemetry"
	"canopy/layout"
	"canopy/render"
	"canopy/terminal"
)

// RenderFunc builds the element tree for one frame. It runs on the render
// thread and may freely call hooks against the Runtime passed to it.
type RenderFunc func(r *hooks.Runtime) element.Element

// Options configures an App. The zero value is 60 FPS (filled in by New),
// no exit on Ctrl-C, inline presentation, against the process's
// stdin/stdout, with logging discarded.
type Options struct {
	FPS          int
	ExitOnCtrlC  bool
	AltScreen    bool
	DebugLogPath string
	Stdout       *os.File
	Stdin        *os.File
}

// DefaultOptions returns the spec-mandated defaults: 60 FPS, exit on
// Ctrl-C, inline presentation. Start from this and override fields rather
// than building an Options literal from scratch, since the zero value of
// ExitOnCtrlC (false) is not the default behaviour.
func DefaultOptions() Options {
	return Options{FPS: 60, ExitOnCtrlC: true}
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = 60
	}
	return o
}

// App owns the whole running program: terminal, runtime, executor, and
// the render loop that ties them together.
type App struct {
	opts   Options
	render RenderFunc

	runtime  *hooks.Runtime
	executor *command.Executor
	driver   *terminal.Driver
	logger   *slog.Logger
	closeLog func() error

	exitCh   chan struct{}
	exitOnce sync.Once
	printCh  chan string

	mu            sync.Mutex
	wantAltScreen bool
}

// New builds an App. A non-positive FPS becomes 60; ExitOnCtrlC is used as
// passed, so callers wanting exit on Ctrl-C start from DefaultOptions.
func New(renderFn RenderFunc, opts Options) *App {
	opts = opts.withDefaults()

	logger, closeLog, err := telemetry.New(telemetry.Options{Path: opts.DebugLogPath})
	if err != nil {
		logger, closeLog = slog.New(slog.NewTextHandler(os.Stderr, nil)), func() error { return nil }
	}

	a := &App{
		opts:          opts,
		render:        renderFn,
		runtime:       hooks.New(),
		logger:        logger,
		closeLog:      closeLog,
		exitCh:        make(chan struct{}),
		printCh:       make(chan string, 16),
		wantAltScreen: opts.AltScreen,
	}
	a.executor = command.NewExecutor(command.DefaultWorkers, a.runtime.RequestRender)
	a.driver = terminal.New(terminal.Options{Stdout: opts.Stdout, Stdin: opts.Stdin, AltScreen: opts.AltScreen})
	return a
}

// Runtime returns the hook runtime the render callback runs against.
func (a *App) Runtime() *hooks.Runtime { return a.runtime }

// Submit hands a command to the worker pool executor; cancel it early with
// the returned func.
func (a *App) Submit(cmd command.Cmd) context.CancelFunc { return a.executor.Submit(cmd) }

// RequestRender asks for another frame; safe from any goroutine.
func (a *App) RequestRender() { a.runtime.RequestRender() }

// Println writes persistent text above the live frame (inline mode only;
// a no-op in alt-screen mode, mirroring terminal.Driver.Println).
func (a *App) Println(msg string) {
	select {
	case a.printCh <- msg:
	default:
	}
}

// Exit requests the render loop stop after the current frame.
func (a *App) Exit() {
	a.exitOnce.Do(func() { close(a.exitCh) })
}

// SwitchToAltScreen requests the driver enter the alternate screen before
// the next frame.
func (a *App) SwitchToAltScreen() {
	a.mu.Lock()
	a.wantAltScreen = true
	a.mu.Unlock()
	a.runtime.RequestRender()
}

// SwitchToInline requests the driver return to inline presentation before
// the next frame.
func (a *App) SwitchToInline() {
	a.mu.Lock()
	a.wantAltScreen = false
	a.mu.Unlock()
	a.runtime.RequestRender()
}

// Run opens the terminal, drives the render loop, and restores the
// terminal on any exit path: normal exit, a signal, or a panic. It
// returns once the loop stops.
func (a *App) Run() (err error) {
	if openErr := a.driver.Open(); openErr != nil {
		return openErr
	}
	defer a.closeLog()

	// Declared before the driver-close defer so it runs after: by the time
	// this recovers, the terminal is already restored, and it only needs to
	// resume standard panic reporting.
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		}
	}()
	defer func() {
		if closeErr := a.driver.Close(); err == nil {
			err = closeErr
		}
	}()
	defer a.executor.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	a.driver.OnResize(func(int, int) {
		a.driver.Invalidate()
		a.runtime.RequestRender()
	})

	ticker := time.NewTicker(time.Second / time.Duration(a.opts.FPS))
	defer ticker.Stop()

	dirty := true // paint the first frame unconditionally
	for {
		select {
		case <-a.exitCh:
			return nil

		case <-sigCh:
			return nil

		case msg := <-a.printCh:
			if printErr := a.driver.Println(msg); printErr != nil {
				a.logger.Error("println failed", "error", printErr)
			}

		case ev, ok := <-a.driver.Events():
			if !ok {
				return nil
			}
			a.handleEvent(ev)

		case <-a.runtime.RenderRequests():
			dirty = true

		case <-ticker.C:
			if !dirty {
				continue
			}
			dirty = false
			if paintErr := a.paint(); paintErr != nil {
				a.logger.Error("paint failed", "error", paintErr)
			}
		}
	}
}

func (a *App) handleEvent(ev terminal.Event) {
	switch {
	case ev.Key != nil:
		if a.opts.ExitOnCtrlC && ev.Key.IsCtrlC() {
			a.Exit()
			return
		}
		a.runtime.DispatchKey(*ev.Key)
	case ev.Mouse != nil:
		a.runtime.DispatchMouse(*ev.Mouse)
	}
}

func (a *App) paint() error {
	a.mu.Lock()
	wantAlt := a.wantAltScreen
	a.mu.Unlock()

	if wantAlt && a.driver.Mode() == terminal.ModeInline {
		if err := a.driver.SwitchToAltScreen(); err != nil {
			return err
		}
	} else if !wantAlt && a.driver.Mode() == terminal.ModeAltScreen {
		if err := a.driver.SwitchToInline(); err != nil {
			return err
		}
	}

	a.runtime.BeginRender()
	tree := a.render(a.runtime)
	a.runtime.EndRender()
	a.runtime.RunEffects()

	w, h := a.driver.Size()
	if staticLines := render.ExtractStatic(tree, w); len(staticLines) > 0 {
		if err := a.driver.Println(strings.Join(staticLines, "\n")); err != nil {
			return err
		}
		a.driver.Invalidate()
	}
	tree = render.FilterStatic(tree)

	var mouseErr error
	if a.runtime.MouseEnabled() {
		mouseErr = a.driver.EnableMouse()
	} else {
		mouseErr = a.driver.DisableMouse()
	}
	if mouseErr != nil {
		a.logger.Error("mouse capture toggle failed", "error", mouseErr)
	}

	rects := layout.Compute(tree, w, h)
	buf := cellbuf.New(w, h)
	render.Paint(buf, tree, rects)

	return a.driver.Render(joinRows(buf, h))
}

func joinRows(buf *cellbuf.Buffer, h int) string {
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		rows[y] = buf.RenderRow(y)
	}
	return strings.Join(rows, "\n")
}
