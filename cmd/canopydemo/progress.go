package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"canopy/app"
	"canopy/command"
	"canopy/element"
	"canopy/hooks"
	"canopy/style"
)

func progressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Drive a progress bar from a background command",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgress()
		},
	}
}

func runProgress() error {
	var a *app.App
	render := func(r *hooks.Runtime) element.Element {
		quitOnQ(r, func() { a.Exit() })
		pct := hooks.UseState(r, func() int { return 0 })

		hooks.UseEffectOnce(r, func() func() {
			cancel := a.Submit(command.Sequence(stepCmds(pct)...))
			return func() { cancel() }
		})

		bar := style.New()
		bar.Color = style.Basic3(style.Green)

		return element.NewRoot(element.Column(
			element.Text("Loading...", style.New()),
			element.Text(renderBar(pct.Get()), bar),
		))
	}

	a = app.New(render, app.DefaultOptions())
	return a.Run()
}

// stepCmds builds 50 sequenced sleeps, each nudging pct up by 2, so the bar
// fills smoothly under the command executor rather than a raw goroutine loop.
func stepCmds(pct *hooks.Signal[int]) []command.Cmd {
	steps := make([]command.Cmd, 0, 50)
	for i := 1; i <= 50; i++ {
		n := i
		steps = append(steps, command.Sleep(50*time.Millisecond, command.None()).AndThen(
			command.Perform(func(command.Canceler) {
				pct.Set(n * 2)
			}),
		))
	}
	return steps
}

func renderBar(pct int) string {
	const width = 40
	filled := width * pct / 100
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "] " + strconv.Itoa(pct) + "%"
}
