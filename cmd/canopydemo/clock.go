package main

import (
	"time"

	"github.com/spf13/cobra"

	"canopy/app"
	"canopy/command"
	"canopy/element"
	"canopy/hooks"
	"canopy/style"
)

func clockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clock",
		Short: "Show a wall-clock display updated on second boundaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClock()
		},
	}
}

func runClock() error {
	var a *app.App
	render := func(r *hooks.Runtime) element.Element {
		quitOnQ(r, func() { a.Exit() })
		now := hooks.UseState(r, func() string { return time.Now().Format("15:04:05") })

		hooks.UseEffectOnce(r, func() func() {
			var arm func()
			arm = func() {
				a.Submit(command.Interval(time.Second, func(t time.Time) {
					now.Set(t.Format("15:04:05"))
					arm()
				}))
			}
			arm()
			return nil
		})

		face := style.New()
		face.Bold = true
		face.Color = style.Basic3(style.Cyan)

		box := style.New()
		box.BorderStyle = style.BorderDouble
		box.Padding = style.All(2)

		return element.NewRoot(element.Box(box,
			element.Text(now.Get(), face),
		))
	}

	a = app.New(render, app.DefaultOptions())
	return a.Run()
}
