package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"canopy/app"
	"canopy/command"
	"canopy/element"
	"canopy/hooks"
	"canopy/style"
)

func counterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counter",
		Short: "Increment a counter once a second via the command executor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCounter()
		},
	}
}

func runCounter() error {
	var a *app.App
	render := func(r *hooks.Runtime) element.Element {
		quitOnQ(r, func() { a.Exit() })
		count := hooks.UseState(r, func() int { return 0 })

		hooks.UseEffectOnce(r, func() func() {
			var arm func()
			arm = func() {
				a.Submit(command.Interval(time.Second, func(time.Time) {
					count.Update(func(n int) int { return n + 1 })
					arm()
				}))
			}
			arm()
			return nil
		})

		label := style.New()
		label.Bold = true

		return element.NewRoot(element.Column(
			element.Text("Counter", label),
			element.Text(strconv.Itoa(count.Get()), style.New()),
			element.Text("(press 'q' to exit)", style.New()),
		))
	}

	a = app.New(render, app.DefaultOptions())
	return a.Run()
}
