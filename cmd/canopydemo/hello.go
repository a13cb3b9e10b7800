package main

import (
	"github.com/spf13/cobra"

	"canopy/app"
	"canopy/element"
	"canopy/hooks"
	"canopy/style"
)

func helloCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Render static styled text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHello()
		},
	}
}

func runHello() error {
	var a *app.App
	render := func(r *hooks.Runtime) element.Element {
		quitOnQ(r, func() { a.Exit() })

		title := style.New()
		title.Bold = true

		box := style.New()
		box.BorderStyle = style.BorderSingle
		box.Padding = style.All(1)

		return element.NewRoot(element.Box(box,
			element.Text("Hello, canopy!", title),
			element.Text("This is a static example.", style.New()),
			element.Text("(press 'q' or Ctrl+C to exit)", style.New()),
		))
	}

	a = app.New(render, app.DefaultOptions())
	return a.Run()
}
