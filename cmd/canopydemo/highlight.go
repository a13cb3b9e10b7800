package main

import (
	"github.com/spf13/cobra"

	"canopy/app"
	"canopy/element"
	"canopy/highlight"
	"canopy/hooks"
	"canopy/style"
)

func highlightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "highlight",
		Short: "Render syntax-highlighted source through the highlight package",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight()
		},
	}
}

const highlightDemoGo = `package main

func main() {
	println("hello from canopy")
}
`

func runHighlight() error {
	var a *app.App
	render := func(r *hooks.Runtime) element.Element {
		quitOnQ(r, func() { a.Exit() })
		lines := highlight.Lines(highlightDemoGo, "go")

		box := style.New()
		box.BorderStyle = style.BorderSingle
		box.Padding = style.All(1)

		return element.NewRoot(element.Box(box,
			element.Spans(lines, style.New()),
		))
	}

	a = app.New(render, app.DefaultOptions())
	return a.Run()
}
