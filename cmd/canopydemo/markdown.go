package main

import (
	"github.com/spf13/cobra"

	"canopy/app"
	"canopy/element"
	"canopy/hooks"
	"canopy/markup"
	"canopy/style"
)

func markdownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markdown",
		Short: "Render a markup document through the markup package",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMarkdown()
		},
	}
}

const markdownDemoSource = `# canopy

A **declarative** terminal UI library with *flexbox* layout and __hook-based__ state.

## Features

- Buffered cell renderer
- #cyan(Chroma-backed) syntax highlighting
- ~~legacy ANSI string output~~ no longer needed

> Built on an immutable element tree, reconciled every frame.

---

(press 'q' or Ctrl+C to exit)
`

func runMarkdown() error {
	var a *app.App
	render := func(r *hooks.Runtime) element.Element {
		quitOnQ(r, func() { a.Exit() })
		lines := markup.Parse(markdownDemoSource)

		box := style.New()
		box.BorderStyle = style.BorderRound
		box.Padding = style.All(1)

		return element.NewRoot(element.Box(box,
			element.Spans(lines, style.New()),
		))
	}

	a = app.New(render, app.DefaultOptions())
	return a.Run()
}
