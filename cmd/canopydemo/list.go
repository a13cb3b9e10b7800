package main

import (
	"github.com/spf13/cobra"

	"canopy/app"
	"canopy/element"
	"canopy/hooks"
	"canopy/style"
	"canopy/terminal"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Navigate a list with the arrow keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

var listItems = []string{"Apples", "Bananas", "Cherries", "Dates", "Elderberries"}

func runList() error {
	var a *app.App
	render := func(r *hooks.Runtime) element.Element {
		quitOnQ(r, func() { a.Exit() })
		selected := hooks.UseState(r, func() int { return 0 })

		hooks.UseInput(r, func(ev terminal.KeyEvent) {
			switch ev.Key {
			case terminal.KeyArrowUp:
				selected.Update(func(n int) int {
					if n == 0 {
						return len(listItems) - 1
					}
					return n - 1
				})
			case terminal.KeyArrowDown:
				selected.Update(func(n int) int { return (n + 1) % len(listItems) })
			}
		})

		rows := make([]element.Element, 0, len(listItems))
		for i, item := range listItems {
			st := style.New()
			prefix := "  "
			if i == selected.Get() {
				st.Color = style.Basic3(style.Green)
				st.Bold = true
				prefix = "> "
			}
			rows = append(rows, element.Text(prefix+item, st))
		}

		return element.NewRoot(element.Column(rows...))
	}

	a = app.New(render, app.DefaultOptions())
	return a.Run()
}
