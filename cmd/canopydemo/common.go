package main

import (
	"canopy/hooks"
	"canopy/terminal"
)

// quitOnQ registers an input handler that exits the app on 'q' (Ctrl+C is
// already handled by app.Options.ExitOnCtrlC).
func quitOnQ(r *hooks.Runtime, exit func()) {
	hooks.UseInput(r, func(ev terminal.KeyEvent) {
		if ev.Key == terminal.KeyChar && ev.Rune == 'q' {
			exit()
		}
	})
}
