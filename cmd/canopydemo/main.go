// Command canopydemo is a small gallery of programs built on top of the
// canopy element model, hook runtime, command executor, and terminal
// driver.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "canopydemo",
		Short: "A gallery of canopy terminal-UI demos",
		Long: `canopydemo runs small example programs built on the canopy
element model: a declarative layout tree, a hook-based render loop, and a
worker-pool command executor.`,
	}

	root.AddCommand(
		helloCmd(),
		counterCmd(),
		clockCmd(),
		progressCmd(),
		listCmd(),
		markdownCmd(),
		highlightCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
