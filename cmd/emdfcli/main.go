// Command emdfcli inspects and exports EM_DataFile stores.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var kindFlag string

func main() {
	root := &cobra.Command{
		Use:   "emdfcli",
		Short: "Inspect and export EM_DataFile market data stores.",
	}
	root.PersistentFlags().StringVar(&kindFlag, "kind", "day", "record kind: day|minute|hismin|bargain")

	root.AddCommand(newIdsCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newCreateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
