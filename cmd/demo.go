package cmd

import (
	"github.com/printstack/printstack/printer"
	"github.com/printstack/printstack/scenario"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

// demoCmd replays the built-in overhang bridge walkthrough.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the built-in print walkthrough",
	Long: `Print a few layers, let an overhang bridge fail, roll the last layers back
and resume with a structural support, narrating every step.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		handleErr(scenario.Demo().Play(printer.New(printer.WithOutput(out)), out))
	},
}
