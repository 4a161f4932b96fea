package cmd

import (
	"github.com/printstack/printstack/mini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)
}

// miniCmd launches the prompt-driven session.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch the printer in a lightweight, prompt-driven session",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(mini.Run(&mini.Options{Out: cmd.OutOrStdout()}))
	},
}
