package cmd

import (
	"encoding/json"

	"github.com/printstack/printstack/printer"
	"github.com/printstack/printstack/scenario"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolP("validate", "c", false, "Only validate the scenario file")
}

// playCmd replays a JSON scenario file.
var playCmd = &cobra.Command{
	Use:     "play [file]",
	Short:   "Replay a JSON scenario file against a fresh printer",
	Args:    cobra.ExactArgs(1),
	Example: "  printstack play ./bridge.json",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := scenario.Load(args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("validate")) {
			cmd.Printf("%s is a valid scenario with %d steps\n", args[0], len(s.Steps))
			return
		}

		out := cmd.OutOrStdout()
		handleErr(s.Play(printer.New(printer.WithOutput(out)), out))
	},
}

func init() {
	rootCmd.AddCommand(scenarioCmd)
	scenarioCmd.AddCommand(scenarioSchemaCmd)
	scenarioCmd.AddCommand(scenarioDemoCmd)
}

// scenarioCmd groups helpers for writing scenario files.
var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Helpers for writing scenario files",
}

// scenarioSchemaCmd prints the JSON schema of scenario files.
var scenarioSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of scenario files",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(scenario.Schema()))
	},
}

// scenarioDemoCmd prints the built-in walkthrough as a scenario file.
var scenarioDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the built-in walkthrough as a scenario file",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(scenario.Demo()))
	},
}
