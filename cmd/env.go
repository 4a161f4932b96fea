package cmd

import (
	"os"

	"github.com/printstack/printstack/color"
	"github.com/printstack/printstack/config"
	"github.com/printstack/printstack/style"
	"github.com/printstack/printstack/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// envVars lists every variable printstack reads, sorted by setting key.
func envVars() []string {
	return append([]string{where.EnvConfigPath}, lo.Map(config.Keys(), func(k string, _ int) string {
		return config.Default[k].Env()
	})...)
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only list variables that are set")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables printstack reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))

		for _, name := range envVars() {
			value, ok := os.LookupEnv(name)
			if !ok && setOnly {
				continue
			}

			cmd.Printf("%s=%s\n",
				style.Bold(name),
				lo.Ternary(ok, style.Fg(color.Green)(value), style.Faint("unset")),
			)
		}
	},
}
