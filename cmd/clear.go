package cmd

import (
	"github.com/printstack/printstack/icon"
	"github.com/printstack/printstack/util"
	"github.com/printstack/printstack/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var clearable = map[string]func() string{
	"logs":    where.Logs,
	"scripts": where.Scripts,
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolP("logs", "l", false, "Remove the logs directory")
	clearCmd.Flags().Bool("scripts", false, "Remove the scripts directory with every script and scenario in it")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove logs or scripts",
	Run: func(cmd *cobra.Command, args []string) {
		targets := lo.Filter([]string{"logs", "scripts"}, func(flag string, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(flag))
		})

		if len(targets) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range targets {
			dir := clearable[target]()
			handleErr(util.Delete(dir))
			cmd.Println(icon.Get(icon.Success), "removed", dir)
		}
	},
}
