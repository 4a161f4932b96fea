package cmd

import (
	"github.com/printstack/printstack/color"
	"github.com/printstack/printstack/style"
	"github.com/printstack/printstack/where"
	"github.com/spf13/cobra"
)

// location is a directory or file printstack reads or writes.
type location struct {
	flag, title string
	path        func() string
}

var locations = []location{
	{"config", "Config", where.Config},
	{"config-file", "Config file", where.ConfigFile},
	{"scripts", "Scripts and scenarios", where.Scripts},
	{"logs", "Logs", where.Logs},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().Bool(l.flag, false, "Print only the "+l.title+" path")
	}
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where printstack keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if only, _ := cmd.Flags().GetBool(l.flag); only {
				cmd.Println(l.path())
				return
			}
		}

		title := style.New().Bold(true).Foreground(color.HiPurple).Render
		for _, l := range locations {
			cmd.Printf("%-24s %s\n", title(l.title), l.path())
		}
	},
}
