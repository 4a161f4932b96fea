package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/printstack/printstack/color"
	"github.com/printstack/printstack/config"
	"github.com/printstack/printstack/icon"
	"github.com/printstack/printstack/style"
	"github.com/printstack/printstack/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func completeKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return config.Keys(), cobra.ShellCompDirectiveNoFileComp
}

// fieldsFor looks up the named fields, or all of them when no names are given.
func fieldsFor(keys []string) ([]config.Field, error) {
	if len(keys) == 0 {
		keys = config.Keys()
	}

	fields := make([]config.Field, 0, len(keys))
	for _, k := range keys {
		f, err := config.Lookup(k)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return fields, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change printstack settings",
	Long: fmt.Sprintf(`Inspect and change printstack settings.

Changes are written to %s.`, style.Fg(color.Yellow)("printstack where --config-file")),
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().BoolP("json", "j", false, "Print the settings as JSON")
}

var configShowCmd = &cobra.Command{
	Use:               "show [key...]",
	Short:             "Show settings with their current value, default and env variable",
	Aliases:           []string{"info", "get"},
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fields, err := fieldsFor(args)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			handleErr(enc.Encode(fields))
			return
		}

		for i, f := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(f.Pretty())
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value...>",
	Short:             "Change a setting and save it",
	Example:           "  printstack config set printer.rollback_depth 3",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		v, err := config.Set(args[0], args[1:]...)
		handleErr(err)
		handleErr(config.Save())

		cmd.Printf("%s %s = %s\n", icon.Get(icon.Success), style.Fg(color.Purple)(args[0]), style.Fg(color.Yellow)(fmt.Sprint(v)))
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every setting")
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key...]",
	Short:             "Restore settings to their defaults and save",
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		if len(args) == 0 && !all {
			handleErr(fmt.Errorf("name the keys to reset or pass --all"))
		}

		keys := args
		if all {
			keys = nil
		}

		handleErr(config.Reset(keys...))
		handleErr(config.Save())

		cmd.Printf("%s reset %s\n", icon.Get(icon.Success), lo.Ternary(all, "all settings", fmt.Sprint(args)))
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the config file, falling back to defaults",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(config.Delete())
		cmd.Printf("%s deleted %s\n", icon.Get(icon.Success), where.ConfigFile())
	},
}
