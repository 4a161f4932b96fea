package cmd

import (
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/printstack/printstack/color"
	"github.com/printstack/printstack/constant"
	"github.com/printstack/printstack/filesystem"
	"github.com/printstack/printstack/icon"
	"github.com/printstack/printstack/printer"
	"github.com/printstack/printstack/script"
	"github.com/printstack/printstack/style"
	"github.com/printstack/printstack/util"
	"github.com/printstack/printstack/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const scriptExtension = ".lua"

// resolveScript maps a bare script name to the scripts directory.
func resolveScript(arg string) string {
	if strings.ContainsRune(arg, filepath.Separator) || strings.HasSuffix(arg, scriptExtension) {
		return arg
	}
	return filepath.Join(where.Scripts(), arg+scriptExtension)
}

// scriptNames lists the scripts in the scripts directory without their extension.
func scriptNames() ([]string, error) {
	matches, err := filesystem.Glob(filepath.Join(where.Scripts(), "*"+scriptExtension))
	if err != nil {
		return nil, err
	}

	return lo.Map(matches, func(path string, _ int) string {
		return strings.TrimSuffix(filepath.Base(path), scriptExtension)
	}), nil
}

func completeScripts(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names, _ := scriptNames()
	return names, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <file|name>",
	Short: "Run a Lua script against a fresh printer",
	Long: `Run a Lua script that drives a fresh printer through the "printer" module.
Bare names are looked up in the scripts directory.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeScripts,
	Example:           "  printstack run ./bridge.lua\n  printstack run bridge",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		handleErr(script.Run(resolveScript(args[0]), printer.New(printer.WithOutput(out)), out))
	},
}

func init() {
	rootCmd.AddCommand(scriptsCmd)
	scriptsCmd.AddCommand(scriptsListCmd, scriptsRemoveCmd, scriptsGenCmd)
	scriptsGenCmd.Flags().BoolP("force", "f", false, "Overwrite an existing script")
}

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "Manage the Lua scripts in the scripts directory",
}

var scriptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scripts by name",
	Run: func(cmd *cobra.Command, args []string) {
		names, err := scriptNames()
		handleErr(err)

		if len(names) == 0 {
			cmd.Println(style.Faint("no scripts in " + where.Scripts()))
			return
		}

		for _, name := range names {
			cmd.Println(icon.Get(icon.Lua), name)
		}
	},
}

var scriptsRemoveCmd = &cobra.Command{
	Use:               "remove <name...>",
	Short:             "Remove scripts",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeScripts,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			handleErr(script.Remove(resolveScript(name)))
			cmd.Println(icon.Get(icon.Success), "removed", style.Fg(color.Yellow)(name))
		}
	},
}

var scriptsGenCmd = &cobra.Command{
	Use:     "gen <name>",
	Short:   "Write a new script from the built-in template",
	Args:    cobra.ExactArgs(1),
	Example: "  printstack scripts gen \"Bridge test\"",
	Run: func(cmd *cobra.Command, args []string) {
		author := "anonymous"
		if u, err := user.Current(); err == nil {
			author = u.Username
		}

		src, err := renderScript(args[0], author)
		handleErr(err)

		target := resolveScript(util.SanitizeFilename(args[0]))
		if exists, _ := filesystem.API().Exists(target); exists && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(&scriptExistsError{target})
		}

		handleErr(filesystem.WriteFile(target, []byte(src)))
		cmd.Println(target)
	},
}

type scriptExistsError struct{ path string }

func (e *scriptExistsError) Error() string {
	return e.path + " already exists, pass --force to overwrite it"
}

// renderScript fills the script template for a new script.
func renderScript(name, author string) (string, error) {
	tmpl, err := template.New("script").Funcs(template.FuncMap{
		"repeat": strings.Repeat,
		"plus":   func(a, b int) int { return a + b },
		"max":    util.Max[int],
	}).Parse(constant.ScriptTemplate)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	err = tmpl.Execute(&b, struct{ Name, Author string }{name, author})
	return b.String(), err
}
