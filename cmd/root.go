// Package cmd wires the printstack command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/printstack/printstack/color"
	"github.com/printstack/printstack/constant"
	"github.com/printstack/printstack/icon"
	"github.com/printstack/printstack/key"
	"github.com/printstack/printstack/log"
	"github.com/printstack/printstack/style"
	"github.com/printstack/printstack/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.SetOut(os.Stdout)

	flags := rootCmd.PersistentFlags()
	flags.IntP("depth", "d", 0, "Layers discarded when a print error is detected")
	flags.StringP("icons", "I", "", "Icon set: "+strings.Join(icon.AvailableVariants(), ", "))

	lo.Must0(viper.BindPFlag(key.PrinterRollbackDepth, flags.Lookup("depth")))
	lo.Must0(viper.BindPFlag(key.IconsVariant, flags.Lookup("icons")))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))
}

var rootCmd = &cobra.Command{
	Use:     constant.Printstack,
	Version: constant.Version,
	Short:   "Simulate a 3D printer that prints layer by layer and rolls back on errors",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("  layers go on a stack, errors pop them off"),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(tui.Run(&tui.Options{}))
	},
}

// Execute runs the command named on the command line.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// handleErr logs err and exits.
func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	_, _ = fmt.Fprintln(os.Stderr, icon.Get(icon.Fail), strings.TrimSpace(err.Error()))
	os.Exit(1)
}
