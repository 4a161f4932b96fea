package cmd

import (
	"runtime"
	"strings"
	"text/template"

	"github.com/printstack/printstack/color"
	"github.com/printstack/printstack/constant"
	"github.com/printstack/printstack/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"accent": style.Fg(color.Purple),
	"faint":  style.Faint,
}).Parse(`{{ accent .App }} {{ .Version }}
{{ faint "commit" }} {{ .Revision }}
{{ faint "built " }} {{ .BuiltAt }} by {{ .BuiltBy }}
{{ faint "target" }} {{ .Platform }}
`))

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), map[string]string{
			"App":      constant.Printstack,
			"Version":  constant.Version,
			"Revision": constant.Revision,
			"BuiltAt":  strings.TrimSpace(constant.BuiltAt),
			"BuiltBy":  constant.BuiltBy,
			"Platform": runtime.GOOS + "/" + runtime.GOARCH,
		}))
	},
}
