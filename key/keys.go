// Package key names every configuration setting.
package key

// Printer
const (
	PrinterRollbackDepth = "printer.rollback_depth"
	PrinterName          = "printer.name"
)

// Presentation
const (
	IconsVariant    = "icons.variant"
	TUIPromptString = "tui.prompt"
	TUIShowHelp     = "tui.show_help"
	CliColored      = "cli.colored"
)

// Lua scripts
const ScriptPreloadLibs = "script.preload_libs"

// Diagnostics
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
