package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/printstack/printstack/icon"
	"github.com/printstack/printstack/key"
	"github.com/printstack/printstack/printer"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Default maps each setting key to its field.
var Default = make(map[string]Field)

func define(k string, value any, description string, check ...func(any) error) {
	if _, ok := Default[k]; ok {
		panic("config: " + k + " defined twice")
	}

	f := Field{Key: k, Value: value, Description: description}
	if len(check) > 0 {
		f.check = check[0]
	}
	Default[k] = f
}

func init() {
	define(key.PrinterRollbackDepth, printer.DefaultRollbackDepth,
		"How many of the most recent layers a print error discards", nonNegative)
	define(key.PrinterName, "Prusa",
		"Printer name shown by the interactive sessions", notBlank)
	define(key.IconsVariant, "plain",
		"Icon set: "+strings.Join(icon.AvailableVariants(), ", ")+" (nerd needs a nerd font)",
		oneOf(icon.AvailableVariants()...))
	define(key.TUIPromptString, "> ",
		"Prompt in front of the layer input")
	define(key.TUIShowHelp, true,
		"Show key bindings under the layer stack")
	define(key.CliColored, true,
		"Color the command help")
	define(key.ScriptPreloadLibs, true,
		"Preload the helper Lua libraries (strings, regex, json...) before a script runs")
	define(key.LogsWrite, false,
		"Write logs to the logs directory")
	define(key.LogsLevel, "info",
		"Lowest level written: panic, fatal, error, warn, info, debug or trace", logLevel)
	define(key.LogsJson, false,
		"Write logs as JSON")
}

// Keys returns the registered keys in order.
func Keys() []string {
	keys := lo.Keys(Default)
	sort.Strings(keys)
	return keys
}

func nonNegative(v any) error {
	if v.(int) < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func notBlank(v any) error {
	if strings.TrimSpace(v.(string)) == "" {
		return errors.New("must not be blank")
	}
	return nil
}

func oneOf(options ...string) func(any) error {
	return func(v any) error {
		if !lo.Contains(options, v.(string)) {
			return fmt.Errorf("must be one of %s", strings.Join(options, ", "))
		}
		return nil
	}
}

func logLevel(v any) error {
	_, err := logrus.ParseLevel(v.(string))
	return err
}
