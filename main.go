// Package main is the entry point for the printstack application.
package main

import (
	"github.com/printstack/printstack/cmd"
	"github.com/printstack/printstack/config"
	"github.com/printstack/printstack/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
