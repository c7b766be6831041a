// Package main is the entry point for the tubescribe application.
package main

import (
	"github.com/samber/lo"
	"github.com/tubescribe-cli/tubescribe/cmd"
	"github.com/tubescribe-cli/tubescribe/config"
	"github.com/tubescribe-cli/tubescribe/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
