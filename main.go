package main

import (
	"github.com/alecthomas/kong"

	"olradar.se/Olradar/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Olradar"), kong.Description("Olradar is a crowd-sourced beer price tracker."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
