package main

import (
	"log/slog"
	"os"

	"advent/cmd/advent/commands"
	"github.com/alecthomas/kong"
)

var version = "0.3.0"

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("advent"),
		kong.Description("Scaffold Advent of Code day workspaces."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}, cli); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
