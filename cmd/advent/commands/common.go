package commands

import (
	"fmt"
	"log/slog"
	"os"

	"advent/internal/config"
	"github.com/alecthomas/kong"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"advent.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	New   NewCmd   `cmd:"" help:"Initialize a new puzzle day from the template"`
	Fetch FetchCmd `cmd:"" help:"Download the puzzle input for an initialized day"`
	List  ListCmd  `cmd:"" help:"List day members recorded in the workspace manifest"`
	Init  InitCmd  `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadEnv pulls in .env variables before commands that need the session
// credential. A missing .env file is fine; the variable may already be
// set in the process environment.
func loadEnv(verbose bool) {
	if envPath, err := config.LoadEnvFile(); err == nil && verbose {
		_, _ = fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
	}
}
