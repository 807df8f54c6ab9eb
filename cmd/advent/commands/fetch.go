package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"advent/internal/aoc"
	"advent/internal/config"
	"advent/internal/day"
)

// FetchCmd implements the 'fetch' command: re-download the puzzle
// input for a day that has already been initialized.
type FetchCmd struct {
	Day int `arg:"" help:"Puzzle day number"`
}

func (f *FetchCmd) Run(_ *Global, root *CLI) error {
	loadEnv(root.Verbose)

	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	d, err := day.New(f.Day)
	if err != nil {
		return err
	}

	dayDir := cfg.DayDir(d.Padded())
	if _, err := os.Stat(dayDir); err != nil {
		return fmt.Errorf("%s is not initialized (run 'advent new %d' first)", dayDir, d.Int())
	}

	dest := filepath.Join(dayDir, cfg.InputFile)
	slog.Info("Downloading puzzle input", "year", cfg.Year, "day", d.Int())
	if err := aoc.DownloadInput(context.Background(), aoc.NewClient(), cfg.BaseURL, cfg.Year, d.Int(), config.Session(), dest); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", dest)
	return nil
}
