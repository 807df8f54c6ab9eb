package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"advent/internal/aoc"
	"advent/internal/config"
	"advent/internal/day"
	"advent/internal/scaffold"
	"advent/internal/workspace"
)

// Placeholder tokens baked into the template crate.
const (
	crateToken  = "day_XX" // crate name in the template Cargo.toml
	sourceToken = "dayXX"  // input path in the template main.rs
)

// Relative paths of the placeholder-bearing files inside a day crate.
const (
	descriptorFile = "Cargo.toml"
	sourceFile     = "src/main.rs"
)

// NewCmd implements the 'new' command: copy the template crate,
// rewrite its placeholders, register the workspace member, and
// download the puzzle input.
type NewCmd struct {
	Day   int  `arg:"" help:"Puzzle day number"`
	Force bool `help:"Re-initialize even if the day already exists"`
}

func (n *NewCmd) Run(_ *Global, root *CLI) error {
	loadEnv(root.Verbose)

	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	d, err := day.New(n.Day)
	if err != nil {
		return err
	}

	dayDir := cfg.DayDir(d.Padded())
	if !n.Force {
		if _, err := os.Stat(dayDir); err == nil {
			return fmt.Errorf("%s already exists (use --force to re-initialize)", dayDir)
		}
		if ok, err := workspace.HasMember(cfg.ManifestPath, dayDir); err != nil {
			return err
		} else if ok {
			return fmt.Errorf("%s is already a workspace member (use --force to re-initialize)", dayDir)
		}
	}

	slog.Info("Copying template", "template", cfg.TemplateDir, "destination", dayDir)
	if err := scaffold.CopyDir(cfg.TemplateDir, dayDir); err != nil {
		return fmt.Errorf("copy template: %w", err)
	}

	if err := scaffold.RewriteToken(filepath.Join(dayDir, descriptorFile), crateToken, "day_"+d.Padded()); err != nil {
		return err
	}
	if err := scaffold.RewriteToken(filepath.Join(dayDir, sourceFile), sourceToken, dayDir); err != nil {
		return err
	}

	if err := workspace.AddMember(cfg.ManifestPath, dayDir); err != nil {
		if !n.Force || !errors.Is(err, workspace.ErrMemberExists) {
			return fmt.Errorf("register workspace member: %w", err)
		}
		slog.Debug("Manifest entry already present", "member", dayDir)
	}

	dest := filepath.Join(dayDir, cfg.InputFile)
	slog.Info("Downloading puzzle input", "year", cfg.Year, "day", d.Int())
	if err := aoc.DownloadInput(context.Background(), aoc.NewClient(), cfg.BaseURL, cfg.Year, d.Int(), config.Session(), dest); err != nil {
		return err
	}

	fmt.Printf("Initialized %s\n", dayDir)
	return nil
}
