package commands

import (
	"fmt"
	"os"
	"strings"

	"advent/internal/config"
	"advent/internal/workspace"
)

// ListCmd implements the 'list' command: print the day members
// recorded in the workspace manifest, in manifest order.
type ListCmd struct{}

func (l *ListCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	members, err := workspace.Members(cfg.ManifestPath)
	if err != nil {
		return err
	}

	for _, member := range members {
		if strings.HasPrefix(member, cfg.DayPrefix) {
			_, _ = fmt.Fprintln(os.Stdout, member)
		}
	}
	return nil
}
