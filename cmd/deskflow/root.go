// ABOUTME: Root Cobra command for deskflow CLI.
// ABOUTME: Handles storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/deskflow/internal/config"
	"github.com/harperreed/deskflow/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "deskflow",
	Short: "Micro-workout companion for desk workers",
	Long: `Deskflow schedules short exercise circuits around your workday.

HOW IT WORKS:

  Every 90 minutes during work hours a 3-exercise circuit comes due:
  one strength movement, one cardio movement, one mobility or posture
  movement, each scaled to your risk profile.

QUICK START:

  $ deskflow onboard --name Alex --age 34     # Set up your profile
  $ deskflow status                           # When is the next session due?
  $ deskflow circuit                          # Preview a circuit
  $ deskflow workout start                    # Run one with live timers
  $ deskflow stats                            # Streak, XP, achievements

STEALTH MODE:

  In an open office? Generate circuits from movements nobody can see:

  $ deskflow circuit --stealth
  $ deskflow workout start --stealth

MCP INTEGRATION:

  Run 'deskflow mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants. Add to your
  Claude config:

  {
    "mcpServers": {
      "deskflow": { "command": "deskflow", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Your profile and session log live in ~/.local/share/deskflow (Badger
  key-value store by default; set "backend": "sqlite" in
  ~/.config/deskflow/config.json to use SQLite instead).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
