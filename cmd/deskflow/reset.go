// ABOUTME: CLI command for clearing the session log.
// ABOUTME: Destructive; requires --force.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all logged sessions",
	Long: `Delete every logged session. Your profile is kept. Stats, streak, XP,
and achievements derive from the session log, so they reset to zero.

This cannot be undone. Consider 'deskflow export json -o backup.json'
first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("refusing to delete sessions without --force")
		}

		if err := repo.ResetSessions(); err != nil {
			return fmt.Errorf("failed to reset sessions: %w", err)
		}

		color.Green("✓ Session log cleared")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm deletion")
	rootCmd.AddCommand(resetCmd)
}
