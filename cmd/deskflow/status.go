// ABOUTME: CLI command showing the next due session and today's progress.
// ABOUTME: Drives the 90-minute ultradian scheduler.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/deskflow/internal/catalog"
	"github.com/harperreed/deskflow/internal/schedule"
	"github.com/harperreed/deskflow/internal/stats"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show when the next session is due",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return err
		}

		if p.Locked() {
			color.Red("✗ Workouts locked: red-flag symptoms present")
			fmt.Println("  Please see a doctor. Clear with: deskflow profile set --clear-red-flags")
			return nil
		}

		history, err := listSessionValues()
		if err != nil {
			return err
		}

		now := time.Now()
		next := schedule.NextSession(*p, history, now)
		s := stats.Compute(history, catalog.Achievements, now)

		today := 0
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		for _, sess := range history {
			if !sess.Date.Before(dayStart) {
				today++
			}
		}

		if schedule.Due(next, now) {
			color.Green("● Session due now")
			fmt.Println("  Run: deskflow workout start")
		} else {
			fmt.Printf("○ Next session in %s", color.New(color.Bold).Sprint(schedule.Countdown(next, now)))
			fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("(%s)", next.Format("15:04")))
		}

		faint := color.New(color.Faint)
		fmt.Printf("  %s %d/%d sessions\n", faint.Sprint("today"), today, cfg.GetDailyTarget())
		fmt.Printf("  %s %d day(s)\n", faint.Sprint("streak"), s.CurrentStreak)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
