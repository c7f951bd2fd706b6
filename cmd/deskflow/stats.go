// ABOUTME: CLI command showing derived stats and achievements.
// ABOUTME: Everything here is recomputed from the session log on each run.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/deskflow/internal/catalog"
	"github.com/harperreed/deskflow/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak, XP, level, and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := listSessionValues()
		if err != nil {
			return err
		}

		s := stats.Compute(history, catalog.Achievements, time.Now())

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		fmt.Printf("%s %d  %s\n", bold.Sprint("Level"), s.Level,
			faint.Sprintf("(%d/%d XP)", s.CurrentXP, s.NextLevelXP))
		fmt.Printf("  %s %d\n", faint.Sprint("sessions"), s.TotalSessions)
		fmt.Printf("  %s %d min\n", faint.Sprint("active time"), s.TotalMinutes)
		fmt.Printf("  %s %d kcal\n", faint.Sprint("calories"), s.TotalCalories)
		fmt.Printf("  %s %d day(s)\n", faint.Sprint("streak"), s.CurrentStreak)

		fmt.Println()
		fmt.Println(bold.Sprint("Achievements"))
		for _, a := range catalog.Achievements {
			if s.Unlocked(a.ID) {
				fmt.Printf("  %s %s %s\n",
					color.GreenString("✓"), padRight(a.Title, 18), faint.Sprint(a.Description))
			} else {
				fmt.Printf("  %s\n", faint.Sprintf("○ %s %s", padRight(a.Title, 18), a.Description))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
