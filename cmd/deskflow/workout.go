// ABOUTME: CLI commands for running and logging workout sessions.
// ABOUTME: start drives live timers; log records a session after the fact.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/harperreed/deskflow/internal/catalog"
	"github.com/harperreed/deskflow/internal/circuit"
	"github.com/harperreed/deskflow/internal/models"
	"github.com/harperreed/deskflow/internal/runner"
	"github.com/spf13/cobra"
)

var (
	startStealth bool
	startFast    bool

	logDuration  int
	logExercises int
	logStealth   bool
	logAt        string

	workoutListLimit int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Run and log workout sessions",
}

var workoutStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Run a circuit with live timers",
	Long: `Generate a circuit and run it in real time. Each exercise counts down
its scaled duration, followed by a rest period. Ctrl+C stops the session
without logging it.

Examples:
  deskflow workout start
  deskflow workout start --stealth
  deskflow workout start --fast     # skip timers, log immediately`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return err
		}
		if p.Locked() {
			return fmt.Errorf("workouts are locked: red-flag symptoms present")
		}

		gen := circuit.NewDefault()
		exercises := gen.Generate(catalog.Exercises, startStealth)
		if len(exercises) == 0 {
			return fmt.Errorf("no exercises available")
		}

		mode := models.ModeActive
		if startStealth {
			mode = models.ModeStealth
		}

		r := runner.New(os.Stdout, *p, catalog.GeneralTips, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

		var session *models.Session
		if startFast {
			session = r.Complete(exercises, mode)
		} else {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			session, err = r.Run(ctx, exercises, mode)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					fmt.Println("Session canceled. Nothing logged.")
					return nil
				}
				return err
			}
		}

		if err := repo.AppendSession(session); err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}

		color.Green("✓ Session complete")
		fmt.Printf("  %s %ds · %d exercises · %d kcal\n",
			color.New(color.Faint).Sprint(session.ID.String()[:8]),
			session.DurationSeconds, session.ExercisesCompleted, session.CaloriesBurned)
		return nil
	},
}

var workoutLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a session after the fact",
	Long: `Log a completed session without running timers.

Examples:
  deskflow workout log --duration 180
  deskflow workout log --duration 240 --exercises 4 --at "2026-08-29 14:30"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return err
		}
		if p.Locked() {
			return fmt.Errorf("workouts are locked: red-flag symptoms present")
		}
		if logDuration <= 0 {
			return fmt.Errorf("--duration is required (seconds)")
		}

		exercises := logExercises
		if exercises <= 0 {
			exercises = circuit.Size
		}
		mode := models.ModeActive
		if logStealth {
			mode = models.ModeStealth
		}

		calories := models.EstimateCalories(p.WeightKg, logDuration)
		session := models.NewSession(logDuration, exercises, calories, mode)

		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			session.WithDate(t)
		}

		if err := repo.AppendSession(session); err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}

		color.Green("✓ Logged %s session", mode)
		fmt.Printf("  %s %ds · %d kcal\n",
			color.New(color.Faint).Sprint(session.ID.String()[:8]),
			session.DurationSeconds, session.CaloriesBurned)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List logged sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := repo.ListSessions()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions logged.")
			return nil
		}

		// Newest first, limited.
		if workoutListLimit > 0 && len(sessions) > workoutListLimit {
			sessions = sessions[len(sessions)-workoutListLimit:]
		}

		faint := color.New(color.Faint)
		for i := len(sessions) - 1; i >= 0; i-- {
			s := sessions[i]
			fmt.Printf("%s %s %s %4ds %2d ex %4d kcal\n",
				faint.Sprint(s.ID.String()[:8]),
				faint.Sprint(s.Date.Format("2006-01-02 15:04")),
				padRight(string(s.Mode), 7),
				s.DurationSeconds, s.ExercisesCompleted, s.CaloriesBurned)
		}
		return nil
	},
}

func init() {
	workoutStartCmd.Flags().BoolVar(&startStealth, "stealth", false, "only stealth-eligible movements")
	workoutStartCmd.Flags().BoolVar(&startFast, "fast", false, "skip timers and log the circuit immediately")
	workoutLogCmd.Flags().IntVar(&logDuration, "duration", 0, "session length in seconds")
	workoutLogCmd.Flags().IntVar(&logExercises, "exercises", 0, "exercises completed (default 3)")
	workoutLogCmd.Flags().BoolVar(&logStealth, "stealth", false, "log as a stealth session")
	workoutLogCmd.Flags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	workoutListCmd.Flags().IntVarP(&workoutListLimit, "limit", "n", 20, "max number of results")

	workoutCmd.AddCommand(workoutStartCmd)
	workoutCmd.AddCommand(workoutLogCmd)
	workoutCmd.AddCommand(workoutListCmd)
	rootCmd.AddCommand(workoutCmd)
}
