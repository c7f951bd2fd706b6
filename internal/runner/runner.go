// ABOUTME: Workout runner driving a circuit through exercise and rest phases.
// ABOUTME: Single cancelable 1 Hz ticker; never double-schedules on re-entry.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/deskflow/internal/models"
	"github.com/harperreed/deskflow/internal/scaling"
)

// ErrAlreadyRunning is returned when Run is re-entered while a session
// is in progress.
var ErrAlreadyRunning = errors.New("a workout session is already running")

// tipInterval controls how often the on-screen tip rotates.
const tipInterval = 6 * time.Second

// Runner executes workout circuits for a user.
type Runner struct {
	out     io.Writer
	profile models.Profile
	tips    []string
	rng     *rand.Rand
	running atomic.Bool

	// tick defaults to one second; tests shorten it.
	tick time.Duration
}

// New creates a runner for the given user writing progress to out.
func New(out io.Writer, profile models.Profile, tips []string, rng *rand.Rand) *Runner {
	return &Runner{
		out:     out,
		profile: profile,
		tips:    tips,
		rng:     rng,
		tick:    time.Second,
	}
}

// Run drives the circuit in real time: each exercise counts down its
// scaled duration, followed by its scaled rest (except after the last
// movement, which ends the session). Canceling ctx stops the loop
// cleanly and nothing is logged. On completion it returns the session
// record for the caller to persist.
func (r *Runner) Run(ctx context.Context, circuit []models.Exercise, mode models.SessionMode) (*models.Session, error) {
	if len(circuit) == 0 {
		return nil, errors.New("empty circuit")
	}
	if !r.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	defer r.running.Store(false)

	for i, ex := range circuit {
		settings := scaling.ScaleExercise(r.profile, ex)
		r.printExercise(i+1, len(circuit), ex, settings)

		if err := r.countdown(ctx, settings.DurationSec, ex, settings); err != nil {
			return nil, err
		}

		if i < len(circuit)-1 {
			fmt.Fprintf(r.out, "\n  Rest %ds...\n", settings.RestSec)
			if err := r.countdown(ctx, settings.RestSec, ex, settings); err != nil {
				return nil, err
			}
		}
	}

	return r.Complete(circuit, mode), nil
}

// Complete builds the session record for a finished circuit without
// running the timers. Used on completion and by the non-interactive path.
// No rest follows the last movement, matching the timer loop.
func (r *Runner) Complete(circuit []models.Exercise, mode models.SessionMode) *models.Session {
	duration := 0
	for i, ex := range circuit {
		settings := scaling.ScaleExercise(r.profile, ex)
		duration += settings.DurationSec
		if i < len(circuit)-1 {
			duration += settings.RestSec
		}
	}
	calories := models.EstimateCalories(r.profile.WeightKg, duration)
	return models.NewSession(duration, len(circuit), calories, mode)
}

// countdown ticks once per second for the given number of seconds,
// rotating the tip line. The ticker is stopped on exit, so a canceled
// or finished countdown leaves nothing scheduled.
func (r *Runner) countdown(ctx context.Context, seconds int, ex models.Exercise, settings models.ScaledSettings) error {
	if seconds <= 0 {
		return nil
	}

	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	tips := r.tipPool(ex, settings)
	nextTip := tipInterval

	for remaining := seconds; remaining > 0; {
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return ctx.Err()
		case <-ticker.C:
			remaining--
			fmt.Fprintf(r.out, "\r  %s  ", formatClock(remaining))
			nextTip -= r.tick
			if nextTip <= 0 && len(tips) > 0 {
				fmt.Fprintf(r.out, "\n  %s\n", color.CyanString(tips[r.rng.IntN(len(tips))]))
				nextTip = tipInterval
			}
		}
	}
	fmt.Fprintln(r.out)
	return nil
}

func (r *Runner) printExercise(n, total int, ex models.Exercise, settings models.ScaledSettings) {
	bold := color.New(color.Bold)
	fmt.Fprintf(r.out, "\n[%d/%d] %s\n", n, total, bold.Sprint(ex.Name))
	if ex.Kind == models.KindReps {
		fmt.Fprintf(r.out, "  %d reps · %s\n", settings.Reps, settings.IntensityLabel)
	} else {
		fmt.Fprintf(r.out, "  %ds hold · %s\n", settings.DurationSec, settings.IntensityLabel)
	}
	if ex.Tempo != "" {
		fmt.Fprintf(r.out, "  Tempo: %s\n", ex.Tempo)
	}
	fmt.Fprintf(r.out, "  %s\n", color.YellowString(settings.ModificationAdvice))
}

// tipPool assembles the rotating tip candidates for one exercise.
func (r *Runner) tipPool(ex models.Exercise, settings models.ScaledSettings) []string {
	pool := []string{settings.ModificationAdvice}
	for _, step := range ex.Instructions {
		pool = append(pool, "Form Cue: "+step)
	}
	pool = append(pool, r.tips...)
	if ex.CommonMistakes != "" {
		pool = append(pool, "Avoid: "+ex.CommonMistakes)
	}
	if ex.IntensityCue != "" {
		pool = append(pool, "Intensity: "+ex.IntensityCue)
	}
	return pool
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
