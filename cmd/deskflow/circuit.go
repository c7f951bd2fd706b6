// ABOUTME: CLI command previewing a generated circuit.
// ABOUTME: Supports stealth mode for open-office discretion.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/deskflow/internal/catalog"
	"github.com/harperreed/deskflow/internal/circuit"
	"github.com/harperreed/deskflow/internal/models"
	"github.com/harperreed/deskflow/internal/scaling"
	"github.com/spf13/cobra"
)

var circuitStealth bool

var circuitCmd = &cobra.Command{
	Use:     "circuit",
	Aliases: []string{"c"},
	Short:   "Preview a balanced circuit",
	Long: `Generate and preview a balanced 3-exercise circuit without starting
timers: one strength movement, one cardio movement, and one mobility or
posture movement, each scaled to your risk profile.

Examples:
  deskflow circuit             # Preview a standard circuit
  deskflow circuit --stealth   # Only movements invisible to coworkers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return err
		}
		if p.Locked() {
			color.Red("✗ Workouts locked: red-flag symptoms present")
			return nil
		}

		gen := circuit.NewDefault()
		exercises := gen.Generate(catalog.Exercises, circuitStealth)
		if len(exercises) == 0 {
			fmt.Println("No exercises available.")
			return nil
		}

		faint := color.New(color.Faint)
		bold := color.New(color.Bold)
		for i, ex := range exercises {
			settings := scaling.ScaleExercise(*p, ex)
			fmt.Printf("%d. %s %s\n", i+1, bold.Sprint(ex.Name), faint.Sprintf("(%s)", ex.Category))
			if ex.Kind == models.KindReps {
				fmt.Printf("   %d reps · rest %ds · %s\n", settings.Reps, settings.RestSec, settings.IntensityLabel)
			} else {
				fmt.Printf("   %ds hold · rest %ds · %s\n", settings.DurationSec, settings.RestSec, settings.IntensityLabel)
			}
			fmt.Printf("   %s\n", faint.Sprint(truncate(settings.ModificationAdvice, 70)))
		}
		fmt.Println()
		fmt.Println(faint.Sprint("Run it with: deskflow workout start"))
		return nil
	},
}

func init() {
	circuitCmd.Flags().BoolVar(&circuitStealth, "stealth", false, "only stealth-eligible movements")
	rootCmd.AddCommand(circuitCmd)
}
