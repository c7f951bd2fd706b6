// ABOUTME: CLI command for first-time profile setup.
// ABOUTME: Shows the medical disclaimer and classifies the risk tier.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/deskflow/internal/catalog"
	"github.com/harperreed/deskflow/internal/models"
	"github.com/harperreed/deskflow/internal/risk"
	"github.com/spf13/cobra"
)

var (
	onboardName      string
	onboardAge       int
	onboardWeight    float64
	onboardHeight    float64
	onboardGender    string
	onboardFitness   string
	onboardInjuries  []string
	onboardRedFlags  []string
	onboardWorkStart string
	onboardWorkEnd   string
	onboardAgree     bool
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up your profile",
	Long: `Set up your deskflow profile.

Onboarding collects your biometrics, injury history, and work hours,
then derives a risk tier that scales every exercise you are given:

  Unrestricted  no clinical flags; standard intensity
  Modified      injuries present; reduced volume, therapeutic cues
  Geriatric     age 65+ or BMI > 35; seated/low-impact pathway
  RedFlag       red-flag symptoms; workouts locked until cleared

You must accept the medical disclaimer (--agree) before workouts are
enabled.

Examples:
  deskflow onboard --name Alex --age 34 --weight 82 --height 178 --agree
  deskflow onboard --name Sam --age 52 --injuries Knees --injuries Back --agree
  deskflow onboard --name Pat --age 68 --work-start 08:30 --work-end 16:30 --agree`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if onboardName == "" {
			return fmt.Errorf("--name is required")
		}
		if onboardAge <= 0 {
			return fmt.Errorf("--age is required")
		}

		p := &models.Profile{
			Name:          onboardName,
			Age:           onboardAge,
			WeightKg:      onboardWeight,
			HeightCm:      onboardHeight,
			Gender:        models.Gender(onboardGender),
			FitnessLevel:  models.FitnessLevel(onboardFitness),
			Injuries:      onboardInjuries,
			RedFlags:      onboardRedFlags,
			WorkStartTime: onboardWorkStart,
			WorkEndTime:   onboardWorkEnd,
		}
		p.RiskProfile = risk.Classify(*p)

		fmt.Println(color.New(color.Faint).Sprint(catalog.MedicalDisclaimer))
		fmt.Println()

		if !onboardAgree {
			return fmt.Errorf("you must accept the disclaimer with --agree to complete onboarding")
		}
		now := time.Now()
		p.HasAgreedToDisclaimer = true
		p.WaiverSignedAt = &now
		p.OnboardingCompleted = !p.Locked()

		if err := repo.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		if p.Locked() {
			color.Red("✗ Red-flag symptoms reported: %v", p.RedFlags)
			fmt.Println("  Workouts are locked. Please see a doctor before exercising.")
			fmt.Println("  Clear the symptoms with: deskflow profile set --clear-red-flags")
			return nil
		}

		color.Green("✓ Welcome to deskflow, %s", p.Name)
		fmt.Printf("  Risk tier: %s · BMI %.1f\n", p.RiskProfile, p.BMI())
		fmt.Println("  Run 'deskflow status' to see when your first session is due.")
		return nil
	},
}

func init() {
	onboardCmd.Flags().StringVar(&onboardName, "name", "", "display name")
	onboardCmd.Flags().IntVar(&onboardAge, "age", 0, "age in years")
	onboardCmd.Flags().Float64Var(&onboardWeight, "weight", 0, "weight in kg")
	onboardCmd.Flags().Float64Var(&onboardHeight, "height", 0, "height in cm")
	onboardCmd.Flags().StringVar(&onboardGender, "gender", "", "gender (Male, Female, Other)")
	onboardCmd.Flags().StringVar(&onboardFitness, "fitness", "Sedentary", "fitness level (Sedentary, Lightly Active, Active)")
	onboardCmd.Flags().StringArrayVar(&onboardInjuries, "injuries", nil, "injury tags (repeatable: Knees, Back, Shoulders, Wrists)")
	onboardCmd.Flags().StringArrayVar(&onboardRedFlags, "red-flags", nil, "red-flag symptoms (repeatable: Chest Pain, Dizziness)")
	onboardCmd.Flags().StringVar(&onboardWorkStart, "work-start", "09:00", "work start time (HH:MM)")
	onboardCmd.Flags().StringVar(&onboardWorkEnd, "work-end", "17:00", "work end time (HH:MM)")
	onboardCmd.Flags().BoolVar(&onboardAgree, "agree", false, "accept the medical disclaimer")
	rootCmd.AddCommand(onboardCmd)
}
