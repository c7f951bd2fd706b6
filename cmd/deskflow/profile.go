// ABOUTME: CLI commands for viewing and updating the profile.
// ABOUTME: Every update reclassifies the risk tier before saving.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/deskflow/internal/risk"
	"github.com/spf13/cobra"
)

var (
	setAge           int
	setWeight        float64
	setHeight        float64
	setInjuries      []string
	setRedFlags      []string
	setClearInjuries bool
	setClearRedFlags bool
	setWorkStart     string
	setWorkEnd       string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		bold := color.New(color.Bold)

		fmt.Printf("%s\n", bold.Sprint(p.Name))
		fmt.Printf("  %s %d · %.1f kg · %.1f cm · BMI %.1f\n",
			faint.Sprint("age"), p.Age, p.WeightKg, p.HeightCm, p.BMI())
		fmt.Printf("  %s %s\n", faint.Sprint("fitness"), p.FitnessLevel)
		fmt.Printf("  %s %s–%s\n", faint.Sprint("work hours"), p.WorkStartTime, p.WorkEndTime)

		if len(p.Injuries) > 0 {
			fmt.Printf("  %s %s\n", faint.Sprint("injuries"), strings.Join(p.Injuries, ", "))
		}
		if len(p.RedFlags) > 0 {
			fmt.Printf("  %s %s\n", faint.Sprint("red flags"), color.RedString(strings.Join(p.RedFlags, ", ")))
		}

		fmt.Printf("  %s ", faint.Sprint("risk tier"))
		if p.Locked() {
			color.Red("%s (workouts locked)", p.RiskProfile)
		} else {
			fmt.Println(p.RiskProfile)
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Update profile fields. The risk tier is derived from the profile and
reclassified on every change; it cannot be set directly.

Examples:
  deskflow profile set --weight 80.5
  deskflow profile set --injuries Knees --injuries Wrists
  deskflow profile set --clear-red-flags
  deskflow profile set --work-start 08:00 --work-end 16:00`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return err
		}

		if setAge > 0 {
			p.Age = setAge
		}
		if setWeight > 0 {
			p.WeightKg = setWeight
		}
		if setHeight > 0 {
			p.HeightCm = setHeight
		}
		if setClearInjuries {
			p.Injuries = nil
		} else if setInjuries != nil {
			p.Injuries = setInjuries
		}
		if setClearRedFlags {
			p.RedFlags = nil
		} else if setRedFlags != nil {
			p.RedFlags = setRedFlags
		}
		if setWorkStart != "" {
			p.WorkStartTime = setWorkStart
		}
		if setWorkEnd != "" {
			p.WorkEndTime = setWorkEnd
		}

		before := p.RiskProfile
		*p = risk.Reclassify(*p)
		if p.HasAgreedToDisclaimer && !p.Locked() {
			p.OnboardingCompleted = true
		}

		if err := repo.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile updated")
		if p.RiskProfile != before {
			fmt.Printf("  Risk tier: %s → %s\n", before, p.RiskProfile)
		} else {
			fmt.Printf("  Risk tier: %s\n", p.RiskProfile)
		}
		if p.Locked() {
			fmt.Println("  Workouts are locked until red-flag symptoms are cleared.")
		}
		return nil
	},
}

func init() {
	profileSetCmd.Flags().IntVar(&setAge, "age", 0, "age in years")
	profileSetCmd.Flags().Float64Var(&setWeight, "weight", 0, "weight in kg")
	profileSetCmd.Flags().Float64Var(&setHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().StringArrayVar(&setInjuries, "injuries", nil, "replace injury tags (repeatable)")
	profileSetCmd.Flags().StringArrayVar(&setRedFlags, "red-flags", nil, "replace red-flag symptoms (repeatable)")
	profileSetCmd.Flags().BoolVar(&setClearInjuries, "clear-injuries", false, "clear the injury list")
	profileSetCmd.Flags().BoolVar(&setClearRedFlags, "clear-red-flags", false, "clear the red-flag list")
	profileSetCmd.Flags().StringVar(&setWorkStart, "work-start", "", "work start time (HH:MM)")
	profileSetCmd.Flags().StringVar(&setWorkEnd, "work-end", "", "work end time (HH:MM)")
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
