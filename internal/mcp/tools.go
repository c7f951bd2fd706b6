// ABOUTME: MCP tool implementations for the deskflow engine.
// ABOUTME: Exposes profile, scheduling, scaling, stats, and session logging.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/deskflow/internal/catalog"
	"github.com/harperreed/deskflow/internal/circuit"
	"github.com/harperreed/deskflow/internal/models"
	"github.com/harperreed/deskflow/internal/risk"
	"github.com/harperreed/deskflow/internal/scaling"
	"github.com/harperreed/deskflow/internal/schedule"
	"github.com/harperreed/deskflow/internal/stats"
	"github.com/harperreed/deskflow/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user's profile including the derived risk tier",
	}, s.handleGetProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_profile",
		Description: "Update profile fields; the risk tier is reclassified automatically",
	}, s.handleUpdateProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "next_session",
		Description: "Compute when the next micro-workout is due",
	}, s.handleNextSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get derived stats: totals, streak, XP, level, achievements",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_circuit",
		Description: "Generate a balanced 3-exercise circuit, optionally stealth-only",
	}, s.handleGenerateCircuit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "scale_exercise",
		Description: "Scale a catalog exercise to the user's risk profile",
	}, s.handleScaleExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_session",
		Description: "Append a completed workout session to the log",
	}, s.handleLogSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List recent workout sessions",
	}, s.handleListSessions)
}

// Tool input/output types

type updateProfileInput struct {
	Name          string   `json:"name,omitempty" jsonschema:"Display name"`
	Age           int      `json:"age,omitempty" jsonschema:"Age in years"`
	WeightKg      float64  `json:"weight_kg,omitempty" jsonschema:"Weight in kilograms"`
	HeightCm      float64  `json:"height_cm,omitempty" jsonschema:"Height in centimeters"`
	Injuries      []string `json:"injuries,omitempty" jsonschema:"Injury tags (e.g. Knees, Back, Shoulders); replaces the stored list"`
	RedFlags      []string `json:"red_flags,omitempty" jsonschema:"Red-flag symptoms (e.g. Chest Pain); replaces the stored list"`
	ClearInjuries bool     `json:"clear_injuries,omitempty" jsonschema:"Clear the injury list"`
	ClearRedFlags bool     `json:"clear_red_flags,omitempty" jsonschema:"Clear the red-flag list"`
	WorkStartTime string   `json:"work_start_time,omitempty" jsonschema:"Work start as HH:MM"`
	WorkEndTime   string   `json:"work_end_time,omitempty" jsonschema:"Work end as HH:MM"`
}

type profileOutput struct {
	Profile *models.Profile `json:"profile"`
	Message string          `json:"message,omitempty"`
}

type nextSessionOutput struct {
	NextSession time.Time `json:"next_session"`
	Due         bool      `json:"due"`
	Countdown   string    `json:"countdown"`
}

type generateCircuitInput struct {
	Stealth bool `json:"stealth,omitempty" jsonschema:"Restrict to stealth-eligible movements"`
}

type circuitExercise struct {
	Exercise models.Exercise       `json:"exercise"`
	Settings models.ScaledSettings `json:"settings"`
}

type scaleExerciseInput struct {
	ExerciseID string `json:"exercise_id" jsonschema:"Catalog exercise id"`
}

type logSessionInput struct {
	DurationSeconds    int    `json:"duration_seconds" jsonschema:"Total session length in seconds"`
	ExercisesCompleted int    `json:"exercises_completed,omitempty" jsonschema:"Number of exercises completed (default 3)"`
	Stealth            bool   `json:"stealth,omitempty" jsonschema:"Session ran in stealth mode"`
	Date               string `json:"date,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, profileOutput, error) {
	p, err := s.repo.GetProfile()
	if err != nil {
		return nil, profileOutput{}, err
	}
	return nil, profileOutput{Profile: p}, nil
}

func (s *Server) handleUpdateProfile(ctx context.Context, req *mcp.CallToolRequest, input updateProfileInput) (*mcp.CallToolResult, profileOutput, error) {
	p, err := s.repo.GetProfile()
	if err != nil {
		return nil, profileOutput{}, err
	}

	if input.Name != "" {
		p.Name = input.Name
	}
	if input.Age > 0 {
		p.Age = input.Age
	}
	if input.WeightKg > 0 {
		p.WeightKg = input.WeightKg
	}
	if input.HeightCm > 0 {
		p.HeightCm = input.HeightCm
	}
	if input.ClearInjuries {
		p.Injuries = nil
	} else if input.Injuries != nil {
		p.Injuries = input.Injuries
	}
	if input.ClearRedFlags {
		p.RedFlags = nil
	} else if input.RedFlags != nil {
		p.RedFlags = input.RedFlags
	}
	if input.WorkStartTime != "" {
		p.WorkStartTime = input.WorkStartTime
	}
	if input.WorkEndTime != "" {
		p.WorkEndTime = input.WorkEndTime
	}

	// Risk is derived; every change reclassifies before persisting.
	*p = risk.Reclassify(*p)

	if err := s.repo.SaveProfile(p); err != nil {
		return nil, profileOutput{}, fmt.Errorf("save profile: %w", err)
	}

	msg := fmt.Sprintf("Profile updated. Risk tier: %s", p.RiskProfile)
	if p.Locked() {
		msg += " — workouts are locked until red-flag symptoms are cleared. Please see a doctor."
	}
	return nil, profileOutput{Profile: p, Message: msg}, nil
}

func (s *Server) handleNextSession(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, nextSessionOutput, error) {
	p, err := s.repo.GetProfile()
	if err != nil {
		return nil, nextSessionOutput{}, err
	}
	history, err := listSessionValues(s.repo)
	if err != nil {
		return nil, nextSessionOutput{}, err
	}

	now := time.Now()
	next := schedule.NextSession(*p, history, now)
	return nil, nextSessionOutput{
		NextSession: next,
		Due:         schedule.Due(next, now),
		Countdown:   schedule.Countdown(next, now),
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, models.Stats, error) {
	history, err := listSessionValues(s.repo)
	if err != nil {
		return nil, models.Stats{}, err
	}
	return nil, stats.Compute(history, catalog.Achievements, time.Now()), nil
}

func (s *Server) handleGenerateCircuit(ctx context.Context, req *mcp.CallToolRequest, input generateCircuitInput) (*mcp.CallToolResult, any, error) {
	p, err := s.repo.GetProfile()
	if err != nil {
		return nil, nil, err
	}
	if p.Locked() {
		return nil, nil, fmt.Errorf("workouts are locked: red-flag symptoms present")
	}

	gen := circuit.NewDefault()
	exercises := gen.Generate(catalog.Exercises, input.Stealth)

	out := make([]circuitExercise, 0, len(exercises))
	for _, ex := range exercises {
		out = append(out, circuitExercise{
			Exercise: ex,
			Settings: scaling.ScaleExercise(*p, ex),
		})
	}
	return nil, out, nil
}

func (s *Server) handleScaleExercise(ctx context.Context, req *mcp.CallToolRequest, input scaleExerciseInput) (*mcp.CallToolResult, any, error) {
	p, err := s.repo.GetProfile()
	if err != nil {
		return nil, nil, err
	}
	ex, ok := catalog.FindExercise(input.ExerciseID)
	if !ok {
		return nil, nil, fmt.Errorf("not found: %s", input.ExerciseID)
	}
	return nil, scaling.ScaleExercise(*p, ex), nil
}

func (s *Server) handleLogSession(ctx context.Context, req *mcp.CallToolRequest, input logSessionInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.repo.GetProfile()
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if p.Locked() {
		return nil, simpleOutput{}, fmt.Errorf("workouts are locked: red-flag symptoms present")
	}

	exercises := input.ExercisesCompleted
	if exercises <= 0 {
		exercises = circuit.Size
	}
	mode := models.ModeActive
	if input.Stealth {
		mode = models.ModeStealth
	}

	calories := models.EstimateCalories(p.WeightKg, input.DurationSeconds)
	session := models.NewSession(input.DurationSeconds, exercises, calories, mode)

	if input.Date != "" {
		if t, err := time.Parse(time.RFC3339, input.Date); err == nil {
			session.WithDate(t)
		}
	}

	if err := s.repo.AppendSession(session); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("append session: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s session: %ds, %d kcal (ID: %s)",
			mode, session.DurationSeconds, session.CaloriesBurned, session.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	sessions, err := s.repo.ListSessions()
	if err != nil {
		return nil, nil, fmt.Errorf("list sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, map[string]any{"message": "No sessions logged."}, nil
	}
	return nil, sessions, nil
}

// listSessionValues loads the session log as values for the engine.
func listSessionValues(repo storage.Repository) ([]models.Session, error) {
	ptrs, err := repo.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	history := make([]models.Session, 0, len(ptrs))
	for _, s := range ptrs {
		history = append(history, *s)
	}
	return history, nil
}
