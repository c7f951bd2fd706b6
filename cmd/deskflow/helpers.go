// ABOUTME: Shared helpers for deskflow CLI commands.
// ABOUTME: Session log loading, time parsing, and string formatting.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/deskflow/internal/models"
)

// listSessionValues loads the session log as values for the engine
// packages.
func listSessionValues() ([]models.Session, error) {
	ptrs, err := repo.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	history := make([]models.Session, 0, len(ptrs))
	for _, s := range ptrs {
		history = append(history, *s)
	}
	return history, nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
