// ABOUTME: MCP resource implementations for the deskflow engine.
// ABOUTME: Provides deskflow://catalog, deskflow://today, and deskflow://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/deskflow/internal/catalog"
	"github.com/harperreed/deskflow/internal/models"
	"github.com/harperreed/deskflow/internal/schedule"
	"github.com/harperreed/deskflow/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// deskflow://catalog - the full exercise catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "deskflow://catalog",
		Name:        "Exercise Catalog",
		Description: "All desk exercises with categories, contraindications, and base parameters",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	// deskflow://today - sessions logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "deskflow://today",
		Name:        "Today's Sessions",
		Description: "All workout sessions logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// deskflow://summary - profile, stats, and next due time
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "deskflow://summary",
		Name:        "Deskflow Summary",
		Description: "Profile, derived stats, and the next due session",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("deskflow://catalog", catalog.Exercises)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sessions, err := s.repo.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var today []*models.Session
	for _, sess := range sessions {
		if !sess.Date.Before(todayStart) {
			today = append(today, sess)
		}
	}

	return jsonResource("deskflow://today", today)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.repo.GetProfile()
	if err != nil {
		return nil, err
	}
	history, err := listSessionValues(s.repo)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	next := schedule.NextSession(*p, history, now)

	result := map[string]any{
		"profile":      p,
		"stats":        stats.Compute(history, catalog.Achievements, now),
		"next_session": next,
		"due":          schedule.Due(next, now),
	}

	return jsonResource("deskflow://summary", result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
