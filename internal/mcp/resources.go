// ABOUTME: MCP resource implementations for the drink tracker.
// ABOUTME: Provides drinks://today, drinks://week, and drinks://profile resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/drinks/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	uriToday   = "drinks://today"
	uriWeek    = "drinks://week"
	uriProfile = "drinks://profile"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriToday,
		Name:        "Today's Drinks",
		Description: "Drinks logged today with the day and week totals",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriWeek,
		Name:        "This Week",
		Description: "Current week progress against the weekly limit plus 30-day streaks",
		MIMEType:    "application/json",
	}, s.handleWeekResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriProfile,
		Name:        "Profile",
		Description: "Weekly limit setting",
		MIMEType:    "application/json",
	}, s.handleProfileResource)
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

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	_, out, err := s.handleListDrinks(ctx, nil, listDrinksInput{})
	if err != nil {
		return nil, err
	}
	return jsonResource(uriToday, out)
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	m, err := s.tracker.Metrics(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return jsonResource(uriWeek, toStatsOutput(m))
}

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.tracker.Profile()
	if err != nil {
		return nil, err
	}
	return jsonResource(uriProfile, map[string]interface{}{
		"weekly_limit":           p.WeeklyLimit,
		"effective_weekly_limit": p.EffectiveWeeklyLimit(),
		"daily_limit":            p.EffectiveWeeklyLimit() / 7,
		"default_weekly_limit":   models.DefaultWeeklyLimit,
		"generated_at":           time.Now().Format(time.RFC3339),
	})
}
