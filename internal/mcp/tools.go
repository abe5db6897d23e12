// ABOUTME: MCP tool implementations for drink logging and statistics.
// ABOUTME: Provides drink CRUD, weekly limit, stats, and calendar tools.
package mcp

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/harperreed/drinks/internal/models"
	"github.com/harperreed/drinks/internal/stats"
	"github.com/harperreed/drinks/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_drink",
		Description: "Log a drink (beer, wine, cocktail, shot, custom). Volume and ABV default to the type's standard serving.",
	}, s.handleAddDrink)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_drinks",
		Description: "List drinks for one day, newest first, with the day and week totals",
	}, s.handleListDrinks)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_drink",
		Description: "Change the volume, ABV, or time of a logged drink",
	}, s.handleUpdateDrink)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_drink",
		Description: "Delete a drink by ID or ID prefix",
	}, s.handleDeleteDrink)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Weekly progress, 30-day streaks and averages, and consecutive weeks under the limit",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_calendar",
		Description: "Daily standard-drink totals for a month, classified sober, within limit, or over limit",
	}, s.handleGetCalendar)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_weekly_limit",
		Description: "Set the weekly limit in standard drinks",
	}, s.handleSetWeeklyLimit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_drink_types",
		Description: "List drink types with their default volume, ABV, and allowed volume range",
	}, s.handleListDrinkTypes)
}

// Tool input/output types

type addDrinkInput struct {
	Type   string  `json:"type" jsonschema:"Drink type: beer, wine, cocktail, shot, or custom"`
	Volume float64 `json:"volume,omitempty" jsonschema:"Volume in US fluid ounces; defaults to the type's standard serving"`
	ABV    float64 `json:"abv,omitempty" jsonschema:"Alcohol by volume as a fraction (0.05 for 5%); defaults to the type's ABV"`
	At     string  `json:"at,omitempty" jsonschema:"When: HH:MM today, YYYY-MM-DD, YYYY-MM-DD HH:MM, or RFC 3339; defaults to now"`
}

type drinkOutput struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Volume         float64 `json:"volume"`
	ABV            float64 `json:"abv"`
	Timestamp      string  `json:"timestamp"`
	StandardDrinks float64 `json:"standard_drinks"`
	Message        string  `json:"message,omitempty"`
}

type listDrinksInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, today, or yesterday; defaults to today"`
}

type listDrinksOutput struct {
	Date        string        `json:"date"`
	Drinks      []drinkOutput `json:"drinks"`
	DayTotal    float64       `json:"day_total"`
	WeekTotal   float64       `json:"week_total"`
	WeeklyLimit float64       `json:"weekly_limit"`
	Remaining   float64       `json:"remaining"`
	Level       string        `json:"level"`
}

type updateDrinkInput struct {
	ID     string  `json:"id" jsonschema:"Drink ID or prefix"`
	Volume float64 `json:"volume,omitempty" jsonschema:"New volume in ounces; unchanged when omitted"`
	ABV    float64 `json:"abv,omitempty" jsonschema:"New ABV fraction; unchanged when omitted"`
	At     string  `json:"at,omitempty" jsonschema:"New time: HH:MM keeps the drink's day, YYYY-MM-DD keeps its clock time, or a full timestamp; unchanged when omitted"`
}

type deleteDrinkInput struct {
	ID string `json:"id" jsonschema:"Drink ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type getStatsInput struct {
	WeekOffset int `json:"week_offset,omitempty" jsonschema:"Week relative to the current one: 0 this week, -1 last week"`
}

type dayOutput struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type statsOutput struct {
	WeekStart          string      `json:"week_start"`
	WeekEnd            string      `json:"week_end"`
	WeekTotal          float64     `json:"week_total"`
	WeeklyLimit        float64     `json:"weekly_limit"`
	Progress           float64     `json:"progress_percent"`
	Remaining          float64     `json:"remaining"`
	AveragePerDay      float64     `json:"average_per_day"`
	ChangeFromLastWeek float64     `json:"change_from_last_week_percent"`
	Days               []dayOutput `json:"days"`
	SoberDays          int         `json:"sober_days_30d"`
	HeavyDays          int         `json:"heavy_days_30d"`
	CurrentStreak      int         `json:"current_sober_streak"`
	LongestStreak      int         `json:"longest_sober_streak_30d"`
	Average30d         float64     `json:"average_per_day_30d"`
	ConsecutiveWeeks   string      `json:"consecutive_weeks_under_limit"`
	StreakText         string      `json:"streak_text"`
}

type getCalendarInput struct {
	Month string `json:"month,omitempty" jsonschema:"Month as YYYY-MM; defaults to the current month"`
}

type calendarDayOutput struct {
	Date      string  `json:"date"`
	Total     float64 `json:"total"`
	Drinks    int     `json:"drinks"`
	Tier      string  `json:"tier"`
	Intensity float64 `json:"intensity"`
	Color     string  `json:"color"`
}

type calendarOutput struct {
	Month string              `json:"month"`
	Days  []calendarDayOutput `json:"days"`
}

type setWeeklyLimitInput struct {
	Limit string `json:"limit" jsonschema:"Whole number of standard drinks per week, at least 1"`
}

type weeklyLimitOutput struct {
	WeeklyLimit int    `json:"weekly_limit"`
	Message     string `json:"message"`
}

type listDrinkTypesInput struct{}

type drinkTypesOutput struct {
	Types []models.DrinkType `json:"types"`
}

func toDrinkOutput(d models.Drink, t *tracker.Tracker) drinkOutput {
	return drinkOutput{
		ID:             d.ID,
		Type:           d.Type,
		Volume:         d.Volume,
		ABV:            d.ABV,
		Timestamp:      d.Timestamp.In(t.Location()).Format("2006-01-02T15:04:05Z07:00"),
		StandardDrinks: round2(d.StandardDrinks()),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Tool handlers

func (s *Server) handleAddDrink(ctx context.Context, req *mcp.CallToolRequest, input addDrinkInput) (*mcp.CallToolResult, drinkOutput, error) {
	dt, ok := models.LookupDrinkType(input.Type)
	if !ok {
		return nil, drinkOutput{}, fmt.Errorf("unknown drink type: %s", input.Type)
	}
	volume, abv := input.Volume, input.ABV
	if volume == 0 {
		volume = dt.DefaultVolume
	}
	if abv == 0 {
		abv = dt.ABV
	}

	day, clock, err := tracker.ParseWhen(input.At, s.tracker.Now(), s.tracker.Location())
	if err != nil {
		return nil, drinkOutput{}, err
	}

	d, err := s.tracker.AddDrink(ctx, dt.ID, volume, abv, day, clock)
	if err != nil {
		return nil, drinkOutput{}, fmt.Errorf("failed to add drink: %w", err)
	}
	s.logger.Info("add_drink", "id", d.ShortID(), "type", d.Type)

	out := toDrinkOutput(d, s.tracker)
	out.Message = fmt.Sprintf("Added %s: %.2f standard drinks (ID: %s)", dt.Name, d.StandardDrinks(), d.ShortID())
	return nil, out, nil
}

func (s *Server) handleListDrinks(ctx context.Context, req *mcp.CallToolRequest, input listDrinksInput) (*mcp.CallToolResult, listDrinksOutput, error) {
	day, err := tracker.ParseDay(input.Date, s.tracker.Now(), s.tracker.Location())
	if err != nil {
		return nil, listDrinksOutput{}, err
	}

	summary, err := s.tracker.Day(ctx, day)
	if err != nil {
		return nil, listDrinksOutput{}, fmt.Errorf("failed to list drinks: %w", err)
	}
	s.logger.Info("list_drinks", "date", day.Format(models.DayKeyFormat), "count", len(summary.Drinks))

	out := listDrinksOutput{
		Date:        summary.Date.Format(models.DayKeyFormat),
		Drinks:      make([]drinkOutput, 0, len(summary.Drinks)),
		DayTotal:    round2(summary.DayTotal),
		WeekTotal:   round2(summary.WeekTotal),
		WeeklyLimit: summary.WeeklyLimit,
		Remaining:   round2(summary.Remaining),
		Level:       summary.Level.String(),
	}
	for _, d := range summary.Drinks {
		out.Drinks = append(out.Drinks, toDrinkOutput(d, s.tracker))
	}
	return nil, out, nil
}

func (s *Server) handleUpdateDrink(ctx context.Context, req *mcp.CallToolRequest, input updateDrinkInput) (*mcp.CallToolResult, drinkOutput, error) {
	existing, err := s.tracker.Store().GetDrink(ctx, input.ID)
	if err != nil {
		return nil, drinkOutput{}, fmt.Errorf("failed to find drink: %w", err)
	}

	volume, abv := existing.Volume, existing.ABV
	if input.Volume != 0 {
		volume = input.Volume
	}
	if input.ABV != 0 {
		abv = input.ABV
	}
	updated, _, err := s.tracker.EditDrinkAt(ctx, existing.ID, volume, abv, input.At)
	if err != nil {
		return nil, drinkOutput{}, fmt.Errorf("failed to update drink: %w", err)
	}
	s.logger.Info("update_drink", "id", updated.ShortID())

	out := toDrinkOutput(updated, s.tracker)
	out.Message = fmt.Sprintf("Updated drink %s", updated.ShortID())
	return nil, out, nil
}

func (s *Server) handleDeleteDrink(ctx context.Context, req *mcp.CallToolRequest, input deleteDrinkInput) (*mcp.CallToolResult, simpleOutput, error) {
	d, err := s.tracker.Store().GetDrink(ctx, input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to find drink: %w", err)
	}
	if err := s.tracker.DeleteDrink(ctx, d.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete drink: %w", err)
	}
	s.logger.Info("delete_drink", "id", d.ShortID())

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted drink: %s", d.ShortID()),
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input getStatsInput) (*mcp.CallToolResult, statsOutput, error) {
	m, err := s.tracker.Metrics(ctx, input.WeekOffset)
	if err != nil {
		return nil, statsOutput{}, fmt.Errorf("failed to compute stats: %w", err)
	}
	s.logger.Info("get_stats", "week_offset", input.WeekOffset)
	return nil, toStatsOutput(m), nil
}

func toStatsOutput(m stats.Metrics) statsOutput {
	out := statsOutput{
		WeekStart:          m.Week.Start.Format(models.DayKeyFormat),
		WeekEnd:            m.Week.End.Format(models.DayKeyFormat),
		WeekTotal:          round2(m.Week.Total),
		WeeklyLimit:        m.WeeklyLimit,
		Progress:           round2(m.Week.Progress),
		Remaining:          round2(m.Week.Remaining),
		AveragePerDay:      round2(m.Week.AveragePerDay),
		ChangeFromLastWeek: round2(m.Week.ChangeFromLastWeek),
		Days:               make([]dayOutput, 0, len(m.Week.Days)),
		SoberDays:          m.Rolling.SoberDays,
		HeavyDays:          m.Rolling.HeavyDays,
		CurrentStreak:      m.Rolling.CurrentStreak,
		LongestStreak:      m.Rolling.LongestStreak,
		Average30d:         m.Rolling.Average,
		ConsecutiveWeeks:   stats.FormatWeeks(m.ConsecutiveWeeks),
		StreakText:         m.StreakText,
	}
	for _, d := range m.Week.Days {
		out.Days = append(out.Days, dayOutput{Date: d.Key, Total: round2(d.Total)})
	}
	return out
}

func (s *Server) handleGetCalendar(ctx context.Context, req *mcp.CallToolRequest, input getCalendarInput) (*mcp.CallToolResult, calendarOutput, error) {
	month, err := tracker.ParseMonth(input.Month, s.tracker.Now(), s.tracker.Location())
	if err != nil {
		return nil, calendarOutput{}, err
	}
	days, err := s.tracker.Calendar(ctx, month)
	if err != nil {
		return nil, calendarOutput{}, fmt.Errorf("failed to build calendar: %w", err)
	}
	s.logger.Info("get_calendar", "month", month.Format("2006-01"))

	out := calendarOutput{
		Month: month.Format("2006-01"),
		Days:  make([]calendarDayOutput, 0, len(days)),
	}
	for _, d := range days {
		out.Days = append(out.Days, calendarDayOutput{
			Date:      d.Key,
			Total:     round2(d.Total),
			Drinks:    d.Drinks,
			Tier:      d.Tier.String(),
			Intensity: d.Intensity,
			Color:     d.HSLA(),
		})
	}
	return nil, out, nil
}

func (s *Server) handleSetWeeklyLimit(ctx context.Context, req *mcp.CallToolRequest, input setWeeklyLimitInput) (*mcp.CallToolResult, weeklyLimitOutput, error) {
	limit, err := s.tracker.SetWeeklyLimit(ctx, input.Limit)
	if err != nil {
		return nil, weeklyLimitOutput{}, err
	}
	s.logger.Info("set_weekly_limit", "limit", limit)

	return nil, weeklyLimitOutput{
		WeeklyLimit: limit,
		Message:     fmt.Sprintf("Weekly limit set to %d standard drinks", limit),
	}, nil
}

func (s *Server) handleListDrinkTypes(ctx context.Context, req *mcp.CallToolRequest, input listDrinkTypesInput) (*mcp.CallToolResult, drinkTypesOutput, error) {
	types := make([]models.DrinkType, len(models.AllDrinkTypes))
	copy(types, models.AllDrinkTypes)
	sort.SliceStable(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return nil, drinkTypesOutput{Types: types}, nil
}
