// ABOUTME: Parses user-supplied dates, months, and clock times in the tracker zone.
// ABOUTME: Shared by the CLI flags and the MCP tool inputs.
package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/drinks/internal/models"
)

var clockFormats = []string{"15:04", "3:04pm", "3:04 pm", "3pm", "3 pm"}

var dateTimeFormats = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ParseDay parses "", "today", "yesterday", or YYYY-MM-DD into local
// midnight of that day. Empty input means today.
func ParseDay(s string, now time.Time, loc *time.Location) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return models.DateAtLocation(now, loc), nil
	case "yesterday":
		return models.DateAtLocation(now, loc).AddDate(0, 0, -1), nil
	}
	t, err := time.ParseInLocation(models.DayKeyFormat, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseMonth parses "" (this month) or YYYY-MM into the first of that month.
func ParseMonth(s string, now time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		n := now.In(loc)
		return time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, loc), nil
	}
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: want YYYY-MM", s)
	}
	return t, nil
}

type whenKind int

const (
	whenFull whenKind = iota
	whenClock
	whenDay
)

// parseWhen classifies s as a full timestamp, a bare clock time, or a day.
// Day words are resolved against now.
func parseWhen(s string, now time.Time, loc *time.Location) (time.Time, whenKind, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), whenFull, nil
	}
	for _, f := range dateTimeFormats {
		if t, err := time.ParseInLocation(f, s, loc); err == nil {
			return t, whenFull, nil
		}
	}
	lower := strings.ToLower(s)
	for _, f := range clockFormats {
		if t, err := time.ParseInLocation(f, lower, loc); err == nil {
			return t, whenClock, nil
		}
	}
	if d, err := ParseDay(s, now, loc); err == nil {
		return d, whenDay, nil
	}
	return time.Time{}, 0, fmt.Errorf("unrecognized time format: %q", s)
}

// ParseWhen resolves a timestamp argument into the (day, timeOfDay) pair
// AddDrink expects. It accepts a clock time (today), a date (at the current
// clock time), "YYYY-MM-DD HH:MM", or RFC 3339. Empty input means now.
func ParseWhen(s string, now time.Time, loc *time.Location) (day, clock time.Time, err error) {
	s = strings.TrimSpace(s)
	now = now.In(loc)
	if s == "" {
		return now, now, nil
	}

	t, kind, err := parseWhen(s, now, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	switch kind {
	case whenClock:
		return now, t, nil
	case whenDay:
		return t, now, nil
	default:
		return t, t, nil
	}
}

// ResolveEditTime applies an edit's time argument to an existing timestamp.
// Empty input keeps ts exactly. A bare clock time keeps the calendar day of
// ts; a bare day keeps its clock time.
func ResolveEditTime(s string, ts, now time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ts, nil
	}

	t, kind, err := parseWhen(s, now.In(loc), loc)
	if err != nil {
		return time.Time{}, err
	}
	switch kind {
	case whenClock:
		return At(ts, t, loc), nil
	case whenDay:
		return At(t, ts, loc), nil
	default:
		return t, nil
	}
}
