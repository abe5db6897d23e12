// ABOUTME: Weekly totals, week-over-week change, and the under-limit week streak.
// ABOUTME: Weeks begin on Options.WeekStart in Options.Location.
package stats

import (
	"strconv"
	"time"

	"github.com/harperreed/drinks/internal/models"
)

// MaxConsecutiveWeeks caps the under-limit week walk.
const MaxConsecutiveWeeks = 52

// Week summarizes one calendar week.
type Week struct {
	Start              time.Time
	End                time.Time
	Days               [7]DayTotal
	Total              float64
	PreviousTotal      float64
	ChangeFromLastWeek float64
	Progress           float64
	AveragePerDay      float64
	Remaining          float64
}

// ComputeWeek summarizes the week containing now shifted by offset weeks.
func ComputeWeek(drinks []models.Drink, now time.Time, offset int, opts Options) Week {
	return weekFromTotals(DayTotals(drinks, opts.loc()), now, offset, opts)
}

func weekFromTotals(totals map[string]float64, now time.Time, offset int, opts Options) Week {
	start := models.StartOfWeek(now, opts.WeekStart, opts.loc()).AddDate(0, 0, 7*offset)
	prev := start.AddDate(0, 0, -7)

	w := Week{Start: start, End: start.AddDate(0, 0, 7).Add(-time.Nanosecond)}
	for i := 0; i < 7; i++ {
		w.Days[i] = dayTotal(totals, start.AddDate(0, 0, i))
		w.Total += w.Days[i].Total
		w.PreviousTotal += totals[prev.AddDate(0, 0, i).Format(models.DayKeyFormat)]
	}

	if w.PreviousTotal != 0 {
		w.ChangeFromLastWeek = (w.Total - w.PreviousTotal) / w.PreviousTotal * 100
	}
	w.Progress = Progress(w.Total, opts.WeeklyLimit)
	w.AveragePerDay = w.Total / 7
	w.Remaining = opts.WeeklyLimit - w.Total
	return w
}

// Progress is total as a percentage of limit. It is not clamped. A limit at
// or below zero reports 0 for an empty week and 100 otherwise.
func Progress(total, limit float64) float64 {
	if limit <= 0 {
		if total == 0 {
			return 0
		}
		return 100
	}
	return total / limit * 100
}

// ConsecutiveWeeksUnderLimit counts weeks, walking back from the current
// one, whose total stays within the weekly limit. Days after now are ignored.
func ConsecutiveWeeksUnderLimit(drinks []models.Drink, now time.Time, opts Options) int {
	return consecutiveFromTotals(DayTotals(drinks, opts.loc()), now, opts)
}

func consecutiveFromTotals(totals map[string]float64, now time.Time, opts Options) int {
	start := models.StartOfWeek(now, opts.WeekStart, opts.loc())
	count := 0
	for count < MaxConsecutiveWeeks {
		var total float64
		for i := 0; i < 7; i++ {
			day := start.AddDate(0, 0, i)
			if day.After(now) {
				continue
			}
			total += totals[day.Format(models.DayKeyFormat)]
		}
		if !withinWeeklyLimit(total, opts.WeeklyLimit) {
			break
		}
		count++
		start = start.AddDate(0, 0, -7)
	}
	return count
}

func withinWeeklyLimit(total, limit float64) bool {
	if limit <= 0 {
		return total == 0
	}
	return total <= limit
}

// FormatWeeks renders a consecutive-week count, showing the cap as "52+".
func FormatWeeks(n int) string {
	if n >= MaxConsecutiveWeeks {
		return strconv.Itoa(MaxConsecutiveWeeks) + "+"
	}
	return strconv.Itoa(n)
}
