// ABOUTME: Bundles rolling, weekly, and streak statistics into one snapshot.
// ABOUTME: Also provides the streak caption and home-screen progress bands.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/harperreed/drinks/internal/models"
)

// Metrics is everything the stats screen shows.
type Metrics struct {
	Rolling          Rolling
	Week             Week
	WeekOffset       int
	ConsecutiveWeeks int
	StreakText       string
	WeeklyLimit      float64
}

// Compute derives Metrics for the week at weekOffset from a single pass over drinks.
func Compute(drinks []models.Drink, now time.Time, weekOffset int, opts Options) Metrics {
	totals := DayTotals(drinks, opts.loc())
	rolling := rollingFromTotals(totals, now, opts)
	return Metrics{
		Rolling:          rolling,
		Week:             weekFromTotals(totals, now, weekOffset, opts),
		WeekOffset:       weekOffset,
		ConsecutiveWeeks: consecutiveFromTotals(totals, now, opts),
		StreakText:       StreakText(rolling, now),
		WeeklyLimit:      opts.WeeklyLimit,
	}
}

// StreakText captions the current streak, or how long ago the last drink was.
func StreakText(r Rolling, now time.Time) string {
	if r.CurrentStreak > 0 {
		return fmt.Sprintf("%d day sober streak", r.CurrentStreak)
	}
	if !r.LastDrinkDay.IsZero() {
		return "Last drink " + humanize.RelTime(r.LastDrinkDay, now, "ago", "from now")
	}
	return "No drinks recorded"
}

// Level is the color band for weekly progress.
type Level int

const (
	LevelPlenty Level = iota
	LevelHalfway
	LevelClose
	LevelOver
)

func (l Level) String() string {
	switch l {
	case LevelHalfway:
		return "halfway"
	case LevelClose:
		return "close"
	case LevelOver:
		return "over"
	default:
		return "plenty"
	}
}

// ProgressLevel maps a consumed/limit ratio to its band.
func ProgressLevel(ratio float64) Level {
	switch {
	case math.IsNaN(ratio):
		return LevelPlenty
	case ratio >= 1:
		return LevelOver
	case ratio >= 0.75:
		return LevelClose
	case ratio >= 0.5:
		return LevelHalfway
	default:
		return LevelPlenty
	}
}
