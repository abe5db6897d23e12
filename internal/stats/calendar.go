// ABOUTME: Month heat-map data: per-day totals classified against the daily limit.
// ABOUTME: Future days are omitted; colors follow sober/within/over tiers.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/harperreed/drinks/internal/models"
)

// Tier is the coarse classification of a day.
type Tier int

const (
	TierSober Tier = iota
	TierWithinLimit
	TierOverLimit
)

func (t Tier) String() string {
	switch t {
	case TierSober:
		return "sober"
	case TierWithinLimit:
		return "within_limit"
	case TierOverLimit:
		return "over_limit"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Hue returns the HSL hue used to paint the tier.
func (t Tier) Hue() int {
	switch t {
	case TierWithinLimit:
		return 45
	case TierOverLimit:
		return 348
	default:
		return 142
	}
}

// Classification is a tier plus a 0..1 color intensity.
type Classification struct {
	Tier      Tier
	Intensity float64
}

// HSLA renders the classification as a CSS hsla() color.
func (c Classification) HSLA() string {
	switch c.Tier {
	case TierWithinLimit:
		return fmt.Sprintf("hsla(45, 100%%, 51%%, %g)", c.Intensity)
	case TierOverLimit:
		return fmt.Sprintf("hsla(348, 100%%, 55%%, %g)", c.Intensity)
	default:
		return fmt.Sprintf("hsla(142, 71%%, 45%%, %g)", c.Intensity)
	}
}

const (
	soberIntensity  = 0.2
	intensityPerStd = 0.15
	maxWithinLimit  = 0.7
	maxOverLimit    = 0.8
)

// Classify grades a daily total against weeklyLimit/7. With a weekly limit
// at or below zero every non-zero day is over the limit.
func Classify(total, weeklyLimit float64) Classification {
	if total == 0 {
		return Classification{Tier: TierSober, Intensity: soberIntensity}
	}
	if weeklyLimit > 0 && total <= weeklyLimit/7 {
		return Classification{Tier: TierWithinLimit, Intensity: math.Min(maxWithinLimit, total*intensityPerStd)}
	}
	return Classification{Tier: TierOverLimit, Intensity: math.Min(maxOverLimit, total*intensityPerStd)}
}

// CalendarDay is one cell of the month view.
type CalendarDay struct {
	DayTotal
	Classification
	Drinks int
}

// Calendar returns every day of month up to and including today.
func Calendar(drinks []models.Drink, now, month time.Time, opts Options) []CalendarDay {
	loc := opts.loc()
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, d := range drinks {
		key := models.DayKey(d.Timestamp, loc)
		totals[key] += d.StandardDrinks()
		counts[key]++
	}

	today := models.DateAtLocation(now, loc)
	m := month.In(loc)
	first := time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, loc)

	days := make([]CalendarDay, 0, 31)
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		if day.After(today) {
			break
		}
		dt := dayTotal(totals, day)
		days = append(days, CalendarDay{
			DayTotal:       dt,
			Classification: Classify(dt.Total, opts.WeeklyLimit),
			Drinks:         counts[dt.Key],
		})
	}
	return days
}
