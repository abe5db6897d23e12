// ABOUTME: Pure drinking statistics over a loaded drink collection.
// ABOUTME: Buckets drinks by local calendar day; no storage access happens here.
package stats

import (
	"math"
	"time"

	"github.com/harperreed/drinks/internal/models"
)

const (
	// RollingWindowDays is the length of the trailing window for Rolling.
	RollingWindowDays = 30
	// HeavyDayThreshold is the daily total above which a day counts as heavy.
	HeavyDayThreshold = 4.0
)

// Options carries the user settings every calculation depends on.
type Options struct {
	WeeklyLimit float64
	WeekStart   time.Weekday
	Location    *time.Location
}

func (o Options) loc() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// DailyLimit is the weekly limit spread over seven days.
func (o Options) DailyLimit() float64 {
	return o.WeeklyLimit / 7
}

// DayTotal is the standard-drink total for one local calendar day.
type DayTotal struct {
	Date  time.Time
	Key   string
	Total float64
}

// DayTotals sums standard drinks per local day, keyed YYYY-MM-DD.
func DayTotals(drinks []models.Drink, loc *time.Location) map[string]float64 {
	totals := make(map[string]float64)
	for _, d := range drinks {
		totals[models.DayKey(d.Timestamp, loc)] += d.StandardDrinks()
	}
	return totals
}

func dayTotal(totals map[string]float64, day time.Time) DayTotal {
	key := day.Format(models.DayKeyFormat)
	return DayTotal{Date: day, Key: key, Total: totals[key]}
}

// Rolling summarizes the trailing 30 days ending today.
type Rolling struct {
	Days          []DayTotal
	SoberDays     int
	HeavyDays     int
	CurrentStreak int
	LongestStreak int
	Total         float64
	Average       float64
	LastDrinkDay  time.Time
}

// ComputeRolling builds the trailing-window summary.
func ComputeRolling(drinks []models.Drink, now time.Time, opts Options) Rolling {
	return rollingFromTotals(DayTotals(drinks, opts.loc()), now, opts)
}

func rollingFromTotals(totals map[string]float64, now time.Time, opts Options) Rolling {
	today := models.DateAtLocation(now, opts.loc())
	r := Rolling{Days: make([]DayTotal, RollingWindowDays)}

	streakOpen := true
	run := 0
	for i := 0; i < RollingWindowDays; i++ {
		day := dayTotal(totals, today.AddDate(0, 0, -i))
		r.Days[RollingWindowDays-1-i] = day
		r.Total += day.Total

		if day.Total == 0 {
			r.SoberDays++
			run++
			if run > r.LongestStreak {
				r.LongestStreak = run
			}
			if streakOpen {
				r.CurrentStreak++
			}
		} else {
			streakOpen = false
			run = 0
			if r.LastDrinkDay.IsZero() {
				r.LastDrinkDay = day.Date
			}
		}
		if day.Total > HeavyDayThreshold {
			r.HeavyDays++
		}
	}

	r.Average = math.Round(r.Total/RollingWindowDays*10) / 10
	return r
}
