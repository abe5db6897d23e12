// ABOUTME: CLI commands for statistics: 30-day streaks, weekly totals, and the month calendar.
// ABOUTME: Output is colored text; the dashboard shows the same numbers interactively.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/drinks/internal/models"
	"github.com/harperreed/drinks/internal/stats"
	"github.com/harperreed/drinks/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	statsWeek     int
	calendarMonth string
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"s"},
	Short:   "Show streaks and weekly totals",
	Long: `Show 30-day statistics and a per-day breakdown of one week.

--week selects a past week: 0 is this week, -1 last week, and so on.

EXAMPLES:

  drinks stats
  drinks stats --week -1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if statsWeek > 0 {
			return fmt.Errorf("--week must be 0 or negative, got %d", statsWeek)
		}
		m, err := trk.Metrics(cmd.Context(), statsWeek)
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}
		printMetrics(m)
		return nil
	},
}

func printMetrics(m stats.Metrics) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	r := m.Rolling

	bold.Println("Last 30 days")
	fmt.Printf("  %s\n", m.StreakText)
	fmt.Printf("  Longest sober streak: %d days\n", r.LongestStreak)
	fmt.Printf("  Sober days:           %d\n", r.SoberDays)
	fmt.Printf("  Heavy days (>%g):      %d\n", stats.HeavyDayThreshold, r.HeavyDays)
	fmt.Printf("  Total:                %.1f standard drinks\n", r.Total)
	fmt.Printf("  Daily average:        %.1f\n", r.Average)
	fmt.Printf("  Weeks under limit:    %s\n", stats.FormatWeeks(m.ConsecutiveWeeks))
	fmt.Println()

	w := m.Week
	bold.Printf("Week of %s\n", w.Start.Format("Jan 2, 2006"))
	dailyLimit := m.WeeklyLimit / 7
	for _, d := range w.Days {
		line := fmt.Sprintf("  %s %5.1f %s", d.Date.Format("Mon"), d.Total, strings.Repeat("▇", int(d.Total+0.5)))
		switch {
		case d.Total == 0:
			faint.Println(line)
		case d.Total > dailyLimit:
			color.New(color.FgRed).Println(line)
		default:
			fmt.Println(line)
		}
	}
	fmt.Println()

	level := stats.ProgressLevel(w.Total / m.WeeklyLimit)
	levelColor(level).Printf("  Total: %.1f / %g (%.0f%%)\n", w.Total, m.WeeklyLimit, w.Progress)
	fmt.Printf("  Average per day: %.1f\n", w.AveragePerDay)
	if w.Remaining >= 0 {
		fmt.Printf("  Remaining: %.1f\n", w.Remaining)
	} else {
		color.Red("  Over by: %.1f", -w.Remaining)
	}
	fmt.Printf("  vs last week: %s\n", formatChange(w.ChangeFromLastWeek))
}

func formatChange(pct float64) string {
	switch {
	case pct > 0:
		return color.RedString("▲ %.0f%%", pct)
	case pct < 0:
		return color.GreenString("▼ %.0f%%", -pct)
	default:
		return "no change"
	}
}

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Show a month heat map",
	Long: `Show a month calendar colored by each day's total.

  green   sober
  yellow  within the daily share of the weekly limit
  red     over the daily share

Future days are blank.

EXAMPLES:

  drinks calendar
  drinks calendar --month 2024-05`,
	RunE: func(cmd *cobra.Command, args []string) error {
		month, err := tracker.ParseMonth(calendarMonth, trk.Now(), trk.Location())
		if err != nil {
			return err
		}
		days, err := trk.Calendar(cmd.Context(), month)
		if err != nil {
			return fmt.Errorf("failed to build calendar: %w", err)
		}
		fmt.Print(renderCalendar(month, days))
		return nil
	},
}

func renderCalendar(month time.Time, days []stats.CalendarDay) string {
	byKey := make(map[string]stats.CalendarDay, len(days))
	for _, d := range days {
		byKey[d.Key] = d
	}

	var b strings.Builder
	b.WriteString(color.New(color.Bold).Sprint(month.Format("January 2006")) + "\n")
	b.WriteString("Su Mo Tu We Th Fr Sa\n")
	b.WriteString(strings.Repeat("   ", int(month.Weekday())))
	for day := month; day.Month() == month.Month(); day = day.AddDate(0, 0, 1) {
		cell := fmt.Sprintf("%2d", day.Day())
		if d, ok := byKey[day.Format(models.DayKeyFormat)]; ok {
			cell = tierColor(d.Tier).Sprint(cell)
		} else {
			cell = color.New(color.Faint).Sprint(cell)
		}
		b.WriteString(cell)
		if day.Weekday() == time.Saturday {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func tierColor(t stats.Tier) *color.Color {
	switch t {
	case stats.TierOverLimit:
		return color.New(color.FgRed)
	case stats.TierWithinLimit:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

var limitCmd = &cobra.Command{
	Use:   "limit [value]",
	Short: "Show or set the weekly limit",
	Long: fmt.Sprintf(`Show the weekly limit in standard drinks, or set it when a value is given.

The default is %d. The value must be a whole number greater than 0.

EXAMPLES:

  drinks limit
  drinks limit 10`, models.DefaultWeeklyLimit),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			p, err := trk.Profile()
			if err != nil {
				return err
			}
			suffix := ""
			if p.WeeklyLimit == "" {
				suffix = color.New(color.Faint).Sprint(" (default)")
			}
			fmt.Printf("Weekly limit: %g standard drinks%s\n", trk.WeeklyLimit(), suffix)
			fmt.Printf("Daily share:  %.1f\n", trk.WeeklyLimit()/7)
			return nil
		}

		limit, err := trk.SetWeeklyLimit(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		color.Green("✓ Weekly limit set to %d", limit)
		return nil
	},
}

var typesCmd = &cobra.Command{
	Use:         "types",
	Short:       "List drink types and their defaults",
	Annotations: map[string]string{annotationStorage: "none"},
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		for _, dt := range models.AllDrinkTypes {
			fmt.Printf("%s %s %s\n",
				padRight(dt.ID, 9),
				padRight(fmt.Sprintf("%g oz @ %g%%", dt.DefaultVolume, roundTo(dt.ABV*100, 1)), 16),
				faint.Sprintf("%g-%g oz, %.2f std", dt.MinVolume, dt.MaxVolume, models.StandardDrinks(dt.DefaultVolume, dt.ABV)))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsWeek, "week", 0, "week offset (0 this week, -1 last week)")
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "month to show (YYYY-MM)")
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(limitCmd)
	rootCmd.AddCommand(typesCmd)
}
