// ABOUTME: CLI commands for listing drinks and showing a day summary.
// ABOUTME: list prints rows with short ids; today prints drinks plus weekly progress.
package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/drinks/internal/models"
	"github.com/harperreed/drinks/internal/stats"
	"github.com/harperreed/drinks/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	listDate  string
	listAll   bool
	listLimit int
	todayDate string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List drinks",
	Long: `List logged drinks, newest first.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  TYPE  POUR  STANDARD DRINKS

  The ID is an 8-character prefix you can use with edit and delete.

EXAMPLES:

  drinks list                    # Last 20 drinks
  drinks list --date yesterday   # One day
  drinks list --all              # Everything
  drinks list -n 50              # Last 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var drinks []models.Drink
		if listDate != "" {
			day, err := tracker.ParseDay(listDate, trk.Now(), trk.Location())
			if err != nil {
				return err
			}
			summary, err := trk.Day(ctx, day)
			if err != nil {
				return fmt.Errorf("failed to list drinks: %w", err)
			}
			drinks = summary.Drinks
		} else {
			all, err := store.ListDrinks(ctx)
			if err != nil {
				return fmt.Errorf("failed to list drinks: %w", err)
			}
			sort.SliceStable(all, func(i, j int) bool {
				return all[i].Timestamp.After(all[j].Timestamp)
			})
			drinks = all
		}

		if !listAll && listLimit > 0 && len(drinks) > listLimit {
			drinks = drinks[:listLimit]
		}

		if len(drinks) == 0 {
			fmt.Println("No drinks found.")
			return nil
		}
		printDrinks(drinks)
		return nil
	},
}

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show a day's drinks and weekly progress",
	Long: `Show the drinks for one day (default today) with the day's total and
progress against the weekly limit.

EXAMPLES:

  drinks today
  drinks today --date yesterday
  drinks today --date 2024-06-11`,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := tracker.ParseDay(todayDate, trk.Now(), trk.Location())
		if err != nil {
			return err
		}
		summary, err := trk.Day(cmd.Context(), day)
		if err != nil {
			return fmt.Errorf("failed to load day: %w", err)
		}

		color.New(color.Bold).Println(summary.Date.Format("Monday, January 2"))
		if len(summary.Drinks) == 0 {
			fmt.Println("  No drinks logged.")
		} else {
			printDrinks(summary.Drinks)
		}
		fmt.Printf("\n  Day total: %.1f standard drinks\n", summary.DayTotal)
		printProgress(summary)
		return nil
	},
}

func printDrinks(drinks []models.Drink) {
	faint := color.New(color.Faint)
	loc := trk.Location()
	for _, d := range drinks {
		fmt.Printf("%s %s %s %s %.2f std\n",
			faint.Sprint(d.ShortID()),
			faint.Sprint(d.Timestamp.In(loc).Format("2006-01-02 15:04")),
			padRight(models.DrinkTypeName(d.Type), 9),
			padRight(formatPour(d), 16),
			d.StandardDrinks())
	}
}

func printProgress(s tracker.DaySummary) {
	c := levelColor(s.Level)
	c.Printf("  Week: %.1f / %g %s\n", s.WeekTotal, s.WeeklyLimit, bar(s.Ratio, 20))
	if s.Remaining >= 0 {
		fmt.Printf("  %.1f remaining this week\n", s.Remaining)
	} else {
		color.Red("  %.1f over this week's limit", -s.Remaining)
	}
}

func levelColor(l stats.Level) *color.Color {
	switch l {
	case stats.LevelOver:
		return color.New(color.FgRed)
	case stats.LevelClose:
		return color.New(color.FgYellow)
	case stats.LevelHalfway:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgGreen)
	}
}

func bar(ratio float64, width int) string {
	filled := int(math.Min(math.Max(ratio, 0), 1) * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", "", "only drinks on this day (YYYY-MM-DD, today, yesterday)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "show every drink")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	todayCmd.Flags().StringVar(&todayDate, "date", "", "day to show (YYYY-MM-DD, today, yesterday)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(todayCmd)
}
