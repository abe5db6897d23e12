// ABOUTME: Drink logging through the tracker: validated add, edit, delete.
// ABOUTME: Day summaries combine the day's drinks with the week's running total.
package tracker

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/drinks/internal/models"
	"github.com/harperreed/drinks/internal/stats"
	"github.com/harperreed/drinks/internal/storage"
)

// At combines the calendar date of day with the hour and minute of
// timeOfDay, both read in loc.
func At(day, timeOfDay time.Time, loc *time.Location) time.Time {
	y, m, d := day.In(loc).Date()
	clock := timeOfDay.In(loc)
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, loc)
}

func validate(typeID string, volume, abv float64) error {
	dt, ok := models.LookupDrinkType(typeID)
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrUnknownDrinkType, typeID)
	}
	return dt.Validate(volume, abv)
}

// AddDrink validates and stores a drink had on day at timeOfDay.
func (t *Tracker) AddDrink(ctx context.Context, typeID string, volume, abv float64, day, timeOfDay time.Time) (models.Drink, error) {
	if err := validate(typeID, volume, abv); err != nil {
		return models.Drink{}, err
	}
	d := models.NewDrink(typeID).
		WithVolume(volume).
		WithABV(abv).
		WithTimestamp(At(day, timeOfDay, t.loc))

	stored, err := t.store.AddDrink(ctx, *d)
	if err != nil {
		return models.Drink{}, fmt.Errorf("add drink: %w", err)
	}
	t.logger.Debug("drink added", "id", stored.ID, "std", stored.StandardDrinks())
	return stored, nil
}

// EditDrink replaces volume, ABV, and timestamp of an existing drink. The
// type is kept. An unknown id changes nothing and reports found=false.
func (t *Tracker) EditDrink(ctx context.Context, id string, volume, abv float64, day, timeOfDay time.Time) (models.Drink, bool, error) {
	return t.edit(ctx, id, volume, abv, func(time.Time) (time.Time, error) {
		return At(day, timeOfDay, t.loc), nil
	})
}

// EditDrinkAt replaces volume and ABV and applies when to the stored
// timestamp with ResolveEditTime. Empty when leaves the timestamp untouched.
func (t *Tracker) EditDrinkAt(ctx context.Context, id string, volume, abv float64, when string) (models.Drink, bool, error) {
	return t.edit(ctx, id, volume, abv, func(ts time.Time) (time.Time, error) {
		return ResolveEditTime(when, ts, t.Now(), t.loc)
	})
}

func (t *Tracker) edit(ctx context.Context, id string, volume, abv float64, retime func(time.Time) (time.Time, error)) (models.Drink, bool, error) {
	existing, err := t.store.GetDrink(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return models.Drink{}, false, nil
		}
		return models.Drink{}, false, err
	}
	if err := validate(existing.Type, volume, abv); err != nil {
		return models.Drink{}, true, err
	}
	ts, err := retime(existing.Timestamp)
	if err != nil {
		return models.Drink{}, true, err
	}

	existing.Volume = volume
	existing.ABV = abv
	existing.Timestamp = ts
	if err := t.store.UpdateDrink(ctx, existing); err != nil {
		return models.Drink{}, true, fmt.Errorf("update drink: %w", err)
	}
	t.logger.Debug("drink updated", "id", existing.ID)
	return existing, true, nil
}

// DeleteDrink removes a drink by full id. Unknown ids are ignored.
func (t *Tracker) DeleteDrink(ctx context.Context, id string) error {
	if err := t.store.DeleteDrink(ctx, id); err != nil {
		return fmt.Errorf("delete drink: %w", err)
	}
	t.logger.Debug("drink deleted", "id", id)
	return nil
}

// DaySummary is the home view for one calendar day.
type DaySummary struct {
	Date        time.Time
	Drinks      []models.Drink
	DayTotal    float64
	WeekTotal   float64
	WeeklyLimit float64
	Remaining   float64
	Ratio       float64
	Level       stats.Level
}

// Day summarizes the calendar day containing day. Drinks are newest first.
func (t *Tracker) Day(ctx context.Context, day time.Time) (DaySummary, error) {
	all, err := t.store.ListDrinks(ctx)
	if err != nil {
		return DaySummary{}, fmt.Errorf("list drinks: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return DaySummary{}, err
	}

	opts := t.StatsOptions()
	drinks := storage.FilterByDay(all, day, t.loc)
	sort.SliceStable(drinks, func(i, j int) bool {
		return drinks[i].Timestamp.After(drinks[j].Timestamp)
	})

	week := stats.ComputeWeek(all, day, 0, opts)
	s := DaySummary{
		Date:        models.DateAtLocation(day, t.loc),
		Drinks:      drinks,
		DayTotal:    models.TotalStandardDrinks(drinks),
		WeekTotal:   week.Total,
		WeeklyLimit: opts.WeeklyLimit,
		Remaining:   opts.WeeklyLimit - week.Total,
	}
	s.Ratio = s.WeekTotal / s.WeeklyLimit
	s.Level = stats.ProgressLevel(s.Ratio)
	return s, nil
}
