// ABOUTME: Tests for the pure statistics engine.
// ABOUTME: Uses a fixed clock and explicit zones so results are deterministic.
package stats

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/drinks/internal/models"
)

// Wednesday evening, week starting Sunday 2024-06-09.
var testNow = time.Date(2024, 6, 12, 20, 0, 0, 0, time.UTC)

func testOpts() Options {
	return Options{WeeklyLimit: 14, WeekStart: time.Sunday, Location: time.UTC}
}

func beers(n int, ts time.Time) []models.Drink {
	out := make([]models.Drink, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, *models.NewDrink(models.DrinkBeer).WithTimestamp(ts))
	}
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestRollingNoDrinks(t *testing.T) {
	r := ComputeRolling(nil, testNow, testOpts())

	if len(r.Days) != RollingWindowDays {
		t.Fatalf("len(Days) = %d, want %d", len(r.Days), RollingWindowDays)
	}
	if r.SoberDays != 30 || r.CurrentStreak != 30 || r.LongestStreak != 30 {
		t.Errorf("sober/current/longest = %d/%d/%d, want 30/30/30", r.SoberDays, r.CurrentStreak, r.LongestStreak)
	}
	if r.Average != 0 {
		t.Errorf("Average = %v, want 0", r.Average)
	}
	if !r.LastDrinkDay.IsZero() {
		t.Errorf("LastDrinkDay = %v, want zero", r.LastDrinkDay)
	}
	if got := StreakText(r, testNow); got != "30 day sober streak" {
		t.Errorf("StreakText = %q, want %q", got, "30 day sober streak")
	}
}

func TestRollingWithDrinks(t *testing.T) {
	var drinks []models.Drink
	drinks = append(drinks, beers(1, testNow.Add(-2*time.Hour))...)
	drinks = append(drinks, beers(5, testNow.AddDate(0, 0, -3))...)
	drinks = append(drinks, beers(3, testNow.AddDate(0, 0, -45))...)

	r := ComputeRolling(drinks, testNow, testOpts())

	if r.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", r.CurrentStreak)
	}
	if r.LongestStreak != 26 {
		t.Errorf("LongestStreak = %d, want 26", r.LongestStreak)
	}
	if r.SoberDays != 28 {
		t.Errorf("SoberDays = %d, want 28", r.SoberDays)
	}
	if r.HeavyDays != 1 {
		t.Errorf("HeavyDays = %d, want 1", r.HeavyDays)
	}
	if r.Average != 0.2 {
		t.Errorf("Average = %v, want 0.2", r.Average)
	}
	wantLast := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	if !r.LastDrinkDay.Equal(wantLast) {
		t.Errorf("LastDrinkDay = %v, want %v", r.LastDrinkDay, wantLast)
	}
	if r.Days[0].Key != "2024-05-14" || r.Days[29].Key != "2024-06-12" {
		t.Errorf("window = %s..%s, want 2024-05-14..2024-06-12", r.Days[0].Key, r.Days[29].Key)
	}

	text := StreakText(r, testNow)
	if !strings.HasPrefix(text, "Last drink ") || !strings.HasSuffix(text, "ago") {
		t.Errorf("StreakText = %q, want relative last-drink text", text)
	}
}

func TestCurrentStreakFromYesterday(t *testing.T) {
	drinks := beers(2, testNow.AddDate(0, 0, -4))
	r := ComputeRolling(drinks, testNow, testOpts())

	if r.CurrentStreak != 4 {
		t.Errorf("CurrentStreak = %d, want 4", r.CurrentStreak)
	}
	if got := StreakText(r, testNow); got != "4 day sober streak" {
		t.Errorf("StreakText = %q", got)
	}
}

func TestStreakTextNoDrinks(t *testing.T) {
	if got := StreakText(Rolling{}, testNow); got != "No drinks recorded" {
		t.Errorf("StreakText = %q, want %q", got, "No drinks recorded")
	}
}

func TestWeekTotals(t *testing.T) {
	var drinks []models.Drink
	drinks = append(drinks, beers(3, time.Date(2024, 6, 10, 19, 0, 0, 0, time.UTC))...)
	drinks = append(drinks, beers(2, time.Date(2024, 6, 4, 19, 0, 0, 0, time.UTC))...)

	w := ComputeWeek(drinks, testNow, 0, testOpts())

	if w.Start.Format(models.DayKeyFormat) != "2024-06-09" {
		t.Errorf("Start = %v, want 2024-06-09", w.Start)
	}
	if w.Days[1].Key != "2024-06-10" {
		t.Errorf("Days[1] = %s, want 2024-06-10", w.Days[1].Key)
	}
	wantTotal := 3 * models.StandardDrinks(12, 0.05)
	if !approx(w.Total, wantTotal) {
		t.Errorf("Total = %v, want %v", w.Total, wantTotal)
	}
	if !approx(w.ChangeFromLastWeek, 50) {
		t.Errorf("ChangeFromLastWeek = %v, want 50", w.ChangeFromLastWeek)
	}
	if !approx(w.AveragePerDay, wantTotal/7) {
		t.Errorf("AveragePerDay = %v, want %v", w.AveragePerDay, wantTotal/7)
	}
	if !approx(w.Remaining, 14-wantTotal) {
		t.Errorf("Remaining = %v, want %v", w.Remaining, 14-wantTotal)
	}
}

func TestWeekChangeZeroWhenLastWeekEmpty(t *testing.T) {
	drinks := beers(3, time.Date(2024, 6, 11, 19, 0, 0, 0, time.UTC))
	w := ComputeWeek(drinks, testNow, 0, testOpts())

	if w.PreviousTotal != 0 {
		t.Fatalf("PreviousTotal = %v, want 0", w.PreviousTotal)
	}
	if w.ChangeFromLastWeek != 0 {
		t.Errorf("ChangeFromLastWeek = %v, want 0", w.ChangeFromLastWeek)
	}
}

func TestWeekOffsetAndWeekStart(t *testing.T) {
	prev := ComputeWeek(nil, testNow, -1, testOpts())
	if got := prev.Start.Format(models.DayKeyFormat); got != "2024-06-02" {
		t.Errorf("offset -1 start = %s, want 2024-06-02", got)
	}

	opts := testOpts()
	opts.WeekStart = time.Monday
	w := ComputeWeek(nil, testNow, 0, opts)
	if got := w.Start.Format(models.DayKeyFormat); got != "2024-06-10" {
		t.Errorf("monday start = %s, want 2024-06-10", got)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		total, limit, want float64
	}{
		{7, 14, 50},
		{28, 14, 200},
		{0, 14, 0},
		{0, 0, 0},
		{3, 0, 100},
		{3, -5, 100},
	}
	for _, tt := range tests {
		got := Progress(tt.total, tt.limit)
		if got != tt.want {
			t.Errorf("Progress(%v, %v) = %v, want %v", tt.total, tt.limit, got, tt.want)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Progress(%v, %v) is not finite", tt.total, tt.limit)
		}
	}
}

func TestConsecutiveWeeksUnderLimit(t *testing.T) {
	var drinks []models.Drink
	// One beer on the Monday of the current week and four weeks before it.
	monday := time.Date(2024, 6, 10, 19, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		drinks = append(drinks, beers(1, monday.AddDate(0, 0, -7*i))...)
	}
	// The sixth week back goes over.
	drinks = append(drinks, beers(15, monday.AddDate(0, 0, -35))...)

	if got := ConsecutiveWeeksUnderLimit(drinks, testNow, testOpts()); got != 5 {
		t.Errorf("ConsecutiveWeeksUnderLimit = %d, want 5", got)
	}
}

func TestConsecutiveWeeksCapsAndIgnoresFuture(t *testing.T) {
	// Friday of the current week is after testNow.
	drinks := beers(20, time.Date(2024, 6, 14, 19, 0, 0, 0, time.UTC))

	got := ConsecutiveWeeksUnderLimit(drinks, testNow, testOpts())
	if got != MaxConsecutiveWeeks {
		t.Errorf("ConsecutiveWeeksUnderLimit = %d, want %d", got, MaxConsecutiveWeeks)
	}
	if FormatWeeks(got) != "52+" {
		t.Errorf("FormatWeeks(%d) = %q, want 52+", got, FormatWeeks(got))
	}
	if FormatWeeks(3) != "3" {
		t.Errorf("FormatWeeks(3) = %q, want 3", FormatWeeks(3))
	}
}

func TestConsecutiveWeeksZeroLimit(t *testing.T) {
	opts := testOpts()
	opts.WeeklyLimit = 0
	drinks := beers(1, time.Date(2024, 5, 28, 19, 0, 0, 0, time.UTC))

	// Current week and the one before are empty; the third has a drink.
	if got := ConsecutiveWeeksUnderLimit(drinks, testNow, opts); got != 2 {
		t.Errorf("ConsecutiveWeeksUnderLimit = %d, want 2", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		total, limit  float64
		wantTier      Tier
		wantIntensity float64
	}{
		{"sober", 0, 14, TierSober, 0.2},
		{"light", 1, 14, TierWithinLimit, 0.15},
		{"exactly daily limit", 2, 14, TierWithinLimit, 0.3},
		{"just over", 2.5, 14, TierOverLimit, 0.375},
		{"within capped", 6, 70, TierWithinLimit, 0.7},
		{"over capped", 10, 14, TierOverLimit, 0.8},
		{"zero limit", 1, 0, TierOverLimit, 0.15},
		{"zero limit sober", 0, 0, TierSober, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.total, tt.limit)
			if got.Tier != tt.wantTier {
				t.Errorf("Tier = %v, want %v", got.Tier, tt.wantTier)
			}
			if !approx(got.Intensity, tt.wantIntensity) {
				t.Errorf("Intensity = %v, want %v", got.Intensity, tt.wantIntensity)
			}
		})
	}
}

func TestClassificationHSLA(t *testing.T) {
	if got := Classify(0, 14).HSLA(); got != "hsla(142, 71%, 45%, 0.2)" {
		t.Errorf("sober HSLA = %q", got)
	}
	if got := Classify(10, 14).HSLA(); got != "hsla(348, 100%, 55%, 0.8)" {
		t.Errorf("over HSLA = %q", got)
	}
}

func TestCalendarOmitsFutureDays(t *testing.T) {
	drinks := beers(1, time.Date(2024, 6, 3, 21, 0, 0, 0, time.UTC))

	days := Calendar(drinks, testNow, testNow, testOpts())
	if len(days) != 12 {
		t.Fatalf("len(days) = %d, want 12", len(days))
	}
	if days[2].Key != "2024-06-03" {
		t.Fatalf("days[2] = %s, want 2024-06-03", days[2].Key)
	}
	if days[2].Drinks != 1 {
		t.Errorf("Drinks = %d, want 1", days[2].Drinks)
	}
	if days[2].Tier != TierWithinLimit {
		t.Errorf("Tier = %v, want within_limit", days[2].Tier)
	}
	if days[0].Tier != TierSober {
		t.Errorf("empty day tier = %v, want sober", days[0].Tier)
	}

	may := Calendar(nil, testNow, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), testOpts())
	if len(may) != 31 {
		t.Errorf("May len = %d, want 31", len(may))
	}
	july := Calendar(nil, testNow, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), testOpts())
	if len(july) != 0 {
		t.Errorf("July len = %d, want 0", len(july))
	}
}

func TestDayTotalsUsesLocalDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}
	// 23:30 on the 23-hour DST day is 03:30 UTC the next day.
	late := time.Date(2024, 3, 10, 23, 30, 0, 0, loc)
	totals := DayTotals(beers(1, late), loc)

	if _, ok := totals["2024-03-10"]; !ok {
		t.Errorf("totals = %v, want key 2024-03-10", totals)
	}
	if _, ok := totals["2024-03-11"]; ok {
		t.Error("drink leaked into 2024-03-11")
	}
}

func TestProgressLevel(t *testing.T) {
	tests := []struct {
		ratio float64
		want  Level
	}{
		{0, LevelPlenty},
		{0.49, LevelPlenty},
		{0.5, LevelHalfway},
		{0.75, LevelClose},
		{0.99, LevelClose},
		{1, LevelOver},
		{2.5, LevelOver},
		{math.NaN(), LevelPlenty},
	}
	for _, tt := range tests {
		if got := ProgressLevel(tt.ratio); got != tt.want {
			t.Errorf("ProgressLevel(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestCompute(t *testing.T) {
	at := time.Date(2024, 6, 12, 18, 0, 0, 0, time.UTC)
	drinks := []models.Drink{
		*models.NewDrink(models.DrinkBeer).WithTimestamp(at),
		*models.NewDrink(models.DrinkWine).WithTimestamp(at),
		*models.NewDrink(models.DrinkShot).WithTimestamp(at),
	}

	m := Compute(drinks, testNow, 0, testOpts())
	if !approx(m.Week.Total, 3.04) {
		t.Errorf("Week.Total = %v, want ~3.04", m.Week.Total)
	}
	if !approx(m.Week.Remaining, 10.96) {
		t.Errorf("Week.Remaining = %v, want ~10.96", m.Week.Remaining)
	}
	if m.ConsecutiveWeeks != MaxConsecutiveWeeks {
		t.Errorf("ConsecutiveWeeks = %d, want %d", m.ConsecutiveWeeks, MaxConsecutiveWeeks)
	}
	if m.Rolling.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", m.Rolling.CurrentStreak)
	}
	if m.WeeklyLimit != 14 {
		t.Errorf("WeeklyLimit = %v, want 14", m.WeeklyLimit)
	}
}
