// ABOUTME: Export and import functionality for drink data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats; JSON import merges by id.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/drinks/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportVersion is the current export schema version.
const ExportVersion = "1.0"

// ExportData represents the full export format for drink data.
type ExportData struct {
	Version    string         `json:"version" yaml:"version"`
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Tool       string         `json:"tool" yaml:"tool"`
	Profile    models.Profile `json:"profile" yaml:"profile"`
	Drinks     []models.Drink `json:"drinks" yaml:"drinks"`
}

// ImportSummary reports what an import changed.
type ImportSummary struct {
	Added          int
	Replaced       int
	ProfileUpdated bool
}

// GetAllData retrieves all data for export.
func (s *Store) GetAllData(ctx context.Context) (*ExportData, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	drinks, err := s.ListDrinks(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(drinks, func(i, j int) bool {
		return drinks[i].Timestamp.Before(drinks[j].Timestamp)
	})

	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		Tool:       "drinks",
		Profile:    profile,
		Drinks:     drinks,
	}, nil
}

// ImportData merges an export into the store. Drinks with a known id replace
// the stored record; the rest are appended with their ids intact. The profile
// is overwritten only when the import carries a weekly limit.
func (s *Store) ImportData(ctx context.Context, data *ExportData) (*ImportSummary, error) {
	summary := &ImportSummary{}
	if data == nil {
		return summary, nil
	}

	drinks, err := s.ListDrinks(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(drinks))
	for i, d := range drinks {
		index[d.ID] = i
	}
	for _, d := range data.Drinks {
		if d.ID == "" {
			return nil, fmt.Errorf("import drink at %s: missing id", d.Timestamp.Format(time.RFC3339))
		}
		d.Timestamp = d.Timestamp.UTC()
		if i, ok := index[d.ID]; ok {
			drinks[i] = d
			summary.Replaced++
			continue
		}
		index[d.ID] = len(drinks)
		drinks = append(drinks, d)
		summary.Added++
	}

	if summary.Added+summary.Replaced > 0 {
		if err := s.saveDrinks(ctx, drinks); err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(data.Profile.WeeklyLimit) != "" {
		if err := s.SaveProfile(ctx, data.Profile); err != nil {
			return nil, fmt.Errorf("import profile: %w", err)
		}
		summary.ProfileUpdated = true
	}

	return summary, nil
}

// ImportJSON imports data from JSON bytes.
func (s *Store) ImportJSON(ctx context.Context, data []byte) (*ImportSummary, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return s.ImportData(ctx, &exportData)
}

// ExportJSON exports all data as JSON.
func (s *Store) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := s.GetAllData(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

type yamlExport struct {
	Version     string                 `yaml:"version"`
	ExportedAt  string                 `yaml:"exported_at"`
	Tool        string                 `yaml:"tool"`
	WeeklyLimit string                 `yaml:"weekly_limit"`
	Days        map[string][]yamlDrink `yaml:"days"`
}

type yamlDrink struct {
	ID             string  `yaml:"id"`
	Type           string  `yaml:"type"`
	Volume         float64 `yaml:"volume_oz"`
	ABV            float64 `yaml:"abv"`
	StandardDrinks float64 `yaml:"standard_drinks"`
	Time           string  `yaml:"time"`
}

// ExportYAML exports all data as YAML with drinks grouped by local day.
func (s *Store) ExportYAML(ctx context.Context, loc *time.Location) ([]byte, error) {
	data, err := s.GetAllData(ctx)
	if err != nil {
		return nil, err
	}

	out := yamlExport{
		Version:     data.Version,
		ExportedAt:  data.ExportedAt.Format(time.RFC3339),
		Tool:        data.Tool,
		WeeklyLimit: data.Profile.WeeklyLimit,
		Days:        make(map[string][]yamlDrink),
	}

	for _, d := range data.Drinks {
		key := models.DayKey(d.Timestamp, loc)
		out.Days[key] = append(out.Days[key], yamlDrink{
			ID:             d.ShortID(),
			Type:           d.Type,
			Volume:         d.Volume,
			ABV:            d.ABV,
			StandardDrinks: roundTo(d.StandardDrinks(), 2),
			Time:           d.Timestamp.In(locOrLocal(loc)).Format(time.RFC3339),
		})
	}

	return yaml.Marshal(out)
}

// ExportMarkdown exports drinks as Markdown, one table per local day with the
// day's standard-drink total. A non-nil since drops earlier drinks.
func (s *Store) ExportMarkdown(ctx context.Context, since *time.Time, loc *time.Location) (string, error) {
	data, err := s.GetAllData(ctx)
	if err != nil {
		return "", err
	}
	loc = locOrLocal(loc)

	grouped := make(map[string][]models.Drink)
	for _, d := range data.Drinks {
		if since != nil && d.Timestamp.Before(*since) {
			continue
		}
		key := models.DayKey(d.Timestamp, loc)
		grouped[key] = append(grouped[key], d)
	}

	days := make([]string, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	sort.Strings(days)

	var sb strings.Builder
	now := time.Now().In(loc)

	sb.WriteString(fmt.Sprintf("# Drinks Export - %s\n\n", now.Format(models.DayKeyFormat)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Weekly limit: %g standard drinks\n\n", data.Profile.EffectiveWeeklyLimit()))

	if len(days) == 0 {
		sb.WriteString("No drinks recorded.\n")
		return sb.String(), nil
	}

	for _, day := range days {
		drinks := grouped[day]
		sb.WriteString(fmt.Sprintf("## %s (%.1f standard drinks)\n\n", day, models.TotalStandardDrinks(drinks)))
		sb.WriteString("| Time | Type | Volume | ABV | Std |\n")
		sb.WriteString("|------|------|--------|-----|-----|\n")
		for _, d := range drinks {
			sb.WriteString(fmt.Sprintf("| %s | %s | %g oz | %.0f%% | %.2f |\n",
				d.Timestamp.In(loc).Format("15:04"),
				models.DrinkTypeName(d.Type), d.Volume, d.ABV*100, d.StandardDrinks()))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func locOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
