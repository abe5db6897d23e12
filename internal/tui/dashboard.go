// ABOUTME: Bubble Tea dashboard: today panel, week bars, 30-day cards, and month heat map.
// ABOUTME: Each fetch carries a request id; results from superseded fetches are dropped.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/drinks/internal/models"
	"github.com/harperreed/drinks/internal/stats"
	"github.com/harperreed/drinks/internal/tracker"
)

// Source is what the dashboard reads from. *tracker.Tracker satisfies it.
type Source interface {
	Now() time.Time
	Day(ctx context.Context, day time.Time) (tracker.DaySummary, error)
	Metrics(ctx context.Context, weekOffset int) (stats.Metrics, error)
	Calendar(ctx context.Context, month time.Time) ([]stats.CalendarDay, error)
}

var _ Source = (*tracker.Tracker)(nil)

// Model is the dashboard state. Navigation keys re-fetch everything.
type Model struct {
	source     Source
	weekOffset int
	month      time.Time

	requestID int
	ctx       context.Context
	cancel    context.CancelFunc
	loading   bool

	today    *tracker.DaySummary
	metrics  *stats.Metrics
	calendar []stats.CalendarDay

	width  int
	height int
	err    error
}

type snapshotMsg struct {
	id       int
	today    tracker.DaySummary
	metrics  stats.Metrics
	calendar []stats.CalendarDay
	err      error
}

// New builds a dashboard with its first fetch already armed as request 1.
func New(source Source) Model {
	now := source.Now()
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		source:    source,
		month:     time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		requestID: 1,
		ctx:       ctx,
		cancel:    cancel,
		loading:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return fetch(m.ctx, m.source, m.requestID, m.weekOffset, m.month)
}

// refresh cancels any in-flight fetch and starts a new one under a fresh id.
func (m *Model) refresh() tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.requestID++
	m.loading = true
	return fetch(m.ctx, m.source, m.requestID, m.weekOffset, m.month)
}

func fetch(ctx context.Context, source Source, id, weekOffset int, month time.Time) tea.Cmd {
	return func() tea.Msg {
		msg := snapshotMsg{id: id}
		msg.today, msg.err = source.Day(ctx, source.Now())
		if msg.err != nil {
			return msg
		}
		msg.metrics, msg.err = source.Metrics(ctx, weekOffset)
		if msg.err != nil {
			return msg
		}
		msg.calendar, msg.err = source.Calendar(ctx, month)
		return msg
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case "r":
			return m, m.refresh()
		case "left", "h":
			m.weekOffset--
			return m, m.refresh()
		case "right", "l":
			if m.weekOffset < 0 {
				m.weekOffset++
				return m, m.refresh()
			}
		case "[":
			m.month = m.month.AddDate(0, -1, 0)
			return m, m.refresh()
		case "]":
			next := m.month.AddDate(0, 1, 0)
			if !next.After(m.source.Now()) {
				m.month = next
				return m, m.refresh()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case snapshotMsg:
		if msg.id != m.requestID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			if !errors.Is(msg.err, context.Canceled) {
				m.err = msg.err
			}
			return m, nil
		}
		m.err = nil
		m.today = &msg.today
		m.metrics = &msg.metrics
		m.calendar = msg.calendar
	}

	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\nPress r to retry or q to quit."
	}
	if m.today == nil || m.metrics == nil {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("🍺 Drinks"))
	b.WriteString("\n")

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(m.renderToday()),
		boxStyle.Render(m.renderCards()),
	)
	b.WriteString(top)
	b.WriteString("\n")

	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(m.renderWeek()),
		boxStyle.Render(m.renderCalendar()),
	)
	b.WriteString(bottom)
	b.WriteString("\n")

	help := "←/→: week • [/]: month • r: refresh • q: quit"
	if m.loading {
		help = "refreshing… • " + help
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func (m Model) renderToday() string {
	t := m.today
	color := levelColor(t.Level)

	var b strings.Builder
	b.WriteString("Today  " + labelStyle.Render(t.Date.Format("Mon Jan 2")) + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Drinks:"), valueStyle.Render(fmt.Sprintf("%d (%.1f std)", len(t.Drinks), t.DayTotal))))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Week:"),
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%.1f / %g", t.WeekTotal, t.WeeklyLimit))))
	b.WriteString(progressBar(t.Ratio, 20, color))
	b.WriteString("\n")
	if t.Remaining >= 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%.1f remaining this week", t.Remaining)))
	} else {
		b.WriteString(errorStyle.Render(fmt.Sprintf("%.1f over this week", -t.Remaining)))
	}
	return b.String()
}

func progressBar(ratio float64, width int, color lipgloss.Color) string {
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	return bar + labelStyle.Render(strings.Repeat("░", width-filled))
}

func (m Model) renderCards() string {
	r := m.metrics.Rolling
	rows := [][2]string{
		{"Streak:", m.metrics.StreakText},
		{"Longest (30d):", fmt.Sprintf("%d days", r.LongestStreak)},
		{"Sober days (30d):", fmt.Sprintf("%d", r.SoberDays)},
		{"Heavy days (30d):", fmt.Sprintf("%d", r.HeavyDays)},
		{"Daily avg (30d):", fmt.Sprintf("%.1f", r.Average)},
		{"Weeks under limit:", stats.FormatWeeks(m.metrics.ConsecutiveWeeks)},
	}
	var b strings.Builder
	b.WriteString("Last 30 days\n")
	for i, row := range rows {
		b.WriteString(labelStyle.Render(row[0]) + " " + valueStyle.Render(row[1]))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

var bars = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

func (m Model) renderWeek() string {
	w := m.metrics.Week
	dailyLimit := m.metrics.WeeklyLimit / 7

	maxTotal := 1.0
	for _, d := range w.Days {
		if d.Total > maxTotal {
			maxTotal = d.Total
		}
	}

	var graph, labels strings.Builder
	for _, d := range w.Days {
		idx := int(d.Total / maxTotal * float64(len(bars)-1))
		if d.Total > 0 && idx == 0 {
			idx = 1
		}
		color := levelColor(stats.LevelPlenty)
		if d.Total > dailyLimit {
			color = levelColor(stats.LevelOver)
		}
		graph.WriteString(lipgloss.NewStyle().Foreground(color).Render(bars[idx]) + "   ")
		labels.WriteString(d.Date.Format("Mon")[:2] + "  ")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Week of %s\n", w.Start.Format("Jan 2")))
	b.WriteString(graph.String() + "\n")
	b.WriteString(labelStyle.Render(labels.String()) + "\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s",
		labelStyle.Render("Total:"), valueStyle.Render(fmt.Sprintf("%.1f", w.Total)),
		labelStyle.Render("vs last:"), valueStyle.Render(formatChange(w.ChangeFromLastWeek))))
	return b.String()
}

func formatChange(pct float64) string {
	if pct > 0 {
		return fmt.Sprintf("▲ %.0f%%", pct)
	}
	if pct < 0 {
		return fmt.Sprintf("▼ %.0f%%", -pct)
	}
	return "0%"
}

func (m Model) renderCalendar() string {
	var b strings.Builder
	b.WriteString(m.month.Format("January 2006") + "\n")

	first := m.month
	for i := 0; i < 7; i++ {
		b.WriteString(labelStyle.Render(time.Weekday(i).String()[:2]) + " ")
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("   ", int(first.Weekday())))

	byKey := make(map[string]stats.CalendarDay, len(m.calendar))
	for _, d := range m.calendar {
		byKey[d.Key] = d
	}
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		cell := fmt.Sprintf("%2d", day.Day())
		if d, ok := byKey[day.Format(models.DayKeyFormat)]; ok {
			cell = lipgloss.NewStyle().Foreground(tierColor(d.Classification)).Render(cell)
		} else {
			cell = labelStyle.Render(cell)
		}
		b.WriteString(cell + " ")
		if day.Weekday() == time.Saturday {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run starts the dashboard on the alternate screen.
func Run(source Source) error {
	p := tea.NewProgram(New(source), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
