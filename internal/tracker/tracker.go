// ABOUTME: Tracker is the application context shared by the CLI, dashboard, and MCP server.
// ABOUTME: It owns the loaded profile and the clock/zone/week settings used by statistics.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/drinks/internal/models"
	"github.com/harperreed/drinks/internal/stats"
	"github.com/harperreed/drinks/internal/storage"
)

// ErrNotLoaded is returned when the profile is read before Load.
var ErrNotLoaded = errors.New("profile not loaded")

// State is the tracker lifecycle state.
type State int

const (
	StateNotLoaded State = iota
	StateLoaded
)

func (s State) String() string {
	if s == StateLoaded {
		return "loaded"
	}
	return "not_loaded"
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLocation sets the zone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// WithWeekStart sets the first day of the week.
func WithWeekStart(day time.Weekday) Option {
	return func(t *Tracker) { t.weekStart = day }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Tracker wraps a repository with the user's profile and calendar settings.
type Tracker struct {
	store     storage.Repository
	now       func() time.Time
	loc       *time.Location
	weekStart time.Weekday
	logger    *log.Logger

	mu      sync.RWMutex
	state   State
	profile models.Profile
}

// New returns a tracker in StateNotLoaded.
func New(store storage.Repository, opts ...Option) *Tracker {
	t := &Tracker{
		store:     store,
		now:       time.Now,
		loc:       time.Local,
		weekStart: time.Sunday,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.WithPrefix("tracker")
	return t
}

// Store returns the underlying repository.
func (t *Tracker) Store() storage.Repository { return t.store }

// Location returns the zone calendar days are computed in.
func (t *Tracker) Location() *time.Location { return t.loc }

// Now returns the current time in the tracker's zone.
func (t *Tracker) Now() time.Time { return t.now().In(t.loc) }

// State reports whether the profile has been loaded.
func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Load reads the profile from storage and moves the tracker to StateLoaded.
func (t *Tracker) Load(ctx context.Context) error {
	p, err := t.store.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	t.mu.Lock()
	t.profile = p
	t.state = StateLoaded
	t.mu.Unlock()
	t.logger.Debug("profile loaded", "weekly_limit", p.WeeklyLimit)
	return nil
}

// Profile returns the loaded profile.
func (t *Tracker) Profile() (models.Profile, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.state != StateLoaded {
		return models.Profile{}, ErrNotLoaded
	}
	return t.profile, nil
}

// WeeklyLimit returns the effective weekly limit of the loaded profile.
func (t *Tracker) WeeklyLimit() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.profile.EffectiveWeeklyLimit()
}

// SaveProfile persists p and, on success, replaces the in-memory copy.
func (t *Tracker) SaveProfile(ctx context.Context, p models.Profile) error {
	if err := t.store.SaveProfile(ctx, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	t.mu.Lock()
	t.profile = p
	t.state = StateLoaded
	t.mu.Unlock()
	t.logger.Debug("profile saved", "weekly_limit", p.WeeklyLimit)
	return nil
}

// SetWeeklyLimit validates input and stores it as the new weekly limit.
// Legacy profile fields are preserved.
func (t *Tracker) SetWeeklyLimit(ctx context.Context, input string) (int, error) {
	limit, err := models.ParseWeeklyLimit(input)
	if err != nil {
		return 0, err
	}
	current, err := t.Profile()
	if err != nil {
		return 0, err
	}
	if err := t.SaveProfile(ctx, current.WithWeeklyLimit(limit)); err != nil {
		return 0, err
	}
	return limit, nil
}

// StatsOptions returns the settings the statistics engine needs.
func (t *Tracker) StatsOptions() stats.Options {
	return stats.Options{
		WeeklyLimit: t.WeeklyLimit(),
		WeekStart:   t.weekStart,
		Location:    t.loc,
	}
}
