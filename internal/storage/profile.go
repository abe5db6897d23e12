// ABOUTME: Profile read/write for the singleton user configuration.
// ABOUTME: Absent profile reads as an empty weekly limit; saves overwrite wholesale.
package storage

import (
	"context"

	"github.com/harperreed/drinks/internal/kv"
	"github.com/harperreed/drinks/internal/models"
)

// GetProfile returns the stored profile or Profile{WeeklyLimit: ""} when none exists.
func (s *Store) GetProfile(ctx context.Context) (models.Profile, error) {
	p, found, err := load[models.Profile](ctx, s, kv.KeyProfile)
	if err != nil {
		return models.Profile{}, err
	}
	if !found {
		return models.Profile{WeeklyLimit: ""}, nil
	}
	return p, nil
}

// SaveProfile overwrites the stored profile.
func (s *Store) SaveProfile(ctx context.Context, p models.Profile) error {
	return s.save(ctx, kv.KeyProfile, p)
}
