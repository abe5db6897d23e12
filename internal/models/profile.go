// ABOUTME: Profile model holding the user's weekly drink limit.
// ABOUTME: Singleton record; legacy sex/weight/height fields are kept but unused.
package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultWeeklyLimit is used whenever the stored limit is unset or unusable.
const DefaultWeeklyLimit = 14

// ErrInvalidWeeklyLimit is returned for non-numeric or sub-1 limits.
var ErrInvalidWeeklyLimit = errors.New("please enter a valid number greater than 0")

// Profile is the single user configuration record.
type Profile struct {
	WeeklyLimit string `json:"weeklyLimit" yaml:"weekly_limit"`

	// Legacy fields from an earlier schema.
	Sex    string `json:"sex,omitempty" yaml:"sex,omitempty"`
	Weight string `json:"weight,omitempty" yaml:"weight,omitempty"`
	Height string `json:"height,omitempty" yaml:"height,omitempty"`
}

// EffectiveWeeklyLimit returns the numeric weekly limit, falling back to
// DefaultWeeklyLimit when the stored value is empty, non-numeric, or not positive.
func (p Profile) EffectiveWeeklyLimit() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.WeeklyLimit), 64)
	if err != nil || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return DefaultWeeklyLimit
	}
	return v
}

// WithWeeklyLimit returns a copy of the profile with a new weekly limit.
func (p Profile) WithWeeklyLimit(limit int) Profile {
	p.WeeklyLimit = strconv.Itoa(limit)
	return p
}

// ParseWeeklyLimit validates user input for the weekly limit. Decimals are
// truncated; the result must be at least 1.
func ParseWeeklyLimit(input string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidWeeklyLimit
	}
	n := int(math.Trunc(v))
	if n < 1 {
		return 0, ErrInvalidWeeklyLimit
	}
	return n, nil
}
