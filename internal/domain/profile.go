package domain

import (
	"errors"
	"time"
)

// UserProfile holds the per-user scheduling options. Timezone is required;
// everything else has a default.
type UserProfile struct {
	ID                   string
	Timezone             string
	WorkdayStartHour     int
	WorkdayEndHour       int
	PreferredDurationMin int
	BufferMin            int
	ExcludeWeekends      bool
}

// DefaultProfileID is the row key for the single local user.
const DefaultProfileID = "default"

// DefaultProfile returns a profile with every option defaulted except the
// timezone, which has no silent default.
func DefaultProfile() *UserProfile {
	return &UserProfile{
		ID:                   DefaultProfileID,
		WorkdayStartHour:     9,
		WorkdayEndHour:       17,
		PreferredDurationMin: 60,
		BufferMin:            15,
	}
}

// Location resolves the profile's IANA timezone. A missing or invalid
// timezone is a configuration error, never silently defaulted.
func (p *UserProfile) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return nil, errors.New("user timezone is not configured")
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, errors.New("user timezone is not a valid IANA identifier: " + p.Timezone)
	}
	return loc, nil
}

// Validate checks option consistency.
func (p *UserProfile) Validate() error {
	if _, err := p.Location(); err != nil {
		return err
	}
	if p.WorkdayStartHour < 0 || p.WorkdayStartHour > 23 {
		return errors.New("workday start hour out of range")
	}
	if p.WorkdayEndHour < 1 || p.WorkdayEndHour > 24 {
		return errors.New("workday end hour out of range")
	}
	if p.WorkdayEndHour <= p.WorkdayStartHour {
		return errors.New("workday end must be after start")
	}
	if p.PreferredDurationMin <= 0 {
		return errors.New("preferred duration must be positive")
	}
	if p.BufferMin < 0 {
		return errors.New("buffer minutes must not be negative")
	}
	return nil
}
