// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package recommend

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MaxItemsPerSource caps every source's contribution.
	MaxItemsPerSource = 3

	// DefaultLocation is used when the caller's profile has no location.
	DefaultLocation = "New York, NY"

	// DefaultSourceTimeout bounds each individual source call.
	DefaultSourceTimeout = 5 * time.Second
)

// Config controls the orchestrator.
type Config struct {
	// SourceTimeout bounds each source call. Zero waits indefinitely.
	SourceTimeout time.Duration `json:"source_timeout"`

	// ItemsPerSource is the per-source cap, 1..MaxItemsPerSource.
	ItemsPerSource int `json:"items_per_source"`

	// DefaultLocation is sent to the therapist source when the profile is empty.
	DefaultLocation string `json:"default_location"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		SourceTimeout:   DefaultSourceTimeout,
		ItemsPerSource:  MaxItemsPerSource,
		DefaultLocation: DefaultLocation,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.SourceTimeout < 0 {
		errs = append(errs, fmt.Errorf("source_timeout must not be negative, got %s", c.SourceTimeout))
	}
	if c.ItemsPerSource < 1 || c.ItemsPerSource > MaxItemsPerSource {
		errs = append(errs, fmt.Errorf("items_per_source must be between 1 and %d, got %d", MaxItemsPerSource, c.ItemsPerSource))
	}
	if c.DefaultLocation == "" {
		errs = append(errs, errors.New("default_location is required"))
	}
	return errors.Join(errs...)
}
