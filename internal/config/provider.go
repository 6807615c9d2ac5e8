package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadProviderFile overlays a YAML provider profile on top of base.
// Fields missing from the file keep the value from base.
//
// Example:
//
//	url: https://example.roomzilla.net/
//	seconds_per_pixel: 60
//	selectors:
//	  reservation: div.booking
func LoadProviderFile(path string, base ProviderConfig) (ProviderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read provider file: %w", err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse provider file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("invalid provider file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the provider configuration can be used for scraping
func (c ProviderConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("provider url is required")
	}
	if c.SecondsPerPixel <= 0 {
		return fmt.Errorf("seconds_per_pixel must be positive, got %v", c.SecondsPerPixel)
	}
	if c.WidthPrefixOffset < 0 {
		return fmt.Errorf("width_prefix_offset must not be negative, got %d", c.WidthPrefixOffset)
	}
	if c.Selectors.Row == "" || c.Selectors.Reservation == "" {
		return fmt.Errorf("row and reservation selectors are required")
	}
	return nil
}
