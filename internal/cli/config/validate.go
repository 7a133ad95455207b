package config

import (
	"fmt"

	"github.com/leapstack-labs/clippygen/pkg/clippy"
)

// Validate checks that the merged configuration holds usable values.
// Profile is allowed to be empty here: commands that need one enforce it.
func (c *Config) Validate() error {
	if c.Profile != "" {
		if _, ok := clippy.ParseProfile(c.Profile); !ok {
			return fmt.Errorf("invalid profile %q (expected publish or personal)", c.Profile)
		}
	}
	switch c.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid format %q (expected text or json)", c.Format)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %d (must be positive)", c.Timeout)
	}
	if c.CatalogURL == "" && c.CatalogFile == "" {
		return fmt.Errorf("either catalog_url or catalog_file must be set")
	}
	return nil
}
