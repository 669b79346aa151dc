package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Sink.Intensity {
	case "light", "medium", "heavy":
	default:
		return fmt.Errorf("sink.intensity must be light, medium, or heavy (got %q)", c.Sink.Intensity)
	}
	if c.Sink.DisplayName == "" {
		return errors.New("sink.display_name must not be empty")
	}
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json (got %q)", c.LogFormat)
	}
	if c.Paths.ConfDir == "" {
		return errors.New("paths.conf_dir must be set")
	}
	if c.Paths.AssetDir == "" {
		return errors.New("paths.asset_dir must be set")
	}
	if c.Paths.StateDir == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}
