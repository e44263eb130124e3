package logging

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Env names the environment variables that override a Config.
// Empty names are skipped.
type Env struct {
	Level     string
	Format    string
	AddSource string
}

// Config is the [logging] section.
type Config struct {
	Level     Level  `toml:"level"`
	Format    Format `toml:"format"`
	AddSource *bool  `toml:"add_source"`
}

// SourceEnabled reports whether records carry the calling source location.
func (c *Config) SourceEnabled() bool {
	return c.AddSource != nil && *c.AddSource
}

// Finalize fills defaults, applies env overrides and validates.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}

	return errors.Join(c.Level.Validate(), c.Format.Validate())
}

// Merge copies the fields set in overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.AddSource != nil {
		c.AddSource = overlay.AddSource
	}
}

func (c *Config) loadEnv(env *Env) error {
	if v, ok := lookup(env.Level); ok {
		c.Level = Level(v)
	}
	if v, ok := lookup(env.Format); ok {
		c.Format = Format(v)
	}
	if v, ok := lookup(env.AddSource); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", env.AddSource, err)
		}
		c.AddSource = &b
	}
	return nil
}

func lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	v := os.Getenv(name)
	return v, v != ""
}
