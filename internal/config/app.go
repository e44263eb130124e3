package config

import "os"

const EnvAppTitle = "APP_TITLE"

// AppConfig holds presentation settings for the web interface.
type AppConfig struct {
	Title string `toml:"title"`
}

func (c *AppConfig) Finalize() error {
	if c.Title == "" {
		c.Title = "Expense Manager"
	}
	if v := os.Getenv(EnvAppTitle); v != "" {
		c.Title = v
	}
	return nil
}

func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
}
