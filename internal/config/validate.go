package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateUI(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}

func (c *Config) validateUI() error {
	if c.UI.DoubleClickMS < 50 || c.UI.DoubleClickMS > 2000 {
		return errors.New("ui.double_click_ms must be between 50 and 2000")
	}
	return nil
}

// RequireCatalog reports a usable error when no catalog file is configured.
func (c *Config) RequireCatalog() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path is required. Set %s or pass --catalog", EnvCatalog)
	}
	return nil
}
