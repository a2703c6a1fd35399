package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnv()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.Viewer.Command = strings.TrimSpace(c.Viewer.Command)
	return nil
}

func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv(EnvStore); ok && strings.TrimSpace(value) != "" {
		c.Store.Path = value
	}
	if value, ok := os.LookupEnv(EnvCatalog); ok && strings.TrimSpace(value) != "" {
		c.Catalog.Path = value
	}
	if value, ok := os.LookupEnv(EnvExportDir); ok && strings.TrimSpace(value) != "" {
		c.Export.Dir = value
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Store.Path) == "" {
		c.Store.Path = defaultStorePath
	}
	if c.Store.Path, err = expandPath(c.Store.Path); err != nil {
		return fmt.Errorf("store.path: %w", err)
	}
	if strings.TrimSpace(c.Export.Dir) == "" {
		c.Export.Dir = defaultExportDir
	}
	if c.Export.Dir, err = expandPath(c.Export.Dir); err != nil {
		return fmt.Errorf("export.dir: %w", err)
	}
	if c.Catalog.Path, err = expandPath(strings.TrimSpace(c.Catalog.Path)); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	if c.Logging.Path, err = expandPath(strings.TrimSpace(c.Logging.Path)); err != nil {
		return fmt.Errorf("logging.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "json", "text":
	default:
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
