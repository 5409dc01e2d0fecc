package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeSPDX()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeReport()
	return c.normalizeLogging()
}

func (c *Config) normalizeSPDX() {
	if value, ok := os.LookupEnv("SPDXDIFF_CATALOG_URL"); ok && strings.TrimSpace(value) != "" {
		c.SPDX.CatalogURL = value
	}
	c.SPDX.CatalogURL = strings.TrimSpace(c.SPDX.CatalogURL)
	if c.SPDX.CatalogURL == "" {
		c.SPDX.CatalogURL = defaultCatalogURL
	}
	c.SPDX.TextBaseURL = strings.TrimRight(strings.TrimSpace(c.SPDX.TextBaseURL), "/")
	if c.SPDX.TextBaseURL == "" {
		c.SPDX.TextBaseURL = defaultTextBaseURL
	}
}

func (c *Config) normalizeCache() error {
	if value, ok := os.LookupEnv("SPDXDIFF_CACHE_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Cache.Dir = value
	}
	c.Cache.Dir = strings.TrimSpace(c.Cache.Dir)
	if c.Cache.Dir == "" {
		c.Cache.Dir = defaultCacheDir
	}
	dir, err := expandPath(c.Cache.Dir)
	if err != nil {
		return err
	}
	c.Cache.Dir = dir
	return nil
}

func (c *Config) normalizeReport() {
	patterns := make([]string, 0, len(c.Report.Include))
	for _, pattern := range c.Report.Include {
		if trimmed := strings.TrimSpace(pattern); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}
	c.Report.Include = patterns
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) == "" {
		c.Logging.File = ""
		return nil
	}
	file, err := expandPath(strings.TrimSpace(c.Logging.File))
	if err != nil {
		return err
	}
	c.Logging.File = file
	return nil
}
