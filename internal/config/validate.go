package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSPDX(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSPDX() error {
	if err := validateHTTPURL("spdx.catalog_url", c.SPDX.CatalogURL); err != nil {
		return err
	}
	if err := validateHTTPURL("spdx.text_base_url", c.SPDX.TextBaseURL); err != nil {
		return err
	}
	if c.SPDX.TimeoutSeconds < 0 {
		return errors.New("spdx.timeout_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateReport() error {
	for _, pattern := range c.Report.Include {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("report.include: invalid pattern %q", pattern)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func validateHTTPURL(field, value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", field, value)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s must include a host, got %q", field, value)
	}
	return nil
}
