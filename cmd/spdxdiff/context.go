package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"spdxdiff/internal/config"
	"spdxdiff/internal/logging"
	"spdxdiff/internal/spdx"
	"spdxdiff/internal/textcache"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	// stderr receives log records; set from the executing command.
	stderr io.Writer

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		var level string
		if c.logLevelFlag != nil {
			level = *c.logLevelFlag
		}
		logger, err := logging.NewFromConfig(cfg, level, c.stderr)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger, _ = logging.WithRunID(logger)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) catalogClient() (*spdx.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return spdx.New(cfg.SPDX.CatalogURL, spdx.WithTimeout(cfg.HTTPTimeout()))
}

func (c *commandContext) textCache() (*textcache.Cache, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return textcache.New(cfg.Cache.Dir, cfg.SPDX.TextBaseURL,
		textcache.WithTimeout(cfg.HTTPTimeout()),
		textcache.WithLogger(logger))
}

// withLockedCache runs fn while holding the cache lock.
func (c *commandContext) withLockedCache(fn func(*textcache.Cache) error) error {
	cache, err := c.textCache()
	if err != nil {
		return err
	}
	unlock, err := cache.Lock()
	if err != nil {
		return err
	}
	defer func() {
		if err := unlock(); err != nil && c.logger != nil {
			c.logger.Warn("failed to release cache lock", logging.Error(err))
		}
	}()
	return fn(cache)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
