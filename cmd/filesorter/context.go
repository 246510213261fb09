package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"filesorter/internal/config"
	"filesorter/internal/fault"
	"filesorter/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, err := config.Load(c.configFlagValue())
		c.configPath = path
		if err != nil {
			c.configErr = fault.Wrap(fault.ErrConfiguration, "config", "load", "", err)
			return
		}
		if err := c.applyLoggingOverrides(cfg); err != nil {
			c.configErr = fault.Wrap(fault.ErrConfiguration, "config", "flags", "", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyLoggingOverrides(cfg *config.Config) error {
	if level := flagValue(c.logLevelFlag); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if format := flagValue(c.logFormatFlag); format != "" {
		cfg.Logging.Format = strings.ToLower(format)
	}
	return cfg.Validate()
}

func (c *commandContext) configFlagValue() string {
	return flagValue(c.configFlag)
}

// resolvedConfigPath returns the absolute config path even when loading was
// skipped or failed.
func (c *commandContext) resolvedConfigPath() string {
	if c.configPath != "" {
		return c.configPath
	}
	path := c.configFlagValue()
	if path == "" {
		path = config.DefaultConfigName
	}
	if expanded, err := config.ExpandPath(path); err == nil {
		return expanded
	}
	return path
}

func (c *commandContext) ensureLogger(w io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		opts := logging.Options{
			Level:  flagValue(c.logLevelFlag),
			Format: flagValue(c.logFormatFlag),
			Writer: w,
		}
		if c.config != nil {
			opts.Level = c.config.Logging.Level
			opts.Format = c.config.Logging.Format
		}
		if opts.Level == "" {
			opts.Level = config.Default().Logging.Level
		}
		logger, err := logging.New(opts)
		if err != nil {
			c.loggerErr = fault.Wrap(fault.ErrConfiguration, "logging", "init", "", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "help" || c.Name() == "completion" {
			return true
		}
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
