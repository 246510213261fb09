package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRules(); err != nil {
		return err
	}
	if err := c.validateIgnore(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRules() error {
	if c.Rules == nil {
		return errors.New("rules: missing [rules] table (declare at least one [rules.<Folder>] table, or an empty [rules] table to leave every file in place)")
	}
	folders := make([]string, 0, len(c.Rules))
	for folder := range c.Rules {
		folders = append(folders, folder)
	}
	// Sorted so the first reported problem is stable across runs.
	sort.Strings(folders)

	for _, folder := range folders {
		if err := validateFolderName(folder); err != nil {
			return err
		}
		spec := c.Rules[folder]
		if len(spec.Extensions) == 0 {
			return fmt.Errorf("rules.%s.extensions must list at least one extension", folder)
		}
		for _, ext := range spec.Extensions {
			if err := validateExtension(folder, ext); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateFolderName(folder string) error {
	switch {
	case strings.TrimSpace(folder) == "":
		return errors.New("rules: folder name must not be blank")
	case strings.TrimSpace(folder) != folder:
		return fmt.Errorf("rules.%q: folder name must not have surrounding whitespace", folder)
	case folder == "." || folder == "..":
		return fmt.Errorf("rules.%q: folder name must name a subfolder", folder)
	case strings.ContainsAny(folder, `/\`):
		return fmt.Errorf("rules.%q: folder name must not contain path separators", folder)
	}
	return nil
}

func validateExtension(folder, ext string) error {
	switch {
	case ext == "":
		return fmt.Errorf("rules.%s.extensions: extension must not be blank", folder)
	case strings.HasPrefix(ext, "."):
		return fmt.Errorf("rules.%s.extensions: %q must not start with a dot (use %q)", folder, ext, strings.TrimLeft(ext, "."))
	case strings.ContainsAny(ext, `/\`):
		return fmt.Errorf("rules.%s.extensions: %q must not contain path separators", folder, ext)
	}
	return nil
}

func (c *Config) validateIgnore() error {
	for _, pattern := range c.Ignore {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("ignore: invalid pattern %q: %w", pattern, err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
