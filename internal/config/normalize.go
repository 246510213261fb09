package config

import "strings"

func (c *Config) normalize() error {
	c.normalizeIgnore()
	c.normalizeRules()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeIgnore() {
	if len(c.Ignore) == 0 {
		return
	}
	cleaned := make([]string, 0, len(c.Ignore))
	for _, pattern := range c.Ignore {
		if trimmed := strings.TrimSpace(pattern); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	c.Ignore = cleaned
}

// normalizeRules trims surrounding whitespace from extensions. Case is kept:
// extension matching is case-sensitive.
func (c *Config) normalizeRules() {
	for folder, spec := range c.Rules {
		exts := make([]string, 0, len(spec.Extensions))
		for _, ext := range spec.Extensions {
			exts = append(exts, strings.TrimSpace(ext))
		}
		spec.Extensions = exts
		c.Rules[folder] = spec
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
