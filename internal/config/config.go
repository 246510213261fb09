package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// RuleSpec is a single [rules.<Folder>] table as written in the file.
type RuleSpec struct {
	Extensions []string `toml:"extensions"`
	Priority   int      `toml:"priority"`
}

// Logging contains configuration for diagnostic log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates the contents of a filesorter configuration file.
type Config struct {
	Ignore  []string            `toml:"ignore"`
	Rules   map[string]RuleSpec `toml:"rules"`
	Logging Logging             `toml:"logging"`
}

// Load reads, parses, and validates the configuration file at path. An empty
// path resolves to DefaultConfigName in the working directory. The second
// return value is the resolved absolute path.
func Load(path string) (*Config, string, error) {
	cfg := Default()

	resolvedPath, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(resolvedPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, resolvedPath, fmt.Errorf("config file %s not found (create one with 'filesorter config init'): %w", resolvedPath, err)
		}
		return nil, resolvedPath, fmt.Errorf("open config: %w", err)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, resolvedPath, fmt.Errorf("parse config %s (line %d, column %d): %w", resolvedPath, row, col, err)
		}
		return nil, resolvedPath, fmt.Errorf("parse config %s: %w", resolvedPath, err)
	}

	if cfg.Rules == nil && declaresRules(data) {
		cfg.Rules = map[string]RuleSpec{}
	}

	if err := cfg.normalize(); err != nil {
		return nil, resolvedPath, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, resolvedPath, err
	}

	return &cfg, resolvedPath, nil
}

// declaresRules reports whether the document has a top-level rules table,
// even an empty one.
func declaresRules(data []byte) bool {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return false
	}
	_, ok := doc["rules"]
	return ok
}

func resolveConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultConfigName
	}
	expanded, err := expandPath(strings.TrimSpace(path))
	if err != nil {
		return "", err
	}
	info, err := os.Stat(expanded)
	if err == nil && info.IsDir() {
		return "", fmt.Errorf("config path %s is a directory", expanded)
	}
	return expanded, nil
}

// RuleSet returns the configured rules in their fixed iteration order.
func (c *Config) RuleSet() RuleSet {
	if c == nil {
		return nil
	}
	return NewRuleSet(c.Rules)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
