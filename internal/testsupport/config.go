package testsupport

import (
	"path/filepath"
	"testing"

	"filesorter/internal/config"
)

// DefaultRules is the rule table used by most tests.
const DefaultRules = `
[rules.Documentos]
extensions = ["pdf", "txt"]

[rules.Imagenes]
extensions = ["png", "jpg"]
`

// WriteConfig writes body as config.toml inside dir and returns its path.
func WriteConfig(t testing.TB, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultConfigName)
	WriteFile(t, path, body)
	return path
}

// LoadConfig writes body to a temp config file and loads it.
func LoadConfig(t testing.TB, body string) *config.Config {
	t.Helper()
	path := WriteConfig(t, t.TempDir(), body)
	cfg, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}
