package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Entry is one candidate file in the target directory.
type Entry struct {
	Path  string
	Name  string
	IsDir bool
}

// Ext returns the text after the last dot of the name, or "" when the name has
// no usable extension.
func (e Entry) Ext() string {
	return Extension(e.Name)
}

// Extension returns the text after the last dot of name. A name whose only
// dot is the leading one, like ".bashrc", has no extension.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

// Options controls which entries List skips.
type Options struct {
	// ConfigName is compared against entry names; only the base name matters.
	ConfigName string
	// Ignore holds gobwas/glob patterns matched against entry names.
	Ignore []string
}

// Matcher decides whether a file name must be left out of the listing.
type Matcher struct {
	configName string
	globs      []glob.Glob
}

// NewMatcher compiles the ignore patterns in opts.
func NewMatcher(opts Options) (*Matcher, error) {
	m := &Matcher{}
	if name := strings.TrimSpace(opts.ConfigName); name != "" {
		m.configName = filepath.Base(name)
	}
	for _, pattern := range opts.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", pattern, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Excluded reports whether name is the config file or matches an ignore glob.
func (m *Matcher) Excluded(name string) bool {
	if m == nil {
		return false
	}
	if m.configName != "" && name == m.configName {
		return true
	}
	for _, g := range m.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// List returns the files directly inside dir, sorted by path.
func List(dir string, opts Options) ([]Entry, error) {
	matcher, err := NewMatcher(opts)
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		path := filepath.Join(dir, name)
		if isDirectory(path, de) {
			continue
		}
		if matcher.Excluded(name) {
			continue
		}
		entries = append(entries, Entry{Path: path, Name: name})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// isDirectory follows symlinks so a link to a directory is skipped like the
// directory itself. A dangling link counts as a file.
func isDirectory(path string, de os.DirEntry) bool {
	if de.IsDir() {
		return true
	}
	if de.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
