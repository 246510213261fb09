package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"filesorter/internal/scan"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(filepath.Base(path)), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func names(entries []scan.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListSortsAndExcludes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"original.txt", "copia.txt", "Zed.pdf", "config.toml", "b", "download.part"} {
		touch(t, filepath.Join(dir, name))
	}
	if err := os.Mkdir(filepath.Join(dir, "Documentos"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := scan.List(dir, scan.Options{ConfigName: "config.toml", Ignore: []string{"*.part"}})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"Zed.pdf", "b", "copia.txt", "original.txt"}
	if got := names(entries); !equal(got, want) {
		t.Fatalf("unexpected listing: got %v want %v", got, want)
	}
	for _, e := range entries {
		if e.Path != filepath.Join(dir, e.Name) {
			t.Fatalf("unexpected path %q for %q", e.Path, e.Name)
		}
	}
}

func TestListUsesConfigBaseName(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "rules.toml"))
	touch(t, filepath.Join(dir, "keep.toml"))

	entries, err := scan.List(dir, scan.Options{ConfigName: "/etc/filesorter/rules.toml"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := names(entries); !equal(got, []string{"keep.toml"}) {
		t.Fatalf("unexpected listing %v", got)
	}
}

func TestListSkipsSymlinkedDirectories(t *testing.T) {
	dir := t.TempDir()
	target := t.TempDir()
	if err := os.Symlink(target, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "dangling.txt")); err != nil {
		t.Fatal(err)
	}

	entries, err := scan.List(dir, scan.Options{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := names(entries); !equal(got, []string{"dangling.txt"}) {
		t.Fatalf("unexpected listing %v", got)
	}
}

func TestListMissingDirectory(t *testing.T) {
	if _, err := scan.List(filepath.Join(t.TempDir(), "absent"), scan.Options{}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestListInvalidIgnorePattern(t *testing.T) {
	if _, err := scan.List(t.TempDir(), scan.Options{Ignore: []string{"[unterminated"}}); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"reporte.pdf":    "pdf",
		"archive.tar.gz": "gz",
		"README":         "",
		"trailing.":      "",
		".bashrc":        "",
		".config.toml":   "toml",
		"Photo.JPG":      "JPG",
	}
	for name, want := range tests {
		if got := scan.Extension(name); got != want {
			t.Fatalf("Extension(%q) = %q, want %q", name, got, want)
		}
	}
}
