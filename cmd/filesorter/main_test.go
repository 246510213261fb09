package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"filesorter/internal/dirlock"
	"filesorter/internal/fault"
	"filesorter/internal/testsupport"
)

type cliEnv struct {
	dir        string
	configPath string
}

func setupCLITestEnv(t *testing.T, rules string) cliEnv {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	dir := t.TempDir()
	return cliEnv{
		dir:        dir,
		configPath: testsupport.WriteConfig(t, dir, rules),
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output:\n%s", w, out)
		}
	}
}

func TestOrganizeMovesByExtension(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.DefaultRules)
	testsupport.WriteFile(t, filepath.Join(env.dir, "reporte.pdf"), "pdf")

	out, _, err := runCLI(t, []string{"--dir", env.dir}, env.configPath)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	testsupport.AssertExists(t, filepath.Join(env.dir, "Documentos", "reporte.pdf"))
	testsupport.AssertMissing(t, filepath.Join(env.dir, "reporte.pdf"))
	testsupport.AssertExists(t, env.configPath)
	requireContains(t, out,
		"Directory to organize: "+env.dir,
		"Moved reporte.pdf to "+filepath.Join("Documentos", "reporte.pdf"),
		"Organization complete: 1 moved, 0 duplicates, 0 left in place.",
	)
}

func TestOrganizeDeduplicateKeepsFirstInOrder(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.DefaultRules)
	testsupport.WriteFiles(t, env.dir, map[string]string{
		"original.txt": "same bytes",
		"copia.txt":    "same bytes",
	})

	out, _, err := runCLI(t, []string{"--dir", env.dir, "--deduplicate"}, env.configPath)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	want := map[string]string{
		"config.toml":          testsupport.DefaultRules,
		"Documentos/":          "",
		"Documentos/copia.txt": "same bytes",
	}
	if got := testsupport.Tree(t, env.dir); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tree %v", got)
	}
	requireContains(t, out,
		"Duplicate detection enabled.",
		"Duplicate: original.txt is a copy of copia.txt",
		"--> removed original.txt",
		"1 moved, 1 duplicates, 0 left in place.",
	)
}

func TestOrganizeLeavesFilesWithoutExtension(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.DefaultRules)
	testsupport.WriteFiles(t, env.dir, map[string]string{
		"LEEME":       "readme",
		"cancion.mp3": "mp3",
	})

	out, _, err := runCLI(t, []string{"--dir", env.dir}, env.configPath)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	testsupport.AssertExists(t, filepath.Join(env.dir, "LEEME"))
	testsupport.AssertExists(t, filepath.Join(env.dir, "cancion.mp3"))
	requireContains(t, out, "0 moved, 0 duplicates, 2 left in place.")
}

func TestOrganizeLeavesDotfileEvenWhenRuleNamesIt(t *testing.T) {
	env := setupCLITestEnv(t, "[rules.Shell]\nextensions = [\"bashrc\"]\n")
	testsupport.WriteFile(t, filepath.Join(env.dir, ".bashrc"), "export EDITOR=vi")

	out, _, err := runCLI(t, []string{"--dir", env.dir}, env.configPath)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	testsupport.AssertExists(t, filepath.Join(env.dir, ".bashrc"))
	testsupport.AssertMissing(t, filepath.Join(env.dir, "Shell"))
	requireContains(t, out, "0 moved, 0 duplicates, 1 left in place.")
}

func TestOrganizeDryRunChangesNothing(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.DefaultRules)
	testsupport.WriteFiles(t, env.dir, map[string]string{
		"a.txt": "dup",
		"b.txt": "dup",
		"c.png": "img",
	})
	before := testsupport.Tree(t, env.dir)

	out, _, err := runCLI(t, []string{"--dir", env.dir, "--dry-run", "--deduplicate"}, env.configPath)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if after := testsupport.Tree(t, env.dir); !reflect.DeepEqual(before, after) {
		t.Fatalf("dry run mutated the directory:\nbefore %v\nafter  %v", before, after)
	}
	requireContains(t, out,
		"Dry-run mode enabled",
		"Duplicate: b.txt is a copy of a.txt",
		"[dry run] would remove b.txt",
		"[dry run] would move a.txt to "+filepath.Join("Documentos", "a.txt"),
		"[dry run] would move c.png to "+filepath.Join("Imagenes", "c.png"),
		"Dry run complete: 2 moved, 1 duplicates, 0 left in place.",
	)
}

func TestOrganizeSecondRunIsNoop(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.DefaultRules)
	testsupport.WriteFiles(t, env.dir, map[string]string{
		"a.pdf": "a",
		"b.jpg": "b",
		"notes": "n",
	})
	if _, _, err := runCLI(t, []string{"--dir", env.dir, "--deduplicate"}, env.configPath); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := testsupport.Tree(t, env.dir)

	out, _, err := runCLI(t, []string{"--dir", env.dir, "--deduplicate"}, env.configPath)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second := testsupport.Tree(t, env.dir); !reflect.DeepEqual(first, second) {
		t.Fatalf("second run changed the tree:\nfirst  %v\nsecond %v", first, second)
	}
	requireContains(t, out, "0 moved, 0 duplicates, 1 left in place.")
}

func TestOrganizeSummaryTable(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.DefaultRules)
	testsupport.WriteFiles(t, env.dir, map[string]string{
		"a.pdf": "a",
		"b.txt": "b",
	})

	out, _, err := runCLI(t, []string{"--dir", env.dir, "--summary"}, env.configPath)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, out, "Run summary", "Scanned", "Moved", "No Extension", "Documentos")
}

func TestOrganizeMissingConfigIsConfigurationError(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	dir := t.TempDir()

	_, _, err := runCLI(t, []string{"--dir", dir}, filepath.Join(dir, "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !errors.Is(err, fault.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if code := fault.ExitCode(err); code != fault.ExitConfiguration {
		t.Fatalf("expected exit code %d, got %d", fault.ExitConfiguration, code)
	}
	requireContains(t, err.Error(), "filesorter config init")
}

func TestOrganizeConfigWithoutRulesIsConfigurationError(t *testing.T) {
	env := setupCLITestEnv(t, "[logging]\nlevel = \"info\"\n")
	testsupport.WriteFile(t, filepath.Join(env.dir, "a.pdf"), "pdf")

	_, _, err := runCLI(t, []string{"--dir", env.dir}, env.configPath)
	if code := fault.ExitCode(err); code != fault.ExitConfiguration {
		t.Fatalf("expected exit code %d, got %d (%v)", fault.ExitConfiguration, code, err)
	}
	testsupport.AssertExists(t, filepath.Join(env.dir, "a.pdf"))
}

func TestOrganizeInvalidLogLevelFlag(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.DefaultRules)

	_, _, err := runCLI(t, []string{"--dir", env.dir, "--log-level", "loud"}, env.configPath)
	if !errors.Is(err, fault.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestOrganizeMissingDirectory(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.DefaultRules)

	_, _, err := runCLI(t, []string{"--dir", filepath.Join(env.dir, "nope")}, env.configPath)
	if !errors.Is(err, fault.ErrListing) {
		t.Fatalf("expected listing error, got %v", err)
	}
	if code := fault.ExitCode(err); code != fault.ExitFailure {
		t.Fatalf("expected exit code %d, got %d", fault.ExitFailure, code)
	}
}

func TestOrganizeRequiresDir(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.DefaultRules)

	_, _, err := runCLI(t, nil, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "dir") {
		t.Fatalf("expected missing --dir error, got %v", err)
	}
}

func TestOrganizeReadOnlyDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	env := setupCLITestEnv(t, testsupport.DefaultRules)
	testsupport.WriteFile(t, filepath.Join(env.dir, "notes.xyz"), "no rule")
	if err := os.Chmod(env.dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(env.dir, 0o755) })

	out, _, err := runCLI(t, []string{"--dir", env.dir, "--deduplicate"}, env.configPath)
	if err != nil {
		t.Fatalf("read-only directory with nothing to move should succeed: %v", err)
	}
	requireContains(t, out, "0 moved, 0 duplicates, 1 left in place.")

	if err := os.Chmod(env.dir, 0o755); err != nil {
		t.Fatal(err)
	}
	testsupport.WriteFile(t, filepath.Join(env.dir, "a.pdf"), "pdf")
	if err := os.Chmod(env.dir, 0o555); err != nil {
		t.Fatal(err)
	}
	_, _, err = runCLI(t, []string{"--dir", env.dir}, env.configPath)
	if !errors.Is(err, fault.ErrFileIO) {
		t.Fatalf("expected file i/o error once a move is needed, got %v", err)
	}
	requireContains(t, err.Error(), "create folder")
}

func TestOrganizeCollisionIsFatal(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.DefaultRules)
	testsupport.WriteFiles(t, env.dir, map[string]string{
		"a.pdf":            "new a",
		"b.pdf":            "new b",
		"Documentos/b.pdf": "old b",
	})

	_, _, err := runCLI(t, []string{"--dir", env.dir}, env.configPath)
	if !errors.Is(err, fault.ErrFileIO) {
		t.Fatalf("expected file i/o error, got %v", err)
	}
	requireContains(t, err.Error(), "move file", "b.pdf")
	testsupport.AssertExists(t, filepath.Join(env.dir, "Documentos", "a.pdf"))
	testsupport.AssertExists(t, filepath.Join(env.dir, "b.pdf"))
}

func TestOrganizeLockedDirectory(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.DefaultRules)
	testsupport.WriteFile(t, filepath.Join(env.dir, "a.pdf"), "a")

	held, err := dirlock.Acquire(env.dir, false)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	t.Cleanup(func() { _ = held.Release() })

	_, _, err = runCLI(t, []string{"--dir", env.dir}, env.configPath)
	if !errors.Is(err, fault.ErrLocked) {
		t.Fatalf("expected locked error, got %v", err)
	}
	testsupport.AssertExists(t, filepath.Join(env.dir, "a.pdf"))
}

func TestRulesCommandShowsMatchOrder(t *testing.T) {
	env := setupCLITestEnv(t, `
ignore = ["*.part"]

[rules.Zeta]
extensions = ["txt"]
priority = -1

[rules.Alpha]
extensions = ["txt", "md"]
`)

	out, _, err := runCLI(t, []string{"rules"}, env.configPath)
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	zeta := strings.Index(out, "Zeta")
	alpha := strings.Index(out, "Alpha")
	if zeta < 0 || alpha < 0 || zeta > alpha {
		t.Fatalf("expected Zeta before Alpha:\n%s", out)
	}
	requireContains(t, out, "txt, md", "Ignored names: *.part")
}

func TestConfigInitAndValidate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	testsupport.AssertExists(t, target)

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err == nil || !strings.Contains(err.Error(), "--overwrite") {
		t.Fatalf("expected existing-file error, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+target, "Configuration valid")
}

func TestConfigValidateRejectsBadRules(t *testing.T) {
	env := setupCLITestEnv(t, "[rules.Docs]\nextensions = [\".pdf\"]\n")

	_, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if !errors.Is(err, fault.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestCheckCommand(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.DefaultRules)

	out, _, err := runCLI(t, []string{"check", "--dir", env.dir}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "== Preflight ==", "Target directory:", "Config rules:", "Directory lock:", "All checks passed")

	out, _, err = runCLI(t, []string{"check", "--dir", filepath.Join(env.dir, "missing")}, filepath.Join(env.dir, "missing.toml"))
	if !errors.Is(err, fault.ErrListing) {
		t.Fatalf("expected listing error, got %v", err)
	}
	requireContains(t, out, "[ERROR]")
}

func TestVersionCommandSkipsConfig(t *testing.T) {
	out, _, err := runCLI(t, []string{"version"}, filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "filesorter ")
}
