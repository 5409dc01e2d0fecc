package main

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"spdxdiff/internal/config"
	"spdxdiff/internal/testsupport"
	"spdxdiff/internal/textcache"
)

type cliTestEnv struct {
	server     *testsupport.SPDXServer
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	server := testsupport.NewSPDXServer(t,
		testsupport.Licenses("GPL-2.0", "MIT", "GPL-3.0", "Apache-2.0"),
		map[string]string{
			"GPL-2.0":    "The GNU General Public License version two",
			"GPL-3.0":    "The GNU General Public License version three",
			"MIT":        "Permission is hereby granted",
			"Apache-2.0": "Apache License",
		})

	cfg := testsupport.NewConfig(t, append([]testsupport.ConfigOption{testsupport.WithSPDXServer(server)}, opts...)...)
	configPath := filepath.Join(t.TempDir(), "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{server: server, cfg: cfg, configPath: configPath}
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

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}

func TestDefaultCommandPrintsReport(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, env.configPath)
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	want := strings.Join([]string{
		"Grouping licenses by prefix...",
		"Grouped licenses and identified differences:",
		"Group: GPL-Like",
		"  Common words across all licenses: the, gnu, general, public, license, version",
		"  Unique words for GPL-2.0: two",
		"  Unique words for GPL-3.0: three",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", out, want)
	}

	// Singleton groups fetch nothing.
	if hits := env.server.TextHits("MIT"); hits != 0 {
		t.Fatalf("expected MIT text to be skipped, got %d fetches", hits)
	}
}

func TestReportServesRepeatRunsFromCache(t *testing.T) {
	env := setupCLITestEnv(t)

	for i := 0; i < 2; i++ {
		if _, _, err := runCLI(t, []string{"report"}, env.configPath); err != nil {
			t.Fatalf("report run %d: %v", i, err)
		}
	}
	if hits := env.server.TextHits("GPL-2.0"); hits != 1 {
		t.Fatalf("expected a single fetch for GPL-2.0, got %d", hits)
	}
	if _, err := os.Stat(filepath.Join(env.cfg.Cache.Dir, "GPL-2.0.txt")); err != nil {
		t.Fatalf("expected cached text: %v", err)
	}
}

func TestReportIncludeFilter(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"report", "--include", "MIT*"}, env.configPath)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	requireNotContains(t, out, "Group: GPL-Like")
	requireContains(t, out, "Grouped licenses and identified differences:")

	if _, _, err := runCLI(t, []string{"report", "--include", "["}, env.configPath); err == nil {
		t.Fatal("expected invalid pattern to fail")
	}
}

func TestReportIncludeFromConfig(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithInclude("Apache*"))

	out, _, err := runCLI(t, []string{"report"}, env.configPath)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	requireNotContains(t, out, "Group: GPL-Like")

	// A command-line pattern replaces the configured ones.
	out, _, err = runCLI(t, []string{"report", "--include", "GPL-3.0"}, env.configPath)
	if err != nil {
		t.Fatalf("report --include: %v", err)
	}
	requireContains(t, out, "Group: GPL-Like")
}

func TestReportMissingTextEmptiesCommonWords(t *testing.T) {
	env := setupCLITestEnv(t)
	env.server.SetTextStatus("GPL-3.0", http.StatusNotFound)

	out, errOut, err := runCLI(t, []string{"report"}, env.configPath)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	requireContains(t, errOut, "report: license texts unavailable")
	requireContains(t, errOut, "event_type=license_text_missing")
	requireNotContains(t, out, "license_text_missing")
	requireContains(t, out, "  Common words across all licenses: \n")
	requireContains(t, out, "  Unavailable texts: GPL-3.0\n")
	requireContains(t, out, "  Unique words for GPL-2.0: the, gnu, general, public, license, version, two\n")
	requireContains(t, out, "  Unique words for GPL-3.0: \n")

	if _, err := os.Stat(filepath.Join(env.cfg.Cache.Dir, "GPL-3.0.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected failed fetch not to be cached, stat err=%v", err)
	}
}

func TestReportFailsWhenCatalogUnavailable(t *testing.T) {
	env := setupCLITestEnv(t)
	env.server.SetCatalogStatus(http.StatusInternalServerError)

	out, _, err := runCLI(t, []string{"report"}, env.configPath)
	if err == nil {
		t.Fatal("expected catalog failure to be fatal")
	}
	if out != "" {
		t.Fatalf("expected no report output, got %q", out)
	}
}

func TestReportFailsWhenCacheLocked(t *testing.T) {
	env := setupCLITestEnv(t)

	cache, err := textcache.New(env.cfg.Cache.Dir, env.cfg.SPDX.TextBaseURL)
	if err != nil {
		t.Fatalf("textcache.New: %v", err)
	}
	unlock, err := cache.Lock()
	if err != nil {
		t.Fatalf("Lock: %v", err)
	}
	defer func() { _ = unlock() }()

	_, _, err = runCLI(t, []string{"report"}, env.configPath)
	if !errors.Is(err, textcache.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestGroupsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"groups"}, env.configPath)
	if err != nil {
		t.Fatalf("groups: %v", err)
	}
	requireContains(t, out, "GPL-Like")
	requireContains(t, out, "GPL-2.0, GPL-3.0")
	requireContains(t, out, "1 groups from 4 licenses")
	if hits := env.server.CatalogHits(); hits != 1 {
		t.Fatalf("expected one catalog request, got %d", hits)
	}
	if hits := env.server.TextHits("GPL-2.0"); hits != 0 {
		t.Fatalf("groups should not fetch texts, got %d", hits)
	}

	out, _, err = runCLI(t, []string{"groups", "--include", "Apache*"}, env.configPath)
	if err != nil {
		t.Fatalf("groups --include: %v", err)
	}
	requireContains(t, out, "No license groups")
}

func TestDiffCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"diff", "MIT", "Apache-2.0"}, env.configPath)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	requireContains(t, out, "Group: ad-hoc\n")
	requireContains(t, out, "  Common words across all licenses: \n")
	requireContains(t, out, "  Unique words for MIT: permission, is, hereby, granted\n")
	requireContains(t, out, "  Unique words for Apache-2.0: apache, license\n")

	if _, _, err := runCLI(t, []string{"diff", "MIT"}, env.configPath); err == nil {
		t.Fatal("expected diff with a single id to fail")
	}
}

func TestFetchCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"fetch", "MIT"}, env.configPath)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if out != "Permission is hereby granted\n" {
		t.Fatalf("unexpected text %q", out)
	}

	if _, _, err := runCLI(t, []string{"fetch", "Unknown-1.0"}, env.configPath); err == nil {
		t.Fatal("expected unknown license to fail")
	}
}

func TestCacheCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	env.server.SetTextStatus("Apache-2.0", http.StatusNotFound)

	out, _, err := runCLI(t, []string{"cache", "warm"}, env.configPath)
	if err != nil {
		t.Fatalf("cache warm: %v", err)
	}
	requireContains(t, out, "Cached 3 of 4 license texts")
	requireContains(t, out, "Unavailable: Apache-2.0")

	out, _, err = runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	for _, id := range []string{"GPL-2.0", "GPL-3.0", "MIT"} {
		requireContains(t, out, id)
	}
	requireNotContains(t, out, "Apache-2.0")

	out, _, err = runCLI(t, []string{"cache", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "Entries:   3")
	requireContains(t, out, env.cfg.Cache.Dir)

	out, _, err = runCLI(t, []string{"cache", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Removed 3 cached texts")

	out, _, err = runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list after clear: %v", err)
	}
	requireContains(t, out, "Cached texts: none")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestInvalidLogLevelFlagIsRejected(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"--log-level", "verbose", "report"}, env.configPath); err == nil {
		t.Fatal("expected unsupported log level to fail")
	}
}

func TestInvalidConfigIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[spdx]\ncatalog_url = \"ftp://example.com\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := runCLI(t, []string{"groups"}, path); err == nil {
		t.Fatal("expected invalid catalog url to fail")
	}
}
