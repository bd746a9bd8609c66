package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/plansmith/pkg/cache"
	"github.com/matzehuels/plansmith/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"json"}},
		{"svg", []string{"svg"}},
		{"json, dot,xlsx", []string{"json", "dot", "xlsx"}},
		{"svg,,", []string{"svg"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output string
		format string
		single bool
		want   string
	}{
		{"", "json", true, "plan.json"},
		{"", "svg", false, "plan.svg"},
		{"house.json", "json", true, "house.json"},
		{"house", "json", true, "house.json"},
		{"out/house.json", "svg", false, "out/house.svg"},
		{"house.v2", "xlsx", false, "house.v2.xlsx"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.format, tt.single); got != tt.want {
			t.Errorf("outputPath(%q, %q, %v) = %q, want %q", tt.output, tt.format, tt.single, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{"json": []byte("{}"), "dot": []byte("graph G {}")}

	paths, err := writeArtifacts(artifacts, []string{"json", "dot"}, filepath.Join(dir, "sub", "plan"))
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	want := []string{filepath.Join(dir, "sub", "plan.json"), filepath.Join(dir, "sub", "plan.dot")}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
	if got, _ := cacheDir(); got != filepath.Join("/tmp/custom-cache", appName) {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q", got)
	}

	t.Setenv("XDG_CACHE_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got, _ := cacheDir(); got != filepath.Join(home, ".cache", appName) {
		t.Errorf("cacheDir() = %q, want ~/.cache/%s", got, appName)
	}
}

func TestHistoryPath(t *testing.T) {
	t.Setenv(envDB, "/tmp/plans.db")
	if got, _ := historyPath(); got != "/tmp/plans.db" {
		t.Errorf("historyPath() with %s = %q", envDB, got)
	}

	t.Setenv(envDB, "")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	want := filepath.Join("/tmp/data", appName, historyFile)
	if got, _ := historyPath(); got != want {
		t.Errorf("historyPath() = %q, want %q", got, want)
	}
}

func TestStoreLocation(t *testing.T) {
	t.Setenv(envDB, "/tmp/plans.db")
	t.Setenv(envMongoURI, "")

	if got, _ := storeLocation("memory"); got != "memory" {
		t.Errorf("explicit location = %q", got)
	}
	if got, _ := storeLocation(""); got != "/tmp/plans.db" {
		t.Errorf("default location = %q", got)
	}

	t.Setenv(envMongoURI, "mongodb://localhost:27017")
	if got, _ := storeLocation(""); got != "mongodb://localhost:27017" {
		t.Errorf("mongo location = %q", got)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"generate", "wizard", "inspect", "render", "history", "serve", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestNewRunnerOptions(t *testing.T) {
	c := New(io.Discard, LogInfo)
	ctx := context.Background()

	r, err := c.newRunner(ctx, runnerOpts{noCache: true, ids: pipeline.IDSchemeSequential, scope: "staging"})
	if err != nil {
		t.Fatalf("newRunner: %v", err)
	}
	defer r.Close()
	if r.IDScheme != pipeline.IDSchemeSequential {
		t.Errorf("IDScheme = %q", r.IDScheme)
	}
	if got := r.Keyer.PlanKey("abc", cache.PlanKeyOpts{}); !strings.HasPrefix(got, "staging:") {
		t.Errorf("PlanKey = %q, want staging: prefix", got)
	}

	if _, err := c.newRunner(ctx, runnerOpts{noCache: true, ids: "uuid"}); err == nil {
		t.Error("expected error for unknown id scheme")
	}
	if _, err := c.newRunner(ctx, runnerOpts{noCache: true, catalog: "/nonexistent.toml"}); err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestCompletionCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	var out strings.Builder
	root.SetOut(&out)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("completion bash: %v", err)
	}
	if !strings.Contains(out.String(), "plansmith") {
		t.Error("bash completion should mention the program name")
	}

	root.SetArgs([]string{"completion", "tcsh"})
	if err := root.Execute(); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestFormatSize(t *testing.T) {
	tests := map[int64]string{
		0:       "0 B",
		1023:    "1023 B",
		1536:    "1.5 KiB",
		5 << 20: "5.0 MiB",
		3 << 30: "3.0 GiB",
	}
	for n, want := range tests {
		if got := formatSize(n); got != want {
			t.Errorf("formatSize(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestCacheStatsTable(t *testing.T) {
	out := cacheStatsTable([]cache.KindStats{
		{Kind: "artifact", Entries: 2, Bytes: 2048},
		{Kind: "plan", Entries: 1, Bytes: 100},
	})
	for _, want := range []string{"artifact", "plan", "total", "2.1 KiB"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats table missing %q:\n%s", want, out)
		}
	}
}
