package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(&stderr)
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	defer SetVersion("", "", "")

	if version != "1.0.0" || commit != "abc123" || date != "2026-01-01" {
		t.Errorf("version vars = %q %q %q", version, commit, date)
	}
	out, _, err := runCLI(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "radial 1.0.0") || !strings.Contains(out, "commit: abc123") {
		t.Errorf("--version output = %q", out)
	}
}

func TestRootCommands(t *testing.T) {
	root := NewRootCommand(&bytes.Buffer{})
	for _, name := range []string{"view", "render", "graph", "stats"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"verbose", "config"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s missing", flag)
		}
	}
}

func TestLoadTreeMissingFile(t *testing.T) {
	_, _, err := runCLI(t, "stats", filepath.Join(t.TempDir(), "missing.tree"))
	if err == nil {
		t.Fatal("expected error for missing tree file")
	}
}

func TestCameraFlagsRejectZoom(t *testing.T) {
	_, _, err := runCLI(t, "stats", "--zoom", "0")
	if err == nil || !strings.Contains(err.Error(), "zoom") {
		t.Fatalf("err = %v, want zoom error", err)
	}
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "radial.toml", "width = 200\nheight = 100\n")
	out := filepath.Join(t.TempDir(), "frame.svg")
	if _, _, err := runCLI(t, "--config", cfg, "render", "-o", out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`width="200" height="100"`)) {
		t.Errorf("svg header does not use config viewport: %.120s", data)
	}
}

func TestVerboseLogsFrames(t *testing.T) {
	_, stderr, err := runCLI(t, "-v", "stats")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "frame") || !strings.Contains(stderr, "using example tree") {
		t.Errorf("verbose stderr missing debug output: %q", stderr)
	}
}
