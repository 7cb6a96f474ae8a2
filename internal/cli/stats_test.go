package cli

import (
	"strings"
	"testing"
)

func TestStatsExampleTree(t *testing.T) {
	out, _, err := runCLI(t, "stats")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Example", "nodes", "800x600", "1.00x", "circles", "labels"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestStatsTruncated(t *testing.T) {
	cfg := writeFile(t, "shallow.toml", "max_depth = 1\n")
	out, _, err := runCLI(t, "--config", cfg, "stats")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "depth limit 1") {
		t.Errorf("stats output missing truncation warning:\n%s", out)
	}
}
