package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/utils"
)

func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		arg  string
		want utils.Placement
	}{
		{"glider@1,2", utils.Placement{Pattern: "glider", Row: 1, Column: 2}},
		{"Blinker@ 3, 4", utils.Placement{Pattern: "blinker", Row: 3, Column: 4}},
		{"random@0,0,5,6", utils.Placement{Pattern: "random", Height: 5, Width: 6}},
		{"random@2,3,4,4,99", utils.Placement{Pattern: "random", Row: 2, Column: 3, Height: 4, Width: 4, Seed: 99}},
	}
	for _, tt := range tests {
		got, err := parsePlacement(tt.arg)
		if err != nil {
			t.Errorf("parsePlacement(%q) failed: %v", tt.arg, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePlacement(%q) = %+v, want %+v", tt.arg, got, tt.want)
		}
	}

	for _, bad := range []string{"glider", "@1,2", "glider@1", "glider@a,b", "random@1,2", "glider@1,2,3"} {
		if _, err := parsePlacement(bad); err == nil {
			t.Errorf("expected parsePlacement(%q) to fail", bad)
		}
	}
}

func TestRunCommandDefault(t *testing.T) {
	stdout, _, err := executeCmd(t, "run", "--generations", "1")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := "" +
		"ooooooooo\n" +
		"oooxooooo\n" +
		"ooooxoooo\n" +
		"ooxxxoooo\n" +
		"ooooooooo\n" +
		"ooooooooo\n" +
		"ooooooooo\n" +
		"ooooooooo\n" +
		"ooooooooo\n" +
		"\n"
	if !strings.HasPrefix(stdout, want) {
		t.Errorf("expected output to start with the initial board, got\n%s", stdout)
	}
	if strings.Count(stdout, "\n\n") != 2 {
		t.Errorf("expected 2 frames, got\n%s", stdout)
	}
}

func TestRunCommandStats(t *testing.T) {
	_, stderr, err := executeCmd(t, "run", "--generations", "2", "--stats")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{
		"Gen: 2 | Living: 5 | Status: completed",
		"Bounding box: 9 cells",
		"Peak: 5 living at gen 0",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected %q in stderr:\n%s", want, stderr)
		}
	}
}

func TestRunCommandPatternFlags(t *testing.T) {
	stdout, _, err := executeCmd(t, "run", "--rows", "3", "--columns", "3", "--generations", "1",
		"--pattern", "blinker@0,0")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := "oxo\noxo\noxo\n\nooo\nxxx\nooo\n\n"
	if stdout != want {
		t.Errorf("expected %q, got %q", want, stdout)
	}
}

func TestRunCommandOutOfBounds(t *testing.T) {
	placements := []string{
		"glider@1,0",
		"glider@9223372036854775807,0",
		"random@2,0,9223372036854775807,1",
	}
	for _, arg := range placements {
		_, _, err := executeCmd(t, "run", "--rows", "3", "--columns", "3", "--pattern", arg)
		if err == nil || !strings.Contains(err.Error(), "pattern out of bounds") {
			t.Errorf("%s: expected an out of bounds error, got %v", arg, err)
		}
	}
}

func TestRunCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blink.yaml")
	content := `
rows: 3
columns: 3
generations: 2
placements:
  - pattern: blinker
    row: 0
    column: 0
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	stdout, _, err := executeCmd(t, "run", "--config", path, "--generations", "0")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if stdout != "oxo\noxo\noxo\n\n" {
		t.Errorf("expected flags to override the file, got %q", stdout)
	}
}

func TestBatchCommandJSON(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "one.json")
	second := filepath.Join(dir, "two.yaml")
	if err := os.WriteFile(first, []byte(`{"rows": 5, "columns": 5, "generations": 3}`), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if err := os.WriteFile(second, []byte("rows: 4\ncolumns: 4\ngenerations: 2\nstop_when_stable: true\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	stdout, _, err := executeCmd(t, "batch", "--json", "--parallel", "2", first, second)
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}

	var summaries []batchSummary
	if err = json.Unmarshal([]byte(stdout), &summaries); err != nil {
		t.Fatalf("failed to decode output %q: %v", stdout, err)
	}
	if len(summaries) != 2 || summaries[0].Name != "one" || summaries[1].Name != "two" {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}
	if summaries[0].Generations != 3 || summaries[0].StopReason != "completed" {
		t.Errorf("unexpected first summary: %+v", summaries[0])
	}
	if summaries[1].Generations != 1 || summaries[1].StopReason != "extinction" {
		t.Errorf("unexpected second summary: %+v", summaries[1])
	}
}

func TestPatternsCommand(t *testing.T) {
	stdout, _, err := executeCmd(t, "patterns")
	if err != nil {
		t.Fatalf("patterns failed: %v", err)
	}
	for _, want := range []string{"blinker (3x3)\noxo\noxo\noxo\n", "glider (3x3)\noxo\noox\nxxx\n", "random"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCmd(t, "version", "--json")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(stdout, `"version":"`+version+`"`) {
		t.Errorf("unexpected version output: %q", stdout)
	}
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestVersionCommandReportsWriteFailure(t *testing.T) {
	root := newRootCmd()
	root.SetOut(brokenPipe{})
	root.SetErr(io.Discard)
	root.SetArgs([]string{"version", "--json"})

	err := root.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "broken pipe") {
		t.Fatalf("expected the write error, got %v", err)
	}
}
