package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestSimulateCmd(t *testing.T) {
	args := []string{"-seed", "42", "-start", "2018-04-29 22:00:00", "-end", "2018-04-29 22:05:00", "-show", "GIN", "-limit", "3"}
	got, status := run(t, &simulateCmd{}, args...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("simulate %q = %v, want %v", args, status, subcommands.ExitSuccess)
	}

	for _, want := range []string{
		"# Simulation from 2018-04-29 22:00:00 to 2018-04-29 22:05:00\n",
		"| ALE | common | £60.00 | 300 |",
		"| GIN | preferred | £100.00 | 300 |",
		"| TEA | common | £100.00 | 300 |",
		"**All Share Index**: ",
		"# GIN\n",
		"298 older trades not shown.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("simulate output does not contain %q, got:\n%s", want, got)
		}
	}

	// same seed, same report.
	again, _ := run(t, &simulateCmd{}, args...)
	if again != got {
		t.Errorf("simulate with the same seed printed a different report")
	}
}

func TestSimulateCmd_Universe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "universe.yaml")
	content := "stocks:\n  - symbol: XYZ\n    type: preferred\n    par: 10\n    fixedDividend: 5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write universe: %v", err)
	}

	got, status := runWithUniverse(t, &simulateCmd{}, path, "-end", "2018-04-29 22:01:00")
	if status != subcommands.ExitSuccess {
		t.Fatalf("simulate = %v, want %v", status, subcommands.ExitSuccess)
	}
	if !strings.Contains(got, "| XYZ | preferred | £10.00 | 60 |") {
		t.Errorf("simulate output does not list XYZ, got:\n%s", got)
	}
	if strings.Contains(got, "| GIN |") {
		t.Errorf("simulate output lists the default universe, got:\n%s", got)
	}
}

func TestSimulateCmd_Errors(t *testing.T) {
	testCases := []struct {
		args []string
		want subcommands.ExitStatus
	}{
		{args: []string{"-start", "now"}, want: subcommands.ExitUsageError},
		{args: []string{"-end", "later"}, want: subcommands.ExitUsageError},
		{args: []string{"-price", "cheap"}, want: subcommands.ExitUsageError},
		{args: []string{"-show", "XXX"}, want: subcommands.ExitUsageError},
	}
	for _, tc := range testCases {
		if _, status := run(t, &simulateCmd{}, tc.args...); status != tc.want {
			t.Errorf("simulate %q = %v, want %v", tc.args, status, tc.want)
		}
	}

	if _, status := runWithUniverse(t, &simulateCmd{}, filepath.Join(t.TempDir(), "missing.yaml")); status != subcommands.ExitFailure {
		t.Errorf("simulate with a missing universe = %v, want %v", status, subcommands.ExitFailure)
	}
}
