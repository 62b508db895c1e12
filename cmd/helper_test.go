package cmd

import (
	"bytes"
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

// run executes c with args and returns what it printed as raw markdown.
func run(t *testing.T, c subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	return runWithUniverse(t, c, "", args...)
}

// runWithUniverse is like run with the -universe global flag set to path.
func runWithUniverse(t *testing.T, c subcommands.Command, path string, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}

	var b bytes.Buffer
	oldOut, oldRaw, oldCurrency, oldUniverse := stdout, *raw, *currency, *universeFile
	stdout, *raw, *currency, *universeFile = &b, true, "GBP", path
	defer func() {
		stdout, *raw, *currency, *universeFile = oldOut, oldRaw, oldCurrency, oldUniverse
	}()

	status := c.Execute(context.Background(), f)
	return b.String(), status
}
