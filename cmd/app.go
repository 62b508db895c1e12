// Package cmd implements the CLI application to compute stock statistics.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stocks/universe"
	"github.com/google/subcommands"
)

// Commands are the subcommands of the application.
var Commands = []subcommands.Command{
	&simulateCmd{},
	&statsCmd{},
	&indexCmd{},
	&topicCmd{},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// Has reports whether name is one of the application subcommands.
func Has(name string) bool {
	for _, cmd := range Commands {
		if cmd.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	universeFile = flag.String("universe", os.Getenv(EnvUniverseFile), "Path to the YAML file listing the stocks. Defaults to the GBCE sample.")
	currency     = flag.String("currency", envOr(EnvCurrency, "GBP"), "Currency of prices")
	Verbose      = flag.Bool("v", envBool(EnvVerbose), "Log diagnostics to stderr")
	raw          = flag.Bool("raw", false, "Print raw markdown instead of rendering it for the terminal")
)

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

// SetupLogging silences the standard logger unless verbose is on.
// It must be called after flags are parsed.
func SetupLogging() {
	log.SetFlags(0)
	log.SetPrefix("sss: ")
	if !*Verbose {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stderr)
}

// loadUniverse returns the universe from the -universe file, or the default one.
func loadUniverse() (*universe.Universe, error) {
	if *universeFile == "" {
		return universe.Default(), nil
	}
	u, err := universe.Load(*universeFile)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d stocks from %q", len(u.Stocks), *universeFile)
	return u, nil
}

// timeFormats are the accepted formats for times on the command line.
var timeFormats = []string{time.DateTime, time.RFC3339}

// parseTime parses a time in one of timeFormats, in UTC when no zone is given.
func parseTime(s string) (time.Time, error) {
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q want format %q or %q", s, time.DateTime, time.RFC3339)
}

// printMarkdown prints md, rendered for the terminal unless -raw is set.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		log.Printf("cannot create markdown renderer: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
