package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/etnz/stocks"
	"github.com/etnz/stocks/renderer"
	"github.com/etnz/stocks/simulate"
	"github.com/google/subcommands"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	seed  uint64
	start string
	end   string
	price string
	show  string
	limit int
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "replay random trades and report the statistics" }
func (*simulateCmd) Usage() string {
	return `sss simulate [-seed <n>] [-start <time>] [-end <time>] [-price <price>] [-show <symbol>] [-limit <n>]

  Lists the stocks of the universe at the start time, generates one random
  trade per second until the end time, records every trade in every stock and
  prints the statistics of each stock and the all share index.

  Times are "2006-01-02 15:04:05" (UTC) or RFC3339.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.seed, "seed", 42, "Seed of the random trades")
	f.StringVar(&c.start, "start", "2018-04-29 22:00:00", "Start of the trading session")
	f.StringVar(&c.end, "end", "2018-04-29 22:30:00", "End of the trading session")
	f.StringVar(&c.price, "price", "", "Price to compute the ratios at. Defaults to the latest price of each stock.")
	f.StringVar(&c.show, "show", "", "Also print the ledger of this symbol")
	f.IntVar(&c.limit, "limit", 20, "Number of trades printed with -show, 0 for all")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := parseTime(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start time: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := parseTime(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end time: %v\n", err)
		return subcommands.ExitUsageError
	}
	var price stocks.Price
	if c.price != "" {
		if price, err = stocks.ParsePrice(c.price); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	u, err := loadUniverse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading universe: %v\n", err)
		return subcommands.ExitFailure
	}
	idx, err := u.Index(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing stocks: %v\n", err)
		return subcommands.ExitFailure
	}
	var shown *stocks.Stock
	if c.show != "" {
		if shown = idx.Stock(c.show); shown == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown symbol %q\n", c.show)
			return subcommands.ExitUsageError
		}
	}

	ticks := simulate.NewSeeded(c.seed).Ticks(start, end)
	log.Printf("generated %d trades with seed %d", len(ticks), c.seed)
	simulate.Replay(ticks, slices.Collect(idx.All())...)

	title := fmt.Sprintf("Simulation from %s to %s", start.Format("2006-01-02 15:04:05"), end.Format("2006-01-02 15:04:05"))
	md := renderer.RenderReport(renderer.NewReport(title, idx, price, *currency))
	if shown != nil {
		md += "\n" + renderer.LedgerMarkdown(shown, *currency, c.limit)
	}
	printMarkdown(md)

	return subcommands.ExitSuccess
}
