package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/etnz/stocks"
	"github.com/etnz/stocks/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// statsCmd holds the flags for the 'stats' subcommand.
type statsCmd struct {
	symbol        string
	typ           string
	par           float64
	lastDividend  float64
	fixedDividend float64
	price         string
	on            string
	ledger        bool
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "statistics of a single stock" }
func (*statsCmd) Usage() string {
	return `sss stats -symbol <symbol> [-type common|preferred] [-par <value>] [-last-dividend <d>] [-fixed-dividend <d>] [-price <price>] [-on <time>] [-ledger] [<trade>...]

  Lists a stock, records the given trades and prints its dividend yield, P/E
  ratio and volume weighted price.

  A trade is "<time>,<price>,<quantity>,<side>[,<dividend>]". The time is either
  absolute ("2006-01-02 15:04:05" or RFC3339) or a duration after the listing
  time (e.g. "90s"). The side is buy or sell.

Usage Examples:
$ sss stats -symbol GIN -type preferred -par 100 -fixed-dividend 0.02 -price 100
$ sss stats -symbol POP -last-dividend 8 0s,10,100,buy 60s,20,100,sell 120s,30,100,buy
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Symbol of the stock")
	f.StringVar(&c.typ, "type", "common", "Type of the stock (common, preferred)")
	f.Float64Var(&c.par, "par", 100, "Par value")
	f.Float64Var(&c.lastDividend, "last-dividend", 0, "Last dividend, fractions below 1 are aligned to whole percents")
	f.Float64Var(&c.fixedDividend, "fixed-dividend", 0, "Fixed dividend of preferred stocks, fractions below 1 are aligned to whole percents")
	f.StringVar(&c.price, "price", "", "Price to compute the ratios at. Defaults to the latest traded price.")
	f.StringVar(&c.on, "on", "", "Listing time. Defaults to now.")
	f.BoolVar(&c.ledger, "ledger", false, "Also print the ledger")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required")
		return subcommands.ExitUsageError
	}

	on := time.Now().UTC().Truncate(time.Second)
	if c.on != "" {
		var err error
		if on, err = parseTime(c.on); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing listing time: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	var price stocks.Price
	if c.price != "" {
		var err error
		if price, err = stocks.ParsePrice(c.price); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	var trades []stocks.Trade
	var errs error
	for _, arg := range f.Args() {
		t, err := parseTrade(on, arg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		trades = append(trades, t)
	}
	if errs != nil {
		fmt.Fprintf(os.Stderr, "Error parsing trades: %v\n", errs)
		return subcommands.ExitUsageError
	}

	s, err := stocks.NewStock(on, c.symbol, c.typ, stocks.P(c.par),
		decimal.NewFromFloat(c.lastDividend), decimal.NewFromFloat(c.fixedDividend))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	for _, t := range trades {
		s.Trade(t.Time, t.Price, t.Quantity, t.Side, t.Dividend)
	}

	idx, err := stocks.NewIndex(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	md := renderer.RenderReport(renderer.NewReport(s.Symbol(), idx, price, *currency))
	if c.ledger {
		md += "\n" + renderer.LedgerMarkdown(s, *currency, 0)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// parseTrade parses "<time>,<price>,<quantity>,<side>[,<dividend>]". A time
// given as a duration is relative to on.
func parseTrade(on time.Time, s string) (stocks.Trade, error) {
	fields := strings.Split(s, ",")
	if len(fields) < 4 || len(fields) > 5 {
		return stocks.Trade{}, fmt.Errorf("invalid trade %q: want <time>,<price>,<quantity>,<side>[,<dividend>]", s)
	}

	var t stocks.Trade
	var err error
	if d, derr := time.ParseDuration(fields[0]); derr == nil {
		t.Time = on.Add(d)
	} else if t.Time, err = parseTime(fields[0]); err != nil {
		return stocks.Trade{}, fmt.Errorf("invalid trade %q: %w", s, err)
	}
	if t.Price, err = stocks.ParsePrice(fields[1]); err != nil {
		return stocks.Trade{}, fmt.Errorf("invalid trade %q: price: %w", s, err)
	}
	if t.Quantity, err = stocks.ParseQuantity(fields[2]); err != nil {
		return stocks.Trade{}, fmt.Errorf("invalid trade %q: quantity: %w", s, err)
	}
	if t.Side, err = stocks.ParseSide(fields[3]); err != nil {
		return stocks.Trade{}, fmt.Errorf("invalid trade %q: %w", s, err)
	}
	if len(fields) == 5 {
		if t.Dividend, err = decimal.NewFromString(fields[4]); err != nil {
			return stocks.Trade{}, fmt.Errorf("invalid trade %q: dividend: %w", s, err)
		}
	}
	return t, nil
}
