package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocks"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type indexCmd struct{}

func (*indexCmd) Name() string     { return "index" }
func (*indexCmd) Synopsis() string { return "geometric mean of prices" }
func (*indexCmd) Usage() string {
	return `sss index <price>...

  Prints the all share index of stocks at the given prices: the geometric mean
  of the prices. Every price must be positive.
`
}

func (c *indexCmd) SetFlags(f *flag.FlagSet) {}

func (c *indexCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prices []decimal.Decimal
	for _, arg := range f.Args() {
		p, err := stocks.ParsePrice(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		prices = append(prices, p.Decimal())
	}

	idx, err := stocks.GeometricMean(prices...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, idx.StringFixed(4))
	return subcommands.ExitSuccess
}
