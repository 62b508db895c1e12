package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/stocks"
)

// LedgerMarkdown renders the ledger of a stock, most recent trade first.
// At most limit trades are rendered, all of them if limit is not positive.
func LedgerMarkdown(s *stocks.Stock, currency string, limit int) string {
	var trades []stocks.Trade
	for t := range s.History() {
		trades = append(trades, t)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Symbol())
	fmt.Fprintln(&b, "| Time | Side | Quantity | Price | Dividend |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")

	n := 0
	for i := len(trades) - 1; i >= 0; i-- {
		if limit > 0 && n == limit {
			fmt.Fprintf(&b, "\n%d older trades not shown.\n", i+1)
			break
		}
		t := trades[i]
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			t.Time.Format(time.DateTime),
			t.Side,
			t.Quantity,
			t.Price.Format(currency),
			t.Dividend,
		)
		n++
	}
	return b.String()
}
