package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/stocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var t0 = time.Date(2018, time.April, 29, 22, 0, 0, 0, time.UTC)

// newTestIndex returns a GIN and POP index, each traded once.
func newTestIndex(t *testing.T) *stocks.Index {
	t.Helper()
	gin, err := stocks.NewStock(t0, "GIN", "preferred", stocks.P(100), decimal.NewFromInt(8), decimal.NewFromFloat(0.02))
	if err != nil {
		t.Fatal(err)
	}
	pop, err := stocks.NewStock(t0, "POP", "common", stocks.P(100), decimal.NewFromInt(8), decimal.Zero)
	if err != nil {
		t.Fatal(err)
	}
	pop.Trade(t0.Add(time.Minute), stocks.P(10), stocks.Q(100), stocks.Buy, decimal.Zero)
	gin.Trade(t0.Add(2*time.Minute), stocks.P(40), stocks.Q(50), stocks.Sell, decimal.Zero)

	idx, err := stocks.NewIndex(pop, gin)
	if err != nil {
		t.Fatal(err)
	}
	return idx
}

func TestRenderReport(t *testing.T) {
	got := RenderReport(NewReport("GBCE", newTestIndex(t), stocks.Price{}, "GBP"))

	want := `# GBCE

As of 2018-04-29 22:02:00.

| Symbol | Type | Par | Trades | Price | Dividend Yield | P/E Ratio | VWAP (5 min) |
|:---|:---|---:|---:|---:|---:|---:|---:|
| GIN | preferred | £100.00 | 1 | £40.00 | 5.0000 | 0.2000 | £40.00 |
| POP | common | £100.00 | 1 | £10.00 | 0.8000 | 0.8000 | £10.00 |

**All Share Index**: 20.0000

`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RenderReport() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderReport_AtPrice(t *testing.T) {
	got := RenderReport(NewReport("GBCE", newTestIndex(t), stocks.P(100), "GBP"))

	for _, want := range []string{
		"As of 2018-04-29 22:02:00. Ratios at £100.00.\n",
		"| GIN | preferred | £100.00 | 1 | £40.00 | 2.0000 | 0.0800 | £40.00 |",
		"| POP | common | £100.00 | 1 | £10.00 | 0.0800 | 0.0800 | £10.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderReport() does not contain %q, got:\n%s", want, got)
		}
	}
}

func TestNewReport_Untraded(t *testing.T) {
	tea, err := stocks.NewStock(t0, "TEA", "common", stocks.P(100), decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatal(err)
	}
	idx, err := stocks.NewIndex(tea)
	if err != nil {
		t.Fatal(err)
	}

	got := NewReport("GBCE", idx, stocks.Price{}, "GBP")
	want := &Report{
		Title:    "GBCE",
		On:       t0,
		Currency: "GBP",
		Stocks: []StockRow{{
			Symbol:        "TEA",
			Type:          "common",
			Par:           "£100.00",
			Trades:        0,
			Price:         "£0.00",
			DividendYield: "n/a (no price)",
			PERatio:       "n/a (no price)",
			VWAP:          "n/a (no price)",
		}},
		Index: "n/a (non positive price)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewReport() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewReport_NegativePrice(t *testing.T) {
	pop, err := stocks.NewStock(t0, "POP", "common", stocks.P(100), decimal.NewFromInt(8), decimal.Zero)
	if err != nil {
		t.Fatal(err)
	}
	pop.Trade(t0.Add(time.Minute), stocks.P(-5), stocks.Q(10), stocks.Buy, decimal.Zero)
	idx, err := stocks.NewIndex(pop)
	if err != nil {
		t.Fatal(err)
	}

	got := NewReport("GBCE", idx, stocks.Price{}, "GBP")
	if want := "n/a (non positive price)"; got.Index != want {
		t.Errorf("NewReport().Index = %q, want %q", got.Index, want)
	}
	if want := "-1.6000"; got.Stocks[0].DividendYield != want {
		t.Errorf("NewReport().Stocks[0].DividendYield = %q, want %q", got.Stocks[0].DividendYield, want)
	}
}

func TestLedgerMarkdown(t *testing.T) {
	pop := newTestIndex(t).Stock("POP")

	want := `# POP

| Time | Side | Quantity | Price | Dividend |
|:---|:---|---:|---:|---:|
| 2018-04-29 22:01:00 | buy | 100 | £10.00 | 8 |
| 2018-04-29 22:00:00 | sell | 0 | £0.00 | 8 |
`
	if diff := cmp.Diff(want, LedgerMarkdown(pop, "GBP", 0)); diff != "" {
		t.Errorf("LedgerMarkdown() mismatch (-want +got):\n%s", diff)
	}

	got := LedgerMarkdown(pop, "GBP", 1)
	if !strings.HasSuffix(got, "| 2018-04-29 22:01:00 | buy | 100 | £10.00 | 8 |\n\n1 older trades not shown.\n") {
		t.Errorf("LedgerMarkdown(limit=1) got:\n%s", got)
	}
}
