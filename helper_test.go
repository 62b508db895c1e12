package stocks

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// t0 is the creation time of the stocks in tests.
var t0 = time.Date(2018, time.April, 29, 22, 0, 0, 0, time.UTC)

// at returns t0 plus sec seconds.
func at(sec int) time.Time { return t0.Add(time.Duration(sec) * time.Second) }

// D is a helper for test to create a decimal from const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// equalValues lets cmp compare the decimal based types by value.
var equalValues = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Price) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) }),
}

// newTestStock creates a stock at t0 or fails the test.
func newTestStock(t *testing.T, symbol, typ string, par, lastDividend, fixedDividend float64) *Stock {
	t.Helper()
	s, err := NewStock(t0, symbol, typ, P(par), D(lastDividend), D(fixedDividend))
	if err != nil {
		t.Fatalf("NewStock(%q, %q) failed: %v", symbol, typ, err)
	}
	return s
}
