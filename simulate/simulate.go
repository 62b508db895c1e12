// Package simulate generates random trades to exercise stock ledgers.
//
// It is a fixture generator: it never reads the clock nor a global random
// source, so a given seed always produces the same trades.
package simulate

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/etnz/stocks"
	"github.com/shopspring/decimal"
)

const (
	// MaxPrice is the exclusive upper bound of generated prices.
	MaxPrice = 100
	// MaxQuantity is the exclusive upper bound of generated quantities.
	MaxQuantity = 10000
)

// Tick is a generated trade, not yet recorded in any ledger.
type Tick struct {
	Time     time.Time
	Price    stocks.Price
	Quantity stocks.Quantity
	Side     stocks.Side
}

// Generator generates ticks from a random source.
type Generator struct {
	rand *rand.Rand
}

// New returns a generator drawing from r.
func New(r *rand.Rand) *Generator {
	return &Generator{rand: r}
}

// NewSeeded returns a generator with a PCG source seeded with seed.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

// Ticks returns one tick per whole second in [start, end), in chronological
// order.
//
// Ticks are not evenly spaced: each one happens at a uniformly drawn second of
// the range, so several ticks can share a second and some seconds have none.
// Prices are whole numbers in [0, MaxPrice), quantities whole numbers in
// [0, MaxQuantity) and the side is Buy or Sell with equal odds.
func (g *Generator) Ticks(start, end time.Time) []Tick {
	n := int(end.Sub(start) / time.Second)
	if n <= 0 {
		return nil
	}

	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = g.rand.IntN(n)
	}
	slices.Sort(offsets)

	ticks := make([]Tick, n)
	for i, off := range offsets {
		side := stocks.Sell
		if g.rand.IntN(2) == 1 {
			side = stocks.Buy
		}
		ticks[i] = Tick{
			Time:     start.Add(time.Duration(off) * time.Second),
			Price:    stocks.P(g.rand.IntN(MaxPrice)),
			Quantity: stocks.Q(g.rand.IntN(MaxQuantity)),
			Side:     side,
		}
	}
	return ticks
}

// Replay records every tick in every stock, tick after tick. The dividend is
// left unchanged.
func Replay(ticks []Tick, all ...*stocks.Stock) {
	for _, t := range ticks {
		for _, s := range all {
			s.Trade(t.Time, t.Price, t.Quantity, t.Side, decimal.Zero)
		}
	}
}
