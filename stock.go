package stocks

import (
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Trade is a single record of a Stock ledger.
type Trade struct {
	Time     time.Time
	Price    Price
	Quantity Quantity
	Side     Side
	// Dividend is the dividend in effect at the time of the trade.
	Dividend decimal.Decimal
}

// Amount returns price times quantity.
func (t Trade) Amount() Price { return t.Price.Mul(t.Quantity) }

func (t Trade) String() string {
	return fmt.Sprintf("%s %s %s@%s (dividend %s)", t.Time.Format(time.RFC3339), t.Side, t.Quantity, t.Price, t.Dividend)
}

// Stock is a tradable instrument and the ledger of its trades.
//
// In a Stock, trades are kept in the order they were recorded. The ledger is
// seeded at creation with a zero trade carrying the last dividend, hence it is
// never empty and all statistics can be computed from it alone.
//
// A Stock is safe for concurrent use: Trade is serialized, statistics may run
// concurrently with each other.
type Stock struct {
	symbol        string
	typ           StockType
	par           Price
	fixedDividend decimal.Decimal

	mu      sync.RWMutex
	history []Trade
}

var hundred = decimal.NewFromInt(100)

// alignPercent multiplies values below 1 by 100.
//
// Dividends are expected in whole percents, and fractions (0.02) are aligned
// to that scale (2). Values at or above 1 are kept as they are.
func alignPercent(v decimal.Decimal) decimal.Decimal {
	if v.LessThan(decimal.NewFromInt(1)) {
		return v.Mul(hundred)
	}
	return v
}

// NewStock creates a stock created on a given time.
//
// stockType must be "common" or "preferred" in any case, otherwise
// ErrInvalidStockType is returned. lastDividend and fixedDividend below 1 are
// multiplied by 100.
func NewStock(on time.Time, symbol, stockType string, par Price, lastDividend, fixedDividend decimal.Decimal) (*Stock, error) {
	typ, err := ParseStockType(stockType)
	if err != nil {
		return nil, fmt.Errorf("cannot create stock %q: %w", symbol, err)
	}
	return &Stock{
		symbol:        symbol,
		typ:           typ,
		par:           par,
		fixedDividend: alignPercent(fixedDividend),
		history: []Trade{{
			Time:     on,
			Side:     Sell,
			Dividend: alignPercent(lastDividend),
		}},
	}, nil
}

func (s *Stock) Symbol() string                 { return s.symbol }
func (s *Stock) Type() StockType                { return s.typ }
func (s *Stock) ParValue() Price                { return s.par }
func (s *Stock) FixedDividend() decimal.Decimal { return s.fixedDividend }

func (s *Stock) String() string {
	return fmt.Sprintf("%s (%s, par %s)", s.symbol, s.typ, s.par)
}

// Trade records a trade at the end of the ledger.
//
// A zero dividend means "unchanged": the dividend of the previous record is
// carried forward. No other check is made on the values, in particular trades
// are expected in chronological order but this is not enforced.
func (s *Stock) Trade(on time.Time, price Price, quantity Quantity, side Side, dividend decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dividend.IsZero() && len(s.history) > 0 {
		dividend = s.history[len(s.history)-1].Dividend
	}
	s.history = append(s.history, Trade{
		Time:     on,
		Price:    price,
		Quantity: quantity,
		Side:     side,
		Dividend: dividend,
	})
}

// latest returns the most recent record, or the zero Trade for an empty ledger.
// s.mu must be held.
func (s *Stock) latest() Trade {
	if len(s.history) == 0 {
		return Trade{}
	}
	return s.history[len(s.history)-1]
}

// Latest returns the most recent record of the ledger.
func (s *Stock) Latest() Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest()
}

// Price returns the most recent price.
func (s *Stock) Price() Price { return s.Latest().Price }

// LastDividend returns the dividend of the most recent record.
func (s *Stock) LastDividend() decimal.Decimal { return s.Latest().Dividend }

// Len returns the number of records in the ledger, including the seed record.
func (s *Stock) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// History iterates over a snapshot of the ledger, in order.
func (s *Stock) History() iter.Seq[Trade] {
	s.mu.RLock()
	h := slices.Clone(s.history)
	s.mu.RUnlock()
	return slices.Values(h)
}

// effectivePrice returns price if positive, or the most recent price.
// s.mu must be held.
func (s *Stock) effectivePrice(price Price) (Price, error) {
	if !price.IsPositive() {
		price = s.latest().Price
	}
	if price.IsZero() {
		return Price{}, fmt.Errorf("%s: no price to divide by: %w", s.symbol, ErrDivisionByZero)
	}
	return price, nil
}

// DividendYield returns the dividend yield at a given price.
//
// When price is not positive the most recent price is used instead. Preferred
// stocks yield fixed dividend times par value, Common stocks yield their last
// dividend.
func (s *Stock) DividendYield(price Price) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.effectivePrice(price)
	if err != nil {
		return decimal.Zero, err
	}
	if s.typ == Preferred {
		return s.fixedDividend.Mul(s.par.value).Div(p.value), nil
	}
	return s.latest().Dividend.Div(p.value), nil
}

// PERatio returns the price/earnings ratio at a given price.
//
// When price is not positive the most recent price is used instead. The ratio
// is the last dividend over the price for every stock type.
//
// TODO: check with the exchange whether Preferred stocks should use the fixed
// dividend here, as DividendYield does.
func (s *Stock) PERatio(price Price) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.effectivePrice(price)
	if err != nil {
		return decimal.Zero, err
	}
	return s.latest().Dividend.Div(p.value), nil
}
