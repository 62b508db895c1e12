package stocks

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

// Index is a collection of stocks indexed by symbol.
type Index struct {
	stocks map[string]*Stock
}

// NewIndex creates an index with the given stocks.
func NewIndex(stocks ...*Stock) (*Index, error) {
	idx := &Index{stocks: make(map[string]*Stock)}
	for _, s := range stocks {
		if err := idx.Add(s); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Add adds a stock to the index. It fails with ErrDuplicateSymbol if a stock
// with the same symbol is already there.
func (x *Index) Add(s *Stock) error {
	if s == nil {
		return fmt.Errorf("cannot add a nil stock: %w", ErrInvalidInput)
	}
	if x.stocks == nil {
		x.stocks = make(map[string]*Stock)
	}
	if _, exists := x.stocks[s.Symbol()]; exists {
		return fmt.Errorf("cannot add %q: %w", s.Symbol(), ErrDuplicateSymbol)
	}
	x.stocks[s.Symbol()] = s
	return nil
}

// Stock returns the stock with this symbol, or nil if unknown.
func (x *Index) Stock(symbol string) *Stock { return x.stocks[symbol] }

// Len returns the number of stocks in the index.
func (x *Index) Len() int { return len(x.stocks) }

// All iterates over the stocks in symbol order.
func (x *Index) All() iter.Seq[*Stock] {
	return func(yield func(*Stock) bool) {
		for _, symbol := range slices.Sorted(maps.Keys(x.stocks)) {
			if !yield(x.stocks[symbol]) {
				return
			}
		}
	}
}

// AllShareIndex returns the geometric mean of the latest price of every stock
// in the index.
func (x *Index) AllShareIndex() (decimal.Decimal, error) {
	return AllShareIndex(x.All())
}

// AllShareIndex returns the geometric mean of the latest price of stocks.
func AllShareIndex(stocks iter.Seq[*Stock]) (decimal.Decimal, error) {
	var prices []decimal.Decimal
	for s := range stocks {
		prices = append(prices, s.Price().Decimal())
	}
	idx, err := GeometricMean(prices...)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot compute all share index: %w", err)
	}
	return idx, nil
}

const (
	// meanPrecision is the number of decimal places of the intermediate logarithms.
	meanPrecision = 24
	// MeanPlaces is the number of decimal places of GeometricMean results.
	MeanPlaces = 16
)

// expMu serializes Ln and ExpTaylor, which cache factorials in a package variable.
var expMu sync.Mutex

// GeometricMean returns the nth root of the product of n positive values,
// rounded to MeanPlaces decimal places.
//
// It fails with ErrInvalidInput if there is no value or if one value is not
// positive. The root is computed as the exponential of the mean logarithm, so
// the product never grows with long sequences.
func GeometricMean(values ...decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, fmt.Errorf("geometric mean of nothing: %w", ErrInvalidInput)
	}
	for i, v := range values {
		if !v.IsPositive() {
			return decimal.Zero, fmt.Errorf("geometric mean of non positive value %s at %d: %w", v, i, ErrInvalidInput)
		}
	}

	expMu.Lock()
	defer expMu.Unlock()
	var sum decimal.Decimal
	for i, v := range values {
		ln, err := v.Ln(meanPrecision)
		if err != nil {
			return decimal.Zero, fmt.Errorf("geometric mean of %s at %d: %w", v, i, err)
		}
		sum = sum.Add(ln)
	}
	mean := sum.DivRound(decimal.NewFromInt(int64(len(values))), meanPrecision)
	root, err := mean.ExpTaylor(meanPrecision)
	if err != nil {
		return decimal.Zero, fmt.Errorf("geometric mean: %w", err)
	}
	return root.Round(MeanPlaces), nil
}
