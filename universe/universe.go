// Package universe defines the set of stocks listed on an exchange.
//
// A universe is described in YAML, one entry per stock:
//
//	stocks:
//	  - symbol: GIN
//	    type: preferred
//	    par: 100
//	    lastDividend: 8
//	    fixedDividend: 0.02
package universe

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/etnz/stocks"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

//go:embed gbce.yaml
var gbce []byte

// Definition is the definition of a single stock.
type Definition struct {
	Symbol        string  `yaml:"symbol"`
	Type          string  `yaml:"type"`
	Par           float64 `yaml:"par"`
	LastDividend  float64 `yaml:"lastDividend"`
	FixedDividend float64 `yaml:"fixedDividend"`
}

// Universe is an ordered list of stock definitions.
type Universe struct {
	Stocks []Definition `yaml:"stocks"`
}

// Default returns the sample universe of the Global Beverage Corporation Exchange.
func Default() *Universe {
	u, err := Parse(gbce)
	if err != nil {
		panic(fmt.Sprintf("embedded universe is invalid: %v", err))
	}
	return u
}

// Load reads a universe from a YAML file.
func Load(path string) (*Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read universe: %w", err)
	}
	u, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid universe %q: %w", path, err)
	}
	return u, nil
}

// Parse decodes and validates a YAML universe.
func Parse(data []byte) (*Universe, error) {
	u := &Universe{}
	if err := yaml.UnmarshalStrict(data, u); err != nil {
		return nil, err
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks every definition and returns all the problems found.
func (u *Universe) Validate() error {
	var errs error
	seen := make(map[string]bool)
	for i, d := range u.Stocks {
		if d.Symbol == "" {
			errs = errors.Join(errs, fmt.Errorf("stock #%d: symbol is missing", i+1))
			continue
		}
		if seen[d.Symbol] {
			errs = errors.Join(errs, fmt.Errorf("stock %q: %w", d.Symbol, stocks.ErrDuplicateSymbol))
		}
		seen[d.Symbol] = true
		if _, err := stocks.ParseStockType(d.Type); err != nil {
			errs = errors.Join(errs, fmt.Errorf("stock %q: %w", d.Symbol, err))
		}
		if d.Par < 0 {
			errs = errors.Join(errs, fmt.Errorf("stock %q: negative par value %v", d.Symbol, d.Par))
		}
	}
	return errs
}

// Symbols returns the symbols in definition order.
func (u *Universe) Symbols() []string {
	symbols := make([]string, 0, len(u.Stocks))
	for _, d := range u.Stocks {
		symbols = append(symbols, d.Symbol)
	}
	return symbols
}

// Stock creates the stock for a definition, listed on a given time.
func (d Definition) Stock(on time.Time) (*stocks.Stock, error) {
	return stocks.NewStock(on, d.Symbol, d.Type, stocks.P(d.Par),
		decimal.NewFromFloat(d.LastDividend), decimal.NewFromFloat(d.FixedDividend))
}

// Index creates every stock of the universe, listed on a given time.
func (u *Universe) Index(on time.Time) (*stocks.Index, error) {
	idx, err := stocks.NewIndex()
	if err != nil {
		return nil, err
	}
	for _, d := range u.Stocks {
		s, err := d.Stock(on)
		if err != nil {
			return nil, err
		}
		if err := idx.Add(s); err != nil {
			return nil, err
		}
	}
	return idx, nil
}
