// Package renderer turns stock statistics into markdown.
package renderer

import (
	"errors"
	"time"

	"github.com/etnz/stocks"
	"github.com/shopspring/decimal"
)

// statPlaces is the number of decimal places of ratios in reports.
const statPlaces = 4

// Report is the statistics of every stock of an index.
type Report struct {
	Title    string
	On       time.Time // time of the most recent record
	Currency string
	Price    string // price the ratios are computed at, empty for the latest price
	Stocks   []StockRow
	Index    string
}

// StockRow is the statistics of a single stock.
type StockRow struct {
	Symbol        string
	Type          string
	Par           string
	Trades        int
	Price         string
	DividendYield string
	PERatio       string
	VWAP          string
}

// NewReport computes the statistics of every stock in idx.
//
// Ratios are computed at price if it is positive, and at the latest price of
// each stock otherwise. A statistic that cannot be computed is reported as
// "n/a".
func NewReport(title string, idx *stocks.Index, price stocks.Price, currency string) *Report {
	r := &Report{
		Title:    title,
		Currency: currency,
	}
	if price.IsPositive() {
		r.Price = price.Format(currency)
	}

	for s := range idx.All() {
		latest := s.Latest()
		if latest.Time.After(r.On) {
			r.On = latest.Time
		}
		row := StockRow{
			Symbol: s.Symbol(),
			Type:   s.Type().String(),
			Par:    s.ParValue().Format(currency),
			Trades: s.Len() - 1,
			Price:  latest.Price.Format(currency),
		}
		row.DividendYield = ratio(s.DividendYield(price))
		row.PERatio = ratio(s.PERatio(price))
		if vwap, err := s.VolumeWeightedPrice(); err != nil {
			row.VWAP = notAvailable(err)
		} else {
			row.VWAP = vwap.Format(currency)
		}
		r.Stocks = append(r.Stocks, row)
	}

	r.Index = ratio(idx.AllShareIndex())
	return r
}

func ratio(d decimal.Decimal, err error) string {
	if err != nil {
		return notAvailable(err)
	}
	return d.StringFixed(statPlaces)
}

// notAvailable describes why a statistic is missing.
func notAvailable(err error) string {
	switch {
	case errors.Is(err, stocks.ErrDivisionByZero):
		return "n/a (no price)"
	case errors.Is(err, stocks.ErrInvalidInput):
		return "n/a (non positive price)"
	default:
		return "n/a"
	}
}
