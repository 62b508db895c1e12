package stocks

import (
	"fmt"
	"time"
)

// TrailingWindow is the length of trading used by VolumeWeightedPrice.
const TrailingWindow = 5 * time.Minute

// trailing returns the records at most d older than the last one.
//
// The ledger is scanned backward from its end and the scan stops on the first
// record strictly older than the bound, or at the start of the ledger.
func trailing(history []Trade, d time.Duration) []Trade {
	if len(history) == 0 {
		return nil
	}
	bound := history[len(history)-1].Time.Add(-d)
	i := len(history)
	for i > 0 && !history[i-1].Time.Before(bound) {
		i--
	}
	return history[i:]
}

// VolumeWeightedPrice returns the volume weighted price over the trailing
// window of trading that ends with the most recent record.
func (s *Stock) VolumeWeightedPrice() (Price, error) {
	return s.VolumeWeightedPriceOver(TrailingWindow)
}

// VolumeWeightedPriceOver is like VolumeWeightedPrice with a trailing window of
// length d.
func (s *Stock) VolumeWeightedPriceOver(d time.Duration) (Price, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	window := trailing(s.history, d)
	if len(window) == 0 {
		return Price{}, fmt.Errorf("%s: %w", s.symbol, ErrEmptyWindow)
	}

	var amount Price
	var volume Quantity
	for _, t := range window {
		amount = amount.Add(t.Amount())
		volume = volume.Add(t.Quantity)
	}
	if volume.IsZero() {
		return Price{}, fmt.Errorf("%s: no volume traded in the last %v: %w", s.symbol, d, ErrDivisionByZero)
	}
	return amount.Div(volume), nil
}
