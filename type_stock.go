package stocks

import (
	"fmt"
	"strings"
)

// StockType defines how the dividend yield of a stock is computed.
type StockType int

const (
	// Common stocks yield their last dividend.
	Common StockType = iota
	// Preferred stocks yield a fixed dividend rate of their par value.
	Preferred
)

func (t StockType) String() string {
	switch t {
	case Common:
		return "common"
	case Preferred:
		return "preferred"
	default:
		return "unknown"
	}
}

// ParseStockType parses a stock type, ignoring case.
func ParseStockType(s string) (StockType, error) {
	switch strings.ToLower(s) {
	case "common":
		return Common, nil
	case "preferred":
		return Preferred, nil
	default:
		return 0, fmt.Errorf("%w: %q is not %q or %q", ErrInvalidStockType, s, "common", "preferred")
	}
}

func (t StockType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *StockType) UnmarshalText(text []byte) (err error) {
	*t, err = ParseStockType(string(text))
	return err
}

// Side is the direction of a trade.
type Side int

const (
	Sell Side = iota
	Buy
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseSide parses a trade side, ignoring case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("%w: %q is not %q or %q", ErrInvalidSide, s, "buy", "sell")
	}
}

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Side) UnmarshalText(text []byte) (err error) {
	*s, err = ParseSide(string(text))
	return err
}
