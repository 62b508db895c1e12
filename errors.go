package stocks

import "errors"

var (
	// ErrInvalidStockType is returned when a stock type is neither "common" nor "preferred".
	ErrInvalidStockType = errors.New("invalid stock type")
	// ErrInvalidSide is returned when a trade side is neither "buy" nor "sell".
	ErrInvalidSide = errors.New("invalid trade side")
	// ErrDivisionByZero is returned when a ratio, a yield or a weighted price has a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrEmptyWindow is returned when a statistic is computed over a ledger without records.
	ErrEmptyWindow = errors.New("empty window")
	// ErrInvalidInput is returned by GeometricMean for an empty or non positive input,
	// and by Index.Add for a nil stock.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateSymbol is returned when a symbol is added twice to an Index.
	ErrDuplicateSymbol = errors.New("duplicate symbol")
)
