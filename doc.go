// Package stocks provides a small trading ledger for stocks and the statistics
// derived from it.
//
// The core functionalities include:
//   - Stock Ledger: every Stock keeps an append-only, chronological record of
//     its trades, seeded at creation with a zero trade that carries the last
//     declared dividend.
//   - Statistics: dividend yield, price/earnings ratio and the volume weighted
//     price over the trailing five minutes of trading, computed on demand from
//     the ledger.
//   - Index: a collection of stocks keyed by symbol, and the all share index
//     computed as the geometric mean of their latest prices.
//
// Ingestion is tolerant: Trade accepts any value. Computation is strict:
// statistics return ErrDivisionByZero or ErrInvalidInput instead of producing
// undefined numbers.
//
// This package serves as the foundational logic for the `sss` command-line
// tool.
package stocks
