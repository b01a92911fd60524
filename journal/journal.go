// journal/journal.go
package journal

import (
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/equity"
)

// TradeRow is one journaled trade as persisted. Date and Time stay plain
// strings because that is how the dashboard stores them and how the engine
// consumes them; Pnl is NaN when the imported value was not a number.
type TradeRow struct {
	ID        string
	AccountID string
	Date      string // "2006-01-02", may be empty
	Time      string // "15:04", may be empty
	Symbol    string
	Direction string
	Outcome   string
	Pnl       float64
}

// Trade converts the row into the engine's input record.
func (r TradeRow) Trade() equity.Trade {
	return equity.Trade{
		Date:      r.Date,
		Time:      r.Time,
		Pnl:       r.Pnl,
		Symbol:    r.Symbol,
		Direction: r.Direction,
		Outcome:   r.Outcome,
	}
}

// Trades converts a slice of rows, preserving order.
func Trades(rows []TradeRow) []equity.Trade {
	out := make([]equity.Trade, len(rows))
	for i, r := range rows {
		out[i] = r.Trade()
	}
	return out
}

// AccountRow pairs an account with its raw rule configuration, stored as a
// JSON blob exactly as the dashboard wrote it.
type AccountRow struct {
	ID     string
	Name   string
	Config string // raw JSON account config
}

// Store is the persistence surface the CLI needs. The engine itself never
// touches it.
type Store interface {
	SaveAccount(AccountRow) error
	GetAccount(id string) (AccountRow, error)
	SaveTrade(TradeRow) error
	ListTrades(accountID string) ([]TradeRow, error)
	Close() error
}
