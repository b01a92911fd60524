package equity

import "math"

// Trade is one closed trade as recorded in the journal. Date and Time are
// kept as the journal's plain strings ("2006-01-02", "15:04") because the
// engine only ever compares and groups them, never does wall-clock math.
//
// An empty Date marks a trade whose calendar day is unknown: it still moves
// the running balance but is skipped by every trading-day-sensitive rule.
// A NaN Pnl marks a value that could not be parsed; such trades are dropped
// from the series entirely.
type Trade struct {
	Date      string
	Time      string // optional; defaults to noon for day resolution
	Pnl       float64
	Symbol    string
	Direction string
	Outcome   string
}

// Usable reports whether the trade contributes to the equity series at all.
func (t Trade) Usable() bool {
	return !math.IsNaN(t.Pnl)
}

// Dated reports whether the trade can participate in trading-day grouping.
func (t Trade) Dated() bool {
	return t.Date != ""
}
