package equity

import "sort"

// Point is one entry of the derived equity curve. Point 0 is synthetic and
// carries the starting balance; every later point corresponds to one usable
// trade in chronological order.
type Point struct {
	Index   int
	Date    string
	Time    string
	Balance float64
	Pnl     float64
}

// Dated reports whether the point belongs to a known calendar date.
// The synthetic starting point and dateless trades return false.
func (p Point) Dated() bool {
	return p.Date != ""
}

// sortKey orders trades chronologically. Dateless trades sort ahead of all
// dated ones; a missing or malformed time counts as noon.
func sortKey(t Trade) (string, int) {
	clock := t.Time
	if clock == "" {
		clock = NoonTime
	}
	return t.Date, clockMinutes(clock)
}

// BuildSeries normalizes raw journal trades into the ordered equity curve
// the floor engines consume.
//
// Trades with an unparseable pnl are dropped. Trades without a date keep
// their pnl contribution but are excluded from trading-day grouping by the
// engines. The sort is stable, so trades sharing a (date, time) stamp keep
// their original relative order and repeated calls on the same input always
// produce the same series.
func BuildSeries(trades []Trade, startingBalance float64) []Point {
	usable := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if t.Usable() {
			usable = append(usable, t)
		}
	}

	sort.SliceStable(usable, func(i, j int) bool {
		di, mi := sortKey(usable[i])
		dj, mj := sortKey(usable[j])
		if di != dj {
			return di < dj
		}
		return mi < mj
	})

	points := make([]Point, 0, len(usable)+1)
	points = append(points, Point{Index: 0, Balance: startingBalance})

	balance := startingBalance
	for i, t := range usable {
		balance += t.Pnl
		points = append(points, Point{
			Index:   i + 1,
			Date:    t.Date,
			Time:    t.Time,
			Balance: balance,
			Pnl:     t.Pnl,
		})
	}
	return points
}
