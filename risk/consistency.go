package risk

import (
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/config"
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/equity"
)

// DayViolation is one trading day whose net profit exceeded the
// consistency cap.
type DayViolation struct {
	Day     string
	Pnl     float64
	AtIndex int // last equity point of the violating day
}

// ConsistencyResult is the consistency rule's verdict over a completed
// trade set.
type ConsistencyResult struct {
	Enabled          bool
	TotalProfit      float64
	MaxAllowedPerDay float64
	Violations       []DayViolation
	Passed           bool
}

// CheckConsistency evaluates the consistency rule: no single trading day may
// net more than rule.Pct percent of total profit.
//
// The cap is derived from the final total profit of the whole sequence, not
// accrued as trades arrive. That makes the rule non-causal: appending a
// losing trade lowers the cap and can retroactively turn an earlier day into
// a violation. This matches the product's accounting and is asserted by
// tests; do not "fix" it here.
//
// Dateless points contribute to total profit but cannot be grouped into a
// day, so they can never themselves violate. resetTime must be the same
// boundary the daily drawdown engine uses.
func CheckConsistency(points []equity.Point, rule config.ConsistencyRule, resetTime string) ConsistencyResult {
	if !rule.Enabled {
		return ConsistencyResult{Passed: true}
	}

	total := 0.0
	for _, p := range points {
		total += p.Pnl
	}
	if total < 0 {
		total = 0
	}
	maxAllowed := total * rule.Pct / 100

	// Points arrive chronologically sorted, so day keys appear in order; track
	// first-appearance order for deterministic violation reporting.
	sums := map[string]float64{}
	last := map[string]int{}
	var order []string
	for _, p := range points {
		if p.Index == 0 || !p.Dated() {
			continue
		}
		key := equity.TradingDay(p.Date, p.Time, resetTime)
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += p.Pnl
		last[key] = p.Index
	}

	res := ConsistencyResult{
		Enabled:          true,
		TotalProfit:      total,
		MaxAllowedPerDay: maxAllowed,
		Passed:           true,
	}
	for _, day := range order {
		if sums[day] > maxAllowed {
			res.Violations = append(res.Violations, DayViolation{
				Day:     day,
				Pnl:     sums[day],
				AtIndex: last[day],
			})
			res.Passed = false
		}
	}
	return res
}
