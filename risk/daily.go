package risk

import (
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/config"
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/equity"
)

// dailyStrategy tracks the balance at the start of the active trading day
// and derives the floor from it. In trailing mode the floor locks
// permanently once it reaches the lock threshold; the lock is never
// re-evaluated downward.
type dailyStrategy struct {
	rule  config.DailyRule
	start float64

	dayStart    float64
	dayKey      string
	locked      bool
	lockedFloor float64
}

func (s *dailyStrategy) Seed() float64 {
	s.dayStart = s.start
	return s.start * (1 - s.rule.Pct/100)
}

func (s *dailyStrategy) Step(prev, cur equity.Point) (float64, bool) {
	newDay := false
	if cur.Dated() {
		key := equity.TradingDay(cur.Date, cur.Time, s.rule.ResetTime)
		if key != s.dayKey {
			// The previous point closed out the old trading day; its
			// balance anchors the new one.
			s.dayStart = prev.Balance
			s.dayKey = key
			newDay = true
		}
	}

	floor := s.dayStart * (1 - s.rule.Pct/100)

	if s.rule.Kind == config.DrawdownTrailing && !s.locked {
		threshold := s.start
		if s.rule.LocksAt == config.LockAtCustom {
			threshold = s.start * (1 + s.rule.LockPct/100)
		}
		if floor >= threshold {
			s.locked = true
			s.lockedFloor = threshold
		}
	}
	if s.locked {
		floor = s.lockedFloor
	}
	return floor, newDay
}

// DailyFloor computes the daily drawdown floor series for the equity curve.
// The starting balance seeds both the first trading day's anchor and the
// trailing lock threshold.
func DailyFloor(points []equity.Point, rule config.DailyRule, startingBalance float64) []FloorPoint {
	return runFloor(points, &dailyStrategy{rule: rule, start: startingBalance})
}
