package risk

import (
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/config"
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/equity"
)

// bufferPct is the headroom a "buffer" trailing stop allows above the
// starting balance before the floor freezes.
const bufferPct = 0.05

// maxStaticStrategy holds the floor fixed at a fraction of the starting
// balance for the whole sequence.
type maxStaticStrategy struct {
	floor float64
}

func (s *maxStaticStrategy) Seed() float64 { return s.floor }

func (s *maxStaticStrategy) Step(_, _ equity.Point) (float64, bool) {
	return s.floor, false
}

// maxTrailingStrategy raises the floor with the tracked balance peak. The
// stop rule decides when (if ever) the floor freezes:
//
//   - never: the floor follows the peak for the whole sequence.
//   - initial: the floor locks at the starting balance once the trailed
//     floor would reach it.
//   - buffer: the floor locks at startingBalance * 1.05.
//   - custom: the floor locks at startingBalance * (1 + StopPct/100).
//
// Legacy accounts trail with a selectable peak-sampling mode: realtime
// considers every point, eod only samples the balance that closed out each
// trading day.
type maxTrailingStrategy struct {
	rule  config.MaxRule
	start float64

	peak        float64
	floor       float64
	dayKey      string
	locked      bool
	lockedFloor float64
}

func (s *maxTrailingStrategy) Seed() float64 {
	s.peak = s.start
	s.floor = s.start * (1 - s.rule.Pct/100)
	return s.floor
}

func (s *maxTrailingStrategy) Step(prev, cur equity.Point) (float64, bool) {
	if s.locked {
		return s.lockedFloor, false
	}

	sample, ok := s.sample(prev, cur)
	if ok && sample > s.peak {
		s.peak = sample
		s.advance(s.peak * (1 - s.rule.Pct/100))
	}
	if s.locked {
		return s.lockedFloor, false
	}
	return s.floor, false
}

// sample picks the balance the peak tracker may consider at this step.
func (s *maxTrailingStrategy) sample(prev, cur equity.Point) (float64, bool) {
	if s.rule.Mode != config.TrailEndOfDay {
		return cur.Balance, true
	}
	// End-of-day sampling: the previous point's balance becomes visible to
	// the peak only once a new trading day has started.
	if !cur.Dated() {
		return 0, false
	}
	key := equity.TradingDay(cur.Date, cur.Time, config.DefaultResetTime)
	if key == s.dayKey {
		return 0, false
	}
	s.dayKey = key
	return prev.Balance, true
}

// advance moves the floor to candidate, locking it if the stop rule's
// ceiling has been reached.
func (s *maxTrailingStrategy) advance(candidate float64) {
	switch s.rule.StopsAt {
	case config.StopInitial:
		if candidate >= s.start {
			s.lock(s.start)
			return
		}
	case config.StopBuffer:
		ceiling := s.start * (1 + bufferPct)
		if candidate >= ceiling {
			s.lock(ceiling)
			return
		}
	case config.StopCustom:
		ceiling := s.start * (1 + s.rule.StopPct/100)
		if candidate >= ceiling {
			s.lock(ceiling)
			return
		}
	}
	s.floor = candidate
}

func (s *maxTrailingStrategy) lock(floor float64) {
	s.locked = true
	s.lockedFloor = floor
	s.floor = floor
}

// MaxFloor computes the maximum drawdown floor series for the equity curve.
func MaxFloor(points []equity.Point, rule config.MaxRule, startingBalance float64) []FloorPoint {
	if rule.Kind == config.DrawdownTrailing {
		return runFloor(points, &maxTrailingStrategy{rule: rule, start: startingBalance})
	}
	return runFloor(points, &maxStaticStrategy{floor: startingBalance * (1 - rule.Pct/100)})
}
