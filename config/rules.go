package config

import (
	"math"
	"time"
)

// Canonical enum values produced by Normalize. The raw config may hold
// anything; these are the only values the engines ever see.
type DrawdownKind string

const (
	DrawdownStatic   DrawdownKind = "static"
	DrawdownTrailing DrawdownKind = "trailing"
)

type LockAnchor string

const (
	LockAtStartBalance LockAnchor = "start_balance"
	LockAtCustom       LockAnchor = "custom"
)

type TrailingStop string

const (
	StopNever   TrailingStop = "never"
	StopInitial TrailingStop = "initial"
	StopBuffer  TrailingStop = "buffer"
	StopCustom  TrailingStop = "custom"
)

type TrailingMode string

const (
	TrailRealtime TrailingMode = "realtime"
	TrailEndOfDay TrailingMode = "eod"
)

// DefaultResetTime is the daily boundary used when the config carries no
// valid reset time: plain calendar midnight.
const DefaultResetTime = "00:00"

// Rules is the normalized configuration consumed by the floor engines.
// Every percentage is clamped to its documented range, every enum holds a
// canonical value, and the legacy max-drawdown representation has been
// resolved into MaxRule, so the engines never see the raw form.
type Rules struct {
	StartingBalance float64
	ProfitTargetPct float64 // [0,500]; 0 disables the target

	Daily       DailyRule
	Max         MaxRule
	Consistency ConsistencyRule
}

// DailyRule is the canonical daily drawdown rule.
type DailyRule struct {
	Enabled   bool
	Pct       float64 // [0,99]
	Kind      DrawdownKind
	ResetTime string // "HH:MM", always valid
	LocksAt   LockAnchor
	LockPct   float64 // [0,99]; used when LocksAt == LockAtCustom
}

// MaxRule is the canonical maximum drawdown rule. Legacy marks rules
// resolved from the old single-percentage representation.
type MaxRule struct {
	Enabled bool
	Pct     float64 // [0,99]
	Kind    DrawdownKind
	StopsAt TrailingStop
	StopPct float64 // [0,99]; used when StopsAt == StopCustom
	Mode    TrailingMode
	Legacy  bool
}

// ConsistencyRule is the canonical consistency rule.
type ConsistencyRule struct {
	Enabled bool
	Pct     float64 // [0,99]
}

func clamp(v Number, lo, hi float64) float64 {
	f := float64(v)
	if math.IsNaN(f) || f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

func kind(s string) DrawdownKind {
	if DrawdownKind(s) == DrawdownTrailing {
		return DrawdownTrailing
	}
	return DrawdownStatic
}

func anchor(s string) LockAnchor {
	if LockAnchor(s) == LockAtCustom {
		return LockAtCustom
	}
	return LockAtStartBalance
}

func trailingStop(s string) TrailingStop {
	switch TrailingStop(s) {
	case StopInitial, StopBuffer, StopCustom:
		return TrailingStop(s)
	}
	return StopNever
}

func trailingMode(s string) TrailingMode {
	if TrailingMode(s) == TrailEndOfDay {
		return TrailEndOfDay
	}
	return TrailRealtime
}

func resetTime(s string) string {
	if _, err := time.Parse("15:04", s); err != nil {
		return DefaultResetTime
	}
	return s
}

// Normalize resolves the raw account configuration into canonical Rules.
// It never fails: out-of-range numbers are clamped, NaN and missing values
// become zero, unknown enum values fall back to their documented defaults,
// and the legacy max-drawdown percentage is folded into a canonical MaxRule.
func (a Account) Normalize() Rules {
	r := Rules{
		StartingBalance: clamp(a.StartingBalance, 0, math.MaxFloat64),
		ProfitTargetPct: clamp(a.ProfitTargetPct, 0, 500),
	}

	r.Daily = DailyRule{
		Enabled:   a.DailyDrawdown.Enabled,
		Pct:       clamp(a.DailyDrawdown.Pct, 0, 99),
		Kind:      kind(a.DailyDrawdown.Type),
		ResetTime: resetTime(a.DailyDrawdown.ResetTime),
		LocksAt:   anchor(a.DailyDrawdown.LocksAt),
		LockPct:   clamp(a.DailyDrawdown.LocksAtPct, 0, 99),
	}

	r.Max = normalizeMax(a.MaxDrawdown)

	r.Consistency = ConsistencyRule{
		Enabled: a.Consistency.Enabled,
		Pct:     clamp(a.Consistency.Pct, 0, 99),
	}

	return r
}

// normalizeMax folds the two max-drawdown representations into one rule.
// When the new rule is disabled but a legacy percentage is present, the
// legacy path runs the trailing algorithm with a selectable peak-sampling
// mode (end-of-day vs real-time).
func normalizeMax(m MaxDrawdown) MaxRule {
	if m.Enabled {
		return MaxRule{
			Enabled: true,
			Pct:     clamp(m.Pct, 0, 99),
			Kind:    kind(m.Type),
			StopsAt: trailingStop(m.TrailingStopsAt),
			StopPct: clamp(m.LocksAtPct, 0, 99),
			Mode:    TrailRealtime,
		}
	}

	legacy := clamp(m.LegacyPct, 0, 99)
	if legacy == 0 {
		return MaxRule{Kind: DrawdownStatic, StopsAt: StopNever, Mode: TrailRealtime}
	}
	return MaxRule{
		Enabled: true,
		Pct:     legacy,
		Kind:    DrawdownTrailing,
		StopsAt: StopNever,
		Mode:    trailingMode(m.TrailingMode),
		Legacy:  true,
	}
}
