package risk

import (
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/config"
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/equity"
)

// Status is the overall challenge verdict.
type Status string

const (
	StatusPassed     Status = "PASSED"
	StatusFailed     Status = "FAILED"
	StatusInProgress Status = "IN_PROGRESS"
)

// Challenge is the combined verdict with a human-readable reason.
type Challenge struct {
	Status Status
	Reason string
}

// FloorSeries holds one floor sequence per enabled floor engine, each
// aligned with Report.Points.
type FloorSeries struct {
	Daily []FloorPoint
	Max   []FloorPoint
}

// StaticFloors are the fixed reference lines derived from the starting
// balance, for callers that chart them. A zero value means the rule that
// would produce the line is not enabled.
type StaticFloors struct {
	DailyStatic  float64
	MaxStatic    float64
	ProfitTarget float64
}

// Remaining reports how much margin is left under each enabled rule at the
// end of the sequence.
type Remaining struct {
	DailyRemaining     float64
	MaxRemaining       float64
	TargetRemainingPct float64
}

// Report is everything one evaluation produces. It is a pure function of
// (trades, rules): nothing is cached, nothing is mutated, and identical
// inputs always yield an identical Report.
type Report struct {
	Points      []equity.Point
	Floors      FloorSeries
	Static      StaticFloors
	Breaches    []BreachEvent
	Target      TargetProgress
	Consistency ConsistencyResult
	Challenge   Challenge
	Remaining   Remaining
}

// RemainingMargins derives the remaining-margin figures from the report.
func (r Report) RemainingMargins() Remaining {
	var rem Remaining
	if len(r.Points) == 0 {
		return rem
	}
	final := r.Points[len(r.Points)-1].Balance
	if n := len(r.Floors.Daily); n > 0 {
		rem.DailyRemaining = final - r.Floors.Daily[n-1].Floor
	}
	if n := len(r.Floors.Max); n > 0 {
		rem.MaxRemaining = final - r.Floors.Max[n-1].Floor
	}
	if r.Target.Enabled {
		rem.TargetRemainingPct = 100 - r.Target.ProgressPct
	}
	return rem
}

// Evaluate runs every enabled rule over the account's trades and combines
// their verdicts into a challenge status.
//
// All rules are always evaluated, never short-circuited, so a caller can
// display each rule's individual state even when the overall status is
// already decided. The verdict priority is: floor breach (earliest index
// wins, daily before max on a tie), then consistency violation, then profit
// target, otherwise in progress.
func Evaluate(trades []equity.Trade, rules config.Rules) Report {
	points := equity.BuildSeries(trades, rules.StartingBalance)

	r := Report{Points: points}

	var daily, max *BreachEvent
	if rules.Daily.Enabled {
		r.Floors.Daily = DailyFloor(points, rules.Daily, rules.StartingBalance)
		r.Static.DailyStatic = rules.StartingBalance * (1 - rules.Daily.Pct/100)
		daily = firstBreach(points, r.Floors.Daily, BreachDaily)
	}
	if rules.Max.Enabled {
		r.Floors.Max = MaxFloor(points, rules.Max, rules.StartingBalance)
		if rules.Max.Kind == config.DrawdownStatic {
			r.Static.MaxStatic = rules.StartingBalance * (1 - rules.Max.Pct/100)
		}
		max = firstBreach(points, r.Floors.Max, BreachMax)
	}

	r.Target = ProfitTarget(points, rules.ProfitTargetPct, rules.StartingBalance)
	if r.Target.Enabled {
		r.Static.ProfitTarget = r.Target.Target
	}

	r.Consistency = CheckConsistency(points, rules.Consistency, rules.Daily.ResetTime)

	for _, b := range []*BreachEvent{daily, max} {
		if b != nil {
			r.Breaches = append(r.Breaches, *b)
		}
	}
	if len(r.Consistency.Violations) > 0 {
		v := r.Consistency.Violations[0]
		r.Breaches = append(r.Breaches, BreachEvent{
			Kind:    BreachConsistency,
			AtIndex: v.AtIndex,
			Date:    v.Day,
			Value:   v.Pnl,
			Limit:   r.Consistency.MaxAllowedPerDay,
		})
	}

	r.Challenge = verdict(daily, max, r.Consistency, r.Target)
	r.Remaining = r.RemainingMargins()
	return r
}

func verdict(daily, max *BreachEvent, cons ConsistencyResult, target TargetProgress) Challenge {
	if daily != nil || max != nil {
		reason := "daily drawdown breached"
		if daily == nil || (max != nil && max.AtIndex < daily.AtIndex) {
			reason = "maximum drawdown breached"
		}
		return Challenge{Status: StatusFailed, Reason: reason}
	}
	if cons.Enabled && !cons.Passed {
		return Challenge{Status: StatusFailed, Reason: "consistency rule violated"}
	}
	if target.Passed {
		return Challenge{Status: StatusPassed, Reason: "profit target reached"}
	}
	return Challenge{Status: StatusInProgress}
}
