package risk

import "github.com/sfxmmy/LSD-TRADEPLUS-sub000/equity"

// TargetProgress reports where the account stands against its profit
// target. Passing is judged on the terminal balance of the completed
// sequence only; an account that dipped along the way but finishes above
// the target has passed.
type TargetProgress struct {
	Enabled     bool
	Target      float64
	Passed      bool
	ProgressPct float64 // [0,100]
}

// ProfitTarget evaluates the profit target over a completed equity curve.
// A zero target percentage disables the rule.
func ProfitTarget(points []equity.Point, targetPct, startingBalance float64) TargetProgress {
	if targetPct <= 0 {
		return TargetProgress{}
	}

	target := startingBalance * (1 + targetPct/100)
	final := startingBalance
	if len(points) > 0 {
		final = points[len(points)-1].Balance
	}

	progress := 0.0
	if gap := target - startingBalance; gap > 0 {
		progress = (final - startingBalance) / gap * 100
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
	}

	return TargetProgress{
		Enabled:     true,
		Target:      target,
		Passed:      final >= target,
		ProgressPct: progress,
	}
}
