package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/config"
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/equity"
)

func consistencyRule(pct float64) config.ConsistencyRule {
	return config.ConsistencyRule{Enabled: true, Pct: pct}
}

func TestCheckConsistencyViolation(t *testing.T) {
	t.Parallel()

	// Total profit 1000, 30% cap → 300/day. The 400 day violates.
	trades := []equity.Trade{
		{Date: "2024-03-05", Time: "10:00", Pnl: 400},
		{Date: "2024-03-06", Time: "10:00", Pnl: 250},
		{Date: "2024-03-07", Time: "10:00", Pnl: 250},
		{Date: "2024-03-08", Time: "10:00", Pnl: 100},
	}
	points := equity.BuildSeries(trades, 10000)

	got := CheckConsistency(points, consistencyRule(30), "00:00")

	assert.InDelta(t, 1000.0, got.TotalProfit, 1e-9)
	assert.InDelta(t, 300.0, got.MaxAllowedPerDay, 1e-9)
	assert.False(t, got.Passed)
	require.Len(t, got.Violations, 1)
	assert.Equal(t, "2024-03-05", got.Violations[0].Day)
	assert.InDelta(t, 400.0, got.Violations[0].Pnl, 1e-9)
	assert.Equal(t, 1, got.Violations[0].AtIndex)
}

func TestCheckConsistencyGroupsByTradingDay(t *testing.T) {
	t.Parallel()

	// With a 17:00 reset, the 02:00 trade folds into the previous trading
	// day, pushing that day over the cap.
	trades := []equity.Trade{
		{Date: "2024-03-05", Time: "18:00", Pnl: 200},
		{Date: "2024-03-06", Time: "02:00", Pnl: 200},
		{Date: "2024-03-06", Time: "18:00", Pnl: 600},
	}
	points := equity.BuildSeries(trades, 10000)

	got := CheckConsistency(points, consistencyRule(60), "17:00")

	// Total 1000, cap 600. Day "2024-03-05" nets 400, day "2024-03-06"
	// nets 600 — neither strictly exceeds the cap.
	assert.True(t, got.Passed)

	// At midnight reset the same trades split 200 / 800 → violation.
	got = CheckConsistency(points, consistencyRule(60), "00:00")
	assert.False(t, got.Passed)
	require.Len(t, got.Violations, 1)
	assert.Equal(t, "2024-03-06", got.Violations[0].Day)
}

// The consistency cap is a function of the final total profit, so appending
// a losing trade lowers the cap and can retroactively turn an earlier,
// previously compliant day into a violation. This is the engine's single
// most surprising behavior and it is intentional.
func TestCheckConsistencyIsNonCausal(t *testing.T) {
	t.Parallel()

	base := []equity.Trade{
		{Date: "2024-03-05", Time: "10:00", Pnl: 100},
		{Date: "2024-03-06", Time: "10:00", Pnl: 250},
	}

	// Total 350, cap 40% → 140. Day 2 (250) violates; day 1 (100) is fine.
	got := CheckConsistency(equity.BuildSeries(base, 10000), consistencyRule(40), "00:00")
	require.Len(t, got.Violations, 1)
	assert.Equal(t, "2024-03-06", got.Violations[0].Day)

	// One more losing trade: total 150, cap 60. Now day 1 violates too.
	extended := append(base, equity.Trade{Date: "2024-03-07", Time: "10:00", Pnl: -200})
	got = CheckConsistency(equity.BuildSeries(extended, 10000), consistencyRule(40), "00:00")
	require.Len(t, got.Violations, 2)
	assert.Equal(t, "2024-03-05", got.Violations[0].Day)
	assert.Equal(t, "2024-03-06", got.Violations[1].Day)
}

func TestCheckConsistencyNetLossFloorsTotalAtZero(t *testing.T) {
	t.Parallel()

	// Net-losing account: total profit floors at 0, cap 0, so any winning
	// day strictly exceeds it.
	trades := []equity.Trade{
		{Date: "2024-03-05", Time: "10:00", Pnl: 300},
		{Date: "2024-03-06", Time: "10:00", Pnl: -800},
	}
	points := equity.BuildSeries(trades, 10000)

	got := CheckConsistency(points, consistencyRule(30), "00:00")

	assert.InDelta(t, 0.0, got.TotalProfit, 1e-9)
	assert.False(t, got.Passed)
	require.Len(t, got.Violations, 1)
	assert.Equal(t, "2024-03-05", got.Violations[0].Day)
}

func TestCheckConsistencyDatelessTradesCountTowardTotalOnly(t *testing.T) {
	t.Parallel()

	trades := []equity.Trade{
		{Date: "2024-03-05", Time: "10:00", Pnl: 300},
		{Pnl: 700}, // dateless: raises the cap but belongs to no day
	}
	points := equity.BuildSeries(trades, 10000)

	got := CheckConsistency(points, consistencyRule(40), "00:00")

	assert.InDelta(t, 1000.0, got.TotalProfit, 1e-9)
	assert.InDelta(t, 400.0, got.MaxAllowedPerDay, 1e-9)
	assert.True(t, got.Passed)
}

func TestCheckConsistencyDisabled(t *testing.T) {
	t.Parallel()

	points := equity.BuildSeries(dayTrades(5000), 10000)
	got := CheckConsistency(points, config.ConsistencyRule{}, "00:00")

	assert.False(t, got.Enabled)
	assert.True(t, got.Passed)
}

func TestCheckConsistencyEmpty(t *testing.T) {
	t.Parallel()

	points := equity.BuildSeries(nil, 10000)
	got := CheckConsistency(points, consistencyRule(30), "00:00")

	assert.True(t, got.Passed)
	assert.Empty(t, got.Violations)
}
