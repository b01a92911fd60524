package risk

import "github.com/sfxmmy/LSD-TRADEPLUS-sub000/equity"

// FloorPoint is one entry of a floor series, aligned index-for-index with
// the equity curve it was computed from.
type FloorPoint struct {
	Index         int
	Floor         float64
	NewTradingDay bool
}

// BreachKind identifies which rule a breach event belongs to.
type BreachKind string

const (
	BreachDaily       BreachKind = "daily"
	BreachMax         BreachKind = "max"
	BreachConsistency BreachKind = "consistency"
)

// BreachEvent records the first point at which a rule was violated. Breach
// state is sticky: only the first occurrence is ever reported, and a later
// recovery above the floor does not clear it.
type BreachEvent struct {
	Kind    BreachKind
	AtIndex int
	Date    string
	Value   float64 // balance for floor rules, day pnl for consistency
	Limit   float64
}

// floorStrategy computes successive floor values over an equity series.
// A strategy is single-use: it carries its fold state (day anchor, peak,
// lock) across Step calls and is discarded after one run, so repeated
// evaluations can never alias state.
type floorStrategy interface {
	// Seed returns the floor for the synthetic starting point.
	Seed() float64
	// Step returns the floor for cur, given the point before it.
	Step(prev, cur equity.Point) (floor float64, newTradingDay bool)
}

// runFloor folds a strategy over the equity curve, producing one FloorPoint
// per equity point.
func runFloor(points []equity.Point, s floorStrategy) []FloorPoint {
	if len(points) == 0 {
		return nil
	}
	out := make([]FloorPoint, len(points))
	out[0] = FloorPoint{Index: points[0].Index, Floor: s.Seed()}
	for i := 1; i < len(points); i++ {
		floor, newDay := s.Step(points[i-1], points[i])
		out[i] = FloorPoint{Index: points[i].Index, Floor: floor, NewTradingDay: newDay}
	}
	return out
}

// firstBreach scans a floor series for the first point whose balance fell
// strictly below the floor in effect at that point.
func firstBreach(points []equity.Point, floors []FloorPoint, kind BreachKind) *BreachEvent {
	for i := range floors {
		if points[i].Balance < floors[i].Floor {
			return &BreachEvent{
				Kind:    kind,
				AtIndex: points[i].Index,
				Date:    points[i].Date,
				Value:   points[i].Balance,
				Limit:   floors[i].Floor,
			}
		}
	}
	return nil
}
