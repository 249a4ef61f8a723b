package game

// Rules carries the tunable engine parameters: per-rank heuristic values,
// the passivity cap, and the heuristic weights.
type Rules struct {
	PieceValues    [NumRanks]int
	MaximalPassive int
	MaterialWeight float64
	MobilityWeight float64
}

// NewStandardRules returns the canonical parameters. The rat outvalues the
// cat, dog and wolf because it is the only counter to the elephant.
func NewStandardRules() Rules {
	return Rules{
		PieceValues:    [NumRanks]int{4, 1, 2, 3, 5, 7, 8, 10},
		MaximalPassive: 30,
		MaterialWeight: 1,
		MobilityWeight: 1,
	}
}
