package game

// Heuristic scores a non-terminal state as a weighted sum of the material
// and mobility differences. Positive favors player 1.
func Heuristic(gs *GameState) float64 {
	var material [2]int
	for owner := 0; owner < 2; owner++ {
		for rank := Rat; rank < NumRanks; rank++ {
			if gs.alive[owner][rank] {
				material[owner] += gs.Rules.PieceValues[rank]
			}
		}
	}
	mobility1 := len(gs.LegalMoves(1))
	mobility0 := len(gs.LegalMoves(0))

	return gs.Rules.MaterialWeight*float64(material[1]-material[0]) +
		gs.Rules.MobilityWeight*float64(mobility1-mobility0)
}
