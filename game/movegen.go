package game

// LegalMoves generates every legal move for player, iterating ranks rat
// through elephant and directions in the fixed order, so generation order is
// deterministic for any given state.
func (gs *GameState) LegalMoves(player int) []Move {
	var moves []Move
	for rank := Rat; rank < NumRanks; rank++ {
		if !gs.alive[player][rank] {
			continue
		}
		from := gs.pieces[player][rank]
		for _, d := range directions {
			to := Position{X: from.X + d.X, Y: from.Y + d.Y}
			if !gs.Terrain.OnBoard(to) {
				continue
			}
			if to == gs.Terrain.Dens[player] {
				// entering one's own den is illegal
				continue
			}
			if gs.Terrain.River[to] {
				if rank != Rat && rank != Tiger && rank != Lion {
					continue
				}
				if rank == Tiger || rank == Lion {
					// a step into the river becomes a leap to the far bank
					leap := d
					if leap.X != 0 {
						leap.X *= 3
					}
					if leap.Y != 0 {
						leap.Y *= 4
					}
					if gs.ratBlocksLeap(player, from, leap) {
						continue
					}
					to = Position{X: from.X + leap.X, Y: from.Y + leap.Y}
				}
			}
			if occupant, ok := gs.PieceAt(to); ok {
				if occupant.Owner == player {
					continue
				}
				if !gs.CanCapture(rank, occupant.Rank, from, to) {
					continue
				}
			}
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// CanCapture applies the capture precedence rules for an attacker moving
// from one position onto a defender at another.
func (gs *GameState) CanCapture(attacker, defender Rank, from, to Position) bool {
	if gs.Terrain.River[from] && gs.Terrain.River[to] {
		return true // rat vs rat in the water
	}
	if gs.Terrain.River[from] {
		return false // a swimming piece cannot take a piece on land
	}
	if attacker == Rat && defender == Elephant {
		return true
	}
	if attacker == Elephant && defender == Rat {
		return false
	}
	if attacker >= defender {
		return true
	}
	return gs.Terrain.Traps[to] // a trapped defender loses its rank
}

// ratBlocksLeap reports whether an enemy rat sits in the river on the path
// of a leap starting at from. Vertical leaps are blocked by a rat in the
// same column; horizontal leaps by a rat in the same row within two columns
// of both origin and destination.
func (gs *GameState) ratBlocksLeap(player int, from, leap Position) bool {
	enemy := 1 - player
	if !gs.alive[enemy][Rat] {
		return false
	}
	rat := gs.pieces[enemy][Rat]
	if !gs.Terrain.River[rat] {
		return false
	}
	if leap.Y != 0 && rat.X == from.X {
		return true
	}
	if leap.X != 0 {
		toX := from.X + leap.X
		if rat.Y == from.Y && abs(from.X-rat.X) <= 2 && abs(toX-rat.X) <= 2 {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
