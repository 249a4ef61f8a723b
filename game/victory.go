package game

// Result identifies the outcome of a finished game from the engine's
// canonical perspective.
type Result int

const (
	NoResult Result = iota
	Player0Wins
	Player1Wins
	DrawPlayer0 // passivity draw, resolved as a player 0 win
)

// Winner maps a terminal result to the winning player id.
func (r Result) Winner() int {
	if r == Player1Wins {
		return 1
	}
	return 0
}

func (r Result) String() string {
	switch r {
	case Player0Wins:
		return "player0"
	case Player1Wins:
		return "player1"
	case DrawPlayer0:
		return "draw-player0"
	default:
		return "none"
	}
}

// Victory reports whether player has just won. It wins immediately when the
// opponent has no live pieces or the opponent's den is occupied; once the
// passivity cap is reached the game resolves by rank comparison. The check
// is pure: probing a state during search leaves no residue.
func (gs *GameState) Victory(player int) (bool, Result) {
	opponent := 1 - player
	if gs.LiveCount(opponent) == 0 {
		return true, resultFor(player)
	}
	if _, ok := gs.PieceAt(gs.Terrain.Dens[opponent]); ok {
		return true, resultFor(player)
	}
	if gs.PeaceCounter >= gs.Rules.MaximalPassive {
		if holder, ok := gs.strongestHolder(); ok {
			return true, resultFor(holder)
		}
		return true, DrawPlayer0
	}
	return false, NoResult
}

// strongestHolder scans ranks from elephant down to rat for the highest rank
// held by exactly one side.
func (gs *GameState) strongestHolder() (int, bool) {
	for rank := Elephant; rank >= Rat; rank-- {
		a0, a1 := gs.alive[0][rank], gs.alive[1][rank]
		if a0 != a1 {
			if a0 {
				return 0, true
			}
			return 1, true
		}
	}
	return 0, false
}

func resultFor(player int) Result {
	if player == 1 {
		return Player1Wins
	}
	return Player0Wins
}
