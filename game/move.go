package game

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Move is a single step (or leap) from one cell to another.
type Move struct {
	From Position
	To   Position
}

// PassEncoding is the wire form of a pass, valid only when the mover has no
// legal moves.
const PassEncoding = "-1 -1 -1 -1"

// String renders the move in the referee wire format "x1 y1 x2 y2".
func (m Move) String() string {
	return fmt.Sprintf("%d %d %d %d", m.From.X, m.From.Y, m.To.X, m.To.Y)
}

// ErrWrongMove is returned when a submitted move string fails validation.
// It signals a misbehaving external move source; the current game should be
// aborted, not retried.
var ErrWrongMove = errors.New("wrong move")

// ParseMove decodes a four-integer move string. A pass decodes with
// concrete=false.
func ParseMove(s string) (move Move, concrete bool, err error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return Move{}, false, ErrWrongMove
	}
	var v [4]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Move{}, false, fmt.Errorf("%w: %q", ErrWrongMove, s)
		}
		v[i] = n
	}
	if v == [4]int{-1, -1, -1, -1} {
		return Move{}, false, nil
	}
	return Move{
		From: Position{X: v[0], Y: v[1]},
		To:   Position{X: v[2], Y: v[3]},
	}, true, nil
}

// Update applies a move submitted on player's behalf by an external source.
// The string must decode to a currently legal move, or to a pass when and
// only when no legal move exists. On a terminal position it records the
// result and returns done=true with +1 when the result resolves to player 1
// and -1 when it resolves to player 0.
func (gs *GameState) Update(player int, moveString string) (outcome int, done bool, err error) {
	gs.CurrentPlayer = player

	move, concrete, err := ParseMove(moveString)
	if err != nil {
		return 0, false, err
	}

	legal := gs.LegalMoves(player)
	if len(legal) == 0 {
		if concrete {
			return 0, false, fmt.Errorf("%w: %q submitted with no legal moves", ErrWrongMove, moveString)
		}
		gs.Pass()
	} else {
		if !concrete || !slices.Contains(legal, move) {
			return 0, false, fmt.Errorf("%w: %q", ErrWrongMove, moveString)
		}
		gs.DoMove(move)
	}

	if won, result := gs.Victory(player); won {
		gs.Result = result
		return 2*result.Winner() - 1, true, nil
	}
	return 0, false, nil
}
