package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"jungle/game"
)

func TestMinimaxFindsDenEntry(t *testing.T) {
	gs := game.NewCustomGameState(game.CreateTerrain(), game.NewStandardRules())
	gs.Place(0, game.Lion, game.Position{X: 3, Y: 1})
	gs.Place(1, game.Cat, game.Position{X: 6, Y: 0})

	m := NewMinimax()
	value, move, ok, _ := m.FindMove(gs)

	require.True(t, ok)
	require.Equal(t, game.Move{From: game.Position{X: 3, Y: 1}, To: game.Position{X: 3, Y: 0}}, move)
	require.True(t, math.IsInf(value, 1), "a forced den entry is worth +Inf")
}

func TestMinimaxIsDeterministic(t *testing.T) {
	gs := game.NewGameState(game.CreateTerrain(), game.NewStandardRules())
	m := NewMinimax(WithDepth(2))

	value1, move1, ok1, _ := m.FindMove(gs)
	value2, move2, ok2, _ := m.FindMove(gs)

	require.Equal(t, value1, value2)
	require.Equal(t, move1, move2)
	require.Equal(t, ok1, ok2)
}

func TestMinimaxLeavesStateUntouched(t *testing.T) {
	gs := game.NewGameState(game.CreateTerrain(), game.NewStandardRules())
	snapshot := *gs

	NewMinimax().FindMove(gs)

	require.Equal(t, snapshot, *gs, "search must unwind every move it tries")
}

func TestMinimaxKeepsFirstOfEqualMoves(t *testing.T) {
	// With the mobility term disabled and no capture in reach, every root
	// move scores the same; the strict comparison keeps the first one.
	rules := game.NewStandardRules()
	rules.MobilityWeight = 0
	gs := game.NewCustomGameState(game.CreateTerrain(), rules)
	gs.Place(0, game.Rat, game.Position{X: 0, Y: 0})
	gs.Place(1, game.Rat, game.Position{X: 6, Y: 8})

	m := NewMinimax()
	_, move, ok, _ := m.FindMove(gs)

	require.True(t, ok)
	first := gs.LegalMoves(0)[0]
	require.Equal(t, first, move)
}

func TestMinimaxPlaysOnInALostPosition(t *testing.T) {
	// The dog is one step from the den and the cat cannot interfere: every
	// root move is a proven loss, but one must still be played.
	gs := game.NewCustomGameState(game.CreateTerrain(), game.NewStandardRules())
	gs.Place(1, game.Dog, game.Position{X: 3, Y: 7})
	gs.Place(0, game.Cat, game.Position{X: 0, Y: 0})

	m := NewMinimax()
	value, move, ok, _ := m.FindMove(gs)

	require.True(t, ok, "a lost position with legal moves still yields a move")
	require.Equal(t, gs.LegalMoves(0)[0], move)
	require.True(t, math.IsInf(value, -1))
}

func TestMinimaxWithNoMovesReportsNone(t *testing.T) {
	gs := game.NewCustomGameState(game.CreateTerrain(), game.NewStandardRules())
	gs.Place(1, game.Lion, game.Position{X: 0, Y: 0})

	m := NewMinimax()
	value, _, ok, _ := m.FindMove(gs)

	require.False(t, ok, "player 0 has no pieces and therefore no move")
	require.True(t, math.IsInf(value, -1), "a pass against a lone opponent loses")
}

func TestMinimaxCountsNodes(t *testing.T) {
	gs := game.NewGameState(game.CreateTerrain(), game.NewStandardRules())
	m := NewMinimax(WithDepth(1), WithMetrics())

	_, _, _, metric := m.FindMove(gs)

	require.Equal(t, 1, metric.Depth)
	require.Greater(t, metric.Nodes, 1)
}
