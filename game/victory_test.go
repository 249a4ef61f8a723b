package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVictory(t *testing.T) {
	terrain := CreateTerrain()
	rules := NewStandardRules()

	t.Run("occupying the opponent den wins immediately", func(t *testing.T) {
		gs := NewCustomGameState(terrain, rules)
		gs.Place(0, Cat, terrain.Dens[1])
		gs.Place(1, Elephant, Position{X: 0, Y: 4}) // material does not matter
		gs.Place(1, Lion, Position{X: 6, Y: 0})

		won, result := gs.Victory(0)
		require.True(t, won)
		require.Equal(t, Player0Wins, result)
	})

	t.Run("opponent with no pieces loses", func(t *testing.T) {
		gs := NewCustomGameState(terrain, rules)
		gs.Place(1, Rat, Position{X: 0, Y: 0})

		won, result := gs.Victory(1)
		require.True(t, won)
		require.Equal(t, Player1Wins, result)
	})

	t.Run("passivity resolves to the holder of the strongest unique rank", func(t *testing.T) {
		gs := NewCustomGameState(terrain, rules)
		gs.Place(0, Elephant, Position{X: 0, Y: 8})
		gs.Place(0, Cat, Position{X: 6, Y: 8})
		gs.Place(1, Lion, Position{X: 0, Y: 0})
		gs.Place(1, Cat, Position{X: 6, Y: 1})
		gs.PeaceCounter = 30

		won, result := gs.Victory(1)
		require.True(t, won)
		require.Equal(t, Player0Wins, result, "the unique elephant outranks the unique lion")
	})

	t.Run("fully mirrored ranks at the passivity cap resolve as player 0", func(t *testing.T) {
		gs := NewCustomGameState(terrain, rules)
		gs.Place(0, Lion, Position{X: 0, Y: 8})
		gs.Place(0, Rat, Position{X: 6, Y: 8})
		gs.Place(1, Lion, Position{X: 0, Y: 0})
		gs.Place(1, Rat, Position{X: 6, Y: 1})
		gs.PeaceCounter = 30

		won, result := gs.Victory(1)
		require.True(t, won)
		require.Equal(t, DrawPlayer0, result)
		require.Equal(t, 0, result.Winner())
	})

	t.Run("below the cap the game continues", func(t *testing.T) {
		gs := NewGameState(terrain, rules)
		gs.PeaceCounter = 29

		won, result := gs.Victory(0)
		require.False(t, won)
		require.Equal(t, NoResult, result)
	})

	t.Run("probing never mutates the state", func(t *testing.T) {
		gs := NewCustomGameState(terrain, rules)
		gs.Place(0, Cat, terrain.Dens[1])
		gs.Place(1, Lion, Position{X: 6, Y: 0})
		snapshot := *gs

		gs.Victory(0)
		gs.Victory(1)
		require.Equal(t, snapshot, *gs)
	})
}
