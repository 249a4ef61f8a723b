package engine

import (
	"github.com/rs/zerolog/log"

	"jungle/experiments/metrics"
	"jungle/game"
	"jungle/searcher"
)

// MaxMoves bounds a single game in case neither side ever captures or wins.
const MaxMoves = 10000

// Agent decides a move for one side. ok is false to signal a pass.
type Agent interface {
	FindMove(state *game.GameState, player int) (move game.Move, ok bool, metric metrics.SearchMetric)
}

// MinimaxAdapter exposes the alpha-beta searcher as an Agent. The searcher
// always plays player 0, the maximizing side.
type MinimaxAdapter struct {
	Searcher *searcher.Minimax
}

func (a MinimaxAdapter) FindMove(gs *game.GameState, player int) (game.Move, bool, metrics.SearchMetric) {
	if player != 0 {
		log.Warn().Msgf("alpha-beta agent searches for player 0 but was asked to move for player %d", player)
	}
	_, move, ok, metric := a.Searcher.FindMove(gs)
	return move, ok, metric
}

// RolloutAdapter exposes the rollout evaluator as an Agent.
type RolloutAdapter struct {
	Searcher *searcher.Rollout
}

func (a RolloutAdapter) FindMove(gs *game.GameState, player int) (game.Move, bool, metrics.SearchMetric) {
	return a.Searcher.FindMove(gs, player)
}
