package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"jungle/experiments/metrics"
	"jungle/game"
)

// LocalEngine plays one game between two in-process agents on a live state.
// Every move goes through the same string boundary an external referee would
// use, so agent output is validated like any other move source.
type LocalEngine struct {
	State          *game.GameState
	Agents         [2]Agent // indexed by player id
	StartingPlayer int
}

func NewLocalEngine(state *game.GameState, agents [2]Agent, startingPlayer int) *LocalEngine {
	return &LocalEngine{
		State:          state,
		Agents:         agents,
		StartingPlayer: startingPlayer,
	}
}

// Run executes the game loop until a terminal result or MaxMoves.
func (e *LocalEngine) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %d is starting", e.StartingPlayer)

	turn := e.StartingPlayer
	for step := 1; step <= MaxMoves; step++ {
		move, ok, searchMetric := e.Agents[turn].FindMove(e.State, turn)
		moveString := game.PassEncoding
		if ok {
			moveString = move.String()
		}

		outcome, done, err := e.State.Update(turn, moveString)
		if err != nil {
			return game.NoResult, metrics.GameMetric{}, moveMetrics,
				fmt.Errorf("player %d submitted an invalid move: %w", turn, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       turn,
			SearchMetric: searchMetric,
		})

		if done {
			log.Debug().Msgf("game over after %d moves, outcome %+d (%s)", step, outcome, e.State.Result)
			end := time.Now()
			return e.State.Result, metrics.GameMetric{
				StartingPlayer: e.StartingPlayer,
				Winner:         e.State.Result.String(),
				StartTime:      start,
				EndTime:        end,
				Duration:       end.Sub(start),
				TotalMoves:     step,
			}, moveMetrics, nil
		}
		turn = 1 - turn
	}

	log.Warn().Msgf("stopped after %d moves with no result", MaxMoves)
	end := time.Now()
	return game.NoResult, metrics.GameMetric{
		StartingPlayer: e.StartingPlayer,
		Winner:         game.NoResult.String(),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     MaxMoves,
	}, moveMetrics, nil
}
