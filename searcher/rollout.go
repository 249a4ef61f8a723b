package searcher

import (
	"encoding/binary"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"

	"jungle/experiments/metrics"
	"jungle/game"
)

// MaxPlayouts is the default number of playouts per candidate move.
const MaxPlayouts = 4

type RolloutOption func(*Rollout)

// Rollout scores candidate moves by playing uniformly random games to
// completion on private copies of the state and counting wins.
type Rollout struct {
	playouts int
	rng      *rand.Rand
	metrics  metrics.Collector
}

func WithPlayouts(playouts int) RolloutOption {
	return func(r *Rollout) {
		if playouts > 0 {
			r.playouts = playouts
		}
	}
}

// WithSeed makes move selection reproducible across runs.
func WithSeed(seed uint64) RolloutOption {
	return func(r *Rollout) {
		r.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRolloutMetrics() RolloutOption {
	return func(r *Rollout) {
		r.metrics = metrics.NewCollector()
	}
}

func NewRollout(options ...RolloutOption) *Rollout {
	r := &Rollout{ // Default values
		playouts: MaxPlayouts,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(r)
	}
	if r.rng == nil {
		// Unseeded runs draw their seed from a CSPRNG
		seed := binary.LittleEndian.Uint64(frand.Bytes(8))
		r.rng = rand.New(rand.NewSource(seed))
	}
	return r
}

// FindMove scores every legal move for player by random playouts and returns
// one with the maximum win count, ties broken uniformly at random. ok is
// false when player has no legal move.
func (r *Rollout) FindMove(gs *game.GameState, player int) (move game.Move, ok bool, metric metrics.SearchMetric) {
	r.metrics.Start(0, r.playouts)

	moves := gs.LegalMoves(player)
	if len(moves) == 0 {
		return game.Move{}, false, r.metrics.Complete()
	}

	var best []game.Move
	bestScore := -1
	for _, candidate := range moves {
		score := 0
		for i := 0; i < r.playouts; i++ {
			if r.playout(gs.Copy(), player, candidate) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = best[:0]
		}
		if score == bestScore {
			best = append(best, candidate)
		}
	}
	return best[r.rng.Intn(len(best))], true, r.metrics.Complete()
}

// playout applies candidate on an isolated copy, then alternates uniformly
// random moves (or forced passes) until a terminal result, reporting whether
// player won. The live state driving the real match is never touched.
func (r *Rollout) playout(sim *game.GameState, player int, candidate game.Move) bool {
	sim.CurrentPlayer = player
	sim.DoMove(candidate)
	if won, result := sim.Victory(player); won {
		r.metrics.AddFullPlayout()
		return result.Winner() == player
	}

	turn := 1 - player
	for {
		moves := sim.LegalMoves(turn)
		if len(moves) == 0 {
			sim.Pass()
		} else {
			sim.DoMove(moves[r.rng.Intn(len(moves))])
		}
		if won, result := sim.Victory(turn); won {
			r.metrics.AddFullPlayout()
			return result.Winner() == player
		}
		turn = 1 - turn
	}
}
