package searcher

import (
	"math"

	"jungle/experiments/metrics"
	"jungle/game"
)

// MaxDepth is the default search depth in plies.
const MaxDepth = 3

type Option func(*Minimax)

// Minimax is a fixed-depth alpha-beta searcher. Player 0 maximizes, player 1
// minimizes; the tree is walked depth-first with make/unmake on the caller's
// live state, so a search leaves the state exactly as it found it.
type Minimax struct {
	depth   int
	metrics metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:   MaxDepth,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove searches for player 0's best move. ok is false when player 0 has
// no legal move (or the position is already terminal).
func (m *Minimax) FindMove(gs *game.GameState) (value float64, move game.Move, ok bool, metric metrics.SearchMetric) {
	m.metrics.Start(m.depth, 0)
	value, move, ok = m.max(gs, math.Inf(-1), math.Inf(1), 0)
	return value, move, ok, m.metrics.Complete()
}

// utility maps a terminal result to a search value from player 0's
// perspective.
func utility(result game.Result) float64 {
	switch result {
	case game.Player0Wins:
		return math.Inf(1)
	case game.Player1Wins:
		return math.Inf(-1)
	default:
		return 0
	}
}

func (m *Minimax) max(gs *game.GameState, alpha, beta float64, depth int) (float64, game.Move, bool) {
	m.metrics.AddNode()
	if won, result := gs.Victory(0); won {
		return utility(result), game.Move{}, false
	}
	if depth > m.depth {
		return game.Heuristic(gs), game.Move{}, false
	}

	value := math.Inf(-1)
	var best game.Move
	found := false

	moves := gs.LegalMoves(0)
	if len(moves) == 0 {
		// No moves: the side passes and the opponent searches one ply deeper.
		v, _, _ := m.min(gs, alpha, beta, depth+1)
		if v > value {
			value = v
		}
		return value, best, false
	}

	// Even a proven loss must put a move on the board; the first candidate
	// stands until something beats it.
	best = moves[0]
	found = true

	for _, move := range moves {
		undo := gs.ApplyMove(move)
		v, _, _ := m.min(gs, alpha, beta, depth+1)
		gs.UndoMove(undo)

		// Strict comparison keeps the first move reaching the best value.
		if v > value {
			value = v
			best = move
			found = true
		}
		if value >= beta {
			return value, best, found
		}
		if value > alpha {
			alpha = value
		}
	}
	return value, best, found
}

func (m *Minimax) min(gs *game.GameState, alpha, beta float64, depth int) (float64, game.Move, bool) {
	m.metrics.AddNode()
	if won, result := gs.Victory(1); won {
		return utility(result), game.Move{}, false
	}
	if depth > m.depth {
		return game.Heuristic(gs), game.Move{}, false
	}

	value := math.Inf(1)
	var best game.Move
	found := false

	moves := gs.LegalMoves(1)
	if len(moves) == 0 {
		v, _, _ := m.max(gs, alpha, beta, depth+1)
		if v < value {
			value = v
		}
		return value, best, false
	}

	best = moves[0]
	found = true

	for _, move := range moves {
		undo := gs.ApplyMove(move)
		v, _, _ := m.max(gs, alpha, beta, depth+1)
		gs.UndoMove(undo)

		if v < value {
			value = v
			best = move
			found = true
		}
		if value <= alpha {
			return value, best, found
		}
		if value < beta {
			beta = value
		}
	}
	return value, best, found
}
