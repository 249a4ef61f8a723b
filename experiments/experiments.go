package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"jungle/config"
	"jungle/engine"
	"jungle/experiments/metrics"
	"jungle/game"
	"jungle/searcher"
)

// RunTournament plays cfg.Games games of the rollout agent (player 1, which
// opens) against the alpha-beta agent (player 0), tallies the alpha-beta
// wins, renders the final position of every lost game, and stores the
// records as CSV.
func RunTournament(cfg *config.Config) error {
	rules := game.NewStandardRules()
	rules.MaterialWeight = cfg.MaterialWeight
	rules.MobilityWeight = cfg.MobilityWeight

	configs := []metrics.AgentConfig{
		{ID: 0, Kind: "alphabeta", Depth: cfg.Depth},
		{ID: 1, Kind: "rollout", Playouts: cfg.Playouts, Seed: cfg.Seed},
	}

	log.Info().Msgf("starting tournament: %d games, alpha-beta depth %d vs rollout playouts %d",
		cfg.Games, cfg.Depth, cfg.Playouts)

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for i := 0; i < cfg.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, cfg.Games)

		_, gameMetric, moveMetrics, err := runGame(rules, cfg)
		if err != nil {
			return fmt.Errorf("game %d failed: %w", i+1, err)
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     configs[0].ID,
			Agent2:     configs[1].ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner: %s", i+1, cfg.Games, gameMetric.Winner)
	}

	wins := lo.CountBy(gameRecords, func(r metrics.GameRecord) bool {
		return r.Winner != game.Player1Wins.String()
	})
	log.Info().Msgf("the alpha-beta agent won %d of %d games", wins, cfg.Games)

	writer, err := metrics.NewWriter(cfg.ResultDir, "tournament")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored tournament records")

	return nil
}

// runGame executes a single game and returns its result and metrics.
func runGame(rules game.Rules, cfg *config.Config) (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	rolloutOptions := []searcher.RolloutOption{
		searcher.WithPlayouts(cfg.Playouts),
		searcher.WithRolloutMetrics(),
	}
	if cfg.Seed != 0 {
		rolloutOptions = append(rolloutOptions, searcher.WithSeed(cfg.Seed))
	}

	agents := [2]engine.Agent{
		engine.MinimaxAdapter{Searcher: searcher.NewMinimax(
			searcher.WithDepth(cfg.Depth),
			searcher.WithMetrics(),
		)},
		engine.RolloutAdapter{Searcher: searcher.NewRollout(rolloutOptions...)},
	}

	state := game.NewGameState(game.CreateTerrain(), rules)
	e := engine.NewLocalEngine(state, agents, 1) // the rollout side opens

	result, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return game.NoResult, gameMetric, moveMetrics, err
	}

	if result == game.Player1Wins {
		log.Info().Msgf("alpha-beta agent lost, final position:\n%s", e.State)
	}
	return result, gameMetric, moveMetrics, nil
}
