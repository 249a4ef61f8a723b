package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"jungle/config"
	"jungle/engine"
	"jungle/experiments"
	"jungle/game"
	"jungle/searcher"
)

func main() {
	configPath := flag.String("config", "", "path to a config file")
	referee := flag.Bool("referee", false, "speak the referee protocol on stdin/stdout instead of running a tournament")
	flag.Parse()

	// Logs go to stderr; in referee mode stdout carries the protocol.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Setup(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if *referee {
		runReferee(cfg)
		return
	}

	if err := experiments.RunTournament(cfg); err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
}

func runReferee(cfg *config.Config) {
	rules := game.NewStandardRules()
	rules.MaterialWeight = cfg.MaterialWeight
	rules.MobilityWeight = cfg.MobilityWeight

	agent := engine.MinimaxAdapter{Searcher: searcher.NewMinimax(searcher.WithDepth(cfg.Depth))}
	protocol := engine.NewProtocol(os.Stdin, os.Stdout, agent, 0, rules)
	if err := protocol.Loop(); err != nil {
		log.Fatal().Err(err).Msg("referee session failed")
	}
}
