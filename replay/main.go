package main

import (
	"flag"
	"os"

	"ants/meta"
	"ants/planner"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := flag.String("transcript", "", "Recorded game to re-plan")
	configPath := flag.String("config", "", "YAML file the game was played with")
	noOpening := flag.Bool("no-opening", false, "The game was played without the opening book")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	if *path == "" {
		log.Fatal().Msg("-transcript is required")
	}

	cfg := meta.Default()
	if *configPath != "" {
		var err error
		if cfg, err = meta.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	options := []planner.Option{planner.WithConfig(cfg)}
	if *noOpening {
		options = append(options, planner.WithoutOpening())
	}

	result, err := replayGame(*path, planner.NewPlanner(options...))
	if err != nil {
		log.Fatal().Err(err).Msg("replay failed")
	}
	for _, m := range result.Mismatches {
		log.Warn().Msgf("turn %d: recorded %v, planned %v", m.Turn, m.Recorded, m.Planned)
	}
	log.Info().Msgf("game %s: %d turns replayed, %d mismatches", result.GameID, result.Turns, len(result.Mismatches))
	if len(result.Mismatches) > 0 {
		os.Exit(1)
	}
}
