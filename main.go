package main

import (
	"flag"
	"os"

	"ants/communication"
	"ants/engine"
	"ants/experiments"
	"ants/experiments/metrics"
	"ants/meta"
	"ants/planner"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default thresholds")
	recordDir := flag.String("record", "", "Folder to record the game transcript in")
	csvDir := flag.String("csv", "", "Folder to write per-turn records in")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	withMetrics := flag.Bool("metrics", false, "Report turn latency in a MESSAGE command")
	noOpening := flag.Bool("no-opening", false, "Disable the opening book")
	experiment := flag.String("experiment", "", "Run the latency experiment and store its records in this folder")
	seed := flag.Uint64("seed", 1, "Seed of the latency experiment")
	flag.Parse()

	// stdout belongs to the referee
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if *experiment != "" {
		if err := experiments.RunLatencyExperiment(*experiment, *seed); err != nil {
			log.Fatal().Err(err).Msg("latency experiment failed")
		}
		return
	}

	cfg := meta.Default()
	if *configPath != "" {
		cfg, err = meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	plannerOptions := []planner.Option{planner.WithConfig(cfg)}
	if *noOpening {
		plannerOptions = append(plannerOptions, planner.WithoutOpening())
	}
	engineOptions := []engine.Option{}
	if *withMetrics || *csvDir != "" {
		engineOptions = append(engineOptions, engine.WithMetrics())
	}
	if *recordDir != "" {
		engineOptions = append(engineOptions, engine.WithTranscript(*recordDir))
	}

	comm := communication.NewStdioCommunicator(os.Stdin, os.Stdout)
	e := engine.NewLocalEngine(comm, planner.NewPlanner(plannerOptions...), engineOptions...)
	records, runErr := e.Run()

	if *csvDir != "" && len(records) > 0 {
		writer, err := metrics.NewWriter(*csvDir)
		if err != nil {
			log.Error().Err(err).Msg("failed to create records writer")
		} else if err := writer.WriteTurnRecords(records); err != nil {
			log.Error().Err(err).Msg("failed to write turn records")
		} else {
			log.Info().Msgf("stored %d turn records in %s", len(records), writer.Dir())
		}
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("game aborted")
	}
}
