package experiments

import (
	"fmt"

	"ants/experiments/metrics"
	"ants/game"
	"ants/meta"
	"ants/planner"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	NumBoards  = 20 // Per config
	NumTurns   = 50 // Per board
	BoardCells = 300
	BoardBases = 2 // Per side
)

// PlannerConfig is one planner setup under test.
type PlannerConfig struct {
	ID        int
	NoOpening bool
	Config    meta.Config
}

var latencyConfigs = []PlannerConfig{
	{ID: 1, Config: meta.Default()},
	{ID: 2, Config: meta.Default(), NoOpening: true},
	{ID: 3, Config: func() meta.Config {
		c := meta.Default()
		c.OpeningMaxDistance = 6
		c.OpeningMaxTurns = 3
		return c
	}()},
}

// RunLatencyExperiment plans generated games under each config and stores one
// record per turn under dir.
func RunLatencyExperiment(dir string, seed uint64) error {
	records := []metrics.TurnRecord{}
	log.Info().Msgf("starting latency experiment with seed %d...", seed)

	for ci, config := range latencyConfigs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(latencyConfigs), config)
		r := rand.New(rand.NewSource(seed))
		for b := 0; b < NumBoards; b++ {
			records = append(records, runBoard(r, config, fmt.Sprintf("board-%d", b))...)
		}
	}

	var slowest metrics.TurnRecord
	for _, record := range records {
		if record.Duration > slowest.Duration {
			slowest = record
		}
	}
	log.Info().Msgf("completed latency experiment: %d turns, slowest %s on %s turn %d (config %d)",
		len(records), slowest.Duration, slowest.Game, slowest.Turn, slowest.Config)

	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteTurnRecords(records); err != nil {
		return fmt.Errorf("failed to write turn records: %w", err)
	}
	log.Info().Msgf("stored turn records in %s", writer.Dir())
	return nil
}

// runBoard plays NumTurns generated turns of one board through a fresh planner.
func runBoard(r *rand.Rand, config PlannerConfig, name string) []metrics.TurnRecord {
	setup := RandomBoard(r, BoardCells, BoardBases)
	state := game.NewTurnState(setup.Map, game.NewDistances(setup.Map), setup.Bases)
	options := []planner.Option{planner.WithConfig(config.Config)}
	if config.NoOpening {
		options = append(options, planner.WithoutOpening())
	}
	p := planner.NewPlanner(options...)
	collector := metrics.NewCollector()

	records := make([]metrics.TurnRecord, 0, NumTurns)
	for turn := 1; turn <= NumTurns; turn++ {
		in := RandomTurn(r, setup, turn)
		collector.Start(turn)
		if err := state.Update(in.Scores, in.Cells); err != nil {
			panic(fmt.Sprintf("generated turn does not fit the board: %v", err))
		}
		plan := p.Plan(state)
		records = append(records, metrics.TurnRecord{
			Game:       name,
			Config:     config.ID,
			FreeStart:  plan.FreeStart,
			FreeEnd:    plan.FreeEnd,
			Targets:    len(plan.Targets),
			Lines:      len(plan.Lines),
			Deferred:   len(plan.Deferred),
			Stop:       plan.Stop.String(),
			TurnMetric: collector.Complete(),
		})
	}
	return records
}
