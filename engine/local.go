package engine

import (
	"errors"
	"fmt"
	"io"

	"ants/communication"
	"ants/experiments/metrics"
	"ants/experiments/transcript"
	"ants/game"
	"ants/planner"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// WithMetrics measures every turn and sends the latency in a MESSAGE command.
func WithMetrics() Option {
	return func(e *LocalEngine) {
		e.metrics = metrics.NewCollector()
		e.telemetry = true
	}
}

// WithTranscript records the game under dir.
func WithTranscript(dir string) Option {
	return func(e *LocalEngine) {
		e.transcriptDir = dir
	}
}

// LocalEngine runs the agent against a referee reachable through a Communicator.
type LocalEngine struct {
	comm          communication.Communicator
	planner       *planner.Planner
	metrics       metrics.Collector
	telemetry     bool
	transcriptDir string
	State         *game.TurnState
	GameID        string
}

func NewLocalEngine(comm communication.Communicator, p *planner.Planner, options ...Option) *LocalEngine {
	e := &LocalEngine{ // Default values
		comm:    comm,
		planner: p,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run reads the setup, then reads, plans and answers every turn until the
// referee closes the input.
func (e *LocalEngine) Run() ([]metrics.TurnRecord, error) {
	setup, err := e.comm.ReceiveSetup()
	if err != nil {
		return nil, fmt.Errorf("failed to receive setup: %w", err)
	}
	e.State = game.NewTurnState(setup.Map, game.NewDistances(setup.Map), setup.Bases)
	header := transcript.NewHeader(setup)
	e.GameID = header.GameID

	var recorder *transcript.Writer
	if e.transcriptDir != "" {
		recorder, err = transcript.Create(e.transcriptDir, header)
		if err != nil {
			return nil, fmt.Errorf("failed to create transcript: %w", err)
		}
		defer recorder.Close()
		log.Info().Msgf("recording game to %s", recorder.Path())
	}

	log.Info().Msgf("game %s started: %d cells, bases %v vs %v", e.GameID, setup.Map.Size(), setup.Bases[game.Me], setup.Bases[game.Opponent])

	records := []metrics.TurnRecord{}
	for {
		turn, err := e.comm.ReceiveTurn(setup.Map.Size())
		if errors.Is(err, io.EOF) {
			log.Info().Msgf("game %s over after %d turns", e.GameID, e.State.Turn)
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("failed to receive turn %d: %w", e.State.Turn+1, err)
		}

		e.metrics.Start(e.State.Turn + 1)
		if err := e.State.Update(turn.Scores, turn.Cells); err != nil {
			return records, fmt.Errorf("failed to apply turn %d: %w", e.State.Turn+1, err)
		}
		plan := e.plan()
		metric := e.metrics.Complete()
		metric.Turn = e.State.Turn

		message := ""
		if e.telemetry {
			message = metric.Message()
		}
		if err := e.comm.SendActions(communication.FromBeacons(plan.Beacons, message)); err != nil {
			return records, fmt.Errorf("failed to send turn %d: %w", e.State.Turn, err)
		}

		if recorder != nil {
			if err := recorder.WriteTurn(transcript.NewTurn(e.State.Turn, turn, plan.Beacons)); err != nil {
				log.Warn().Err(err).Msg("failed to record turn")
			}
		}
		records = append(records, metrics.TurnRecord{
			Game:       e.GameID,
			FreeStart:  plan.FreeStart,
			FreeEnd:    plan.FreeEnd,
			Targets:    len(plan.Targets),
			Lines:      len(plan.Lines),
			Deferred:   len(plan.Deferred),
			Stop:       plan.Stop.String(),
			TurnMetric: metric,
		})
	}
}

// plan never fails: a planner panic degrades to an empty plan so the turn is
// still answered with WAIT.
func (e *LocalEngine) plan() (plan *planner.Plan) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("planning turn %d failed: %v", e.State.Turn, r)
			plan = &planner.Plan{Turn: e.State.Turn, Beacons: make([]int, e.State.Map.Size())}
		}
	}()
	return e.planner.Plan(e.State)
}
