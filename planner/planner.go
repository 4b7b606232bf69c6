package planner

import (
	"ants/game"
	"ants/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Option func(p *Planner)

// WithConfig replaces the default thresholds.
func WithConfig(cfg meta.Config) Option {
	return func(p *Planner) {
		p.cfg = cfg
	}
}

// WithoutOpening disables the opening book, the valuation always applies.
func WithoutOpening() Option {
	return func(p *Planner) {
		p.noOpening = true
	}
}

// Planner decides the beacons of every turn. It keeps the opening book across
// turns and nothing else.
type Planner struct {
	cfg       meta.Config
	noOpening bool
	opening   *OpeningBook
}

// Plan is what one planning pass decided.
type Plan struct {
	Turn      int
	Opening   bool   // Targets came from the opening book
	Targets   []int  // Target set at the start of allocation
	Lines     []Line // Committed lines in commit order
	Deferred  []Line // Completed lines that were not affordable
	Unclaimed []int  // Targets left unconnected
	Beacons   []int  // Final marker strength per cell
	FreeStart int    // Free budget before seeding
	FreeEnd   int
	Stop      StopReason
}

// Spent returns the ants committed this turn.
func (p *Plan) Spent() int {
	return p.FreeStart - p.FreeEnd
}

func NewPlanner(options ...Option) *Planner {
	p := &Planner{ // Default values
		cfg: meta.Default(),
	}
	for _, option := range options {
		option(p)
	}
	if err := p.cfg.Validate(); err != nil {
		panic(err)
	}
	p.opening = NewOpeningBook(p.cfg)
	return p
}

// Plan runs the whole pipeline on a freshly updated state: chain power for both
// sides, valuation or opening targets, then line allocation.
func (p *Planner) Plan(ts *game.TurnState) *Plan {
	ts.Reset()
	plan := &Plan{
		Turn:      ts.Turn,
		FreeStart: ts.Me().Free,
	}

	for side := range ts.Sides {
		ChainPower(ts, game.Player(side))
	}

	targets, opening := []int(nil), false
	if !p.noOpening {
		targets, opening = p.opening.Targets(ts)
	}
	if !opening {
		targets = Valuate(ts)
	}
	plan.Opening = opening
	plan.Targets = targets

	a := newAllocation(ts, targets, p.cfg.BaseSeedStrength)
	plan.Stop = a.run()
	plan.Lines = a.lines
	plan.Deferred = a.deferredLines
	plan.Unclaimed = a.unclaimed()
	plan.Beacons = slices.Clone(ts.Beacon)
	plan.FreeEnd = ts.Me().Free

	log.Debug().Msgf("turn %d: %d targets, %d lines, %d deferred, spent %d of %d, stop: %s",
		plan.Turn, len(plan.Targets), len(plan.Lines), len(plan.Deferred), plan.Spent(), plan.FreeStart, plan.Stop)
	return plan
}
