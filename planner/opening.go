package planner

import (
	"ants/game"
	"ants/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// OpeningBook forces nearby eggs as the only targets during the first turns to
// get the economy going. Once abandoned it never comes back.
type OpeningBook struct {
	cfg     meta.Config
	targets []int
	built   bool
	active  bool
}

func NewOpeningBook(cfg meta.Config) *OpeningBook {
	return &OpeningBook{cfg: cfg}
}

// Active reports whether the book still overrides the valuation.
func (o *OpeningBook) Active() bool {
	return o.active
}

// Targets returns the forced targets for this turn, each valued 1, or false when
// the general valuation applies.
func (o *OpeningBook) Targets(ts *game.TurnState) ([]int, bool) {
	if !o.built && ts.Turn <= o.cfg.OpeningMaxTurns {
		o.targets = o.build(ts)
		o.built = true
		o.active = len(o.targets) > 0
		if o.active {
			log.Info().Msgf("opening book forces eggs %v", o.targets)
		}
	}
	if !o.active {
		return nil, false
	}
	if reason := o.abandon(ts); reason != "" {
		log.Info().Msgf("opening book abandoned on turn %d: %s", ts.Turn, reason)
		o.active = false
		return nil, false
	}
	for _, id := range o.targets {
		ts.Value[id] = 1
	}
	return slices.Clone(o.targets), true
}

// build picks, per base, the eggs adjacent to it or else the nearest affordable
// ones within reach.
func (o *OpeningBook) build(ts *game.TurnState) []int {
	forced := []int{}
	for _, base := range ts.Me().Bases {
		budget := ts.Ants[game.Me][base]
		nearest := game.Infinity
		tied := []int{}
		for id := range ts.Resources {
			if !ts.IsEgg(id) {
				continue
			}
			d := ts.Distances.Dist(base, id)
			if d > o.cfg.OpeningMaxDistance {
				continue
			}
			if d > 1 && d*o.cfg.OpeningAntsPerHop > budget {
				continue
			}
			if d < nearest {
				nearest = d
				tied = tied[:0]
			}
			if d == nearest {
				tied = append(tied, id)
			}
		}
		if len(tied) == 0 {
			continue
		}
		if nearest > 1 && len(tied) != o.cfg.OpeningPairEggs {
			// Keep the richest egg, lowest ID on equal resources
			slices.SortFunc(tied, func(a, b int) int {
				if ts.Resources[a] != ts.Resources[b] {
					return ts.Resources[b] - ts.Resources[a]
				}
				return a - b
			})
			tied = tied[:1]
		}
		forced = append(forced, tied...)
	}
	slices.Sort(forced)
	return slices.Compact(forced)
}

func (o *OpeningBook) abandon(ts *game.TurnState) string {
	for _, id := range o.targets {
		if ts.Resources[id] <= 0 {
			return "forced egg depleted"
		}
	}
	eggs, crystals := ts.Totals()
	me, opp := ts.Me(), ts.Opponent()
	if me.Ants > opp.Ants && float64(crystals) < o.cfg.ScarcityRatio*float64(eggs) {
		return "crystals are scarce and we lead in ants"
	}
	if crystals < me.Ants {
		return "crystals cannot cover the army"
	}
	return ""
}
