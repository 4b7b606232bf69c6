package experiments

import (
	"testing"

	"ants/game"
	"ants/meta"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomBoard(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 10; i++ {
		setup := RandomBoard(r, 60, 2)

		require.NoError(t, setup.Map.Validate(), "Generated map should be valid")
		d := game.NewDistances(setup.Map)
		for id := 0; id < setup.Map.Size(); id++ {
			require.True(t, d.Reachable(0, id), "Ring should connect every cell")
		}
		seen := map[int]bool{}
		for _, bases := range setup.Bases {
			require.Len(t, bases, 2, "Each side should get two bases")
			for _, base := range bases {
				require.False(t, seen[base], "Bases should be distinct")
				seen[base] = true
			}
		}
	}
}

func TestRandomTurn(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	setup := RandomBoard(r, 40, 1)
	in := RandomTurn(r, setup, 3)

	require.Len(t, in.Cells, 40, "One update per cell")
	for p := range setup.Bases {
		total := 0
		for _, cell := range in.Cells {
			require.GreaterOrEqual(t, cell.Resources, 0, "Resources should never go negative")
			total += cell.Ants[p]
		}
		require.Equal(t, 16, total, "Ants should grow with the turn")
	}
}

func TestRunBoard(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	records := runBoard(r, PlannerConfig{ID: 7, Config: meta.Default()}, "b")

	require.Len(t, records, NumTurns, "One record per turn")
	for i, record := range records {
		require.Equal(t, i+1, record.Turn, "Turns should be numbered from one")
		require.Equal(t, 7, record.Config, "Config id should be recorded")
		require.LessOrEqual(t, record.FreeEnd, record.FreeStart, "Planner should never gain ants")
		require.GreaterOrEqual(t, record.FreeEnd, 0, "Planner should never overspend")
	}
}
